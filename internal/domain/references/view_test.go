package references

import (
	"errors"
	"testing"
)

func kinds(imgs []Image) []Kind {
	out := make([]Kind, 0, len(imgs))
	for _, img := range imgs {
		out = append(out, img.Kind)
	}
	return out
}

func TestView_MapAndInfoAreExclusive(t *testing.T) {
	v := View{}

	v = v.ToggleMap()
	if !v.Map {
		t.Fatalf("expected map on")
	}
	// con mapa activo el botón de info no está
	v = v.ToggleInfo()
	if v.Info {
		t.Fatalf("info must not turn on while map is on")
	}

	v = v.ToggleMap()
	v = v.ToggleInfo()
	if !v.Info || v.Map {
		t.Fatalf("expected info only, got %#v", v)
	}
	v = v.ToggleMap()
	if v.Map {
		t.Fatalf("map must not turn on while info is on")
	}
}

func TestView_TableHidesEverything(t *testing.T) {
	v := View{Info: true}

	v = v.ToggleTable()
	if !v.Table || v.Info || v.Map {
		t.Fatalf("expected table only, got %#v", v)
	}
	if v.CanToggleMap() || v.CanToggleInfo() {
		t.Fatalf("map/info must be hidden in table view")
	}
	if len(v.Visible()) != 0 {
		t.Fatalf("no images in table view")
	}

	v = v.ToggleTable()
	if v.Table {
		t.Fatalf("expected table off")
	}
}

func TestView_Visible(t *testing.T) {
	got := kinds(View{Info: true}.Visible())
	want := []Kind{KindLures, KindMap, KindRarity}
	if len(got) != len(want) {
		t.Fatalf("info: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("info: got %v want %v", got, want)
		}
	}

	got = kinds(View{Map: true}.Visible())
	if len(got) != 1 || got[0] != KindMap {
		t.Fatalf("map: got %v", got)
	}

	if len(View{}.Visible()) != 0 {
		t.Fatalf("default view shows no images")
	}
}

func TestGet(t *testing.T) {
	img, err := Get("MAP")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if img.Path != "/FishingMap_Names.png" {
		t.Fatalf("unexpected path %q", img.Path)
	}

	if _, err := Get("treasure"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := ForToggle("table"); !errors.Is(err, ErrUnknownToggle) {
		t.Fatalf("expected ErrUnknownToggle, got %v", err)
	}
}
