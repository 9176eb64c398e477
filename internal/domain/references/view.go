package references

// View es el estado de los toggles de la vista. Es estado de quien llama
// (TUI, cliente web); acá solo viven las reglas:
// - map e info son excluyentes
// - la tabla oculta ambos botones y los apaga al activarse
type View struct {
	Map   bool
	Info  bool
	Table bool
}

// CanToggleMap: el botón de mapa solo se ve sin info ni tabla.
func (v View) CanToggleMap() bool { return !v.Info && !v.Table }

// CanToggleInfo: el botón de info solo se ve sin mapa ni tabla.
func (v View) CanToggleInfo() bool { return !v.Map && !v.Table }

func (v View) ToggleMap() View {
	if v.CanToggleMap() {
		v.Map = !v.Map
	}
	return v
}

func (v View) ToggleInfo() View {
	if v.CanToggleInfo() {
		v.Info = !v.Info
	}
	return v
}

func (v View) ToggleTable() View {
	v.Table = !v.Table
	v.Map = false
	v.Info = false
	return v
}

// Visible devuelve las imágenes que corresponden al estado actual.
func (v View) Visible() []Image {
	switch {
	case v.Table:
		return nil
	case v.Info:
		imgs, _ := ForToggle(ToggleInfo)
		return imgs
	case v.Map:
		imgs, _ := ForToggle(ToggleMap)
		return imgs
	default:
		return nil
	}
}
