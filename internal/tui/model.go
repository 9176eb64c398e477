// Package tui es la interfaz de terminal del buscador. El estado de la vista
// (modo, consulta, política, toggles) vive acá y se pasa explícito al motor
// de filtros en cada cambio.
package tui

import (
	"strings"

	"fishing-finder/internal/domain/fish"
	"fishing-finder/internal/domain/references"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Catalog es lo que la TUI necesita del servicio.
type Catalog interface {
	Search(q fish.Query) []fish.Fish
	Table() []fish.Fish
}

type Model struct {
	catalog Catalog
	styles  Styles

	input   textinput.Model
	mode    fish.Mode
	policy  fish.SpotPolicy
	view    references.View
	results []fish.Fish

	// mensaje fijo (p.ej. catálogo no cargado)
	status   string
	width    int
	quitting bool
}

func New(catalog Catalog) Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Prompt = "> "
	ti.Focus()

	m := Model{
		catalog: catalog,
		styles:  DefaultStyles(),
		input:   ti,
		mode:    fish.ModeName,
		policy:  fish.PolicyIncludeAny,
		results: []fish.Fish{},
	}
	m.input.Placeholder = placeholder(m.mode)
	return m
}

// WithStatus agrega una línea de estado al pie.
func (m Model) WithStatus(s string) Model {
	m.status = s
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "tab":
			if m.view.Table {
				return m, nil
			}
			return m.setMode(nextMode(m.mode, 1)), nil

		case "shift+tab":
			if m.view.Table {
				return m, nil
			}
			return m.setMode(nextMode(m.mode, -1)), nil

		case "ctrl+p":
			if m.mode != fish.ModeSpot || m.view.Table {
				return m, nil
			}
			if m.policy == fish.PolicyIncludeAny {
				m.policy = fish.PolicySpecificOnly
			} else {
				m.policy = fish.PolicyIncludeAny
			}
			return m.search(), nil

		case "ctrl+t":
			m.view = m.view.ToggleTable()
			m.input.SetValue("")
			if m.view.Table {
				m.input.Blur()
				m.results = m.catalog.Table()
			} else {
				m.input.Focus()
				m.results = []fish.Fish{}
			}
			return m, nil

		case "ctrl+g":
			m.view = m.view.ToggleMap()
			return m, nil

		case "ctrl+o":
			m.view = m.view.ToggleInfo()
			return m, nil
		}
	}

	// la tabla oculta la búsqueda
	if m.view.Table {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m = m.search()
	}
	return m, cmd
}

// setMode cambia el modo y limpia consulta y resultados.
func (m Model) setMode(mode fish.Mode) Model {
	m.mode = mode
	m.input.SetValue("")
	m.input.Placeholder = placeholder(mode)
	m.results = []fish.Fish{}
	return m
}

// search corre el motor con el estado actual.
func (m Model) search() Model {
	q := fish.Query{Mode: m.mode, Text: m.input.Value()}
	if m.mode == fish.ModeSpot {
		q.Policy = m.policy
	}
	m.results = m.catalog.Search(q)
	return m
}

func nextMode(cur fish.Mode, step int) fish.Mode {
	n := len(fish.Modes)
	for i, md := range fish.Modes {
		if md == cur {
			return fish.Modes[((i+step)%n+n)%n]
		}
	}
	return fish.Modes[0]
}

func placeholder(mode fish.Mode) string {
	return "Search by " + string(mode) + "..."
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.styles

	var sb strings.Builder
	sb.WriteString(s.Title.Render("Hay Day Fishing Finder"))
	sb.WriteString("\n")

	if !m.view.Table {
		tabs := make([]string, 0, len(fish.Modes))
		for _, md := range fish.Modes {
			if md == m.mode {
				tabs = append(tabs, s.ActiveTab.Render(string(md)))
			} else {
				tabs = append(tabs, s.Tab.Render(string(md)))
			}
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
		sb.WriteString("\n\n")
	}

	for _, img := range m.view.Visible() {
		sb.WriteString(s.Reference.Render("[" + string(img.Kind) + "] " + img.Alt + " " + img.Path))
		sb.WriteString("\n")
	}

	if m.view.Table {
		sb.WriteString(RenderTable(m.results, s))
	} else {
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
		if m.mode == fish.ModeSpot {
			sb.WriteString(s.Muted.Render("policy: " + string(m.policy)))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")

		cards := make([]string, 0, len(m.results))
		for _, f := range m.results {
			cards = append(cards, RenderCard(f, s))
		}
		sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
	}

	sb.WriteString(s.StatusLine.Render(m.helpLine()))
	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(s.EventOnly.Render(m.status))
	}
	sb.WriteString("\n")
	return sb.String()
}

// helpLine solo muestra los atajos disponibles en el estado actual.
func (m Model) helpLine() string {
	keys := make([]string, 0, 6)
	if !m.view.Table {
		keys = append(keys, "tab: mode")
		if m.mode == fish.ModeSpot {
			keys = append(keys, "ctrl+p: policy")
		}
	}
	keys = append(keys, "ctrl+t: table")
	if m.view.CanToggleMap() {
		keys = append(keys, "ctrl+g: map")
	}
	if m.view.CanToggleInfo() {
		keys = append(keys, "ctrl+o: info")
	}
	keys = append(keys, "esc: quit")
	return strings.Join(keys, " • ")
}
