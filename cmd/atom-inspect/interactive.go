package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hejia-v/atom/layout"
	"github.com/hejia-v/atom/object"
	"github.com/hejia-v/atom/state"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	slotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	reg      *object.Registry
	obj      *object.Object
	snapshot *state.Snapshot
	names    []string
	inputs   []textinput.Model
	selected int
	attrSel  int
	focusIdx int
	state    modelState
}

type modelState int

const (
	stateSelectType modelState = iota
	stateViewLayout
	stateEditAttrs
	stateShowSnapshot
)

func newInteractiveModel(reg *object.Registry) *interactiveModel {
	return &interactiveModel{
		reg:   reg,
		names: reg.Names(),
		state: stateSelectType,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) currentType() *object.Type {
	t, _ := m.reg.Get(m.names[m.selected])
	return t
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			// While editing, "q" is input text, not a command.
			if m.state != stateEditAttrs {
				return m, tea.Quit
			}

		case "up", "k":
			switch m.state {
			case stateSelectType:
				if m.selected > 0 {
					m.selected--
				}
			case stateViewLayout:
				if m.attrSel > 0 {
					m.attrSel--
				}
			}

		case "down", "j":
			switch m.state {
			case stateSelectType:
				if m.selected < len(m.names)-1 {
					m.selected++
				}
			case stateViewLayout:
				if m.attrSel < m.currentType().SlotCount()-1 {
					m.attrSel++
				}
			}

		case "enter":
			switch m.state {
			case stateSelectType:
				obj, err := object.New(m.currentType())
				if err != nil {
					m.err = err
					return m, nil
				}
				m.obj = obj
				m.attrSel = 0
				m.err = nil
				m.state = stateViewLayout

			case stateViewLayout:
				m.prepareInputs()
				m.state = stateEditAttrs

			case stateEditAttrs:
				if err := m.applyInputs(); err != nil {
					m.err = err
					return m, nil
				}
				snap, err := state.Export(m.obj)
				if err != nil {
					m.err = err
					return m, nil
				}
				m.snapshot = snap
				m.err = nil
				m.state = stateShowSnapshot

			case stateShowSnapshot:
				m.state = stateSelectType
				m.obj = nil
				m.snapshot = nil
				m.inputs = nil
			}

		case "tab":
			if m.state == stateEditAttrs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateViewLayout:
				m.state = stateSelectType
				m.obj = nil
			case stateEditAttrs:
				m.state = stateViewLayout
				m.inputs = nil
				m.err = nil
			case stateShowSnapshot:
				m.state = stateViewLayout
				m.snapshot = nil
			}
		}
	}

	if m.state == stateEditAttrs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	t := m.currentType()
	m.inputs = make([]textinput.Model, t.SlotCount())
	t.Layout().Each(func(s layout.Slot) bool {
		cur, _ := m.obj.Get(s.Member.Name)
		ti := textinput.New()
		ti.Placeholder = fmt.Sprintf("%v", cur)
		ti.Prompt = s.Member.Name + ": "
		ti.Width = 40
		if s.Index == 0 {
			ti.Focus()
		}
		m.inputs[s.Index] = ti
		return true
	})
	m.focusIdx = 0
}

// applyInputs writes each non-empty field back, parsing the text to
// match the attribute's current value type.
func (m *interactiveModel) applyInputs() error {
	t := m.currentType()
	var applyErr error
	t.Layout().Each(func(s layout.Slot) bool {
		text := m.inputs[s.Index].Value()
		if text == "" {
			return true
		}
		cur, err := m.obj.Get(s.Member.Name)
		if err != nil {
			applyErr = err
			return false
		}
		v, err := convertValue(text, cur)
		if err != nil {
			applyErr = fmt.Errorf("%s: %v", s.Member.Name, err)
			return false
		}
		if err := m.obj.Set(s.Member.Name, v); err != nil {
			applyErr = err
			return false
		}
		return true
	})
	return applyErr
}

func convertValue(text string, current any) (any, error) {
	switch current.(type) {
	case float64:
		return strconv.ParseFloat(text, 64)
	case float32:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, err
		}
		return float32(v), nil
	case int:
		return strconv.Atoi(text)
	case int64:
		return strconv.ParseInt(text, 10, 64)
	case uint64:
		return strconv.ParseUint(text, 10, 64)
	case bool:
		return strconv.ParseBool(text)
	default:
		return text, nil
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Atom Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectType:
		b.WriteString("Select a type:\n\n")
		for i, name := range m.names {
			t, _ := m.reg.Get(name)
			line := m.formatTypeLine(t)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • q quit"))

	case stateViewLayout:
		t := m.currentType()
		b.WriteString(fmt.Sprintf("Layout of %s:\n\n", nameStyle.Render(t.Name())))
		t.Layout().Each(func(s layout.Slot) bool {
			cur, _ := m.obj.Get(s.Member.Name)
			line := fmt.Sprintf("[%d] %-12s = %-14v %s",
				s.Index, s.Member.Name, cur, slotStyle.Render("("+s.Member.Owner+")"))
			if s.Index == m.attrSel {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
			return true
		})
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter edit attributes • esc back • q quit"))

	case stateEditAttrs:
		t := m.currentType()
		b.WriteString(fmt.Sprintf("Editing %s\n\n", nameStyle.Render(t.Name())))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter apply • esc back"))

	case stateShowSnapshot:
		t := m.currentType()
		b.WriteString(fmt.Sprintf("Snapshot of %s:\n\n", nameStyle.Render(t.Name())))
		m.snapshot.Each(func(e state.Entry) bool {
			b.WriteString(fmt.Sprintf("  %-12s %s\n",
				e.Name, valueStyle.Render(fmt.Sprintf("%v", e.Value))))
			return true
		})
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter new instance • esc back • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatTypeLine(t *object.Type) string {
	var bases []string
	for _, base := range t.Bases() {
		bases = append(bases, base.Name())
	}
	suffix := ""
	if len(bases) > 0 {
		suffix = "(" + strings.Join(bases, ", ") + ")"
	}
	return nameStyle.Render(t.Name()) + suffix +
		slotStyle.Render(fmt.Sprintf("  %d slots", t.SlotCount()))
}

func runInteractive(reg *object.Registry) error {
	p := tea.NewProgram(newInteractiveModel(reg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
