package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ssamant/pathway/internal/cli/formatter"
	"github.com/ssamant/pathway/internal/contract"
)

// compareView lists the alternatives to the current top recommendation
// and lets the user promote one to the top slot. Only reachable from the
// ranked shape.
type compareView struct {
	state  *SharedState
	cursor int
	notice string
}

func newCompareView(state *SharedState) *compareView {
	return &compareView{state: state}
}

func (v *compareView) ID() ViewID    { return ViewCompare }
func (v *compareView) Title() string { return "Compare" }

func (v *compareView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "navigate")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "make primary")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *compareView) Init() tea.Cmd { return nil }

// alternatives returns every ranked option except the current primary.
func (v *compareView) alternatives() []contract.PathwayOption {
	rs := v.state.Controller.Result()
	if rs == nil || rs.Shape != contract.ShapeRanked || len(rs.Ranked) < 2 {
		return nil
	}
	return rs.Ranked[1:]
}

func (v *compareView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	alts := v.alternatives()
	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(alts)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor >= len(alts) {
			return v, nil
		}
		if err := v.state.Controller.PromoteChoice(alts[v.cursor].Key()); err != nil {
			// the set changed underneath us; nothing sensible to promote
			v.notice = "That option is no longer available."
			v.cursor = 0
			return v, nil
		}
		return v, popView()
	}
	return v, nil
}

func (v *compareView) View() string {
	alts := v.alternatives()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Compare Alternatives") + "\n\n")

	if v.notice != "" {
		b.WriteString("  " + formatter.StyleYellow.Render(v.notice) + "\n\n")
	}
	if len(alts) == 0 {
		b.WriteString("  " + formatter.Dim("No alternatives to compare.") + "\n")
		return b.String()
	}

	rs := v.state.Controller.Result()
	b.WriteString("  " + formatter.Dim("Current primary: ") +
		formatter.Bold(rs.Ranked[0].Country) + "\n\n")

	for i, o := range alts {
		b.WriteString(formatter.OptionLine(o, i == v.cursor) + "\n")
		if i == v.cursor {
			b.WriteString(formatter.OptionCard(o))
		}
	}
	return b.String()
}
