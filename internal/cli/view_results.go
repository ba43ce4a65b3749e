package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ssamant/pathway/internal/cli/formatter"
	"github.com/ssamant/pathway/internal/contract"
)

// resultsView renders the current result set: a three-bucket strategy
// dashboard or a flat ranked report, depending on the shape the advisor
// returned. Option cards expand in place; the ranked shape additionally
// supports promoting an alternative via the compare view.
type resultsView struct {
	state    *SharedState
	vp       viewport.Model
	cursor   int
	headline typewriter
}

func newResultsView(state *SharedState) *resultsView {
	vp := viewport.New(state.Width, state.ContentHeight())
	return &resultsView{
		state:    state,
		vp:       vp,
		headline: newTypewriter("Your Global Pathway Report"),
	}
}

func (v *resultsView) ID() ViewID    { return ViewResults }
func (v *resultsView) Title() string { return "Results" }

func (v *resultsView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "navigate")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	}
	if v.ranked() {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare")))
	}
	bindings = append(bindings,
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit profile")))
	return bindings
}

func (v *resultsView) Init() tea.Cmd {
	v.syncViewport()
	return v.headline.Start()
}

func (v *resultsView) ranked() bool {
	rs := v.state.Controller.Result()
	return rs != nil && rs.Shape == contract.ShapeRanked
}

// options returns the full option list in display order, across shapes.
func (v *resultsView) options() []contract.PathwayOption {
	rs := v.state.Controller.Result()
	if rs == nil {
		return nil
	}
	if rs.Shape == contract.ShapeRanked {
		return rs.Ranked
	}
	out := make([]contract.PathwayOption, 0, rs.Len())
	out = append(out, rs.Buckets.SafeBets...)
	out = append(out, rs.Buckets.FastTrack...)
	out = append(out, rs.Buckets.Moonshots...)
	return out
}

func (v *resultsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case typewriterTickMsg:
		cmd := v.headline.Update(msg)
		v.syncViewport()
		return v, cmd

	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		v.syncViewport()
		return v, nil

	case tea.KeyMsg:
		opts := v.options()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(opts)-1 {
				v.cursor++
			}
		case "enter", " ":
			if v.cursor < len(opts) {
				v.state.Expansion.Toggle(opts[v.cursor].Key())
			}
		case "c":
			if v.ranked() && len(opts) > 1 {
				return v, pushView(newCompareView(v.state))
			}
		case "e":
			return v, replaceView(newIntakeView(v.state))
		case "pgup":
			v.vp.HalfViewUp()
		case "pgdown":
			v.vp.HalfViewDown()
		}
		if !v.headline.Done() {
			v.headline.Skip()
		}
		v.syncViewport()
	}
	return v, nil
}

// syncViewport re-renders the content and honors a pending
// scroll-to-results request from the controller.
func (v *resultsView) syncViewport() {
	opts := v.options()
	if v.cursor >= len(opts) && len(opts) > 0 {
		v.cursor = len(opts) - 1
	}
	v.vp.SetContent(v.renderContent())
	if v.state.Controller.ConsumeScroll() {
		v.vp.GotoTop()
	}
}

func (v *resultsView) View() string {
	return v.vp.View()
}

func (v *resultsView) renderContent() string {
	rs := v.state.Controller.Result()
	if rs == nil {
		return "\n  " + formatter.Dim("No results yet.")
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render(v.headline.View()) + "\n\n")

	if note := v.state.Controller.Annotation(); note != "" {
		b.WriteString("  " + formatter.StyleYellow.Render(note) + "\n\n")
	}

	if rs.Shape == contract.ShapeBuckets {
		v.renderBuckets(&b, rs)
	} else {
		v.renderRanked(&b, rs)
	}

	if rs.ConsultantNote != "" {
		b.WriteString("\n  " + formatter.StylePurple.Render("Consultant: ") + rs.ConsultantNote + "\n")
	}
	if rs.RiskAdvisory != "" {
		b.WriteString("  " + formatter.Dim(rs.RiskAdvisory) + "\n")
	}
	return b.String()
}

func (v *resultsView) renderBuckets(b *strings.Builder, rs *contract.ResultSet) {
	idx := 0
	buckets := []struct {
		label string
		opts  []contract.PathwayOption
	}{
		{"Safe Bets", rs.Buckets.SafeBets},
		{"Fast Track", rs.Buckets.FastTrack},
		{"Moonshots", rs.Buckets.Moonshots},
	}
	for _, bucket := range buckets {
		b.WriteString("  " + formatter.BucketHeading(bucket.label, len(bucket.opts)) + "\n")
		if len(bucket.opts) == 0 {
			b.WriteString("  " + formatter.EmptyBucket() + "\n\n")
			continue
		}
		for _, o := range bucket.opts {
			v.renderOption(b, o, idx)
			idx++
		}
		b.WriteString("\n")
	}
	if meta := rs.Meta; meta != nil {
		b.WriteString("  " + formatter.Dim(fmt.Sprintf("%d pathways evaluated", meta.TotalOptions)) + "\n")
	}
}

func (v *resultsView) renderRanked(b *strings.Builder, rs *contract.ResultSet) {
	if len(rs.Ranked) == 0 {
		b.WriteString("  " + formatter.Dim("No pathways matched your profile.") + "\n")
		return
	}
	b.WriteString("  " + formatter.Dim("Top recommendation first. Press c to compare alternatives.") + "\n\n")
	for i, o := range rs.Ranked {
		if i == 0 {
			b.WriteString("  " + formatter.StyleGreen.Render("★ BEST MATCH") + "\n")
		}
		v.renderOption(b, o, i)
	}
}

func (v *resultsView) renderOption(b *strings.Builder, o contract.PathwayOption, idx int) {
	b.WriteString(formatter.OptionLine(o, idx == v.cursor) + "\n")
	if v.state.Expansion.Expanded(o.Key()) {
		b.WriteString(formatter.OptionCard(o))
	}
}
