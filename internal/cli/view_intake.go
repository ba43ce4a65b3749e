package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ssamant/pathway/internal/cli/formatter"
	"github.com/ssamant/pathway/internal/contract"
	"github.com/ssamant/pathway/internal/domain"
	"github.com/ssamant/pathway/internal/session"
)

// outcomeMsg carries a completed submission back to the event loop.
type outcomeMsg struct {
	outcome session.Outcome
}

// intakeView collects the applicant profile and drives the submission
// lifecycle. While a submission is in flight it shows a progress note;
// esc returns to the editable form, leaving the stale response to be
// discarded by the controller's sequence guard.
type intakeView struct {
	state  *SharedState
	fields *intakeFields
	form   *huh.Form

	headline   typewriter
	submitting bool
	notice     string
}

func newIntakeView(state *SharedState) *intakeView {
	fields := fieldsFromDraft(state.Draft)
	v := &intakeView{
		state:    state,
		fields:   fields,
		form:     newIntakeForm(fields),
		headline: newTypewriter("Find your pathway to study abroad"),
	}
	return v
}

func (v *intakeView) ID() ViewID    { return ViewIntake }
func (v *intakeView) Title() string { return "Profile" }

func (v *intakeView) ShortHelp() []key.Binding {
	if v.submitting {
		return []key.Binding{
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "back")),
	}
}

func (v *intakeView) Init() tea.Cmd {
	return tea.Batch(v.form.Init(), v.headline.Start())
}

func (v *intakeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case typewriterTickMsg:
		return v, v.headline.Update(msg)

	case outcomeMsg:
		applied := v.state.Controller.Resolve(msg.outcome)
		if !applied {
			return v, nil
		}
		v.submitting = false
		if v.state.Controller.Phase() == session.Failed {
			v.notice = v.state.Controller.Notice()
			v.rebuildForm()
			return v, v.form.Init()
		}
		return v, replaceView(newResultsView(v.state))

	case tea.KeyMsg:
		if v.submitting {
			if msg.Type == tea.KeyEsc {
				// back to the form; the in-flight outcome goes stale
				v.state.Controller.Cancel()
				v.submitting = false
				v.rebuildForm()
				return v, v.form.Init()
			}
			return v, nil
		}
		if !v.headline.Done() {
			v.headline.Skip()
		}
	}

	if v.submitting {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		return v, tea.Batch(cmd, v.submit())
	}
	return v, cmd
}

// submit validates the completed form and launches the advisor call.
func (v *intakeView) submit() tea.Cmd {
	draft := v.fields.toDraft()
	v.state.Draft = draft

	if err := contract.ValidateForSubmit(draft); err != nil {
		v.notice = err.Error()
		v.rebuildForm()
		return v.form.Init()
	}

	v.notice = ""
	v.submitting = true
	req := contract.Normalize(draft)
	sub := v.state.Controller.Begin(req)
	return submitCmd(v.state.App, sub, draft)
}

// submitCmd performs the advisor call off the event loop. The draft is
// persisted and the attempt logged as side effects; neither failure
// blocks the submission outcome.
func submitCmd(app *App, sub session.Submission, draft domain.ProfileDraft) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if app.Profiles != nil {
			_ = app.Profiles.Save(ctx, draft)
		}

		rs, err := app.Advisor.Recommend(ctx, sub.Request)
		app.logSubmission(ctx, sub.Request, rs, err)
		return outcomeMsg{outcome: session.Outcome{Seq: sub.Seq, Result: rs, Err: err}}
	}
}

// rebuildForm resets the huh form to an editable state with the current
// field values preserved.
func (v *intakeView) rebuildForm() {
	v.form = newIntakeForm(v.fields)
}

func (v *intakeView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render(v.headline.View()) + "\n\n")

	if v.notice != "" {
		b.WriteString("  " + formatter.StyleRed.Render(v.notice) + "\n\n")
	}

	if v.submitting {
		b.WriteString("  " + formatter.Dim("Analyzing your profile against current visa and cost data...") + "\n")
		b.WriteString("  " + formatter.Dim("This usually takes a few seconds.") + "\n")
		return b.String()
	}

	b.WriteString(v.form.View())
	return b.String()
}
