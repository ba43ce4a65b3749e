package cli

import (
	"testing"

	"github.com/ssamant/pathway/internal/teatest"
)

// TestDriver wraps teatest.Driver with pathway-specific inspection
// methods: view stack, shared state, and a shortcut through the intake
// form for flows that start from a submitted profile.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App. It constructs the
// appModel, sets terminal size, and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// SubmitIntake fills the intake fields directly and runs the submission
// synchronously. Walking the three-group huh form key by key adds
// nothing over huh's own tests; the submit path from completed fields is
// what the flows here care about.
func (d *TestDriver) SubmitIntake(major, gpa string) {
	d.T.Helper()

	m := d.appModel()
	v, ok := m.activeView().(*intakeView)
	if !ok {
		d.T.Fatalf("active view is %T, want *intakeView", m.activeView())
	}
	v.fields.major = major
	v.fields.gpa = gpa

	cmd := v.submit()
	if cmd != nil {
		d.Send(cmd())
	}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
