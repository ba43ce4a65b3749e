// Package session owns the client-side state of one intake session: the
// submission lifecycle, the current result set, interactive reordering,
// and per-option expansion state. All mutation happens on the single UI
// event loop; the only hazard is out-of-order completion of two
// submissions, which the sequence guard in Resolve handles.
package session

import (
	"github.com/google/uuid"

	"github.com/ssamant/pathway/internal/contract"
)

// Phase is the submission lifecycle state.
type Phase int

const (
	Idle Phase = iota
	Submitting
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// FailureNotice is the user-visible message shown when a submission fails.
const FailureNotice = "Recommendation service unavailable. Please try again."

// PromotedNote annotates the session after a promote: the upstream
// consultant analysis still describes the original top recommendation.
const PromotedNote = "Alternative promoted — detailed analysis reflects the original recommendation."

// Submission is one stamped in-flight request. The Seq ties the eventual
// outcome back to the submission that produced it.
type Submission struct {
	Seq     uint64
	Request contract.RecommendRequest
}

// Outcome is the completion of a submission, success or failure.
type Outcome struct {
	Seq    uint64
	Result *contract.ResultSet
	Err    error
}

// Controller is the session state machine: Idle → Submitting →
// {Succeeded, Failed}, with re-submission allowed from either terminal
// phase. One instance per session; not shared across sessions.
type Controller struct {
	id    string
	phase Phase
	seq   uint64

	result     *contract.ResultSet
	lastErr    error
	notice     string
	annotation string

	showResult    bool
	scrollPending bool
}

// NewController creates a controller in the Idle phase.
func NewController() *Controller {
	return &Controller{id: uuid.NewString()}
}

func (c *Controller) ID() string    { return c.id }
func (c *Controller) Phase() Phase  { return c.phase }
func (c *Controller) Err() error    { return c.lastErr }
func (c *Controller) Notice() string { return c.notice }

// Result returns the current result set, nil before the first success.
func (c *Controller) Result() *contract.ResultSet { return c.result }

// Annotation returns the session-level note attached by a promote, empty
// otherwise. It is cleared whenever a fresh result set arrives.
func (c *Controller) Annotation() string { return c.annotation }

// ShowResult reports whether the result section should be rendered.
func (c *Controller) ShowResult() bool { return c.showResult }

// Begin transitions into Submitting and stamps a new submission with the
// next sequence number. Any prior error, notice and show-result flag are
// cleared; a prior result set is kept until a newer success replaces it.
func (c *Controller) Begin(req contract.RecommendRequest) Submission {
	c.seq++
	c.phase = Submitting
	c.lastErr = nil
	c.notice = ""
	c.showResult = false
	return Submission{Seq: c.seq, Request: req}
}

// Resolve applies a submission outcome. An outcome whose Seq is not the
// most recent submission is stale — a newer submission superseded it while
// it was in flight — and is discarded; Resolve reports whether the outcome
// was applied. On failure the prior result set, if any, is left untouched.
func (c *Controller) Resolve(o Outcome) bool {
	if o.Seq != c.seq || c.phase != Submitting {
		return false
	}
	if o.Err != nil {
		c.phase = Failed
		c.lastErr = o.Err
		c.notice = FailureNotice
		return true
	}
	c.phase = Succeeded
	c.result = o.Result
	c.annotation = ""
	c.showResult = true
	c.scrollPending = true
	return true
}

// PromoteChoice reorders the ranked result set so the chosen option
// becomes the primary recommendation. Only valid in ranked mode; the
// bucket shape has no promote operation. A stale key (the compare panel
// was left open across a result replacement) returns ErrKeyNotFound and
// leaves the set unchanged.
func (c *Controller) PromoteChoice(key string) error {
	if c.result == nil || c.result.Shape != contract.ShapeRanked {
		return ErrKeyNotFound
	}
	if len(c.result.Ranked) > 0 && c.result.Ranked[0].Key() == key {
		// promoting the current rank-0 option is the identity
		return nil
	}
	reordered, err := Promote(c.result.Ranked, key)
	if err != nil {
		return err
	}
	next := *c.result
	next.Ranked = reordered
	c.result = &next
	c.annotation = PromotedNote
	c.scrollPending = true
	return nil
}

// Cancel abandons an in-flight submission without discarding any prior
// result. The sequence bump marks the outstanding outcome stale, so it
// is discarded if it ever arrives.
func (c *Controller) Cancel() {
	if c.phase != Submitting {
		return
	}
	c.seq++
	if c.result != nil {
		c.phase = Succeeded
		c.showResult = true
	} else {
		c.phase = Idle
	}
}

// ConsumeScroll returns and clears the pending scroll-into-view flag, so
// the UI performs the side effect exactly once.
func (c *Controller) ConsumeScroll() bool {
	p := c.scrollPending
	c.scrollPending = false
	return p
}

// Reset returns the controller to Idle with no result, the equivalent of
// a page reload. The sequence counter keeps counting so any outcome still
// in flight from before the reset is discarded as stale.
func (c *Controller) Reset() {
	c.phase = Idle
	c.seq++
	c.result = nil
	c.lastErr = nil
	c.notice = ""
	c.annotation = ""
	c.showResult = false
	c.scrollPending = false
}
