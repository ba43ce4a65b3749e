package cli

import (
	"github.com/ssamant/pathway/internal/domain"
	"github.com/ssamant/pathway/internal/session"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Working profile draft, carried between the intake form and the
	// results so editing resumes from the submitted values.
	Draft domain.ProfileDraft

	// Session lifecycle and per-option expansion state. Both outlive any
	// single view on the stack.
	Controller *session.Controller
	Expansion  *session.ExpansionTracker

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content, accounting
// for header (2 lines: title + separator) and status bar (2 lines:
// separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
