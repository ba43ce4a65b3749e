package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ssamant/pathway/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// SubmissionRecord is one row of the submission history: what was asked
// and how it went, enough for `pathway history` without storing the full
// response payload.
type SubmissionRecord struct {
	ID            string
	SubmittedAt   time.Time
	Degree        string
	Major         string
	BudgetLakhs   float64
	ResultShape   string
	OptionCount   int
	TopCountry    string
	Failed        bool
	FailureReason string
}

type ProfileRepo interface {
	Get(ctx context.Context) (domain.ProfileDraft, error)
	Save(ctx context.Context, p domain.ProfileDraft) error
	Reset(ctx context.Context) error
}

type SubmissionLogRepo interface {
	Record(ctx context.Context, rec *SubmissionRecord) error
	ListRecent(ctx context.Context, limit int) ([]*SubmissionRecord, error)
}
