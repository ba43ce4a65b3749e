package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ssamant/pathway/internal/db"
)

// SQLiteSubmissionLogRepo implements SubmissionLogRepo using a SQLite database.
type SQLiteSubmissionLogRepo struct {
	db db.DBTX
}

// NewSQLiteSubmissionLogRepo creates a new SQLiteSubmissionLogRepo.
func NewSQLiteSubmissionLogRepo(conn db.DBTX) *SQLiteSubmissionLogRepo {
	return &SQLiteSubmissionLogRepo{db: conn}
}

func (r *SQLiteSubmissionLogRepo) Record(ctx context.Context, rec *SubmissionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.SubmittedAt.IsZero() {
		rec.SubmittedAt = time.Now().UTC()
	}
	query := `INSERT INTO submission_log
		(id, submitted_at, degree, major, budget_lakhs, result_shape, option_count, top_country, failed, failure_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.SubmittedAt.Format(time.RFC3339),
		rec.Degree,
		rec.Major,
		rec.BudgetLakhs,
		rec.ResultShape,
		rec.OptionCount,
		rec.TopCountry,
		boolToInt(rec.Failed),
		rec.FailureReason,
	)
	if err != nil {
		return fmt.Errorf("recording submission: %w", err)
	}
	return nil
}

func (r *SQLiteSubmissionLogRepo) ListRecent(ctx context.Context, limit int) ([]*SubmissionRecord, error) {
	query := `SELECT id, submitted_at, degree, major, budget_lakhs, result_shape, option_count, top_country, failed, failure_reason
		FROM submission_log ORDER BY submitted_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var out []*SubmissionRecord
	for rows.Next() {
		var rec SubmissionRecord
		var at string
		var failed int
		if err := rows.Scan(&rec.ID, &at, &rec.Degree, &rec.Major, &rec.BudgetLakhs,
			&rec.ResultShape, &rec.OptionCount, &rec.TopCountry, &failed, &rec.FailureReason); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		rec.SubmittedAt, err = time.Parse(time.RFC3339, at)
		if err != nil {
			return nil, fmt.Errorf("parsing submitted_at: %w", err)
		}
		rec.Failed = intToBool(failed)
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}
