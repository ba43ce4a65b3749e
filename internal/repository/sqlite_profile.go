package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ssamant/pathway/internal/db"
	"github.com/ssamant/pathway/internal/domain"
)

// SQLiteProfileRepo persists the single working profile draft so a user
// picks up where they left off across invocations. One row, id 'default'.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (domain.ProfileDraft, error) {
	query := `SELECT degree, gpa, major, budget_max, priority, funding_source, countries, target_intake
		FROM profile_drafts WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.ProfileDraft
	var degree, priority, funding, countries, intake string
	err := row.Scan(&degree, &p.GPA, &p.Major, &p.BudgetMax, &priority, &funding, &countries, &intake)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ProfileDraft{}, fmt.Errorf("profile draft: %w", ErrNotFound)
		}
		return domain.ProfileDraft{}, fmt.Errorf("scanning profile draft: %w", err)
	}
	p.Degree = domain.Degree(degree)
	p.Priority = domain.Priority(priority)
	p.FundingSource = domain.FundingSource(funding)
	p.TargetIntake = domain.IntakeTerm(intake)
	p.PreferredCountries = splitCountries(countries)
	return p, nil
}

func (r *SQLiteProfileRepo) Save(ctx context.Context, p domain.ProfileDraft) error {
	query := `INSERT OR REPLACE INTO profile_drafts
		(id, degree, gpa, major, budget_max, priority, funding_source, countries, target_intake, updated_at)
		VALUES ('default', ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		string(p.Degree),
		p.GPA,
		p.Major,
		p.BudgetMax,
		string(p.Priority),
		string(p.FundingSource),
		joinCountries(p.PreferredCountries),
		string(p.TargetIntake),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving profile draft: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profile_drafts WHERE id = 'default'`); err != nil {
		return fmt.Errorf("resetting profile draft: %w", err)
	}
	return nil
}

// Country names never contain commas, so a comma join is unambiguous.
func joinCountries(countries []string) string {
	return strings.Join(countries, ",")
}

func splitCountries(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
