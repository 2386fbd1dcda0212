package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"lifearc/internal/domain"

	"github.com/google/uuid"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	db *sql.DB
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db *sql.DB) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Save(ctx context.Context, name string, plan *domain.Plan, locked *domain.Plan) error {
	doc, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("serializing plan document: %w", err)
	}
	var lockedDoc sql.NullString
	if locked != nil {
		data, err := json.Marshal(locked)
		if err != nil {
			return fmt.Errorf("serializing locked document: %w", err)
		}
		lockedDoc = sql.NullString{String: string(data), Valid: true}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	query := `INSERT INTO plans (id, name, document, locked_document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			document = excluded.document,
			locked_document = excluded.locked_document,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		uuid.New().String(),
		name,
		string(doc),
		lockedDoc,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("saving plan %q: %w", name, err)
	}
	return nil
}

func (r *SQLitePlanRepo) Load(ctx context.Context, name string) (*domain.Plan, *domain.Plan, error) {
	query := `SELECT document, locked_document FROM plans WHERE name = ?`
	var doc string
	var lockedDoc sql.NullString
	err := r.db.QueryRowContext(ctx, query, name).Scan(&doc, &lockedDoc)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("%w: %q", ErrPlanNotFound, name)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading plan %q: %w", name, err)
	}

	var plan domain.Plan
	if err := json.Unmarshal([]byte(doc), &plan); err != nil {
		return nil, nil, fmt.Errorf("parsing plan document %q: %w", name, err)
	}
	var locked *domain.Plan
	if lockedDoc.Valid {
		locked = &domain.Plan{}
		if err := json.Unmarshal([]byte(lockedDoc.String), locked); err != nil {
			return nil, nil, fmt.Errorf("parsing locked document %q: %w", name, err)
		}
	}
	return &plan, locked, nil
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]PlanInfo, error) {
	query := `SELECT id, name, document, locked_document IS NOT NULL, created_at, updated_at
		FROM plans ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var infos []PlanInfo
	for rows.Next() {
		var info PlanInfo
		var doc, createdAt, updatedAt string
		if err := rows.Scan(&info.ID, &info.Name, &doc, &info.HasLocked, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan row: %w", err)
		}
		var plan domain.Plan
		if err := json.Unmarshal([]byte(doc), &plan); err == nil {
			info.Title = plan.Title
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			info.CreatedAt = t
		}
		if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
			info.UpdatedAt = t
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return infos, nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting plan %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrPlanNotFound, name)
	}
	return nil
}
