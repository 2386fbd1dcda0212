// Package repository persists plan documents. Documents are stored as
// serialized JSON so save/load round-trips are lossless for every
// declared field, including the last-used view window.
package repository

import (
	"context"
	"errors"
	"time"

	"lifearc/internal/domain"
)

// ErrPlanNotFound means no saved document carries the requested name.
var ErrPlanNotFound = errors.New("plan not found")

// PlanInfo is a listing row for one saved plan document.
type PlanInfo struct {
	ID        string
	Name      string
	Title     string
	HasLocked bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlanRepo stores named plan documents together with their optional
// locked comparison snapshot.
type PlanRepo interface {
	// Save upserts the document under name. A nil locked clears the
	// stored snapshot.
	Save(ctx context.Context, name string, plan *domain.Plan, locked *domain.Plan) error
	Load(ctx context.Context, name string) (*domain.Plan, *domain.Plan, error)
	List(ctx context.Context) ([]PlanInfo, error)
	Delete(ctx context.Context, name string) error
}
