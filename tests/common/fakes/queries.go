//go:build unit

package fakes

import (
	"context"
	"time"

	"restaurant-api/internal/infra"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReservationQueries serves canned views for the read side of commands.
type ReservationQueries struct {
	View    *queries.ReservationView
	Views   []*queries.ReservationView
	Avail   *queries.AvailabilityView
	GetErr  error
	ListErr error
}

func (q *ReservationQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	if q.GetErr != nil {
		return nil, q.GetErr
	}
	if q.View == nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	view := *q.View
	view.ID = id
	return &view, nil
}

func (q *ReservationQueries) List(_ context.Context, _ queries.ReservationFilter, _, _ int) ([]*queries.ReservationView, error) {
	if q.ListErr != nil {
		return nil, q.ListErr
	}
	return q.Views, nil
}

func (q *ReservationQueries) CheckAvailability(_ context.Context, _, _ string) (*queries.AvailabilityView, error) {
	return q.Avail, nil
}

// MenuQueries serves canned menu views.
type MenuQueries struct {
	Sections     []*queries.MenuSectionView
	Categories   []*queries.CategoryView
	CategoriesFn func() []*queries.CategoryView
	Item         *queries.MenuItemView
	Items        []*queries.MenuItemView
	ItemErr      error
	ListErr      error
}

func (q *MenuQueries) FullMenu(_ context.Context) ([]*queries.MenuSectionView, error) {
	return q.Sections, q.ListErr
}

func (q *MenuQueries) ListCategories(_ context.Context) ([]*queries.CategoryView, error) {
	if q.CategoriesFn != nil {
		return q.CategoriesFn(), q.ListErr
	}
	return q.Categories, q.ListErr
}

func (q *MenuQueries) CategoryBySlug(_ context.Context, slug string) (*queries.MenuSectionView, error) {
	for _, s := range q.Sections {
		if s.Category.Slug == slug {
			return s, nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "category not found")
}

func (q *MenuQueries) GetItem(_ context.Context, id uuid.UUID) (*queries.MenuItemView, error) {
	if q.ItemErr != nil {
		return nil, q.ItemErr
	}
	if q.Item == nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "menu item not found")
	}
	view := *q.Item
	view.ID = id
	return &view, nil
}

func (q *MenuQueries) ListItems(_ context.Context, _ queries.MenuItemFilter, _, _ int) ([]*queries.MenuItemView, error) {
	return q.Items, q.ListErr
}

func (q *MenuQueries) FeaturedItems(_ context.Context) ([]*queries.MenuItemView, error) {
	return q.Items, q.ListErr
}

func (q *MenuQueries) Search(_ context.Context, _ string) ([]*queries.MenuItemView, error) {
	return q.Items, q.ListErr
}

// ReviewQueries serves canned review views.
type ReviewQueries struct {
	View    *queries.ReviewView
	Views   []*queries.ReviewView
	Rating  *queries.RatingSummaryView
	GetErr  error
	ListErr error
}

func (q *ReviewQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	if q.GetErr != nil {
		return nil, q.GetErr
	}
	if q.View == nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "review not found")
	}
	view := *q.View
	view.ID = id
	return &view, nil
}

func (q *ReviewQueries) ListApproved(_ context.Context, _, _ int) ([]*queries.ReviewView, error) {
	return q.Views, q.ListErr
}

func (q *ReviewQueries) Featured(_ context.Context) ([]*queries.ReviewView, error) {
	return q.Views, q.ListErr
}

func (q *ReviewQueries) List(_ context.Context, _ queries.ReviewFilter, _, _ int) ([]*queries.ReviewView, error) {
	return q.Views, q.ListErr
}

func (q *ReviewQueries) Summary(_ context.Context) (*queries.RatingSummaryView, error) {
	return q.Rating, q.ListErr
}

// ReservationViewRepo backs the reservation query service in tests.
type ReservationViewRepo struct {
	View      *queries.ReservationView
	Views     []*queries.ReservationView
	Occupancy int64
	FindErr   error
	CountErr  error
}

func (r *ReservationViewRepo) FindByID(_ context.Context, _ uuid.UUID) (*queries.ReservationView, error) {
	if r.FindErr != nil {
		return nil, r.FindErr
	}
	if r.View == nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return r.View, nil
}

func (r *ReservationViewRepo) Find(_ context.Context, _ queries.ReservationFilter, _, _ int32) ([]*queries.ReservationView, error) {
	if r.FindErr != nil {
		return nil, r.FindErr
	}
	return r.Views, nil
}

func (r *ReservationViewRepo) CountSlotOccupancy(_ context.Context, _ time.Time, _ int) (int64, error) {
	if r.CountErr != nil {
		return 0, r.CountErr
	}
	return r.Occupancy, nil
}

// EventQueries serves canned event views.
type EventQueries struct {
	View    *queries.EventView
	Views   []*queries.EventView
	GetErr  error
	ListErr error
}

func (q *EventQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.EventView, error) {
	if q.GetErr != nil {
		return nil, q.GetErr
	}
	if q.View == nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "event not found")
	}
	view := *q.View
	view.ID = id
	return &view, nil
}

func (q *EventQueries) ListUpcoming(_ context.Context) ([]*queries.EventView, error) {
	return q.Views, q.ListErr
}

func (q *EventQueries) ListAll(_ context.Context, _, _ int) ([]*queries.EventView, error) {
	return q.Views, q.ListErr
}

// GalleryQueries serves canned gallery views.
type GalleryQueries struct {
	View    *queries.GalleryImageView
	Views   []*queries.GalleryImageView
	GetErr  error
	ListErr error
}

func (q *GalleryQueries) List(_ context.Context) ([]*queries.GalleryImageView, error) {
	return q.Views, q.ListErr
}

func (q *GalleryQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.GalleryImageView, error) {
	if q.GetErr != nil {
		return nil, q.GetErr
	}
	if q.View == nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "gallery image not found")
	}
	view := *q.View
	view.ID = id
	return &view, nil
}

// MessageQueries serves canned contact message views.
type MessageQueries struct {
	View    *queries.MessageView
	Views   []*queries.MessageView
	GetErr  error
	ListErr error
}

func (q *MessageQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.MessageView, error) {
	if q.GetErr != nil {
		return nil, q.GetErr
	}
	if q.View == nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "message not found")
	}
	view := *q.View
	view.ID = id
	return &view, nil
}

func (q *MessageQueries) List(_ context.Context, _ bool, _, _ int) ([]*queries.MessageView, error) {
	return q.Views, q.ListErr
}

// ReviewViewRepo backs the review query service in tests, recording the
// paging arguments each Find call received.
type ReviewViewRepo struct {
	View       *queries.ReviewView
	Views      []*queries.ReviewView
	Summary    *queries.RatingSummaryView
	FindLimits []int32
	FindErr    error
}

func (r *ReviewViewRepo) FindByID(_ context.Context, _ uuid.UUID) (*queries.ReviewView, error) {
	if r.FindErr != nil {
		return nil, r.FindErr
	}
	if r.View == nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "review not found")
	}
	return r.View, nil
}

func (r *ReviewViewRepo) Find(_ context.Context, _ queries.ReviewFilter, limit, _ int32) ([]*queries.ReviewView, error) {
	r.FindLimits = append(r.FindLimits, limit)
	if r.FindErr != nil {
		return nil, r.FindErr
	}
	return r.Views, nil
}

func (r *ReviewViewRepo) Summarize(_ context.Context) (*queries.RatingSummaryView, error) {
	return r.Summary, r.FindErr
}
