package queries

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

const (
	minSearchQueryLength = 2
	searchResultLimit    = 20
)

type MenuQueries interface {
	// FullMenu returns categories in display order, each with its available items.
	FullMenu(ctx context.Context) ([]*MenuSectionView, error)
	ListCategories(ctx context.Context) ([]*CategoryView, error)
	CategoryBySlug(ctx context.Context, slug string) (*MenuSectionView, error)
	GetItem(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
	ListItems(ctx context.Context, filter MenuItemFilter, limit, offset int) ([]*MenuItemView, error)
	FeaturedItems(ctx context.Context) ([]*MenuItemView, error)
	Search(ctx context.Context, query string) ([]*MenuItemView, error)
}

type MenuViewRepo interface {
	FindCategories(ctx context.Context) ([]*CategoryView, error)
	FindCategoryBySlug(ctx context.Context, slug string) (*CategoryView, error)
	FindItemByID(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
	FindItems(ctx context.Context, filter MenuItemFilter, limit, offset int32) ([]*MenuItemView, error)
	SearchItems(ctx context.Context, query string, limit int32) ([]*MenuItemView, error)
}

type menuQueriesImpl struct {
	repo MenuViewRepo
}

func NewMenuQueries(repo MenuViewRepo) MenuQueries {
	return &menuQueriesImpl{repo: repo}
}

func (q *menuQueriesImpl) FullMenu(ctx context.Context) ([]*MenuSectionView, error) {
	categories, err := q.repo.FindCategories(ctx)
	if err != nil {
		return nil, err
	}

	items, err := q.repo.FindItems(ctx, MenuItemFilter{OnlyAvailable: true}, 0, 0)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uuid.UUID][]*MenuItemView, len(categories))
	for _, item := range items {
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}

	sections := make([]*MenuSectionView, len(categories))
	for i, cat := range categories {
		items := byCategory[cat.ID]
		if items == nil {
			items = []*MenuItemView{}
		}
		sections[i] = &MenuSectionView{Category: *cat, Items: items}
	}

	return sections, nil
}

func (q *menuQueriesImpl) ListCategories(ctx context.Context) ([]*CategoryView, error) {
	return q.repo.FindCategories(ctx)
}

func (q *menuQueriesImpl) CategoryBySlug(ctx context.Context, slug string) (*MenuSectionView, error) {
	cat, err := q.repo.FindCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	items, err := q.repo.FindItems(ctx, MenuItemFilter{
		CategoryID:    &cat.ID,
		OnlyAvailable: true,
	}, 0, 0)
	if err != nil {
		return nil, err
	}

	return &MenuSectionView{Category: *cat, Items: items}, nil
}

func (q *menuQueriesImpl) GetItem(ctx context.Context, id uuid.UUID) (*MenuItemView, error) {
	return q.repo.FindItemByID(ctx, id)
}

func (q *menuQueriesImpl) ListItems(ctx context.Context, filter MenuItemFilter, limit, offset int) ([]*MenuItemView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return q.repo.FindItems(ctx, filter, int32(limit), int32(offset)) //nolint:gosec
}

func (q *menuQueriesImpl) FeaturedItems(ctx context.Context) ([]*MenuItemView, error) {
	return q.repo.FindItems(ctx, MenuItemFilter{OnlyAvailable: true, OnlyFeatured: true}, 0, 0)
}

// Search returns nothing for queries under two characters; the handler
// rejects those before calling here, so this guard only covers direct callers.
func (q *menuQueriesImpl) Search(ctx context.Context, query string) ([]*MenuItemView, error) {
	query = strings.TrimSpace(query)
	if len(query) < minSearchQueryLength {
		return []*MenuItemView{}, nil
	}
	return q.repo.SearchItems(ctx, query, searchResultLimit)
}
