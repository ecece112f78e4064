package view

import (
	"go.uber.org/zap"

	"github.com/roach88/schedview/internal/model"
	"github.com/roach88/schedview/internal/store"
)

// CategoryView answers category lookups and per-category event counts.
type CategoryView struct {
	b boundary
}

// NewCategoryView creates a category façade over st.
// A nil logger discards fault reports.
func NewCategoryView(st *store.Store, logger *zap.Logger) *CategoryView {
	return &CategoryView{b: newBoundary(st, logger, "category_view")}
}

// Category returns the category with the given id.
func (v *CategoryView) Category(id model.ID) (model.Category, bool) {
	c := call{op: "CategoryView.Category", entity: model.KindCategory, id: id}
	return run(&v.b, c, func(st *store.Store) (model.Category, error) {
		return lookupCategory(st, id)
	})
}

// AllCategories returns every category in store order.
func (v *CategoryView) AllCategories() []model.Category {
	c := call{op: "CategoryView.AllCategories"}
	return many(&v.b, c, func(st *store.Store) ([]model.Category, error) {
		return st.Categories().Values(), nil
	})
}

// CategoriesWithEventCounts returns every category, in store order, with
// the number of events that reference it. Unreferenced categories count 0.
func (v *CategoryView) CategoriesWithEventCounts() []model.CategoryCount {
	c := call{op: "CategoryView.CategoriesWithEventCounts"}
	return many(&v.b, c, func(st *store.Store) ([]model.CategoryCount, error) {
		counts := make(map[model.ID]int, st.Categories().Len())
		for _, ev := range st.Events().All() {
			for _, id := range ev.Categories {
				counts[id]++
			}
		}

		out := make([]model.CategoryCount, 0, st.Categories().Len())
		for id, cat := range st.Categories().All() {
			out = append(out, model.CategoryCount{Category: cat, EventCount: counts[id]})
		}
		return out, nil
	})
}
