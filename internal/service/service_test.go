package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkorchagin/gocatalog/internal/query"
	"github.com/pkorchagin/gocatalog/internal/store"
	"github.com/pkorchagin/gocatalog/pkg/apperr"
)

func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string  { return &v }

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(store.NewSeeded([]store.Product{
		{Name: "Laptop", Description: "A fast laptop", Price: 1200, Category: "Electronics", InStock: true},
		{Name: "Smartphone", Description: "A phone", Price: 800, Category: "Electronics", InStock: true},
		{Name: "Coffee Maker", Description: "Brews coffee", Price: 50, Category: "Kitchen", InStock: false},
		{Name: "Headphones", Description: "Noise cancelling", Price: 150, Category: "Electronics", InStock: false},
		{Name: "Blender", Description: "Crushes ice", Price: 90, Category: "Kitchen", InStock: true},
	}))
}

func Test_Service_List_Filters(t *testing.T) {
	svc := newTestService(t)
	page := query.Pagination{Page: 1, Limit: 10}

	testCases := []struct {
		name          string
		params        ListParams
		expectedNames []string
	}{
		{
			name:          "no filters keeps insertion order",
			params:        ListParams{Page: page},
			expectedNames: []string{"Laptop", "Smartphone", "Coffee Maker", "Headphones", "Blender"},
		},
		{
			name:          "category is case-insensitive",
			params:        ListParams{Category: "electronics", Page: page},
			expectedNames: []string{"Laptop", "Smartphone", "Headphones"},
		},
		{
			name:          "category and stock combined",
			params:        ListParams{Category: "Electronics", InStock: boolPtr(true), Page: page},
			expectedNames: []string{"Laptop", "Smartphone"},
		},
		{
			name:          "price range",
			params:        ListParams{MinPrice: floatPtr(80), MaxPrice: floatPtr(900), Page: page},
			expectedNames: []string{"Smartphone", "Headphones", "Blender"},
		},
		{
			name:          "search narrows before filters",
			params:        ListParams{Search: "laptop", Category: "Electronics", Page: page},
			expectedNames: []string{"Laptop"},
		},
		{
			name:          "sort by price ascending",
			params:        ListParams{Sort: &query.Sort{Field: "price"}, Page: page},
			expectedNames: []string{"Coffee Maker", "Blender", "Headphones", "Smartphone", "Laptop"},
		},
		{
			name:          "sort by price descending",
			params:        ListParams{Sort: &query.Sort{Field: "price", Desc: true}, Page: page},
			expectedNames: []string{"Laptop", "Smartphone", "Headphones", "Blender", "Coffee Maker"},
		},
		{
			name:          "unknown sort field leaves order unchanged",
			params:        ListParams{Sort: &query.Sort{Field: "banana"}, Page: page},
			expectedNames: []string{"Laptop", "Smartphone", "Coffee Maker", "Headphones", "Blender"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items, meta := svc.List(tc.params)

			names := make([]string, len(items))
			for i, p := range items {
				names[i] = p.Name
			}
			assert.Equal(t, tc.expectedNames, names)
			assert.Equal(t, len(tc.expectedNames), meta.TotalItems)
		})
	}
}

func Test_Service_List_TotalReflectsPrePaginationSize(t *testing.T) {
	svc := newTestService(t)

	items, meta := svc.List(ListParams{
		Category: "Electronics",
		Page:     query.Pagination{Page: 1, Limit: 2},
	})

	assert.Len(t, items, 2)
	assert.Equal(t, 3, meta.TotalItems)
	assert.Equal(t, 2, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
}

func Test_FilterOrder_Commutative(t *testing.T) {
	svc := newTestService(t)
	items := svc.store.List()

	byCategoryFirst := filterByPriceRange(filterByCategory(items, "Electronics"), floatPtr(100), nil)
	byPriceFirst := filterByCategory(filterByPriceRange(items, floatPtr(100), nil), "Electronics")

	assert.Equal(t, byCategoryFirst, byPriceFirst)
}

func Test_Filters_DoNotMutateInput(t *testing.T) {
	svc := newTestService(t)
	items := svc.store.List()
	original := make([]store.Product, len(items))
	copy(original, items)

	_ = filterByStock(items, boolPtr(true))
	_ = sortProducts(items, query.Sort{Field: "price", Desc: true})
	_ = searchProducts(items, "laptop")

	assert.Equal(t, original, items)
}

func Test_Paginate_WindowProperty(t *testing.T) {
	items := newTestService(t).store.List()

	testCases := []struct {
		skip  int
		limit int
	}{
		{0, 2}, {2, 2}, {4, 2}, {5, 2}, {10, 2}, {0, 10}, {3, 0},
	}

	for _, tc := range testCases {
		got := paginate(items, tc.skip, tc.limit)

		want := len(items) - tc.skip
		if want < 0 {
			want = 0
		}
		if tc.limit > 0 && tc.limit < want {
			want = tc.limit
		}
		assert.Len(t, got, want, "skip=%d limit=%d", tc.skip, tc.limit)
	}
}

func Test_Service_Search(t *testing.T) {
	svc := newTestService(t)
	page := query.Pagination{Page: 1, Limit: 10}

	t.Run("matches name and description", func(t *testing.T) {
		items, meta, err := svc.Search("PHONE", page)
		require.NoError(t, err)
		// Smartphone by name, Headphones by name
		assert.Equal(t, 2, meta.TotalItems)
		assert.Len(t, items, 2)
	})

	t.Run("matches description only", func(t *testing.T) {
		items, _, err := svc.Search("crushes", page)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Blender", items[0].Name)
	})

	t.Run("blank query is rejected", func(t *testing.T) {
		_, _, err := svc.Search("   ", page)
		require.Error(t, err)
		assert.Equal(t, apperr.BadRequest, apperr.KindOf(err))
	})
}

func Test_Service_Stats(t *testing.T) {
	svc := newTestService(t)

	stats := svc.Stats("")

	assert.Equal(t, 5, stats.Overall.TotalProducts)
	assert.Equal(t, 2290.0, stats.Overall.TotalValue)
	assert.Equal(t, 458.0, stats.Overall.AveragePrice)
	assert.Equal(t, 3, stats.Overall.InStockCount)
	assert.Equal(t, 2, stats.Overall.OutOfStockCount)
	assert.Equal(t, stats.Overall.TotalProducts, stats.Overall.InStockCount+stats.Overall.OutOfStockCount)
	assert.Equal(t, 50.0, stats.Overall.MinPrice)
	assert.Equal(t, 1200.0, stats.Overall.MaxPrice)

	require.Contains(t, stats.ByCategory, "Electronics")
	require.Contains(t, stats.ByCategory, "Kitchen")
	assert.Equal(t, 3, stats.ByCategory["Electronics"].TotalProducts)
	assert.Equal(t, 2150.0, stats.ByCategory["Electronics"].TotalValue)
	assert.Equal(t, 2, stats.ByCategory["Kitchen"].TotalProducts)
	assert.Equal(t, 140.0, stats.ByCategory["Kitchen"].TotalValue)
}

func Test_Service_Stats_CategoryFilter(t *testing.T) {
	svc := newTestService(t)

	stats := svc.Stats("kitchen")

	assert.Equal(t, 2, stats.Overall.TotalProducts)
	assert.Equal(t, 140.0, stats.Overall.TotalValue)
	assert.NotContains(t, stats.ByCategory, "Electronics")
}

func Test_Service_Stats_Empty(t *testing.T) {
	svc := NewService(store.NewInMemory())

	stats := svc.Stats("")

	assert.Equal(t, 0, stats.Overall.TotalProducts)
	assert.Equal(t, 0.0, stats.Overall.AveragePrice)
	assert.Equal(t, 0.0, stats.Overall.TotalValue)
	assert.Empty(t, stats.ByCategory)
}

func Test_Service_CRUD(t *testing.T) {
	svc := newTestService(t)

	t.Run("get unknown ID yields NotFound naming the ID", func(t *testing.T) {
		_, err := svc.Get(999)
		require.Error(t, err)
		assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
		assert.Contains(t, err.Error(), "999")
	})

	t.Run("create assigns next ID and echoes fields", func(t *testing.T) {
		created, err := svc.Create(ProductCreate{
			Name:        "Widget",
			Description: "d",
			Price:       floatPtr(9.99),
			Category:    "X",
			InStock:     boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, 6, created.ID)
		assert.Equal(t, "Widget", created.Name)
		assert.Equal(t, 9.99, created.Price)
	})

	t.Run("duplicate name yields Conflict", func(t *testing.T) {
		_, err := svc.Create(ProductCreate{
			Name:        " laptop ",
			Description: "dup",
			Price:       floatPtr(1),
			Category:    "X",
			InStock:     boolPtr(false),
		})
		require.Error(t, err)
		assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	})

	t.Run("partial update touches only supplied fields", func(t *testing.T) {
		updated, err := svc.Update(1, ProductUpdate{Price: floatPtr(999)})
		require.NoError(t, err)
		assert.Equal(t, 999.0, updated.Price)
		assert.Equal(t, "Laptop", updated.Name)
	})

	t.Run("update rename onto live product yields Conflict", func(t *testing.T) {
		_, err := svc.Update(1, ProductUpdate{Name: stringPtr("Blender")})
		require.Error(t, err)
		assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	})

	t.Run("delete twice yields NotFound second time", func(t *testing.T) {
		removed, err := svc.Delete(2)
		require.NoError(t, err)
		assert.Equal(t, "Smartphone", removed.Name)

		_, err = svc.Delete(2)
		require.Error(t, err)
		assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	})
}
