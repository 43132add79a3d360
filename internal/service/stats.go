package service

// PriceStats is the aggregate breakdown computed overall and per category.
// All values are zero for an empty input; the average is reported as zero
// rather than propagating a division fault.
type PriceStats struct {
	TotalProducts   int     `json:"totalProducts"`
	TotalValue      float64 `json:"totalValue"`
	AveragePrice    float64 `json:"averagePrice"`
	InStockCount    int     `json:"inStockCount"`
	OutOfStockCount int     `json:"outOfStockCount"`
	MinPrice        float64 `json:"minPrice"`
	MaxPrice        float64 `json:"maxPrice"`
}

// Statistics is the full statistics response payload.
type Statistics struct {
	Overall    PriceStats            `json:"overall"`
	ByCategory map[string]PriceStats `json:"byCategory"`
}

func (s *Service) Stats(category string) Statistics {
	items := filterByCategory(s.store.List(), category)

	byCategory := make(map[string]PriceStats)
	groups := make(map[string][]int)
	for i, p := range items {
		groups[p.Category] = append(groups[p.Category], i)
	}
	for cat, idxs := range groups {
		group := make([]float64, 0, len(idxs))
		inStock := 0
		for _, i := range idxs {
			group = append(group, items[i].Price)
			if items[i].InStock {
				inStock++
			}
		}
		byCategory[cat] = priceStats(group, inStock)
	}

	prices := make([]float64, 0, len(items))
	inStock := 0
	for _, p := range items {
		prices = append(prices, p.Price)
		if p.InStock {
			inStock++
		}
	}

	return Statistics{
		Overall:    priceStats(prices, inStock),
		ByCategory: byCategory,
	}
}

func priceStats(prices []float64, inStock int) PriceStats {
	stats := PriceStats{
		TotalProducts: len(prices),
		InStockCount:  inStock,
	}
	if len(prices) == 0 {
		return stats
	}

	stats.OutOfStockCount = len(prices) - inStock
	stats.MinPrice = prices[0]
	stats.MaxPrice = prices[0]
	for _, price := range prices {
		stats.TotalValue += price
		if price < stats.MinPrice {
			stats.MinPrice = price
		}
		if price > stats.MaxPrice {
			stats.MaxPrice = price
		}
	}
	stats.AveragePrice = stats.TotalValue / float64(len(prices))
	return stats
}
