// Package query parses and coerces the string-typed listing parameters:
// pagination, sort directives and filter values. Unparseable optional values
// are ignored rather than rejected, so a bad filter never fails a request.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination is the page window requested by the client.
type Pagination struct {
	Page  int
	Limit int
	Skip  int
}

// ParsePagination reads page and limit from the query string. Page defaults
// to 1 and is floored to 1; limit defaults to 10 and is clamped to maxLimit.
func ParsePagination(values url.Values, maxLimit int) Pagination {
	page := DefaultPage
	if v, ok := Int(values, "page"); ok {
		page = v
	}
	if page < 1 {
		page = 1
	}

	limit := DefaultLimit
	if v, ok := Int(values, "limit"); ok {
		limit = v
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return Pagination{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}
}

// Sort is a parsed sort directive.
type Sort struct {
	Field string
	Desc  bool
}

// ParseSort reads the sort parameter. A leading '-' selects descending order
// on the remaining field name. Returns ok=false when the parameter is absent,
// in which case the caller preserves the current order. Field names are not
// validated here; unknown fields are ignored downstream.
func ParseSort(values url.Values) (Sort, bool) {
	raw := strings.TrimSpace(values.Get("sort"))
	if raw == "" {
		return Sort{}, false
	}
	if strings.HasPrefix(raw, "-") {
		return Sort{Field: raw[1:], Desc: true}, true
	}
	return Sort{Field: raw}, true
}

// PageMeta is the pagination metadata attached to every listing response.
type PageMeta struct {
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	CurrentPage int  `json:"currentPage"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
	NextPage    *int `json:"nextPage"`
	PrevPage    *int `json:"prevPage"`
}

// NewPageMeta computes the pagination metadata for a result of total items
// viewed through the given page window.
func NewPageMeta(total, page, limit int) PageMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	meta := PageMeta{
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Limit:       limit,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
	if meta.HasNextPage {
		next := page + 1
		meta.NextPage = &next
	}
	if meta.HasPrevPage {
		prev := page - 1
		meta.PrevPage = &prev
	}
	return meta
}

// Int reads an integer parameter. Returns ok=false when absent or unparseable.
func Int(values url.Values, key string) (int, bool) {
	raw := values.Get(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Float reads a float parameter. Returns ok=false when absent or unparseable.
func Float(values url.Values, key string) (float64, bool) {
	raw := values.Get(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Bool reads a "true"/"false" parameter. Returns ok=false when absent or
// anything other than the two literals.
func Bool(values url.Values, key string) (bool, bool) {
	switch values.Get(key) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
