// Package pagination slices ordered result sets into fixed-size pages.
package pagination

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// PerPage is the number of items on every listing page.
const PerPage = 10

// Page is one slice of an ordered result set plus the metadata templates need.
type Page[T any] struct {
	Items    []T
	Number   int
	NumPages int
	Total    int64
	PerPage  int
}

// HasPrevious reports whether a page precedes this one.
func (p Page[T]) HasPrevious() bool { return p.Number > 1 }

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool { return p.Number < p.NumPages }

// HasOtherPages reports whether the result set spans more than one page.
func (p Page[T]) HasOtherPages() bool { return p.NumPages > 1 }

// PreviousPageNumber is the number of the page before this one.
func (p Page[T]) PreviousPageNumber() int { return p.Number - 1 }

// NextPageNumber is the number of the page after this one.
func (p Page[T]) NextPageNumber() int { return p.Number + 1 }

// PageRange lists every page number, 1-based.
func (p Page[T]) PageRange() []int {
	out := make([]int, p.NumPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// ParseNumber turns a raw ?page= value into a page number.
// Absent, non-numeric and values below 1 all mean the first page.
// Numbers too large for an int are past every last page and become math.MaxInt.
func ParseNumber(raw string) int {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if errors.Is(err, strconv.ErrRange) || (err == nil && n > math.MaxInt) {
		return math.MaxInt
	}
	if err != nil || n < 1 {
		return 1
	}
	return int(n)
}

// numPages never returns less than 1 so an empty result still has a page.
func numPages(total int64, perPage int) int {
	if total <= 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func clamp(raw string, total int64, perPage int) (number, pages int) {
	pages = numPages(total, perPage)
	number = ParseNumber(raw)
	if number > pages {
		number = pages
	}
	return number, pages
}

// Query counts query, clamps the requested page and fetches that page with OFFSET/LIMIT.
// query must already carry its ordering.
func Query[T any](query *gorm.DB, raw string, perPage int) (Page[T], error) {
	if perPage <= 0 {
		perPage = PerPage
	}
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[T]{}, fmt.Errorf("count page items: %w", err)
	}
	number, pages := clamp(raw, total, perPage)

	items := make([]T, 0, perPage)
	if total > 0 {
		if err := query.Session(&gorm.Session{}).Offset((number - 1) * perPage).Limit(perPage).Find(&items).Error; err != nil {
			return Page[T]{}, fmt.Errorf("fetch page %d: %w", number, err)
		}
	}
	return Page[T]{Items: items, Number: number, NumPages: pages, Total: total, PerPage: perPage}, nil
}
