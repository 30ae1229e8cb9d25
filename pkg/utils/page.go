package utils

import (
	"math"
	"strconv"

	"VideoTube.com/pkg/constants"
)

// Page is a normalized 1-based page request.
type Page struct {
	Page  int64
	Limit int64
}

func (p Page) Offset() int {
	return int((p.Page - 1) * p.Limit)
}

// TotalPages is the ceiling of total/limit.
func (p Page) TotalPages(total int64) int64 {
	if total <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}

// NewPage never fails: non-numeric or non-positive values fall back to the
// defaults, oversized limits are clamped and pages are capped so the offset
// stays representable.
func NewPage(page, limit string) Page {
	p := Page{Page: constants.DefaultPage, Limit: constants.DefaultLimit}
	if v, err := strconv.ParseInt(page, 10, 64); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.ParseInt(limit, 10, 64); err == nil && v > 0 {
		p.Limit = v
	}
	if p.Limit > constants.MaxLimit {
		p.Limit = constants.MaxLimit
	}
	if maxPage := math.MaxInt64 / p.Limit; p.Page > maxPage {
		p.Page = maxPage
	}
	return p
}
