package services

import "backend/internal/domain"

// Default page sizes per resource, matching what admin clients send when the
// limit parameter is omitted.
const (
	DefaultEventLimit   = 12
	DefaultBookingLimit = 50
	DefaultUserLimit    = 50
)

// PageRequest carries normalized paging parameters.
type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta is the pagination envelope attached to every listing response.
type PageMeta struct {
	Total       int64 `json:"total"`
	Pages       int64 `json:"pages"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
}

func validatePage(p PageRequest) error {
	if p.Page < 1 {
		return domain.ValidationError{Field: "page", Msg: "must be at least 1"}
	}
	if p.Limit < 1 {
		return domain.ValidationError{Field: "limit", Msg: "must be at least 1"}
	}
	return nil
}

func pageMeta(p PageRequest, total int64) PageMeta {
	limit := int64(p.Limit)
	return PageMeta{
		Total:       total,
		Pages:       (total + limit - 1) / limit,
		CurrentPage: p.Page,
		PerPage:     p.Limit,
	}
}
