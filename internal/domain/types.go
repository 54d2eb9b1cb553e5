package domain

// ID is used across domain entities.
type ID int64

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest is a one-indexed page plus a bounded page size.
// Build it through NewPageRequest so the clamp always applies.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// NewPageRequest clamps page to >= 1 and pageSize into [1, MaxPageSize].
// Out-of-range values are clamped, never rejected.
func NewPageRequest(page, pageSize int) PageRequest {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return PageRequest{Page: page, PageSize: pageSize}
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageMeta carries the pagination envelope returned with every listing.
type PageMeta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// BuildPageMeta derives totals and navigation flags from a clamped request.
func BuildPageMeta(req PageRequest, total int) PageMeta {
	totalPages := 0
	if total > 0 {
		totalPages = (total + req.PageSize - 1) / req.PageSize
	}
	return PageMeta{
		Page:       req.Page,
		PageSize:   req.PageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    req.Page*req.PageSize < total,
		HasPrev:    req.Page > 1,
	}
}

// Page bundles one page of items with its pagination metadata.
type Page[T any] struct {
	Items      []T      `json:"items"`
	Pagination PageMeta `json:"pagination"`
}
