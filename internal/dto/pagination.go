package dto

// MaxPageSize caps the page size a client may request. The clamp lives here,
// at the parameter level, not in the repository.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// PageParams are the normalized pagination inputs parsed from a request.
type PageParams struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// Normalize defaults and clamps the parameters: pages are 1-indexed and the
// size never exceeds MaxPageSize.
func (p *PageParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// PaginatedResponse is the envelope for one page of a list result.
type PaginatedResponse[T any] struct {
	Items       []T   `json:"items"`
	TotalCount  int64 `json:"total_count"`
	PageNumber  int   `json:"page_number"`
	PageSize    int   `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// NewPaginatedResponse computes totalPages = ceil(totalCount/pageSize) along
// with the boundary flags.
func NewPaginatedResponse[T any](items []T, totalCount int64, pageNumber, pageSize int) PaginatedResponse[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	}
	return PaginatedResponse[T]{
		Items:       items,
		TotalCount:  totalCount,
		PageNumber:  pageNumber,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasNext:     pageNumber < totalPages,
		HasPrevious: pageNumber > 1,
	}
}
