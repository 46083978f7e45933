package domain

import (
	"fmt"
	"strings"
)

type PaginationParams struct {
	Page     int `json:"page" query:"page"`
	PageSize int `json:"page_size" query:"limit"`
}

type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func NewPaginatedResponse[T any](data []T, page, pageSize int, totalItems int64) PaginatedResponse[T] {
	totalPages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))

	return PaginatedResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    int64(page)*int64(pageSize) < totalItems,
		HasPrev:    page > 1,
	}
}

func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:     1,
		PageSize: 10,
	}
}

func (p *PaginationParams) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 10
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type SortParams struct {
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortType"`
}

// Validate checks SortBy against the caller's allow-list and normalizes the
// order to ASC/DESC. An unknown sort field is rejected so ordering is never
// attacker-chosen or silently unpredictable.
func (s *SortParams) Validate(allowed []string) error {
	if s.SortBy == "" {
		s.SortBy = "created_at"
	}

	ok := false
	for _, field := range allowed {
		if s.SortBy == field {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("%w: invalid sort field %q", ErrValidation, s.SortBy)
	}

	switch strings.ToLower(s.SortOrder) {
	case "", "desc":
		s.SortOrder = "DESC"
	case "asc":
		s.SortOrder = "ASC"
	default:
		return fmt.Errorf("%w: invalid sort order %q", ErrValidation, s.SortOrder)
	}

	return nil
}
