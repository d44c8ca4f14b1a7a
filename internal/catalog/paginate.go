package catalog

import "calzado/internal/models"

// Pagination selects one page of an ordered result. Pages are one-indexed at
// the boundary; Page values below 1 are clamped to the first page.
type Pagination struct {
	Page     int
	PageSize int
}

// PageMeta is the pagination envelope shared by every listing endpoint, so
// product listings and search results report identical metadata shapes.
type PageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices one page out of ordered and computes the page metadata.
// A page past the end yields an empty slice, not an error; a non-positive
// page size violates the caller contract and is rejected up front.
func Paginate(ordered []models.Product, pg Pagination) ([]models.Product, PageMeta, error) {
	if pg.PageSize <= 0 {
		return nil, PageMeta{}, ErrInvalidPageSize
	}
	page := pg.Page
	if page < 1 {
		page = 1
	}

	total := len(ordered)
	totalPages := (total + pg.PageSize - 1) / pg.PageSize

	meta := PageMeta{
		Page:       page,
		PageSize:   pg.PageSize,
		Total:      total,
		TotalPages: totalPages,
	}

	start := (page - 1) * pg.PageSize
	if start >= total {
		return []models.Product{}, meta, nil
	}
	end := start + pg.PageSize
	if end > total {
		end = total
	}
	return ordered[start:end], meta, nil
}
