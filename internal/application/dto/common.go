package dto

import "math"

// Pagination metadatos de página en respuestas. page_count se calcula sobre
// el total de resultados agrupados/filtrados, nunca sobre filas crudas.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	PageCount  int `json:"page_count"`
	TotalCount int `json:"total_count"`
}

// NewPagination calcula los metadatos de página.
func NewPagination(page, limit, total int) Pagination {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		PageCount:  int(math.Ceil(float64(total) / float64(limit))),
		TotalCount: total,
	}
}

// Offset devuelve el desplazamiento de la página para consultas SQL.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
