package dto

// Respuesta is the envelope every 2xx endpoint returns:
// { message, data, pagination? }.
type Respuesta struct {
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes the slice of a paginated list.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// NewPagination computes totalPages = ceil(totalItems/limit). A page past
// the end is legal and simply yields an empty data array.
func NewPagination(page, limit int, totalItems int64) *Pagination {
	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))
	return &Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
	}
}

// OK wraps a plain (non-paginated) payload.
func OK(message string, data interface{}) Respuesta {
	return Respuesta{Message: message, Data: data}
}

// Lista wraps a paginated payload.
func Lista(message string, data interface{}, p *Pagination) Respuesta {
	return Respuesta{Message: message, Data: data, Pagination: p}
}

// PageFilter is embedded in every list filter bound from the query string.
type PageFilter struct {
	Page  int `form:"page,default=1"   validate:"min=1"`
	Limit int `form:"limit,default=10" validate:"min=1,max=200"`
}

// Offset returns the 0-based row offset for the current page.
func (f PageFilter) Offset() int { return (f.Page - 1) * f.Limit }
