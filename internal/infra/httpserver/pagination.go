package httpserver

import (
	"net/http"
	"strconv"
)

const (
	_defaultPage  = 1
	_defaultLimit = 10
	_maxLimit     = 100
)

type PaginationParams struct {
	Page  int
	Limit int
}

func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type PaginatedResponse struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func DefaultPaginationParams() PaginationParams {
	return PaginationParams{Page: _defaultPage, Limit: _defaultLimit}
}

// ExtractPaginationParams reads page and limit from the query string. Invalid
// or out of range values fall back to the defaults.
func ExtractPaginationParams(r *http.Request) PaginationParams {
	params := DefaultPaginationParams()

	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		params.Page = page
	}

	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && limit <= _maxLimit {
		params.Limit = limit
	}

	return params
}

func ReplyWithPaginatedData(w http.ResponseWriter, statusCode int, data any, total int, params PaginationParams) {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	ReplyJSONResponse(w, statusCode, PaginatedResponse{
		Data: data,
		Pagination: Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}
