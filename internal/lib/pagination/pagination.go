// Package pagination реализует единые правила постраничного вывода списков.
//
// Каждый списочный эндпоинт принимает query-параметры page и per_page.
// per_page равный нулю означает «вернуть все записи одной страницей».
package pagination

import (
	"net/url"
	"strconv"
)

// Params описывает параметры страницы, запрошенные клиентом.
type Params struct {
	Page    int
	PerPage int
}

// FromQuery разбирает page и per_page из query-параметров запроса.
// Невалидные значения заменяются на значения по умолчанию:
// page = 1, per_page = defaultPerPage.
func FromQuery(values url.Values, defaultPerPage int) Params {
	page, err := strconv.Atoi(values.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage := defaultPerPage
	if raw := values.Get("per_page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err == nil && v >= 0 {
			perPage = v
		}
	}

	return Params{Page: page, PerPage: perPage}
}

// Offset возвращает смещение для SQL-запроса: (page-1) * per_page.
func (p Params) Offset() int {
	if p.PerPage == 0 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// Limit возвращает лимит для SQL-запроса. При per_page = 0 лимитом
// становится общее число записей.
func (p Params) Limit(total int) int {
	if p.PerPage == 0 {
		return total
	}
	return p.PerPage
}

// NumPages возвращает количество страниц: ceil(total / per_page),
// при per_page = 0 всегда одна страница.
func (p Params) NumPages(total int) int {
	if p.PerPage == 0 {
		return 1
	}
	pages := total / p.PerPage
	if total%p.PerPage != 0 {
		pages++
	}
	return pages
}
