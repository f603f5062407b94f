package request

import (
	"net/url"

	"clinic-api/pkg/utils"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// sortableColumns is the allow-list of columns the API will order by.
// Anything outside it silently falls back to created_at so clients can
// never sort on arbitrary or sensitive columns.
var sortableColumns = map[string]bool{
	"name":       true,
	"ssn":        true,
	"phone":      true,
	"status":     true,
	"created_at": true,
	"cost":       true,
}

// PatientListQuery carries the normalized list parameters. Build it with
// ParsePatientListQuery; the fields are then safe to interpolate as SQL
// identifiers (SortBy and SortOrder only ever hold allow-listed values).
type PatientListQuery struct {
	Search    string
	Status    string
	SortBy    string
	SortOrder string
	Page      int
	PerPage   int
}

// ParsePatientListQuery normalizes raw query parameters. Unknown or
// malformed values never error; they fall back to defaults.
func ParsePatientListQuery(values url.Values) PatientListQuery {
	q := PatientListQuery{
		Search:    values.Get("search"),
		SortBy:    "created_at",
		SortOrder: "desc",
		Page:      utils.ParseInt(values.Get("page"), DefaultPage),
		PerPage:   utils.ParseInt(values.Get("per_page"), DefaultPerPage),
	}

	if status := values.Get("status"); status == "pending" || status == "complete" {
		q.Status = status
	}

	if sortBy := values.Get("sort_by"); sortableColumns[sortBy] {
		q.SortBy = sortBy
	}

	// "direction" is accepted as an alias for sort_order
	order := values.Get("sort_order")
	if order == "" {
		order = values.Get("direction")
	}
	if order == "asc" {
		q.SortOrder = "asc"
	}

	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}

	return q
}

func (q PatientListQuery) Offset() int {
	return utils.CalculateOffset(q.Page, q.PerPage)
}

func (q PatientListQuery) Limit() int {
	return q.PerPage
}
