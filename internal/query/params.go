// Package query holds the pure list filters and chart aggregations behind the
// dashboard pages.
package query

import (
	"net/url"
	"strings"
	"time"
)

// URL parameter names shared by list pages.
const (
	ParamStatus   = "status"
	ParamSearch   = "search"
	ParamDateFrom = "dateFrom"
	ParamDateTo   = "dateTo"
)

// StatusAll disables the status filter.
const StatusAll = "all"

// DateLayout is the calendar-day key format. Keys compare correctly as
// strings.
const DateLayout = "2006-01-02"

// DateRange bounds a calendar-day filter. Empty ends are open.
type DateRange struct {
	From string `json:"date_from,omitempty"`
	To   string `json:"date_to,omitempty"`
}

// IsZero reports whether neither end is set.
func (r DateRange) IsZero() bool {
	return r.From == "" && r.To == ""
}

// Contains reports whether the day key falls inside the range, ends included.
func (r DateRange) Contains(day string) bool {
	if r.From != "" && day < r.From {
		return false
	}
	if r.To != "" && day > r.To {
		return false
	}
	return true
}

// ListParams are the filters a list page reads from its URL.
type ListParams struct {
	Status string    `json:"status"`
	Search string    `json:"search"`
	Dates  DateRange `json:"dates"`
}

// ParseListParams reads list filters from v. Malformed dates are ignored.
func ParseListParams(v url.Values) ListParams {
	status := strings.TrimSpace(v.Get(ParamStatus))
	if status == "" {
		status = StatusAll
	}
	from, _ := ParseDate(v.Get(ParamDateFrom))
	to, _ := ParseDate(v.Get(ParamDateTo))
	return ListParams{
		Status: status,
		Search: strings.TrimSpace(v.Get(ParamSearch)),
		Dates:  DateRange{From: from, To: to},
	}
}

// Values encodes p back into URL parameters, omitting defaults.
func (p ListParams) Values() url.Values {
	v := url.Values{}
	if p.Status != "" && p.Status != StatusAll {
		v.Set(ParamStatus, p.Status)
	}
	if p.Search != "" {
		v.Set(ParamSearch, p.Search)
	}
	if p.Dates.From != "" {
		v.Set(ParamDateFrom, p.Dates.From)
	}
	if p.Dates.To != "" {
		v.Set(ParamDateTo, p.Dates.To)
	}
	return v
}

// ParseDate validates s as a YYYY-MM-DD day key.
func ParseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", false
	}
	return t.Format(DateLayout), true
}

// DayKey returns the calendar day of t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}
