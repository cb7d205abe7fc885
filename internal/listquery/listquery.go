// Package listquery builds the paginated/filterable query every listing
// screen shares: page index and size, status, date range and free-text
// search. Empty filters are omitted from the upstream query rather than
// sent as sentinel values.
package listquery

import (
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	dateLayout = "2006-01-02"
)

type Params struct {
	Page   int
	Size   int
	Status string
	From   *time.Time
	To     *time.Time
	Search string
}

// Parse reads listing parameters from a query string. Unparseable numbers
// and dates are ignored rather than rejected, matching how the screens
// treat bad input: they just fall back to defaults.
func Parse(q url.Values) Params {
	p := Params{Page: 0, Size: DefaultPageSize}

	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			p.Page = n
		}
	}
	if v := q.Get("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Size = min(n, MaxPageSize)
		}
	}
	p.Status = q.Get("status")
	p.Search = q.Get("search")

	if v := q.Get("dateFrom"); v != "" {
		if t, err := time.Parse(dateLayout, v); err == nil {
			p.From = &t
		}
	}
	if v := q.Get("dateTo"); v != "" {
		if t, err := time.Parse(dateLayout, v); err == nil {
			p.To = &t
		}
	}
	p.normalizeRange()
	return p
}

// SetFrom moves the start of the date range. A start past the current end
// clears the end, keeping the range consistent.
func (p *Params) SetFrom(t time.Time) {
	p.From = &t
	if p.To != nil && p.To.Before(t) {
		p.To = nil
	}
}

// SetTo moves the end of the date range. An end before the current start
// clears the start.
func (p *Params) SetTo(t time.Time) {
	p.To = &t
	if p.From != nil && p.From.After(t) {
		p.From = nil
	}
}

// normalizeRange applies the same edge policy to ranges arriving whole:
// when both bounds are set and inverted, the end (the later-changed field
// cannot be known here) is dropped.
func (p *Params) normalizeRange() {
	if p.From != nil && p.To != nil && p.To.Before(*p.From) {
		p.To = nil
	}
}

// Values renders the upstream query, omitting empty filters.
func (p Params) Values() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	size := p.Size
	if size <= 0 {
		size = DefaultPageSize
	}
	q.Set("size", strconv.Itoa(size))

	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.From != nil {
		q.Set("dateFrom", p.From.Format(dateLayout))
	}
	if p.To != nil {
		q.Set("dateTo", p.To.Format(dateLayout))
	}
	return q
}
