package listquery

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDefaults(t *testing.T) {
	p := Parse(url.Values{})
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, DefaultPageSize, p.Size)
	assert.Empty(t, p.Status)
	assert.Empty(t, p.Search)
	assert.Nil(t, p.From)
	assert.Nil(t, p.To)
}

func TestParseIgnoresBadInput(t *testing.T) {
	q := url.Values{}
	q.Set("page", "-3")
	q.Set("size", "abc")
	q.Set("dateFrom", "31/12/2024")

	p := Parse(q)
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, DefaultPageSize, p.Size)
	assert.Nil(t, p.From)
}

func TestParseCapsPageSize(t *testing.T) {
	q := url.Values{}
	q.Set("size", "5000")

	assert.Equal(t, MaxPageSize, Parse(q).Size)
}

func TestParseDropsInvertedRange(t *testing.T) {
	q := url.Values{}
	q.Set("dateFrom", "2025-06-10")
	q.Set("dateTo", "2025-06-01")

	p := Parse(q)
	assert.NotNil(t, p.From)
	assert.Nil(t, p.To)
}

func TestSetFromClearsEarlierTo(t *testing.T) {
	p := Params{}
	p.SetTo(date("2025-03-01"))
	p.SetFrom(date("2025-03-15"))

	assert.NotNil(t, p.From)
	assert.Nil(t, p.To)
}

func TestSetToClearsLaterFrom(t *testing.T) {
	p := Params{}
	p.SetFrom(date("2025-03-15"))
	p.SetTo(date("2025-03-01"))

	assert.NotNil(t, p.To)
	assert.Nil(t, p.From)
}

func TestValuesOmitsEmptyFilters(t *testing.T) {
	p := Params{Page: 2, Size: 20}
	q := p.Values()

	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "20", q.Get("size"))
	_, hasStatus := q["status"]
	_, hasSearch := q["search"]
	_, hasFrom := q["dateFrom"]
	_, hasTo := q["dateTo"]
	assert.False(t, hasStatus)
	assert.False(t, hasSearch)
	assert.False(t, hasFrom)
	assert.False(t, hasTo)
}

func TestValuesRendersFilters(t *testing.T) {
	from := date("2025-01-01")
	to := date("2025-01-31")
	p := Params{Page: 0, Size: 10, Status: "DELIVERED", Search: "keyboard", From: &from, To: &to}
	q := p.Values()

	assert.Equal(t, "DELIVERED", q.Get("status"))
	assert.Equal(t, "keyboard", q.Get("search"))
	assert.Equal(t, "2025-01-01", q.Get("dateFrom"))
	assert.Equal(t, "2025-01-31", q.Get("dateTo"))
}
