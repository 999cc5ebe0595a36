package query

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Operator selects how a Criterion compares its column to its value.
type Operator int

const (
	// Equals matches the column exactly.
	Equals Operator = iota
	// Contains matches the value as a substring of the column.
	Contains
	// OnDay matches the calendar-date portion of a datetime column.
	OnDay
	// AtOrAfter matches column values greater than or equal to the value.
	AtOrAfter
)

// Criterion is a single predicate. Values are always bound as
// parameters, never written into the SQL text.
type Criterion struct {
	Column   string
	Operator Operator
	Value    any
}

// Clause returns the SQL fragment with its placeholder and the
// argument to bind to it.
func (c Criterion) Clause() (string, any) {
	switch c.Operator {
	case Contains:
		return c.Column + " LIKE ?", fmt.Sprintf("%%%v%%", c.Value)
	case OnDay:
		return "DATE(" + c.Column + ") = ?", c.Value
	case AtOrAfter:
		return c.Column + " >= ?", c.Value
	default:
		return c.Column + " = ?", c.Value
	}
}

// EventFilter holds the optional search parameters. Empty strings mean
// "not supplied" and add no predicate.
type EventFilter struct {
	Category string `form:"category"`
	Location string `form:"location"`
	Date     string `form:"date"`
}

// Criteria translates the filter into an ordered predicate list. The
// first criterion always restricts results to events at or after now;
// the search endpoint only ever returns upcoming events. Supplied
// filters follow in fixed order: category, location, date.
func (f EventFilter) Criteria(now time.Time) []Criterion {
	criteria := []Criterion{
		{Column: "events.date", Operator: AtOrAfter, Value: now},
	}

	if f.Category != "" {
		criteria = append(criteria, Criterion{Column: "categories.name", Operator: Equals, Value: f.Category})
	}
	if f.Location != "" {
		criteria = append(criteria, Criterion{Column: "events.location", Operator: Contains, Value: f.Location})
	}
	if f.Date != "" {
		criteria = append(criteria, Criterion{Column: "events.date", Operator: OnDay, Value: f.Date})
	}

	return criteria
}

// Apply adds every criterion to the query as an ANDed WHERE clause.
func Apply(db *gorm.DB, criteria []Criterion) *gorm.DB {
	for _, criterion := range criteria {
		clause, arg := criterion.Clause()
		db = db.Where(clause, arg)
	}
	return db
}
