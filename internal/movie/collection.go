package movie

import "sort"

// Collection is an ordered, read-only list of records. Filters and sorts
// return a new Collection and leave the receiver as it was.
type Collection struct {
	records []Record
}

// NewCollection builds records from raw rows.
func NewCollection(rows []RawRow) *Collection {
	recs := make([]Record, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, BuildRecord(row))
	}
	return &Collection{records: recs}
}

// FromRecords wraps a copy of records.
func FromRecords(records []Record) *Collection {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &Collection{records: cp}
}

// Records returns a copy of the records in order.
func (c *Collection) Records() []Record {
	cp := make([]Record, len(c.records))
	copy(cp, c.records)
	return cp
}

// Len returns the number of records.
func (c *Collection) Len() int { return len(c.records) }

// Filter keeps the records for which keep returns true.
func (c *Collection) Filter(keep func(Record) bool) *Collection {
	out := make([]Record, 0, len(c.records))
	for _, r := range c.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return &Collection{records: out}
}

// FilterByHasFinancialData keeps records with a whole-number gross.
func (c *Collection) FilterByHasFinancialData() *Collection {
	return c.Filter(Record.HasFinancialData)
}

// FilterByMinGross keeps records grossing at least min. Records without a
// gross are dropped.
func (c *Collection) FilterByMinGross(min int64) *Collection {
	return c.Filter(func(r Record) bool {
		g, ok := r.TotalGross()
		return ok && g >= min
	})
}

// FilterByMinTheaters keeps records shown in at least min theaters. Records
// without a theater count are dropped.
func (c *Collection) FilterByMinTheaters(min int) *Collection {
	return c.Filter(func(r Record) bool {
		n, ok := r.MaxTheaters()
		return ok && n >= min
	})
}

// FilterByMaxTheaters keeps records shown in at most max theaters. Records
// without a theater count are dropped.
func (c *Collection) FilterByMaxTheaters(max int) *Collection {
	return c.Filter(func(r Record) bool {
		n, ok := r.MaxTheaters()
		return ok && n <= max
	})
}

// SortByOpeningDate orders records by opening date, oldest first, or newest
// first when descending. Records without a date sort before every dated one
// (and therefore last when descending).
func (c *Collection) SortByOpeningDate(descending bool) *Collection {
	out := c.Records()
	sort.SliceStable(out, func(i, j int) bool {
		a, aok := out[i].OpeningDate()
		b, bok := out[j].OpeningDate()
		switch {
		case !aok:
			return bok
		case !bok:
			return false
		default:
			return a.Before(b)
		}
	})
	if descending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return &Collection{records: out}
}
