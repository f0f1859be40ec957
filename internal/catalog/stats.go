// Package catalog holds presentation-independent catalog logic shared by the
// web, terminal and command-line shells.
package catalog

import "fmt"

// Counter is the part of the catalog store the statistics view needs.
type Counter interface {
	CountTotal() (int64, error)
	CountRead() (int64, error)
}

// Stats summarises the catalog.
type Stats struct {
	Total int64 `json:"total_books"`
	Read  int64 `json:"read_books"`
}

// ReadPercentage is Read/Total*100, or 0 for an empty catalog.
func (s Stats) ReadPercentage() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Read) / float64(s.Total) * 100
}

// FormattedReadPercentage renders the percentage with one decimal place, e.g. "75.0%".
func (s Stats) FormattedReadPercentage() string {
	return fmt.Sprintf("%.1f%%", s.ReadPercentage())
}

// LoadStats queries both counters.
func LoadStats(counter Counter) (Stats, error) {
	total, err := counter.CountTotal()
	if err != nil {
		return Stats{}, err
	}
	read, err := counter.CountRead()
	if err != nil {
		return Stats{}, err
	}
	return Stats{Total: total, Read: read}, nil
}
