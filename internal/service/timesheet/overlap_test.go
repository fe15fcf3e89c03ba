package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"disjoint", at(9), at(12), at(13), at(17), false},
		{"back to back do not conflict", at(9), at(17), at(17), at(22), false},
		{"partial overlap", at(9), at(13), at(12), at(17), true},
		{"containment", at(9), at(17), at(11), at(12), true},
		{"identical", at(9), at(17), at(9), at(17), true},
		{"one minute overlap", at(9), at(12).Add(time.Minute), at(12), at(17), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// symmetric
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}
