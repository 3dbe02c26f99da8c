package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leavehub/internal/leave"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBusinessDays(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"full work week", "2026-03-02", "2026-03-06", 5},
		{"single weekday", "2026-03-04", "2026-03-04", 1},
		{"single saturday", "2026-03-07", "2026-03-07", 0},
		{"weekend only", "2026-03-07", "2026-03-08", 0},
		{"friday to monday", "2026-03-06", "2026-03-09", 2},
		{"two full weeks", "2026-03-02", "2026-03-13", 10},
		{"spanning one weekend", "2026-03-05", "2026-03-10", 4},
		{"inverted range", "2026-03-06", "2026-03-02", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := leave.BusinessDays(date(tc.start), date(tc.end))
			assert.Equal(t, tc.want, got)
		})
	}
}
