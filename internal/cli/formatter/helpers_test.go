package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.AddDate(0, 0, 1), "Tomorrow"},
		{"yesterday", now.AddDate(0, 0, -1), "Yesterday"},
		{"in days", now.AddDate(0, 0, 5), "In 5d"},
		{"in weeks", now.AddDate(0, 0, 21), "In 3w"},
		{"days ago", now.AddDate(0, 0, -5), "5d ago"},
		{"weeks ago", now.AddDate(0, 0, -21), "3w ago"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RelativeDateFrom(tc.t, now))
		})
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", ShortID("12345678-abcd-efgh"))
	assert.Equal(t, "short", ShortID("short"))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"Name", "Amount"},
		[][]string{
			{"Anna", "1500.00 RUB"},
			{"B", "1.00 RUB"},
		},
	)
	assert.Contains(t, out, "Anna")
	assert.Contains(t, out, "1500.00 RUB")

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4, "header, separator, two rows")
}
