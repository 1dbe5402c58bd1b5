package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocal_LocalMidnight(t *testing.T) {
	parsed, err := ParseLocal("2024-03-01")
	require.NoError(t, err)

	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 1, parsed.Day())
	assert.Equal(t, 0, parsed.Hour())
	assert.Equal(t, 0, parsed.Minute())
	assert.Equal(t, time.Local, parsed.Location())
}

func TestParseLocal_Invalid(t *testing.T) {
	cases := []string{
		"",
		"not-a-date",
		"2024/03/01",
		"2024-3-1",
		"2024-03-01T00:00:00Z",
		"2024-13-45",
	}

	for _, c := range cases {
		_, err := ParseLocal(c)
		assert.Error(t, err, "input %q", c)
	}
}

func TestFormatDisplay_RoundTrip(t *testing.T) {
	// Well-formed dates are rewritten without touching time arithmetic.
	assert.Equal(t, "2024/03/01", FormatDisplay("2024-03-01"))
	assert.Equal(t, "1999/12/31", FormatDisplay("1999-12-31"))
}

func TestFormatDisplay_Fallbacks(t *testing.T) {
	assert.Equal(t, "", FormatDisplay(""))
	assert.Equal(t, "", FormatDisplay("garbage"))
	assert.Equal(t, "2024/06/15", FormatDisplay("2024-06-15T10:30:00"))
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 6, 15, 18, 42, 7, 123, time.Local)
	got := StartOfDay(in)

	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local), got)
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2024, 6, 15, 3, 0, 0, 0, time.Local)
	got := EndOfDay(in)

	assert.Equal(t, time.Date(2024, 6, 15, 23, 59, 59, 0, time.Local), got)
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-06-15T10:30:00Z", true},
		{"2024-06-15T10:30:00.123456+09:00", true},
		{"2024-06-15T10:30:00", true},
		{"2024-06-15 10:30:00", true},
		{"2024-06-15", true},
		{"", false},
		{"yesterday", false},
	}

	for _, c := range cases {
		_, err := ParseTimestamp(c.in)
		if c.ok {
			assert.NoError(t, err, "input %q", c.in)
		} else {
			assert.Error(t, err, "input %q", c.in)
		}
	}
}

func TestFormatLocal(t *testing.T) {
	in := time.Date(2024, 1, 5, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2024-01-05", FormatLocal(in))
}
