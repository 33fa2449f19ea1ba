package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarKey_UTCMidnightAndBusinessMidnightAgree(t *testing.T) {
	cal := newTestCalendar(t)

	utcMidnight := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	businessMidnight := time.Date(2024, 6, 10, 0, 0, 0, 0, cal.Location())

	assert.Equal(t, DateKey("2024-06-10"), cal.Key(utcMidnight))
	assert.Equal(t, DateKey("2024-06-10"), cal.Key(businessMidnight))
}

func TestCalendarParseKey(t *testing.T) {
	cal := newTestCalendar(t)

	tests := []struct {
		name string
		raw  string
		want DateKey
	}{
		{name: "date only", raw: "2024-06-10", want: "2024-06-10"},
		{name: "utc midnight iso", raw: "2024-06-10T00:00:00.000Z", want: "2024-06-10"},
		{name: "business midnight iso", raw: "2024-06-10T00:00:00-04:00", want: "2024-06-10"},
		{name: "late evening utc is previous business day", raw: "2024-06-11T02:30:00Z", want: "2024-06-10"},
		{name: "surrounding whitespace", raw: "  2024-06-10 ", want: "2024-06-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.ParseKey(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalendarParseKey_Invalid(t *testing.T) {
	cal := newTestCalendar(t)

	for _, raw := range []string{"", "2024-13-01", "06/10/2024", "yesterday"} {
		_, err := cal.ParseKey(raw)
		assert.Error(t, err, raw)
	}
}

func TestCalendarISO_RoundTrips(t *testing.T) {
	cal := newTestCalendar(t)

	iso := cal.ISO("2024-11-03")
	assert.Equal(t, "2024-11-03T00:00:00-04:00", iso)

	back, err := cal.ParseKey(iso)
	require.NoError(t, err)
	assert.Equal(t, DateKey("2024-11-03"), back)
}

func TestNewCalendar_UnknownZone(t *testing.T) {
	_, err := NewCalendar("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{Start: "2024-06-01", End: "2024-06-30"}

	assert.True(t, r.Contains("2024-06-01"))
	assert.True(t, r.Contains("2024-06-30"))
	assert.False(t, r.Contains("2024-05-31"))
	assert.False(t, r.Contains("2024-07-01"))
	assert.True(t, DateRange{}.Contains("1999-01-01"))
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("13:30")
	require.NoError(t, err)
	assert.Equal(t, 13*60+30, minutes)

	_, err = ParseClock("1:30pm")
	assert.Error(t, err)
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "112.50", MoneyFromFloat(112.5).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "-3.20", Money(-320).String())
}
