package timesheet

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"timesheet-bot/internal/model"
)

func newTestExtractor() *Extractor {
	return NewExtractor(model.DefaultRates(), zap.NewNop())
}

func TestExtract_IsoColumns(t *testing.T) {
	recs := newTestExtractor().Extract("2025-01-27  10:00   18:30   x  8.5")
	require.Len(t, recs, 1)
	assert.Equal(t, model.ShiftRecord{
		Date:          "2025-01-27",
		Start:         "10:00",
		End:           "18:30",
		DayOfWeek:     "Monday",
		ShiftType:     model.ShiftDay,
		Rate:          300,
		DurationHours: 8.5,
		Amount:        2550,
	}, recs[0])
}

// Конец смены 06:00 < 22, поэтому по буквальному правилу смена дневная.
func TestExtract_OvernightEndingAtSixIsDayByLiteralRule(t *testing.T) {
	recs := newTestExtractor().Extract("27.01.2025  22:00 - 06:00 (8.0)")
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, "2025-01-27", rec.Date)
	assert.Equal(t, 8.0, rec.DurationHours)
	assert.Equal(t, model.ShiftDay, rec.ShiftType)
	assert.Equal(t, 300.0, rec.Rate)
	assert.Equal(t, 2400.0, rec.Amount)
}

func TestExtract_NightWhenEndHourAtThreshold(t *testing.T) {
	recs := newTestExtractor().Extract("Dato: 27/01/25 Fra: 14:00 Til: 22:30")
	require.Len(t, recs, 1)
	assert.Equal(t, model.ShiftNight, recs[0].ShiftType)
	assert.Equal(t, 400.0, recs[0].Rate)
	assert.Equal(t, 8.5, recs[0].DurationHours)
	assert.Equal(t, 3400.0, recs[0].Amount)
}

func TestExtract_InvalidDateDroppedWithWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	e := NewExtractor(model.DefaultRates(), zap.New(core))

	recs := e.Extract("31.13.2025  10:00 - 18:00 (8,0)\n27.01.2025  10:00 - 12:00 (2)")
	require.Len(t, recs, 1)
	assert.Equal(t, "2025-01-27", recs[0].Date)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "date", entries[0].ContextMap()["field"])
	assert.Equal(t, "31.13.2025", entries[0].ContextMap()["token"])
}

func TestExtract_InvalidClockDropped(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	e := NewExtractor(model.DefaultRates(), zap.New(core))

	recs := e.Extract("Dato: 27.01.2025 Fra: 25:00 Til: 06:00\nDato: 28.01.2025 Fra: 18:00 Til: 24:00")
	assert.Empty(t, recs)
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "start", logs.All()[0].ContextMap()["field"])
	assert.Equal(t, "end", logs.All()[1].ContextMap()["field"])
	assert.Equal(t, "24:00", logs.All()[1].ContextMap()["token"])
}

func TestExtract_LabelledDateWithoutLeadingZeros(t *testing.T) {
	recs := newTestExtractor().Extract("Dato: 1.2.2025 Fra: 10:00 Til: 18:00\nDato: 2025-1-5 Fra: 08:00 Til: 12:00")
	require.Len(t, recs, 2)
	assert.Equal(t, "2025-02-01", recs[0].Date)
	assert.Equal(t, "Saturday", recs[0].DayOfWeek)
	assert.Equal(t, 2400.0, recs[0].Amount)
	assert.Equal(t, "2025-01-05", recs[1].Date)
}

func TestExtract_EmptyInput(t *testing.T) {
	recs := newTestExtractor().Extract("")
	require.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestExtract_OrderIsRecognizerThenPosition(t *testing.T) {
	text := strings.Join([]string{
		"Dato: 01/02/2025 Fra: 08:00 Til: 16:00",
		"03.02.2025  09:00 - 17:00 (8)",
		"2025-02-05  10:00  12:00  tur  2",
		"2025-02-04  10:00  11:00  tur  1",
	}, "\n")
	recs := newTestExtractor().Extract(text)
	var dates []string
	for _, r := range recs {
		dates = append(dates, r.Date)
	}
	assert.Equal(t, []string{"2025-02-05", "2025-02-04", "2025-02-03", "2025-02-01"}, dates)
}

// Одна и та же физическая смена может совпасть с несколькими раскладками; дубли сохраняются.
func TestExtract_NoDeduplication(t *testing.T) {
	dup := Recognizer{Name: "dup", Pattern: regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s+(\d{2}:\d{2})\s+(\d{2}:\d{2})`)}
	e := newTestExtractor().WithRecognizers(append(DefaultRecognizers(), dup)...)

	recs := e.Extract("2025-01-27  10:00   18:30   x  8.5")
	require.Len(t, recs, 2)
	assert.Equal(t, recs[0], recs[1])

	recs = newTestExtractor().Extract("2025-01-27  10:00  18:30  x  8\n2025-01-27  10:00  18:30  x  8")
	assert.Len(t, recs, 2)
}

func TestExtract_Idempotent(t *testing.T) {
	text := "2025-01-27  10:00   18:30   x  8.5\n27.01.2025  22:00 - 06:00 (8.0)\nDato: 28/01/25 Fra: 15:10 Til: 23:20"
	e := newTestExtractor()
	first := e.Extract(text)
	second := e.Extract(text)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("extract not idempotent (-first +second):\n%s", diff)
	}
}

func TestExtract_Properties(t *testing.T) {
	text := strings.Join([]string{
		"2025-01-27  10:00   18:30   x  8.5",
		"2025-01-28  23:59   00:01   x  0",
		"2025-01-29  07:00   07:00   x  0",
		"27.01.2025  22:00 - 06:00 (8.0)",
		"27.01.2025  12:00 - 23:10 (11,2)",
		"Dato: 28/01/25 Fra: 15:10 Til: 22:20",
		"Dato: 29/1/2025 Fra: 00:07 Til: 00:00",
	}, "\n")
	recs := newTestExtractor().Extract(text)
	require.Len(t, recs, 7)
	for _, r := range recs {
		assert.GreaterOrEqual(t, r.DurationHours, 0.0, r.Date)
		assert.LessOrEqual(t, r.DurationHours, 24.0, r.Date)
		assert.Equal(t, Round2(r.DurationHours*r.Rate), r.Amount, r.Date)

		end, err := parseClock(r.End)
		require.NoError(t, err)
		assert.Equal(t, end.hour >= 22, r.ShiftType == model.ShiftNight, r.End)
	}
}

func TestExtract_CustomRates(t *testing.T) {
	e := NewExtractor(model.Rates{Day: 100, Night: 150, NightFromHour: 18}, nil)
	recs := e.Extract("2025-01-27  10:00   18:30   x  8.5")
	require.Len(t, recs, 1)
	assert.Equal(t, model.ShiftNight, recs[0].ShiftType)
	assert.Equal(t, 1275.0, recs[0].Amount)
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		token string
		want  string
	}{
		{"2025-01-27", "2025-01-27"},
		{"27.01.2025", "2025-01-27"},
		{"27/01/25", "2025-01-27"},
		{"27/01/2025", "2025-01-27"},
		{"7/1/25", "2025-01-07"},
		{"1.2.2025", "2025-02-01"},
		{"2025-1-5", "2025-01-05"},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.token)
		require.NoError(t, err, tc.token)
		assert.Equal(t, tc.want, got.Format("2006-01-02"), tc.token)
	}

	for _, bad := range []string{"31.13.2025", "2025-02-30", "27-01-2025", "", "i går"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}

	// в ошибке видны все перепробованные форматы
	_, err := ParseDate("i går")
	require.Error(t, err)
	for _, layout := range dateLayouts {
		assert.Contains(t, err.Error(), layout)
	}
}

func TestDurationHours_Rollover(t *testing.T) {
	assert.Equal(t, 8.0, durationHours(clock{22, 0}, clock{6, 0}))
	assert.Equal(t, 0.0, durationHours(clock{9, 0}, clock{9, 0}))
	assert.InDelta(t, 23.0+59.0/60, durationHours(clock{0, 1}, clock{0, 0}), 1e-9)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.17, Round2(10.0/60))
	assert.Equal(t, 1.01, Round2(1.005000001))
	assert.Equal(t, 0.0, Round2(0))
}
