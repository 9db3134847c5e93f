package timesheet

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"timesheet-bot/internal/model"
)

// Порядок важен: побеждает первый успешно разобранный формат.
var dateLayouts = []string{
	"2006-1-2",
	"2.1.2006",
	"2/1/06",
	"2/1/2006",
}

var errBadClock = errors.New("bad clock value")

// Extractor превращает текст табеля в список смен. Без состояния, безопасен для конкурентного вызова.
type Extractor struct {
	recognizers []Recognizer
	rates       model.Rates
	logger      *zap.Logger
}

func NewExtractor(rates model.Rates, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		recognizers: DefaultRecognizers(),
		rates:       rates,
		logger:      logger,
	}
}

// WithRecognizers заменяет список распознавателей (порядок сохраняется).
func (e *Extractor) WithRecognizers(rs ...Recognizer) *Extractor {
	cp := *e
	cp.recognizers = rs
	return &cp
}

// Extract возвращает смены в порядке обнаружения: сначала по распознавателю, затем по позиции в тексте.
// Кандидаты с неразборчивой датой или временем отбрасываются с предупреждением.
func (e *Extractor) Extract(text string) []model.ShiftRecord {
	records := make([]model.ShiftRecord, 0)
	for _, m := range collect(e.recognizers, text) {
		rec, ok := e.normalize(m)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func (e *Extractor) normalize(m RawMatch) (model.ShiftRecord, bool) {
	date, err := ParseDate(m.Date)
	if err != nil {
		e.skip(m, "date", m.Date, err)
		return model.ShiftRecord{}, false
	}
	start, err := parseClock(m.Start)
	if err != nil {
		e.skip(m, "start", m.Start, err)
		return model.ShiftRecord{}, false
	}
	end, err := parseClock(m.End)
	if err != nil {
		e.skip(m, "end", m.End, err)
		return model.ShiftRecord{}, false
	}

	shiftType, rate := e.classify(end)
	hours := Round2(durationHours(start, end))
	return model.ShiftRecord{
		Date:          date.Format("2006-01-02"),
		Start:         start.String(),
		End:           end.String(),
		DayOfWeek:     date.Weekday().String(),
		ShiftType:     shiftType,
		Rate:          rate,
		DurationHours: hours,
		Amount:        Round2(hours * rate),
	}, true
}

func (e *Extractor) skip(m RawMatch, field, token string, err error) {
	e.logger.Warn("кандидат пропущен",
		zap.String("recognizer", m.Recognizer),
		zap.String("field", field),
		zap.String("token", token),
		zap.Error(err),
	)
}

// classify смотрит только на час конца смены, как он записан в табеле.
// Ночная смена, закончившаяся в 06:00, считается дневной.
func (e *Extractor) classify(end clock) (model.ShiftType, float64) {
	if end.hour >= e.rates.NightFromHour {
		return model.ShiftNight, e.rates.Night
	}
	return model.ShiftDay, e.rates.Day
}

// ParseDate пробует форматы по порядку. День и месяц допускаются без ведущего нуля.
func ParseDate(token string) (time.Time, error) {
	errs := make([]error, 0, len(dateLayouts))
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, token)
		if err == nil {
			return t, nil
		}
		errs = append(errs, err)
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q: %w", token, errors.Join(errs...))
}

type clock struct {
	hour, minute int
}

func (c clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

func (c clock) minutes() int {
	return c.hour*60 + c.minute
}

func parseClock(token string) (clock, error) {
	hh, mm, ok := strings.Cut(token, ":")
	if !ok {
		return clock{}, fmt.Errorf("%w: %q", errBadClock, token)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return clock{}, fmt.Errorf("%w: %q", errBadClock, token)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return clock{}, fmt.Errorf("%w: %q", errBadClock, token)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return clock{}, fmt.Errorf("%w: %q out of range", errBadClock, token)
	}
	return clock{hour: h, minute: m}, nil
}

// durationHours: если конец раньше начала, смена переходит через полночь.
func durationHours(start, end clock) float64 {
	diff := end.minutes() - start.minutes()
	if diff < 0 {
		diff += 24 * 60
	}
	return float64(diff) / 60
}

// Round2 округляет до сотых, половина: от нуля.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
