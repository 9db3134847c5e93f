package model

import "time"

type ShiftType string

const (
	ShiftDay   ShiftType = "day"
	ShiftNight ShiftType = "night"
)

// ShiftRecord: одна распознанная смена из табеля
type ShiftRecord struct {
	Date          string    `json:"date" yaml:"date"`
	Start         string    `json:"start" yaml:"start"`
	End           string    `json:"end" yaml:"end"`
	DayOfWeek     string    `json:"day_of_week" yaml:"day_of_week"`
	ShiftType     ShiftType `json:"shift_type" yaml:"shift_type"`
	Rate          float64   `json:"rate" yaml:"rate"`
	DurationHours float64   `json:"duration_hours" yaml:"duration_hours"`
	Amount        float64   `json:"amount" yaml:"amount"`
}

// Summary: свёртка по списку смен
type Summary struct {
	EntryCount      int     `json:"entry_count" yaml:"entry_count"`
	TotalDayHours   float64 `json:"total_day_hours" yaml:"total_day_hours"`
	TotalNightHours float64 `json:"total_night_hours" yaml:"total_night_hours"`
	TotalAmount     float64 `json:"total_amount" yaml:"total_amount"`
}

type Report struct {
	Source      string    `json:"source" yaml:"source"`
	ExtractedAt time.Time `json:"extracted_at" yaml:"extracted_at"`
	Summary     `yaml:",inline"`
	Entries     []ShiftRecord `json:"entries" yaml:"entries"`
}

// Rates задаёт почасовые ставки и порог ночной смены
type Rates struct {
	Day           float64
	Night         float64
	NightFromHour int
}

func DefaultRates() Rates {
	return Rates{Day: 300, Night: 400, NightFromHour: 22}
}

// StoredShift: смена, сохранённая за сотрудником
type StoredShift struct {
	ID         int
	EmployeeID int
	ImportID   string
	Date       time.Time
	Start      string
	End        string
	ShiftType  ShiftType
	Rate       float64
	Hours      float64
	Amount     float64
	Paid       bool
}

// Import: загруженный сотрудником документ
type Import struct {
	ID         string
	EmployeeID int
	Source     string
	Checksum   string
	CreatedAt  time.Time
}
