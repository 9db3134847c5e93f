package timesheet

import "regexp"

// RawMatch: сырое совпадение до нормализации.
type RawMatch struct {
	Recognizer string
	Date       string
	Start      string
	End        string
}

// Recognizer описывает одну известную раскладку строки "дата + начало + конец".
// Группы 1..3 шаблона: дата, начало, конец.
type Recognizer struct {
	Name    string
	Pattern *regexp.Regexp
}

// Match возвращает совпадения слева направо.
func (r Recognizer) Match(text string) []RawMatch {
	found := r.Pattern.FindAllStringSubmatch(text, -1)
	matches := make([]RawMatch, 0, len(found))
	for _, m := range found {
		if len(m) < 4 {
			continue
		}
		matches = append(matches, RawMatch{
			Recognizer: r.Name,
			Date:       m[1],
			Start:      m[2],
			End:        m[3],
		})
	}
	return matches
}

// DefaultRecognizers: раскладки, встречающиеся в табелях таксопарка.
func DefaultRecognizers() []Recognizer {
	return []Recognizer{
		// 2025-01-27  10:00   18:30   ...   8.5
		{Name: "iso-columns", Pattern: regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s+(\d{2}:\d{2})\s+(\d{2}:\d{2})\s+.*?\s+([\d,]+)`)},
		// 27.01.2025  10:00 - 18:30 (8.5t)
		{Name: "dotted-range", Pattern: regexp.MustCompile(`(\d{2}\.\d{2}\.\d{4})\s+(\d{2}:\d{2})\s*-\s*(\d{2}:\d{2})\s*\(([\d,]+)`)},
		// Dato: 27/01/25 Fra: 10:00 Til: 18:30
		{Name: "labelled", Pattern: regexp.MustCompile(`Dato:\s*(\S+)\s+Fra:\s*(\d{2}:\d{2})\s+Til:\s*(\d{2}:\d{2})`)},
	}
}

// collect прогоняет все распознаватели по тексту. Совпадения не исключают друг друга
// и не дедуплицируются: одна смена может попасть в список дважды.
func collect(recognizers []Recognizer, text string) []RawMatch {
	var all []RawMatch
	for _, r := range recognizers {
		all = append(all, r.Match(text)...)
	}
	return all
}
