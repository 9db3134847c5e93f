package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"timesheet-bot/internal/model"
	"timesheet-bot/internal/pdftext"
	"timesheet-bot/internal/timesheet"
)

type TextExtractor interface {
	Extract(ctx context.Context, path string) (pdftext.Result, error)
}

// TimesheetService связывает извлечение текста и разбор смен.
type TimesheetService struct {
	Text   TextExtractor
	Shifts *timesheet.Extractor
	Async  *AsyncService
	Logger *zap.Logger
	Now    func() time.Time
}

func NewTimesheetService(text TextExtractor, shifts *timesheet.Extractor, async *AsyncService, logger *zap.Logger) *TimesheetService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimesheetService{Text: text, Shifts: shifts, Async: async, Logger: logger, Now: time.Now}
}

// ParseFile падает только если текст документа получить не удалось.
// Ноль найденных смен: валидный пустой отчёт.
func (s *TimesheetService) ParseFile(ctx context.Context, path string) (model.Report, error) {
	res, err := s.Text.Extract(ctx, path)
	if err != nil {
		return model.Report{}, fmt.Errorf("read %s: %w", path, err)
	}
	return s.ParseText(path, res.Text), nil
}

func (s *TimesheetService) ParseText(source, text string) model.Report {
	records := s.Shifts.Extract(text)
	report := timesheet.NewReport(source, records, s.Now())
	s.Logger.Info("табель разобран",
		zap.String("source", source),
		zap.Int("entries", report.EntryCount),
		zap.Float64("total_amount", report.TotalAmount),
	)
	return report
}

type BatchResult struct {
	Path   string
	Report model.Report
	Err    error
}

// ParseBatch разбирает документы параллельно через пул; порядок результатов совпадает с порядком путей.
func (s *TimesheetService) ParseBatch(ctx context.Context, paths []string) []BatchResult {
	results := make([]BatchResult, len(paths))
	chans := make([]<-chan AsyncResult, len(paths))
	for i, p := range paths {
		path := p
		chans[i] = s.Async.Go(func() (any, error) {
			return s.ParseFile(ctx, path)
		})
	}
	for i, ch := range chans {
		res := <-ch
		results[i] = BatchResult{Path: paths[i], Err: res.Err}
		if res.Err == nil {
			results[i].Report = res.Value.(model.Report)
		}
	}
	return results
}
