// Package pdftext converts timesheet documents into a linear text stream.
package pdftext

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrInputUnavailable: документ не удалось прочитать или преобразовать в текст.
var ErrInputUnavailable = errors.New("input unavailable")

const (
	MethodPlainText = "plain-text"
	MethodPDFText   = "pdf-text"
)

type Config struct {
	Pdftotext string // имя бинарника или абсолютный путь; по умолчанию "pdftotext"
}

type Result struct {
	Text     string
	Pages    int
	Method   string
	Duration time.Duration
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *zap.Logger
}

func NewExtractor(cfg Config, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// WithRunner подменяет исполнитель внешних команд.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	cp := *e
	cp.runner = r
	return &cp
}

// Extract выбирает способ по расширению файла. Границы страниц превращаются в переводы строк.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	if _, err := os.Stat(path); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var (
		res Result
		err error
	)
	switch ext {
	case ".pdf":
		res, err = e.fromPDF(ctx, path)
	case ".txt", ".text":
		res, err = fromPlain(path)
	default:
		return Result{}, fmt.Errorf("%w: unsupported extension %q", ErrInputUnavailable, ext)
	}
	if err != nil {
		return Result{}, err
	}
	res.Duration = time.Since(start)
	e.logger.Debug("текст извлечён",
		zap.String("path", path),
		zap.String("method", res.Method),
		zap.Int("pages", res.Pages),
		zap.Int("bytes", len(res.Text)),
	)
	return res, nil
}

func (e *Extractor) fromPDF(ctx context.Context, path string) (Result, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		msg := strings.TrimSpace(string(errb))
		if msg != "" {
			return Result{}, fmt.Errorf("%w: pdftotext: %v: %s", ErrInputUnavailable, err, msg)
		}
		return Result{}, fmt.Errorf("%w: pdftotext: %v", ErrInputUnavailable, err)
	}
	text := strings.TrimRight(string(out), "\f")
	pages := 1 + strings.Count(text, "\f")
	return Result{
		Text:   strings.ReplaceAll(text, "\f", "\n"),
		Pages:  pages,
		Method: MethodPDFText,
	}, nil
}

func fromPlain(path string) (Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}
	return Result{Text: string(b), Pages: 1, Method: MethodPlainText}, nil
}
