// Package service runs the conversion pipeline: load, normalize, sort, emit.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkordes/timeline-export/internal/domain"
	"github.com/pkordes/timeline-export/internal/export"
	"github.com/pkordes/timeline-export/internal/loader"
)

// RowNormalizer turns one raw timeline item into zero or more rows.
type RowNormalizer interface {
	Normalize(raw json.RawMessage) ([]domain.Row, error)
}

// Batch is the result of collecting every document in a directory.
// Rows are in insertion order; call export.Sort before emitting.
type Batch struct {
	Files       []string
	Rows        []domain.Row
	Diagnostics []domain.Diagnostic
}

// Summary describes a completed conversion.
type Summary struct {
	Batch
	CSVPath string
	KMLPath string
}

// ConvertService converts a directory of location-history documents into
// a CSV table and a KML point file.
type ConvertService struct {
	rows RowNormalizer
	log  *slog.Logger
}

// NewConvertService constructs a ConvertService.
func NewConvertService(rows RowNormalizer, log *slog.Logger) *ConvertService {
	return &ConvertService{rows: rows, log: log}
}

// Convert reads inputDir, then writes <basename>.csv and <basename>.kml
// into outputDir. Recoverable failures are reported in Summary.Diagnostics.
// Returns domain.ErrNoSourceFiles (wrapped) if inputDir has no .json files;
// in that case no output is written.
func (s *ConvertService) Convert(ctx context.Context, inputDir, outputDir string) (Summary, error) {
	batch, err := s.Collect(ctx, os.DirFS(inputDir))
	if err != nil {
		return Summary{}, fmt.Errorf("service.ConvertService.Convert: %w", err)
	}
	export.Sort(batch.Rows)

	csvName, kmlName := export.OutputNames(inputDir)
	sum := Summary{
		Batch:   batch,
		CSVPath: filepath.Join(outputDir, csvName),
		KMLPath: filepath.Join(outputDir, kmlName),
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("service.ConvertService.Convert: %w", err)
	}
	if err := writeFile(sum.CSVPath, batch.Rows, export.WriteCSV); err != nil {
		return Summary{}, fmt.Errorf("service.ConvertService.Convert: %w", err)
	}
	s.log.InfoContext(ctx, "csv written", "path", sum.CSVPath, "rows", len(batch.Rows))
	if err := writeFile(sum.KMLPath, batch.Rows, export.WriteKML); err != nil {
		return Summary{}, fmt.Errorf("service.ConvertService.Convert: %w", err)
	}
	s.log.InfoContext(ctx, "kml written", "path", sum.KMLPath)
	return sum, nil
}

// Collect loads every .json document at the root of fsys, in name order,
// and normalizes each timeline item. A failing file, document or item is
// logged and recorded as a diagnostic; only an empty input is fatal.
func (s *ConvertService) Collect(ctx context.Context, fsys fs.FS) (Batch, error) {
	l := loader.New(fsys)
	names, err := l.List()
	if err != nil {
		return Batch{}, err
	}
	s.log.InfoContext(ctx, "source files found", "count", len(names))

	batch := Batch{Files: names}
	for res := range l.All(names) {
		if err := ctx.Err(); err != nil {
			return Batch{}, err
		}
		s.log.InfoContext(ctx, "processing file", "file", res.Name)
		if res.Err != nil {
			d := domain.Diagnostic{File: res.Name, Item: -1, Class: domain.ClassFile, Err: res.Err}
			if errors.Is(res.Err, domain.ErrMissingTimeline) {
				d.Class = domain.ClassDocument
			}
			s.report(ctx, &batch, d)
			continue
		}
		for i, raw := range res.Document.Objects {
			rows, err := s.rows.Normalize(raw)
			if err != nil {
				s.report(ctx, &batch, domain.Diagnostic{File: res.Name, Item: i, Class: domain.ClassRecord, Err: err})
				continue
			}
			batch.Rows = append(batch.Rows, rows...)
		}
	}
	return batch, nil
}

func (s *ConvertService) report(ctx context.Context, batch *Batch, d domain.Diagnostic) {
	batch.Diagnostics = append(batch.Diagnostics, d)
	attrs := []any{"file", d.File, "class", d.Class, "error", d.Err}
	if d.Class == domain.ClassRecord {
		attrs = append(attrs, "item", d.Item)
	}
	s.log.WarnContext(ctx, "skipped", attrs...)
}

// writeFile creates path and streams rows into it with write.
func writeFile(path string, rows []domain.Row, write func(io.Writer, []domain.Row) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f, rows)
}
