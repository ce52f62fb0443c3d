// Package importer orchestrates the row pipeline: detection, correction,
// fixing, scoring and duplicate guarding, bucketing every row into
// ready/review/blocked.
package importer

import (
	"context"

	"talent-import-go/internal/constants"
	"talent-import-go/internal/detect"
	"talent-import-go/internal/keywords"
	"talent-import-go/internal/logger"
	"talent-import-go/internal/quality"
)

// ProgressFunc receives (processed, total) between rows.
type ProgressFunc func(processed, total int)

// Engine runs the import pipeline. It holds no per-batch state; a single
// Engine may serve concurrent batches, each with its own snapshot.
type Engine struct {
	thresholds    quality.Thresholds
	progressEvery int
	progress      ProgressFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithReadyThreshold overrides the confidence floor for the ready category.
func WithReadyThreshold(v int) Option {
	return func(e *Engine) { e.thresholds.Ready = v }
}

// WithReviewThreshold overrides the confidence floor for the review category.
func WithReviewThreshold(v int) Option {
	return func(e *Engine) { e.thresholds.Review = v }
}

// WithProgress installs a callback fired after every n processed rows and
// once at the end of the batch.
func WithProgress(every int, fn ProgressFunc) Option {
	return func(e *Engine) {
		if every > 0 {
			e.progressEvery = every
		}
		e.progress = fn
	}
}

// NewEngine builds an Engine with the default thresholds.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		thresholds:    quality.DefaultThresholds,
		progressEvery: 50,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RowResult is the per-row output: the fixed record, what the fixer changed,
// and the validation verdict.
type RowResult struct {
	Index      int                      `json:"index"`
	Record     detect.Record            `json:"record"`
	Changes    []string                 `json:"changes,omitempty"`
	Validation quality.ValidationResult `json:"validation"`
}

// Report aggregates one batch pass.
type Report struct {
	TotalRows         int         `json:"totalRows"`
	Ready             int         `json:"ready"`
	Review            int         `json:"review"`
	Blocked           int         `json:"blocked"`
	InFileDuplicates  int         `json:"inFileDuplicates"`
	StorageDuplicates int         `json:"storageDuplicates"`
	SkippedRows       int         `json:"skippedRows"`
	Rows              []RowResult `json:"rows"`
}

// ProcessBatch runs every row through the pipeline in strict original order.
// First-wins duplicate semantics make the order load-bearing: this loop must
// not be parallelized. A mapping covering at least two fields bypasses
// detection with a direct column lookup. A row that panics is logged and
// skipped; the batch continues.
func (e *Engine) ProcessBatch(ctx context.Context, rows []detect.RawRow, snap *Snapshot, mapping map[int]string) *Report {
	report := &Report{TotalRows: len(rows)}
	seen := newSeenSet()
	useMapping := len(mapping) >= 2

	for i, raw := range rows {
		if ctx.Err() != nil {
			logger.Warn().Int("row", i).Msg("batch cancelled, remaining rows unprocessed")
			break
		}

		res, ok := e.processRow(i, raw, mapping, useMapping)
		if !ok {
			report.SkippedRows++
			e.reportProgress(i+1, len(rows))
			continue
		}

		if seen.observe(res.Record) {
			report.InFileDuplicates++
			e.reportProgress(i+1, len(rows))
			continue
		}
		if e.markStorageDuplicate(&res, snap) {
			report.StorageDuplicates++
		}

		switch res.Validation.Category {
		case constants.CategoryReady:
			report.Ready++
		case constants.CategoryReview:
			report.Review++
		default:
			report.Blocked++
		}
		report.Rows = append(report.Rows, res)
		e.reportProgress(i+1, len(rows))
	}
	return report
}

// Revalidate re-runs the full pipeline on one edited record. The field names
// are fed back through the scanner as trusted headers, so an edited value
// that no longer fits its field is re-classified or dropped the same way a
// fresh cell would be. No duplicate guarding applies.
func (e *Engine) Revalidate(fields map[string]string) RowResult {
	raw := make(detect.RawRow, 0, len(fields))
	for _, field := range constants.AllFields {
		if v := fields[field]; v != "" {
			raw = append(raw, detect.Cell{Header: field, Value: v})
		}
	}
	res, ok := e.processRow(0, raw, nil, false)
	if !ok {
		res = RowResult{Record: detect.NewRecord()}
		res.Validation = quality.Validate(res.Record, e.thresholds)
	}
	return res
}

func (e *Engine) processRow(index int, raw detect.RawRow, mapping map[int]string, useMapping bool) (res RowResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Int("row", index).Interface("panic", r).Msg("row processing panicked, row skipped")
			ok = false
		}
	}()

	var rec detect.Record
	if useMapping {
		rec = recordFromMapping(raw, mapping)
	} else {
		rec = detect.Resolve(detect.Scan(raw))
	}
	rec = detect.Prune(detect.Correct(rec))

	fixed, changes := quality.Fix(rec)
	return RowResult{
		Index:      index,
		Record:     fixed,
		Changes:    changes,
		Validation: quality.Validate(fixed, e.thresholds),
	}, true
}

// recordFromMapping trusts the caller's column→field assignment outright,
// skipping only empty cells and placeholders.
func recordFromMapping(raw detect.RawRow, mapping map[int]string) detect.Record {
	rec := detect.NewRecord()
	for idx, field := range mapping {
		if idx < 0 || idx >= len(raw) {
			continue
		}
		v := raw[idx].Value
		if v == "" || keywords.IsPlaceholder(v) {
			continue
		}
		rec.Fields[field] = v
	}
	return rec
}

// markStorageDuplicate attaches the non-blocking "already exists" warning.
// It runs after scoring so the warning never moves the category; the import
// step merges such rows instead of inserting twice.
func (e *Engine) markStorageDuplicate(res *RowResult, snap *Snapshot) bool {
	dup := false
	if snap.hasEmail(res.Record.Value(constants.FieldEmail)) {
		res.Validation.Warnings = append(res.Validation.Warnings, quality.Issue{
			Field:    constants.FieldEmail,
			Message:  "email already exists in storage",
			Severity: constants.SeverityWarning,
		})
		dup = true
	}
	if snap.hasPhone(res.Record.Value(constants.FieldPhone)) {
		res.Validation.Warnings = append(res.Validation.Warnings, quality.Issue{
			Field:    constants.FieldPhone,
			Message:  "phone already exists in storage",
			Severity: constants.SeverityWarning,
		})
		dup = true
	}
	return dup
}

func (e *Engine) reportProgress(done, total int) {
	if e.progress == nil {
		return
	}
	if done%e.progressEvery == 0 || done == total {
		e.progress(done, total)
	}
}
