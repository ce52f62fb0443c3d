// Package handler coordinates the HTTP-facing import flows: batch
// processing, confirmation, and single-record revalidation.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gofrs/uuid/v5"
	"gorm.io/datatypes"

	"talent-import-go/internal/config"
	"talent-import-go/internal/constants"
	"talent-import-go/internal/detect"
	"talent-import-go/internal/importer"
	"talent-import-go/internal/logger"
	"talent-import-go/internal/storage"
	"talent-import-go/internal/storage/models"
)

// ImportHandler wires the pipeline engine to storage.
type ImportHandler struct {
	cfg     *config.Config
	storage *storage.Storage
	engine  *importer.Engine
}

// NewImportHandler creates the handler.
func NewImportHandler(cfg *config.Config, st *storage.Storage, engine *importer.Engine) *ImportHandler {
	return &ImportHandler{
		cfg:     cfg,
		storage: st,
		engine:  engine,
	}
}

// BatchImportRequest is the parsed upload: rows in original file order plus
// an optional explicit column→field mapping.
type BatchImportRequest struct {
	OwnerID  string            `json:"owner_id"`
	FileName string            `json:"file_name"`
	Rows     []detect.RawRow   `json:"rows"`
	Mapping  map[string]string `json:"mapping,omitempty"`
}

// BatchImportResponse carries the batch ID and the full report.
type BatchImportResponse struct {
	BatchID string           `json:"batch_id"`
	Report  *importer.Report `json:"report"`
}

// HandleBatchImport runs one upload through the pipeline and records the
// audit row. Nothing is persisted to the candidates table until the caller
// confirms.
func (h *ImportHandler) HandleBatchImport(ctx context.Context, req *BatchImportRequest) (*BatchImportResponse, error) {
	if req.OwnerID == "" {
		return nil, fmt.Errorf("owner_id is required")
	}
	if len(req.Rows) == 0 {
		return nil, fmt.Errorf("no rows to import")
	}
	if max := h.cfg.Engine.MaxBatchRows; len(req.Rows) > max {
		return nil, fmt.Errorf("batch of %d rows exceeds the limit of %d", len(req.Rows), max)
	}

	snap, err := h.loadSnapshot(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	mapping, err := parseMapping(req.Mapping)
	if err != nil {
		return nil, err
	}

	report := h.engine.ProcessBatch(ctx, req.Rows, snap, mapping)

	batchUUID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate batch id: %w", err)
	}
	batchID := batchUUID.String()

	if h.storage.MySQL != nil {
		reportJSON, err := json.Marshal(report)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal batch report: %w", err)
		}
		batch := &models.ImportBatch{
			BatchID:    batchID,
			OwnerID:    req.OwnerID,
			FileName:   req.FileName,
			ReportJSON: datatypes.JSON(reportJSON),
			Status:     "PROCESSED",
		}
		if err := h.storage.MySQL.SaveImportBatch(ctx, batch); err != nil {
			return nil, fmt.Errorf("failed to save import batch: %w", err)
		}
	}

	logger.Info().
		Str("batch_id", batchID).
		Str("owner_id", req.OwnerID).
		Int("total", report.TotalRows).
		Int("ready", report.Ready).
		Int("review", report.Review).
		Int("blocked", report.Blocked).
		Int("in_file_duplicates", report.InFileDuplicates).
		Msg("batch processed")

	return &BatchImportResponse{BatchID: batchID, Report: report}, nil
}

// ConfirmImportRequest persists the rows the user accepted after review.
type ConfirmImportRequest struct {
	OwnerID string               `json:"owner_id"`
	BatchID string               `json:"batch_id"`
	Rows    []importer.RowResult `json:"rows"`
}

// ConfirmImportResponse reports how many rows were persisted.
type ConfirmImportResponse struct {
	BatchID  string `json:"batch_id"`
	Imported int    `json:"imported"`
}

// HandleConfirmImport upserts the accepted rows, refreshes the cached
// identifier snapshot and emits the confirmed event. Blocked rows are
// rejected outright.
func (h *ImportHandler) HandleConfirmImport(ctx context.Context, req *ConfirmImportRequest) (*ConfirmImportResponse, error) {
	if req.OwnerID == "" || req.BatchID == "" {
		return nil, fmt.Errorf("owner_id and batch_id are required")
	}
	if h.storage.MySQL == nil {
		return nil, fmt.Errorf("persistence is unavailable")
	}

	candidates := make([]models.Candidate, 0, len(req.Rows))
	var emails, phones []string
	for _, row := range req.Rows {
		if row.Validation.Category == constants.CategoryBlocked {
			return nil, fmt.Errorf("row %d is blocked and cannot be imported", row.Index)
		}
		c, err := candidateFromRecord(req.OwnerID, req.BatchID, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.Index, err)
		}
		candidates = append(candidates, *c)
		if c.Email != "" {
			emails = append(emails, c.Email)
		}
		if c.Phone != "" {
			phones = append(phones, c.Phone)
		}
	}

	if err := h.storage.MySQL.ConfirmImport(ctx, req.BatchID, candidates); err != nil {
		return nil, fmt.Errorf("failed to confirm import: %w", err)
	}

	if h.storage.Redis != nil {
		if err := h.storage.Redis.AppendIdentifiers(ctx, req.OwnerID, emails, phones); err != nil {
			logger.Warn().Err(err).Str("owner_id", req.OwnerID).Msg("failed to update cached snapshot")
		}
	}

	if h.storage.RabbitMQ != nil && h.cfg.RabbitMQ.ImportEventsExchange != "" {
		event := map[string]interface{}{
			"batch_id": req.BatchID,
			"owner_id": req.OwnerID,
			"imported": len(candidates),
		}
		err := h.storage.RabbitMQ.PublishJSON(ctx,
			h.cfg.RabbitMQ.ImportEventsExchange,
			h.cfg.RabbitMQ.ConfirmedRoutingKey,
			event, true)
		if err != nil {
			logger.Warn().Err(err).Str("batch_id", req.BatchID).Msg("failed to publish confirmed event")
		}
	}

	return &ConfirmImportResponse{BatchID: req.BatchID, Imported: len(candidates)}, nil
}

// RevalidateRequest re-runs the pipeline on one edited record.
type RevalidateRequest struct {
	Fields map[string]string `json:"fields"`
}

// HandleRevalidate runs the detection and scoring pipeline on the edited
// field values. Duplicate guarding does not apply to single records.
func (h *ImportHandler) HandleRevalidate(_ context.Context, req *RevalidateRequest) (*importer.RowResult, error) {
	if len(req.Fields) == 0 {
		return nil, fmt.Errorf("no fields to revalidate")
	}
	for field := range req.Fields {
		if !isKnownField(field) {
			return nil, fmt.Errorf("unknown field %q", field)
		}
	}
	res := h.engine.Revalidate(req.Fields)
	return &res, nil
}

// loadSnapshot reads the owner's identifier snapshot from the Redis cache,
// falling back to a MySQL scan (and repopulating the cache) on a miss.
func (h *ImportHandler) loadSnapshot(ctx context.Context, ownerID string) (*importer.Snapshot, error) {
	if h.storage.Redis != nil {
		emails, phones, err := h.storage.Redis.GetIdentifierSnapshot(ctx, ownerID)
		if err != nil {
			logger.Warn().Err(err).Str("owner_id", ownerID).Msg("snapshot cache read failed")
		} else if len(emails) > 0 || len(phones) > 0 {
			return importer.NewSnapshot(emails, phones), nil
		}
	}

	if h.storage.MySQL == nil {
		return importer.NewSnapshot(nil, nil), nil
	}
	emails, phones, err := h.storage.MySQL.LoadIdentifierSnapshot(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if h.storage.Redis != nil && (len(emails) > 0 || len(phones) > 0) {
		if err := h.storage.Redis.CacheIdentifierSnapshot(ctx, ownerID, emails, phones); err != nil {
			logger.Warn().Err(err).Str("owner_id", ownerID).Msg("snapshot cache write failed")
		}
	}
	return importer.NewSnapshot(emails, phones), nil
}

func parseMapping(raw map[string]string) (map[int]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	mapping := make(map[int]string, len(raw))
	for col, field := range raw {
		idx, err := strconv.Atoi(col)
		if err != nil {
			return nil, fmt.Errorf("mapping column %q is not an index", col)
		}
		if !isKnownField(field) {
			return nil, fmt.Errorf("mapping column %q targets unknown field %q", col, field)
		}
		mapping[idx] = field
	}
	return mapping, nil
}

func isKnownField(field string) bool {
	for _, f := range constants.AllFields {
		if f == field {
			return true
		}
	}
	return false
}

// candidateFromRecord converts one fixed record into the persistence model.
// Numeric fields arrive canonicalized by the fixer; values that still fail
// to parse are stored as NULL rather than zero.
func candidateFromRecord(ownerID, batchID string, row importer.RowResult) (*models.Candidate, error) {
	candidateUUID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate candidate id: %w", err)
	}

	rec := row.Record
	c := &models.Candidate{
		CandidateID:   candidateUUID.String(),
		OwnerID:       ownerID,
		Name:          rec.Value(constants.FieldName),
		Phone:         rec.Value(constants.FieldPhone),
		Email:         rec.Value(constants.FieldEmail),
		Location:      rec.Value(constants.FieldLocation),
		Position:      rec.Value(constants.FieldPosition),
		Company:       rec.Value(constants.FieldCompany),
		Client:        rec.Value(constants.FieldClient),
		SPOC:          rec.Value(constants.FieldSPOC),
		Status:        rec.Value(constants.FieldStatus),
		SourceOfCV:    rec.Value(constants.FieldSourceOfCV),
		Category:      row.Validation.Category,
		Confidence:    row.Validation.Confidence,
		ImportBatchID: batchID,
	}

	c.Experience = parseFloatPtr(rec.Value(constants.FieldExperience))
	c.CTC = parseFloatPtr(rec.Value(constants.FieldCTC))
	c.ExpectedSalary = parseFloatPtr(rec.Value(constants.FieldExpectedSalary))
	c.NoticePeriod = parseIntPtr(rec.Value(constants.FieldNoticePeriod))

	if len(rec.Duplicates) > 0 {
		alternates, err := json.Marshal(rec.Duplicates)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal alternates: %w", err)
		}
		c.AlternatesJSON = datatypes.JSON(alternates)
	}
	return c, nil
}

func parseFloatPtr(v string) *float64 {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseIntPtr(v string) *int {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}
