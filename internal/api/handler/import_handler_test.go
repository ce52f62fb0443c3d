package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-import-go/internal/config"
	"talent-import-go/internal/constants"
	"talent-import-go/internal/detect"
	"talent-import-go/internal/importer"
	"talent-import-go/internal/quality"
	"talent-import-go/internal/storage"
)

func newTestHandler(t *testing.T) *ImportHandler {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	engine := importer.NewEngine(
		importer.WithReadyThreshold(cfg.Engine.ReadyThreshold),
		importer.WithReviewThreshold(cfg.Engine.ReviewThreshold),
	)
	// No live backends: the batch flow runs with an empty snapshot and
	// skips persistence.
	return NewImportHandler(cfg, &storage.Storage{}, engine)
}

func TestHandleBatchImportWithoutBackends(t *testing.T) {
	h := newTestHandler(t)
	resp, err := h.HandleBatchImport(context.Background(), &BatchImportRequest{
		OwnerID: "owner-1",
		Rows: []detect.RawRow{{
			{Header: "Name", Value: "Ravi Kumar"},
			{Header: "Phone", Value: "9876543210"},
			{Header: "Email", Value: "ravi@example.com"},
		}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.BatchID)
	assert.Equal(t, 1, resp.Report.TotalRows)
	require.Len(t, resp.Report.Rows, 1)
	assert.Equal(t, "Ravi Kumar", resp.Report.Rows[0].Record.Value(constants.FieldName))
}

func TestHandleBatchImportValidation(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.HandleBatchImport(context.Background(), &BatchImportRequest{Rows: []detect.RawRow{{}}})
	assert.ErrorContains(t, err, "owner_id")

	_, err = h.HandleBatchImport(context.Background(), &BatchImportRequest{OwnerID: "owner-1"})
	assert.ErrorContains(t, err, "no rows")

	_, err = h.HandleBatchImport(context.Background(), &BatchImportRequest{
		OwnerID: "owner-1",
		Rows:    []detect.RawRow{{{Value: "x"}}},
		Mapping: map[string]string{"0": "name", "first": "phone"},
	})
	assert.ErrorContains(t, err, "not an index")

	_, err = h.HandleBatchImport(context.Background(), &BatchImportRequest{
		OwnerID: "owner-1",
		Rows:    []detect.RawRow{{{Value: "x"}}},
		Mapping: map[string]string{"0": "name", "1": "shoeSize"},
	})
	assert.ErrorContains(t, err, "unknown field")
}

func TestHandleRevalidate(t *testing.T) {
	h := newTestHandler(t)
	res, err := h.HandleRevalidate(context.Background(), &RevalidateRequest{
		Fields: map[string]string{
			constants.FieldName:  "ravi kumar",
			constants.FieldPhone: "+91 98765 43210",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", res.Record.Value(constants.FieldName))
	assert.Equal(t, "9876543210", res.Record.Value(constants.FieldPhone))

	_, err = h.HandleRevalidate(context.Background(), &RevalidateRequest{
		Fields: map[string]string{"shoeSize": "42"},
	})
	assert.ErrorContains(t, err, "unknown field")
}

func TestCandidateFromRecord(t *testing.T) {
	rec := detect.NewRecord()
	rec.Fields[constants.FieldName] = "Ravi Kumar"
	rec.Fields[constants.FieldPhone] = "9876543210"
	rec.Fields[constants.FieldCTC] = "6.0"
	rec.Fields[constants.FieldNoticePeriod] = "30"
	rec.Fields[constants.FieldExperience] = "not numeric"
	rec.Duplicates[constants.FieldName] = []string{"Ravi K"}

	row := importer.RowResult{
		Index:  3,
		Record: rec,
		Validation: quality.ValidationResult{
			Confidence: 90,
			Category:   constants.CategoryReady,
		},
	}

	c, err := candidateFromRecord("owner-1", "batch-1", row)
	require.NoError(t, err)
	assert.NotEmpty(t, c.CandidateID)
	assert.Equal(t, "owner-1", c.OwnerID)
	assert.Equal(t, "batch-1", c.ImportBatchID)
	require.NotNil(t, c.CTC)
	assert.Equal(t, 6.0, *c.CTC)
	require.NotNil(t, c.NoticePeriod)
	assert.Equal(t, 30, *c.NoticePeriod)
	assert.Nil(t, c.Experience, "unparseable numerics persist as NULL")
	assert.JSONEq(t, `{"name":["Ravi K"]}`, string(c.AlternatesJSON))
	assert.Equal(t, constants.CategoryReady, c.Category)
	assert.Equal(t, 90, c.Confidence)
}
