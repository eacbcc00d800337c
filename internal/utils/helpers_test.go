package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/extraction"
)

func TestToDocument(t *testing.T) {
	id := uuid.New()
	uploaded := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	row := &ent.Document{
		ID:         id,
		SourcePath: "/data/statements/october.pdf",
		Filename:   "october.pdf",
		FileExt:    "pdf",
		FileSize:   48213,
		UploadedAt: uploaded,
	}

	dto := ToDocument(row)
	assert.Equal(t, id, dto.ID)
	assert.Equal(t, "/data/statements/october.pdf", dto.SourcePath)
	assert.Equal(t, "pdf", dto.FileExt)
	assert.Equal(t, 48213, dto.FileSize)
	assert.Equal(t, uploaded, dto.UploadedAt)
}

func TestToParseJobAndPBJob(t *testing.T) {
	id, docID := uuid.New(), uuid.New()
	method := "pdf-text"
	pages := 3
	started := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	finished := started.Add(2 * time.Second)
	row := &ent.ParseJob{
		ID:           id,
		DocumentID:   docID,
		Format:       "PDF",
		Status:       "PARSED",
		DecodeMethod: &method,
		Pages:        &pages,
		StartedAt:    started,
		FinishedAt:   &finished,
	}

	dto := ToParseJob(row)
	assert.Equal(t, id, dto.ID)
	assert.Equal(t, docID, dto.DocumentID)
	assert.Equal(t, "PARSED", dto.Status)
	require.NotNil(t, dto.DecodeMethod)
	assert.Equal(t, "pdf-text", *dto.DecodeMethod)
	assert.Nil(t, dto.OCRConfidence)

	pb := ToPBJob(row)
	assert.Equal(t, id.String(), pb.Id)
	assert.Equal(t, int32(3), pb.Pages)
	assert.Equal(t, "2025-10-20T12:00:02Z", pb.FinishedAt)
	assert.Empty(t, pb.ErrorMessage)
}

func TestToPBJob_RunningJobHasNoFinishedAt(t *testing.T) {
	row := &ent.ParseJob{
		ID:         uuid.New(),
		DocumentID: uuid.New(),
		Format:     "PDF",
		Status:     "RUNNING",
		StartedAt:  time.Now(),
	}
	pb := ToPBJob(row)
	assert.Empty(t, pb.FinishedAt)
	assert.Zero(t, pb.Pages)
	assert.Empty(t, pb.DecodeMethod)
}

func resultRow(t *testing.T) *ent.ParseResult {
	t.Helper()
	fields := []extraction.Field{{
		FieldID:    "total_due",
		RawValue:   "1,25,430.50",
		Value:      "125430.5",
		Normalized: true,
		Confidence: 0.91,
		Strategy:   "PROXIMITY",
	}}
	transactions := []extraction.Transaction{{
		Date:        "2025-10-02",
		Description: "GROCERY MART",
		Amount:      decimal.RequireFromString("-1299"),
		Credit:      true,
		Confidence:  0.85,
		Page:        1,
	}}
	fj, err := json.Marshal(fields)
	require.NoError(t, err)
	tj, err := json.Marshal(transactions)
	require.NoError(t, err)

	return &ent.ParseResult{
		ID:                uuid.New(),
		JobID:             uuid.New(),
		Issuer:            "HDFC",
		IssuerConfidence:  0.67,
		OverallConfidence: 0.91,
		Fields:            fj,
		Transactions:      tj,
		CreatedAt:         time.Date(2025, 10, 20, 12, 0, 5, 0, time.UTC),
	}
}

func TestToParseResult(t *testing.T) {
	row := resultRow(t)
	dto := ToParseResult(row)
	assert.Equal(t, row.ID, dto.ID)
	assert.Equal(t, "HDFC", dto.Issuer)
	assert.JSONEq(t, string(row.Fields), string(dto.FieldsJSON))
	assert.JSONEq(t, string(row.Transactions), string(dto.TransactionsJSON))
}

func TestToPBResult_DecodesStoredSections(t *testing.T) {
	row := resultRow(t)
	pb, err := ToPBResult(row)
	require.NoError(t, err)

	assert.Equal(t, "HDFC", pb.Issuer)
	require.Len(t, pb.Fields, 1)
	assert.Equal(t, "total_due", pb.Fields[0].FieldId)
	assert.Equal(t, "125430.5", pb.Fields[0].Value)
	require.Len(t, pb.Transactions, 1)
	assert.Equal(t, "-1299", pb.Transactions[0].Amount)
	assert.True(t, pb.Transactions[0].Credit)
	assert.Equal(t, int32(1), pb.Transactions[0].Page)
}

func TestToPBResult_EmptySectionsAreFine(t *testing.T) {
	row := &ent.ParseResult{
		ID:        uuid.New(),
		JobID:     uuid.New(),
		Issuer:    "UNKNOWN",
		CreatedAt: time.Now(),
	}
	pb, err := ToPBResult(row)
	require.NoError(t, err)
	assert.Empty(t, pb.Fields)
	assert.Empty(t, pb.Transactions)
}
