package utils

import (
	"encoding/json"
	"time"

	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent"
	statementspb "github.com/Shubh2310-developer/cc-statement-parser/gen/proto/statements/v1"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/entity"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/extraction"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.UTC().Format(time.RFC3339)
}

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:         e.ID,
		SourcePath: e.SourcePath,
		Filename:   e.Filename,
		FileExt:    e.FileExt,
		FileSize:   e.FileSize,
		UploadedAt: e.UploadedAt,
	}
}

func ToParseJob(e *ent.ParseJob) *entity.ParseJob {
	return &entity.ParseJob{
		ID:            e.ID,
		DocumentID:    e.DocumentID,
		Format:        e.Format,
		Status:        e.Status,
		DecodeMethod:  e.DecodeMethod,
		Pages:         e.Pages,
		OCRConfidence: e.OcrConfidence,
		StartedAt:     e.StartedAt,
		FinishedAt:    e.FinishedAt,
		ErrorMessage:  e.ErrorMessage,
	}
}

func ToParseResult(e *ent.ParseResult) *entity.ParseResult {
	return &entity.ParseResult{
		ID:                e.ID,
		JobID:             e.JobID,
		Issuer:            e.Issuer,
		IssuerConfidence:  e.IssuerConfidence,
		OverallConfidence: e.OverallConfidence,
		FieldsJSON:        e.Fields,
		TransactionsJSON:  e.Transactions,
		CreatedAt:         e.CreatedAt,
	}
}

func ToPBJob(e *ent.ParseJob) *statementspb.ParseJob {
	pb := &statementspb.ParseJob{
		Id:           e.ID.String(),
		DocumentId:   e.DocumentID.String(),
		Format:       e.Format,
		Status:       e.Status,
		DecodeMethod: strOrEmpty(e.DecodeMethod),
		StartedAt:    e.StartedAt.UTC().Format(time.RFC3339),
		FinishedAt:   timeOrEmpty(e.FinishedAt),
		ErrorMessage: strOrEmpty(e.ErrorMessage),
	}
	if e.Pages != nil {
		pb.Pages = int32(*e.Pages)
	}
	if e.OcrConfidence != nil {
		pb.OcrConfidence = *e.OcrConfidence
	}
	return pb
}

// ToPBResult decodes the stored JSON sections into typed proto messages.
func ToPBResult(e *ent.ParseResult) (*statementspb.ParseResult, error) {
	var fields []extraction.Field
	if len(e.Fields) > 0 {
		if err := json.Unmarshal(e.Fields, &fields); err != nil {
			return nil, err
		}
	}
	var transactions []extraction.Transaction
	if len(e.Transactions) > 0 {
		if err := json.Unmarshal(e.Transactions, &transactions); err != nil {
			return nil, err
		}
	}

	pb := &statementspb.ParseResult{
		Id:                e.ID.String(),
		JobId:             e.JobID.String(),
		Issuer:            e.Issuer,
		IssuerConfidence:  e.IssuerConfidence,
		OverallConfidence: e.OverallConfidence,
		CreatedAt:         e.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, f := range fields {
		pb.Fields = append(pb.Fields, ToPBField(f))
	}
	for _, tx := range transactions {
		pb.Transactions = append(pb.Transactions, ToPBTransaction(tx))
	}
	return pb, nil
}

func ToPBField(f extraction.Field) *statementspb.ExtractedField {
	return &statementspb.ExtractedField{
		FieldId:    f.FieldID,
		RawValue:   f.RawValue,
		Value:      f.Value,
		Normalized: f.Normalized,
		Confidence: f.Confidence,
		Strategy:   string(f.Strategy),
		Snippet:    f.Snippet,
	}
}

func ToPBTransaction(tx extraction.Transaction) *statementspb.Transaction {
	return &statementspb.Transaction{
		Date:        tx.Date,
		Description: tx.Description,
		Amount:      tx.Amount.String(),
		Credit:      tx.Credit,
		Confidence:  tx.Confidence,
		Page:        int32(tx.Page),
	}
}
