// Package export renders stored parse results as XLSX workbooks.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/Shubh2310-developer/cc-statement-parser/internal/extraction"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/repository"
)

// Service is a thin façade over the result repository that produces XLSX
// bytes for exports.
type Service struct {
	resultsRepo repository.ParseResultRepository
	logger      *slog.Logger
}

func NewService(results repository.ParseResultRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{resultsRepo: results, logger: logger}
}

// TransactionsXLSX returns a workbook with one row per transaction of the
// given job's result.
func (s *Service) TransactionsXLSX(ctx context.Context, jobID uuid.UUID) ([]byte, error) {
	start := time.Now()

	row, err := s.resultsRepo.GetByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("load result: %w", err)
	}
	var transactions []extraction.Transaction
	if len(row.Transactions) > 0 {
		if err := json.Unmarshal(row.Transactions, &transactions); err != nil {
			return nil, fmt.Errorf("decode transactions: %w", err)
		}
	}

	f := excelize.NewFile()
	const sheet = "Transactions"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Description", "Amount", "Type", "Confidence", "Page"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for ri, tx := range transactions {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, ri+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
		txType := "DEBIT"
		if tx.Credit {
			txType = "CREDIT"
		}
		write(1, tx.Date)
		write(2, tx.Description)
		write(3, tx.Amount.String())
		write(4, txType)
		write(5, tx.Confidence)
		write(6, tx.Page+1)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.InfoContext(ctx, "export.xlsx.ok",
		"job_id", jobID,
		"transactions", len(transactions),
		"duration_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}
