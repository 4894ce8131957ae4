package inventory

import (
	"fmt"
	"io"
	"strings"

	"secura-backend/internal/audit"
	"secura-backend/internal/models"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ImportResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// A record is valid when it has at least three fields and brand, model and
// serial number are non-empty after trimming. Invalid records are counted
// and skipped; nothing aborts the batch.
func parseFields(fields []string) (brand, model, serial string, ok bool) {
	if len(fields) < 3 {
		return "", "", "", false
	}
	brand = strings.TrimSpace(fields[0])
	model = strings.TrimSpace(fields[1])
	serial = strings.TrimSpace(fields[2])
	if brand == "" || model == "" || serial == "" {
		return "", "", "", false
	}
	return brand, model, serial, true
}

func (ctl *Controller) importRecords(records [][]string, storeID, userID, summaryFormat string) (ImportResult, error) {
	var res ImportResult
	for _, fields := range records {
		brand, model, serial, ok := parseFields(fields)
		if !ok {
			res.Skipped++
			continue
		}

		product, err := ctl.repo.FindOrCreateProduct(brand, model)
		if err != nil {
			return res, err
		}
		if _, err := ctl.repo.AppendStock(product.ID, serial, storeID, ""); err != nil {
			return res, err
		}
		res.Added++
	}

	if res.Added > 0 {
		entry := fmt.Sprintf(summaryFormat, res.Added)
		if err := audit.Record(ctl.repo, models.ActivityStockAdd, entry, userID); err != nil {
			return res, err
		}
	}

	ctl.log.Info("stock import processed",
		zap.String("store_id", storeID),
		zap.Int("added", res.Added),
		zap.Int("skipped", res.Skipped))

	return res, nil
}

// ImportText processes one comma-separated brand,model,serialNumber
// record per line. With skipHeader the first non-blank line is discarded
// unconditionally (assumed header) and the summary reads as a file import;
// without it the text is a manual bulk entry.
func (ctl *Controller) ImportText(text, storeID, userID string, skipHeader bool) (ImportResult, error) {
	if strings.TrimSpace(text) == "" {
		return ImportResult{}, ErrEmptyImport
	}

	var records [][]string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, strings.Split(line, ","))
	}
	if skipHeader && len(records) > 0 {
		records = records[1:]
	}

	summary := "Bulk added %d items"
	if skipHeader {
		summary = "Excel imported %d items"
	}
	return ctl.importRecords(records, storeID, userID, summary)
}

// ImportWorkbook processes the first sheet of an .xlsx workbook with the
// same record contract; the first row is always treated as a header.
func (ctl *Controller) ImportWorkbook(r io.Reader, storeID, userID string) (ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{}, ErrEmptyImport
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ImportResult{}, fmt.Errorf("read workbook rows: %w", err)
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}

	return ctl.importRecords(rows, storeID, userID, "Excel imported %d items")
}
