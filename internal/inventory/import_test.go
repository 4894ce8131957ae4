package inventory_test

import (
	"bytes"
	"testing"

	"secura-backend/internal/inventory"
	"secura-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestImportText_ManualBulk(t *testing.T) {
	ctl, repo := newTestController(t)

	text := "Dell, XPS13, SN-1\n" +
		"Dell, XPS13, SN-2\n" +
		"Lenovo, T14, SN-3\n" +
		"broken line\n"

	res, err := ctl.ImportText(text, "store1", "staff1", false)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Added)
	assert.Equal(t, 1, res.Skipped)
	assert.Len(t, repo.Stock(), 3)
	assert.Len(t, repo.Products(), 2, "repeated (brand, model) pairs reuse one product")

	logs := repo.ActivityLogs()
	require.Len(t, logs, 1, "bulk actions write one summarizing entry")
	assert.Equal(t, models.ActivityStockAdd, logs[0].Type)
	assert.Equal(t, "Bulk added 3 items", logs[0].Description)
}

func TestImportText_HeaderAndInvalidLines(t *testing.T) {
	ctl, repo := newTestController(t)

	// Header plus 5 data lines, 2 of them invalid.
	text := "Brand,Model,Serial Number\n" +
		"Dell,XPS13,SN-1\n" +
		"Dell,XPS13\n" +
		"Lenovo,T14,SN-2\n" +
		",T14,SN-3\n" +
		"HP,EliteBook,SN-4\n"

	res, err := ctl.ImportText(text, "store1", "staff1", true)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Added, "N data lines minus M invalid")
	assert.Equal(t, 2, res.Skipped)
	assert.Len(t, repo.Stock(), 3)

	logs := repo.ActivityLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, "Excel imported 3 items", logs[0].Description)
}

func TestImportText_BlankLinesIgnored(t *testing.T) {
	ctl, repo := newTestController(t)

	text := "\n\nDell,XPS13,SN-1\n\n   \nLenovo,T14,SN-2\n"

	res, err := ctl.ImportText(text, "store1", "staff1", false)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 0, res.Skipped)
	assert.Len(t, repo.Stock(), 2)
}

func TestImportText_FieldsAreTrimmed(t *testing.T) {
	ctl, repo := newTestController(t)

	res, err := ctl.ImportText("  Dell ,  XPS13 ,  SN-1  ", "store1", "staff1", false)
	require.NoError(t, err)
	require.Equal(t, 1, res.Added)

	stock := repo.Stock()
	require.Len(t, stock, 1)
	assert.Equal(t, "SN-1", stock[0].SerialNumber)

	products := repo.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Dell", products[0].Brand)
	assert.Equal(t, "XPS13", products[0].Model)
}

func TestImportText_Empty(t *testing.T) {
	ctl, repo := newTestController(t)

	_, err := ctl.ImportText("   \n  ", "store1", "staff1", false)
	assert.ErrorIs(t, err, inventory.ErrEmptyImport)
	assert.Empty(t, repo.Stock())
}

func TestImportText_NoValidLinesWritesNoActivity(t *testing.T) {
	ctl, repo := newTestController(t)

	res, err := ctl.ImportText("junk\nmore junk", "store1", "staff1", false)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Added)
	assert.Equal(t, 2, res.Skipped)
	assert.Empty(t, repo.ActivityLogs(), "no activity entry when nothing was added")
}

func TestImportText_ExtraFieldsAreIgnored(t *testing.T) {
	ctl, repo := newTestController(t)

	res, err := ctl.ImportText("Dell,XPS13,SN-1,whatever,else", "store1", "staff1", false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Added)

	stock := repo.Stock()
	require.Len(t, stock, 1)
	assert.Equal(t, "SN-1", stock[0].SerialNumber)
}

func TestImportWorkbook(t *testing.T) {
	ctl, repo := newTestController(t)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Brand", "Model", "Serial Number"},
		{"Dell", "XPS13", "SN-1"},
		{"Lenovo", "T14", "SN-2"},
		{"HP", "EliteBook"}, // short row, skipped
	}
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, name, cell))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	res, err := ctl.ImportWorkbook(&buf, "store2", "admin1")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 1, res.Skipped)

	stock := repo.Stock()
	require.Len(t, stock, 2)
	for _, unit := range stock {
		assert.Equal(t, "store2", unit.StoreID)
		assert.Equal(t, models.StockAvailable, unit.Status)
	}

	logs := repo.ActivityLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, "Excel imported 2 items", logs[0].Description)
}

func TestImportWorkbook_Garbage(t *testing.T) {
	ctl, _ := newTestController(t)

	_, err := ctl.ImportWorkbook(bytes.NewReader([]byte("not a workbook")), "store1", "staff1")
	assert.Error(t, err)
}
