package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// writeWorkbook builds a two-sheet fixture shaped like the case-study data
func writeWorkbook(t *testing.T, dir string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "SalesData"))
	require.NoError(t, f.SetSheetRow("SalesData", "A1", &[]any{"Location", "Type", "Sales"}))
	require.NoError(t, f.SetSheetRow("SalesData", "A2", &[]any{"Residential", "Retail", 210}))
	require.NoError(t, f.SetSheetRow("SalesData", "A3", &[]any{"Commercial", "Wholesale"}))

	_, err := f.NewSheet("BrandRatings")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("BrandRatings", "A1", &[]any{"ID", "B12"}))
	require.NoError(t, f.SetSheetRow("BrandRatings", "A2", &[]any{1, "3, maybe"}))

	path := filepath.Join(dir, "EA - Group04.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func newTestService() *Service {
	return &Service{logger: zap.NewNop(), newID: func() string { return "run-1" }}
}

func TestConvert_WritesOneFilePerSheet(t *testing.T) {
	dir := t.TempDir()
	workbook := writeWorkbook(t, dir)
	outDir := filepath.Join(dir, "public", "Data", "source_data")

	result, err := newTestService().Convert(context.Background(), workbook, outDir)
	require.NoError(t, err)

	assert.Equal(t, "run-1", result.RunID)
	assert.Equal(t, outDir, result.OutputDir)
	require.Len(t, result.Sheets, 2)
	assert.Equal(t, "SalesData", result.Sheets[0].Sheet)
	assert.Equal(t, 3, result.Sheets[0].Rows)
	assert.Equal(t, 3, result.Sheets[0].Columns)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"SalesData.csv", "BrandRatings.csv"}, names)

	sales, err := os.ReadFile(filepath.Join(outDir, "SalesData.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Location,Type,Sales\nResidential,Retail,210\nCommercial,Wholesale,\n", string(sales))

	ratings, err := os.ReadFile(filepath.Join(outDir, "BrandRatings.csv"))
	require.NoError(t, err)
	assert.Equal(t, "ID,B12\n1,\"3, maybe\"\n", string(ratings))
}

func TestConvert_OverwritesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	workbook := writeWorkbook(t, dir)
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "SalesData.csv"), []byte("stale"), 0o644))

	_, err := newTestService().Convert(context.Background(), workbook, outDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "SalesData.csv"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestConvert_MissingWorkbookWritesNothing(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "source_data")

	_, err := newTestService().Convert(context.Background(), filepath.Join(dir, "missing.xlsx"), outDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open workbook")

	_, statErr := os.Stat(outDir)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "output dir must not be created")
}

func TestConvert_CorruptWorkbook(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "broken.xlsx")
	require.NoError(t, os.WriteFile(workbook, []byte("not a spreadsheet"), 0o644))
	outDir := filepath.Join(dir, "source_data")

	_, err := newTestService().Convert(context.Background(), workbook, outDir)
	require.Error(t, err)

	_, statErr := os.Stat(outDir)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestConvert_DuplicateTrimmedNames(t *testing.T) {
	dir := t.TempDir()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Sales"))
	require.NoError(t, f.SetCellValue("Sales", "A1", "first"))
	_, err := f.NewSheet(" Sales ")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(" Sales ", "A1", "second"))
	workbook := filepath.Join(dir, "dup.xlsx")
	require.NoError(t, f.SaveAs(workbook))
	require.NoError(t, f.Close())

	outDir := filepath.Join(dir, "source_data")
	result, err := newTestService().Convert(context.Background(), workbook, outDir)
	require.ErrorIs(t, err, ErrDuplicateFile)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "Sales.csv")

	_, statErr := os.Stat(outDir)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "nothing may be written")
}

func TestConvert_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	workbook := writeWorkbook(t, dir)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService().Convert(ctx, workbook, filepath.Join(dir, "out"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestSheetFileName(t *testing.T) {
	tests := []struct {
		sheet string
		want  string
	}{
		{"SalesData", "SalesData.csv"},
		{"  Brand Ratings ", "Brand Ratings.csv"},
		{"Sheet1", "Sheet1.csv"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SheetFileName(tt.sheet), tt.sheet)
	}
}

func TestRenderCSV_PadsToWidestRow(t *testing.T) {
	data, width, err := renderCSV([][]string{{"a"}, {"b", "c", "d"}, {}})
	require.NoError(t, err)
	assert.Equal(t, 3, width)
	assert.Equal(t, "a,,\nb,c,d\n,,\n", string(data))
}

func TestNewService_NilLogger(t *testing.T) {
	svc := NewService(nil)
	require.NotNil(t, svc)
}
