package convert

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/promaxdigital/casestudy/internal/model"
	"github.com/promaxdigital/casestudy/internal/platform"
)

// CSVExtension is appended to each trimmed sheet name
const CSVExtension = ".csv"

var (
	// ErrNoSheets is returned for a workbook that contains no sheets
	ErrNoSheets = errors.New("workbook has no sheets")

	// ErrDuplicateFile is returned when two sheet names trim to the same file
	ErrDuplicateFile = errors.New("sheets map to the same file")
)

// renderedSheet is a sheet already encoded as CSV, waiting to be written
type renderedSheet struct {
	name    string
	file    string
	data    []byte
	rows    int
	columns int
}

// Service converts workbooks to CSV
type Service struct {
	logger *zap.Logger
	newID  func() string
}

// NewService creates a new conversion service
func NewService(logger *zap.Logger) Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Convert reads every sheet of workbookPath and writes <sheet>.csv files into
// outputDir. Nothing is written unless the whole workbook could be read.
func (s *Service) Convert(ctx context.Context, workbookPath, outputDir string) (*model.ConversionResult, error) {
	runID := s.newID()
	log := s.logger.With(zap.String("run_id", runID))

	log.Info("reading workbook", zap.String("workbook", workbookPath))
	sheets, err := readWorkbook(ctx, workbookPath)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(sheets))
	for _, sh := range sheets {
		names = append(names, sh.name)
	}
	log.Info("found sheets", zap.Strings("sheets", names))

	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		return nil, fmt.Errorf("convert: create output dir %q: %w", outputDir, err)
	}

	result := &model.ConversionResult{
		RunID:     runID,
		Workbook:  workbookPath,
		OutputDir: outputDir,
		Sheets:    make([]model.SheetExport, 0, len(sheets)),
	}

	for _, sh := range sheets {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("convert: %w", err)
		}
		path := filepath.Join(outputDir, sh.file)
		if err := os.WriteFile(path, sh.data, platform.DefaultFilePermissions); err != nil {
			return nil, fmt.Errorf("convert: write %q: %w", path, err)
		}
		log.Info("converted sheet",
			zap.String("sheet", sh.name),
			zap.String("path", path),
			zap.Int("rows", sh.rows),
		)
		result.Sheets = append(result.Sheets, model.SheetExport{
			Sheet:   sh.name,
			Path:    path,
			Rows:    sh.rows,
			Columns: sh.columns,
		})
	}

	log.Info("all sheets processed", zap.Int("count", len(result.Sheets)))
	return result, nil
}

// SheetFileName returns the CSV file name for a sheet
func SheetFileName(sheet string) string {
	return strings.TrimSpace(sheet) + CSVExtension
}

func readWorkbook(ctx context.Context, workbookPath string) ([]renderedSheet, error) {
	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return nil, fmt.Errorf("convert: open workbook %q: %w", workbookPath, err)
	}
	defer f.Close()

	list := f.GetSheetList()
	if len(list) == 0 {
		return nil, fmt.Errorf("convert: %q: %w", workbookPath, ErrNoSheets)
	}

	sheets := make([]renderedSheet, 0, len(list))
	owners := make(map[string]string, len(list))
	for _, name := range list {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("convert: %w", err)
		}
		file := SheetFileName(name)
		if prev, ok := owners[file]; ok {
			return nil, fmt.Errorf("convert: sheets %q and %q: %w: %s", prev, name, ErrDuplicateFile, file)
		}
		owners[file] = name

		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("convert: read sheet %q: %w", name, err)
		}
		data, width, err := renderCSV(rows)
		if err != nil {
			return nil, fmt.Errorf("convert: encode sheet %q: %w", name, err)
		}
		sheets = append(sheets, renderedSheet{
			name:    name,
			file:    file,
			data:    data,
			rows:    len(rows),
			columns: width,
		})
	}
	return sheets, nil
}

// renderCSV encodes rows with every row padded to the widest one
func renderCSV(rows [][]string) ([]byte, int, error) {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		record := row
		if len(row) < width {
			record = make([]string, width)
			copy(record, row)
		}
		if err := w.Write(record); err != nil {
			return nil, 0, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), width, nil
}
