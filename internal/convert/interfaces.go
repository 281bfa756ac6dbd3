package convert

import (
	"context"

	"github.com/promaxdigital/casestudy/internal/model"
)

// Converter defines the interface for the workbook conversion service.
type Converter interface {
	Convert(ctx context.Context, workbookPath, outputDir string) (*model.ConversionResult, error)
}
