package model

// SheetExport describes one CSV file written from a workbook sheet
type SheetExport struct {
	Sheet   string `yaml:"sheet" json:"sheet"`
	Path    string `yaml:"path" json:"path"`
	Rows    int    `yaml:"rows" json:"rows"`
	Columns int    `yaml:"columns" json:"columns"`
}

// ConversionResult is the outcome of a successful workbook conversion
type ConversionResult struct {
	RunID     string        `yaml:"run_id" json:"run_id"`
	Workbook  string        `yaml:"workbook" json:"workbook"`
	OutputDir string        `yaml:"output_dir" json:"output_dir"`
	Sheets    []SheetExport `yaml:"sheets" json:"sheets"`
}
