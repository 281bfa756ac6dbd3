package convert

// Package convert flattens every sheet of an Excel workbook into one CSV file
// per sheet.
