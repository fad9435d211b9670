// Package excel imports vocabulary word lists from Excel or CSV files and
// writes the per-level manifest JSON files the app serves as read-only
// content.
package excel

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/vbcards/internal/vocab"
	"github.com/example/vbcards/pkg/models"
)

// ImportConfig defines the import configuration.
type ImportConfig struct {
	FilePath      string // Path to the Excel or CSV file
	OutputDir     string // Directory the manifest files are written to
	Level         int    // Level the imported words belong to
	LevelName     string // Display name for the level
	WordColumn    string // Column with the word
	MeaningColumn string // Column with the meaning
	ImageColumn   string // Column with the image file name
	SheetName     string // Name of the sheet to import
	StartRow      int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		WordColumn:    "A",
		MeaningColumn: "B",
		ImageColumn:   "C",
		SheetName:     "Sheet1",
		StartRow:      2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation.
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	ManifestPath   string
	Errors         []string
}

// ImportWords imports words from an Excel or CSV file and writes the level
// manifest.
func ImportWords(config ImportConfig) (*ImportResult, error) {
	if config.Level < 1 {
		return nil, fmt.Errorf("invalid level: %d", config.Level)
	}

	ext := strings.ToLower(filepath.Ext(config.FilePath))

	var (
		rows [][]string
		err  error
	)
	if ext == ".csv" {
		rows, err = readCSV(config.FilePath)
	} else {
		rows, err = readExcel(config)
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	manifest := &models.LevelManifest{
		Level:     config.Level,
		LevelName: config.LevelName,
	}
	if manifest.LevelName == "" {
		manifest.LevelName = fmt.Sprintf("Level %d", config.Level)
	}

	wordIdx := columnIndex(config.WordColumn)
	meaningIdx := columnIndex(config.MeaningColumn)
	imageIdx := columnIndex(config.ImageColumn)

	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++

		word := cell(row, wordIdx)
		meaning := cell(row, meaningIdx)
		if word == "" || meaning == "" {
			result.Skipped++
			continue
		}

		entry := models.VocabularyWord{
			ID:       result.Imported + 1,
			Word:     word,
			Meaning:  meaning,
			Level:    config.Level,
			Filename: cell(row, imageIdx),
			Success:  true,
		}
		if entry.Filename != "" {
			entry.Filepath = filepath.ToSlash(filepath.Join("images", fmt.Sprintf("level_%d", config.Level), entry.Filename))
		}
		manifest.Results = append(manifest.Results, entry)
		result.Imported++
	}

	manifest.TotalWords = len(manifest.Results)

	path, err := writeManifest(config.OutputDir, manifest)
	if err != nil {
		return nil, err
	}
	result.ManifestPath = path

	return result, nil
}

// readExcel reads all rows from the configured sheet.
func readExcel(config ImportConfig) ([][]string, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

// readCSV reads all rows from a CSV file.
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// writeManifest serializes the manifest into the output directory.
func writeManifest(dir string, manifest *models.LevelManifest) (string, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(dir, vocab.ManifestFilename(manifest.Level))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}

// columnIndex converts a spreadsheet column letter ("A", "B", ... "AA") to a
// zero-based index. Returns -1 for an empty column spec.
func columnIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	// Numeric specs are accepted too ("1" means the first column).
	if n, err := strconv.Atoi(column); err == nil {
		return n - 1
	}
	idx := 0
	for _, r := range column {
		if r < 'A' || r > 'Z' {
			return -1
		}
		idx = idx*26 + int(r-'A') + 1
	}
	return idx - 1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
