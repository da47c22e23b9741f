// Package impexp moves ledger entries between the JSON snapshot store and
// CSV files. Import runs the category normalizer over every row, so corrupted
// spellings are repaired at ingestion rather than leaking into history.
package impexp

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/moktak128bit/gagyebu/internal/logging"
	"github.com/moktak128bit/gagyebu/internal/models"
	"github.com/moktak128bit/gagyebu/internal/normalizer"
)

// Delimiter is the CSV delimiter used for both import and export. It is set
// once from configuration before any command runs.
var Delimiter rune = ','

// SetDelimiter configures the CSV delimiter on both the read and the write
// path. A snapshot exported with a custom delimiter must re-import cleanly.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = delim
		return gocsv.NewSafeCSVWriter(w)
	})
}

// Importer reads CSV files into validated, normalized ledger entries.
type Importer struct {
	logger logging.Logger
}

// NewImporter creates an Importer.
func NewImporter(logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Importer{logger: logger}
}

// ImportFile reads entries from a CSV file. Each row gets its category and
// sub-category normalized and its defaults filled (id, currency); rows that
// fail validation are skipped with a warning and reported in the second
// return value.
func (i *Importer) ImportFile(filePath string) ([]models.Entry, int, error) {
	i.logger.Info("Reading CSV file",
		logging.Field{Key: logging.FieldInputFile, Value: filePath})

	file, err := os.Open(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			i.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []models.Entry
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, 0, fmt.Errorf("error parsing CSV file: %w", err)
	}

	entries := make([]models.Entry, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		entry := row
		entry.Category = normalizer.Category(entry.Category)
		entry.SubCategory = normalizer.SubCategory(entry.SubCategory)
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		if entry.Currency == "" {
			entry.Currency = models.CurrencyKRW
		}
		if err := entry.Validate(); err != nil {
			skipped++
			i.logger.WithError(err).Warn("Skipping invalid CSV row",
				logging.Field{Key: logging.FieldEntryID, Value: entry.ID})
			continue
		}
		entries = append(entries, entry)
	}

	i.logger.Info("Imported CSV entries",
		logging.Field{Key: logging.FieldCount, Value: len(entries)},
		logging.Field{Key: "skipped", Value: skipped},
	)
	return entries, skipped, nil
}

// ExportFile writes entries to a CSV file in the standard column layout.
func ExportFile(entries []models.Entry, filePath string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&entries, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	logger.Info("Exported CSV entries",
		logging.Field{Key: logging.FieldOutputFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(entries)},
	)
	return nil
}
