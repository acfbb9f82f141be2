// Package exchange exports flashcards to JSON files and imports them from
// JSON, CSV and XLSX files kept in one directory.
package exchange

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/logic/commands"
	"github.com/phrazzld/quickcache/internal/platform/jsonfile"
	"github.com/phrazzld/quickcache/internal/platform/logger"
)

var (
	// ErrInvalidFileName is returned when an export file name is not a bare .json name.
	ErrInvalidFileName = errors.New("File name should end with .json and contain no directories")

	// ErrUnsupportedFormat is returned when an import file is not .json, .csv or .xlsx.
	ErrUnsupportedFormat = errors.New("File should end with .json, .csv or .xlsx")
)

// Exchange reads and writes flashcard files in a directory.
type Exchange struct {
	dir       string
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

// Ensure Exchange implements the commands.Exchange interface
var _ commands.Exchange = (*Exchange)(nil)

// New creates an Exchange rooted at dir.
func New(dir string, log *slog.Logger) *Exchange {
	if log == nil {
		log = slog.Default()
	}
	return &Exchange{
		dir:       dir,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    log.With(slog.String("component", "exchange")),
	}
}

// Dir returns the directory files are read from and written to.
func (e *Exchange) Dir() string {
	return e.dir
}

// Export implements commands.Exchange.Export. The file uses the JSON
// storage format.
func (e *Exchange) Export(ctx context.Context, fileName string, cards []*domain.Flashcard) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !isExportFileName(fileName) {
		return "", ErrInvalidFileName
	}

	data, err := jsonfile.EncodeFlashcards(cards)
	if err != nil {
		return "", err
	}
	path := filepath.Join(e.dir, fileName)
	if err := jsonfile.WriteFile(path, data); err != nil {
		return "", err
	}

	logger.FromContextOrDefault(ctx, e.logger).Info("exported flashcards",
		slog.String("path", path),
		slog.Int("flashcards", len(cards)))
	return path, nil
}

// Import implements commands.Exchange.Import. Relative names are resolved
// against the exchange directory.
func (e *Exchange) Import(ctx context.Context, fileName string) ([]*domain.Flashcard, []error, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	path := fileName
	if !filepath.IsAbs(path) {
		path = filepath.Join(e.dir, fileName)
	}

	var (
		cards   []*domain.Flashcard
		rowErrs []error
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		cards, rowErrs, err = readJSON(path)
	case ".csv":
		cards, rowErrs, err = e.readTable(path, readCSVRows)
	case ".xlsx":
		cards, rowErrs, err = e.readTable(path, readXLSXRows)
	default:
		return nil, nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, nil, err
	}

	log := logger.FromContextOrDefault(ctx, e.logger)
	for _, rowErr := range rowErrs {
		log.Warn("skipped invalid row", slog.String("path", path), slog.String("error", rowErr.Error()))
	}
	log.Info("imported flashcards",
		slog.String("path", path),
		slog.Int("flashcards", len(cards)),
		slog.Int("invalid_rows", len(rowErrs)))
	return cards, rowErrs, nil
}

func isExportFileName(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".json") &&
		len(name) > len(".json") &&
		!strings.ContainsAny(name, `/\`) &&
		name == filepath.Base(name)
}
