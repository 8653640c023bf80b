package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seniorworks/chatbot-backend/internal/entity"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

const (
	jobNameColumn       = "직업명"
	activityLevelColumn = "신체활동수준"
)

// Loader reads knowledge-source CSV files from a directory and turns each
// row into one normalized Document. Files are EUC-KR encoded and
// comma-delimited; the job-name column becomes metadata instead of body
// text.
type Loader struct {
	dir    string
	logger *zap.Logger
}

func NewLoader(dir string, logger *zap.Logger) *Loader {
	return &Loader{
		dir:    dir,
		logger: logger,
	}
}

// Load scans the source directory and returns all documents it could
// parse. A malformed file is logged and skipped; Load only fails when the
// directory itself cannot be read or created. A missing directory is
// created and yields an empty document set, so startup still succeeds.
func (l *Loader) Load() ([]entity.Document, error) {
	if _, err := os.Stat(l.dir); os.IsNotExist(err) {
		if err := os.MkdirAll(l.dir, 0o755); err != nil {
			return nil, fmt.Errorf("create knowledge directory %s: %w", l.dir, err)
		}
		l.logger.Warn("knowledge directory did not exist, created empty one",
			zap.String("dir", l.dir),
		)
		return nil, nil
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read knowledge directory %s: %w", l.dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			files = append(files, e.Name())
		}
	}

	if len(files) == 0 {
		l.logger.Warn("no CSV files found in knowledge directory, chatbot answers will be limited",
			zap.String("dir", l.dir),
		)
		return nil, nil
	}

	var documents []entity.Document
	for _, name := range files {
		path := filepath.Join(l.dir, name)

		docs, err := l.loadFile(path)
		if err != nil {
			l.logger.Error("failed to load knowledge file, skipping",
				zap.String("file", path),
				zap.Error(err),
			)
			continue
		}

		l.logger.Info("knowledge file loaded",
			zap.String("file", name),
			zap.Int("documents", len(docs)),
		)
		documents = append(documents, docs...)
	}

	if len(documents) == 0 {
		l.logger.Error("no documents loaded from any knowledge file",
			zap.String("dir", l.dir),
		)
	}

	return documents, nil
}

// loadFile parses one EUC-KR CSV file into documents, one per data row.
// Any parse error discards the whole file.
func (l *Loader) loadFile(path string) ([]entity.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	decoded := transform.NewReader(f, korean.EUCKR.NewDecoder())
	reader := csv.NewReader(decoded)
	reader.Comma = ','

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("file has no data rows")
	}

	header := records[0]
	base := filepath.Base(path)

	documents := make([]entity.Document, 0, len(records)-1)
	for i, row := range records[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", i+2, len(row), len(header))
		}

		doc := entity.Document{
			ID: fmt.Sprintf("%s:%d", base, i),
			Metadata: entity.ChunkMetadata{
				Source: base,
			},
		}

		var body strings.Builder
		for col, value := range row {
			key := strings.TrimSpace(header[col])
			value = strings.TrimSpace(value)

			switch key {
			case jobNameColumn:
				// Designated metadata key, not body text.
				doc.Metadata.JobName = value
				continue
			case activityLevelColumn:
				doc.Metadata.ActivityLevel = value
			}

			if body.Len() > 0 {
				body.WriteString("\n")
			}
			body.WriteString(key)
			body.WriteString(": ")
			body.WriteString(value)
		}

		doc.Content = body.String()
		documents = append(documents, doc)
	}

	return documents, nil
}
