package service

import (
	"context"
	"datachat"
	"datachat/internal/api/models"
	"datachat/internal/api/repo"
	"datachat/pkg"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	CSVContentType = "text/csv"
	PreviewRows    = 5
)

var ErrNoColumns = errors.New("no columns to parse from file")

type TableService struct {
	store     repo.TableStore
	publisher pkg.EventPublisher
	logger    zerolog.Logger
	now       func() time.Time
}

func NewTableService(store repo.TableStore, publisher pkg.EventPublisher) *TableService {
	if publisher == nil {
		publisher = pkg.NopPublisher{}
	}
	return &TableService{
		store:     store,
		publisher: publisher,
		logger:    datachat.Logger,
		now:       time.Now,
	}
}

// TableUploadedEvent is published after a successful upload.
type TableUploadedEvent struct {
	SessionID string   `json:"sessionId"`
	TableID   string   `json:"tableId"`
	FileName  string   `json:"fileName"`
	Columns   []string `json:"columns"`
	RowCount  int      `json:"rowCount"`
}

// Ingest parses a CSV upload and makes it the session's table. The declared
// content type must be exactly text/csv, the content itself is not sniffed.
func (s *TableService) Ingest(ctx context.Context, sessionID, fileName, contentType string, r io.Reader) (*models.Table, error) {
	if contentType != CSVContentType {
		return nil, newError(KindValidation, fmt.Errorf("invalid file type %q, please upload a CSV file", contentType))
	}

	table, err := ReadTable(r)
	if err != nil {
		s.logger.Warn().Err(err).Str("session", sessionID).Str("file", fileName).Msg("Failed to parse CSV upload")
		return nil, newError(KindParse, err)
	}
	table.ID = uuid.NewString()
	table.FileName = fileName
	table.UploadedAt = s.now()

	if err := s.store.Put(ctx, sessionID, table); err != nil {
		s.logger.Error().Err(err).Str("session", sessionID).Msg("Failed to store table")
		return nil, newError(KindInternal, err)
	}

	s.logger.Info().Str("session", sessionID).Str("table", table.ID).Int("rows", len(table.Rows)).Int("columns", len(table.Columns)).Msg("Table uploaded")
	if err := s.publisher.Publish(ctx, pkg.SubjectTableUploaded, TableUploadedEvent{
		SessionID: sessionID,
		TableID:   table.ID,
		FileName:  fileName,
		Columns:   table.Columns,
		RowCount:  len(table.Rows),
	}); err != nil {
		s.logger.Warn().Err(err).Str("session", sessionID).Msg("Failed to publish upload event")
	}
	return table, nil
}

// ReadTable reads a CSV with a header line. Short rows are padded with
// missing cells, a row longer than the header is an error.
func ReadTable(r io.Reader) (*models.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoColumns
		}
		return nil, err
	}
	columns := normalizeHeader(header)

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) > len(columns) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("error tokenizing data: expected %d fields in line %d, saw %d", len(columns), line, len(record))
		}
		for len(record) < len(columns) {
			record = append(record, "")
		}
		rows = append(rows, record)
	}

	return &models.Table{Columns: columns, Rows: rows}, nil
}

// normalizeHeader names empty headers "Unnamed: <i>" and suffixes duplicates
// with ".1", ".2", ... so that every column name is unique.
func normalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	taken := make(map[string]bool, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		columns[i] = name
		taken[name] = true
	}

	counts := make(map[string]int, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range columns {
		if !seen[name] {
			seen[name] = true
			continue
		}
		n := counts[name]
		var candidate string
		for {
			n++
			candidate = fmt.Sprintf("%s.%d", name, n)
			if !taken[candidate] {
				break
			}
		}
		counts[name] = n
		taken[candidate] = true
		seen[candidate] = true
		columns[i] = candidate
	}
	return columns
}
