// Package csvfile reads and writes the session list as CSV with the columns
// id,start_time,end_time,duration_sec,status,type.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/ports"
)

// Columns is the header written on export, in order
var Columns = []string{"id", "start_time", "end_time", "duration_sec", "status", "type"}

const utf8BOM = "\ufeff"

// Codec implements ports.SessionCodec
type Codec struct{}

// NewCodec creates a CSV codec
func NewCodec() *Codec {
	return &Codec{}
}

var _ ports.SessionCodec = (*Codec)(nil)

// Encode writes the header and one row per session
func (c *Codec) Encode(w io.Writer, sessions []domain.Session) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, s := range sessions {
		if err := cw.Write(encodeRow(s)); err != nil {
			return fmt.Errorf("failed to write session %d: %w", s.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func encodeRow(s domain.Session) []string {
	row := []string{strconv.FormatInt(s.ID, 10), "", "", "", string(s.Status), string(s.Type)}
	if !s.StartTime.IsZero() {
		row[1] = domain.FormatTimestamp(s.StartTime)
	}
	if s.HasEndTime() {
		row[2] = domain.FormatTimestamp(*s.EndTime)
	}
	if s.DurationSec != nil {
		row[3] = strconv.FormatInt(*s.DurationSec, 10)
	}
	return row
}

// Decode reads rows by header name. Rows with an unusable id, status or type are
// counted as skipped; unparsable timestamps and durations become absent values.
func (c *Codec) Decode(r io.Reader) (*ports.DecodeResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: file is empty", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	result := &ports.DecodeResult{}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				logging.Logger.Warn("Skipping malformed CSV row", "line", line, "error", err)
				result.Skipped++
				continue
			}
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		session, err := decodeRow(cols, record)
		if err != nil {
			logging.Logger.Warn("Skipping CSV row", "line", line, "error", err)
			result.Skipped++
			continue
		}
		result.Sessions = append(result.Sessions, session)
	}
	return result, nil
}

type columns map[string]int

func columnIndex(header []string) (columns, error) {
	cols := make(columns, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "status"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", domain.ErrInvalidInput, required)
		}
	}
	return cols, nil
}

func (c columns) get(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func decodeRow(cols columns, record []string) (domain.Session, error) {
	id, err := strconv.ParseInt(cols.get(record, "id"), 10, 64)
	if err != nil || id <= 0 {
		return domain.Session{}, fmt.Errorf("%w: invalid id %q", domain.ErrInvalidInput, cols.get(record, "id"))
	}

	status, err := domain.ParseSessionStatus(cols.get(record, "status"))
	if err != nil {
		return domain.Session{}, err
	}

	sessionType, err := domain.ParseSessionType(cols.get(record, "type"))
	if err != nil {
		return domain.Session{}, err
	}

	session := domain.Session{
		ID:     id,
		Status: status,
		Type:   sessionType,
	}
	if start, ok := parseTime(id, "start_time", cols.get(record, "start_time")); ok {
		session.StartTime = start
	}
	if end, ok := parseTime(id, "end_time", cols.get(record, "end_time")); ok {
		session.EndTime = &end
	}
	if raw := cols.get(record, "duration_sec"); raw != "" {
		if d, err := strconv.ParseInt(raw, 10, 64); err == nil && d >= 0 {
			session.DurationSec = &d
		} else {
			logging.Logger.Warn("Ignoring invalid duration", "id", id, "value", raw)
		}
	}
	return session, nil
}

// parseTime reads an optional timestamp; unparsable values are logged and treated as absent
func parseTime(id int64, column, raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	t, err := domain.ParseTimestamp(raw)
	if err != nil {
		logging.Logger.Warn("Ignoring unparsable timestamp", "id", id, "column", column, "error", err)
		return time.Time{}, false
	}
	return t.UTC(), true
}
