package csvfile

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/pomo/internal/domain"
)

func sampleSessions() []domain.Session {
	start := time.Date(2026, 2, 24, 10, 0, 0, 0, time.UTC)
	end := start.Add(25 * time.Minute)
	duration := int64(1500)
	return []domain.Session{
		{ID: 1, StartTime: start, EndTime: &end, DurationSec: &duration, Status: domain.StatusCompleted, Type: domain.TypeWork},
		{ID: 2, StartTime: start.Add(time.Hour), Status: domain.StatusRunning, Type: domain.TypeBreak},
	}
}

func TestEncode_EmptyWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewCodec().Encode(&buf, nil))

	assert.Equal(t, "id,start_time,end_time,duration_sec,status,type\n", buf.String())
}

func TestEncode_Rows(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewCodec().Encode(&buf, sampleSessions()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1,2026-02-24T10:00:00+00:00,2026-02-24T10:25:00+00:00,1500,completed,work", lines[1])
	assert.Equal(t, "2,2026-02-24T11:00:00+00:00,,,running,break", lines[2])
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	original := sampleSessions()
	require.NoError(t, NewCodec().Encode(&buf, original))

	decoded, err := NewCodec().Decode(&buf)

	require.NoError(t, err)
	assert.Zero(t, decoded.Skipped)
	assert.Equal(t, original, decoded.Sessions)
}

func TestDecode_SkipsBadRows(t *testing.T) {
	input := "\ufeffid,start_time,end_time,duration_sec,status,type\n" +
		"1,2026-02-24T10:00:00+00:00,2026-02-24T10:25:00+00:00,1500,completed,work\n" +
		"abc,2026-02-24T10:00:00+00:00,,,running,work\n" +
		"3,2026-02-24T10:00:00+00:00,,,paused,work\n" +
		"4,not-a-time,,,running,work\n" +
		"5,2026-02-24T10:00:00,2026-02-24T10:10:00,oops,completed,\n"

	decoded, err := NewCodec().Decode(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 2, decoded.Skipped)
	require.Len(t, decoded.Sessions, 3)

	assert.Equal(t, int64(4), decoded.Sessions[1].ID)
	assert.True(t, decoded.Sessions[1].StartTime.IsZero())

	last := decoded.Sessions[2]
	assert.Equal(t, domain.TypeWork, last.Type)
	assert.Nil(t, last.DurationSec)
	require.NotNil(t, last.EndTime)
	assert.Equal(t, time.Date(2026, 2, 24, 10, 10, 0, 0, time.UTC), *last.EndTime)
}

func TestDecode_ColumnsByName(t *testing.T) {
	input := "status,id\ncompleted,9\n"

	decoded, err := NewCodec().Decode(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, decoded.Sessions, 1)
	assert.Equal(t, int64(9), decoded.Sessions[0].ID)
	assert.Equal(t, domain.StatusCompleted, decoded.Sessions[0].Status)
}

func TestDecode_RejectsMissingColumns(t *testing.T) {
	_, err := NewCodec().Decode(strings.NewReader("foo,bar\n1,2\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewCodec().Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
