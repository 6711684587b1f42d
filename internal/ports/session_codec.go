package ports

import (
	"io"

	"github.com/renato0307/pomo/internal/domain"
)

// DecodeResult holds the records read from a bulk file and the rows that could not be used
type DecodeResult struct {
	Sessions []domain.Session
	Skipped  int
}

// SessionCodec serializes the full session list to and from a tabular text format
type SessionCodec interface {
	Decode(r io.Reader) (*DecodeResult, error)
	Encode(w io.Writer, sessions []domain.Session) error
}
