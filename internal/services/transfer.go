package services

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"

	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/ports"
)

// TransferService exports and imports the full session list
type TransferService struct {
	codec  ports.SessionCodec
	stores StoreProvider
}

// NewTransferService creates a new TransferService
func NewTransferService(stores StoreProvider, codec ports.SessionCodec) *TransferService {
	return &TransferService{
		codec:  codec,
		stores: stores,
	}
}

// Export writes every session of the tenant to w; returns the number of records written
func (s *TransferService) Export(ctx context.Context, tenant string, w io.Writer) (count int, err error) {
	ctx, span := startSpan(ctx, "pomo.transfer.export", tenant)
	defer func() { endSpan(span, err) }()

	st, err := s.stores.Get(ctx, tenant)
	if err != nil {
		return 0, err
	}
	snap := st.Snapshot()

	if err := s.codec.Encode(w, snap.Sessions); err != nil {
		logging.Logger.Error("Failed to export sessions", "tenant", tenant, "error", err)
		return 0, fmt.Errorf("failed to export sessions: %w", err)
	}

	span.SetAttributes(attribute.Int("pomo.transfer.records", len(snap.Sessions)))
	logging.Logger.Info("Sessions exported", "tenant", tenant, "count", len(snap.Sessions))
	return len(snap.Sessions), nil
}

// Import reads sessions from r and adds those whose id is new to the tenant's store
func (s *TransferService) Import(ctx context.Context, tenant string, r io.Reader) (result *ImportResult, err error) {
	ctx, span := startSpan(ctx, "pomo.transfer.import", tenant)
	defer func() { endSpan(span, err) }()

	decoded, err := s.codec.Decode(r)
	if err != nil {
		logging.Logger.Warn("Failed to read import file", "tenant", tenant, "error", err)
		return nil, err
	}

	st, err := s.stores.Get(ctx, tenant)
	if err != nil {
		return nil, err
	}
	imported := st.Import(decoded.Sessions)

	result = &ImportResult{
		Imported: imported.Imported,
		Skipped:  imported.Skipped + decoded.Skipped,
	}
	span.SetAttributes(
		attribute.Int("pomo.transfer.imported", result.Imported),
		attribute.Int("pomo.transfer.skipped", result.Skipped),
	)
	return result, nil
}
