package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/renato0307/pomo/internal/api"
	"github.com/renato0307/pomo/internal/logging"
)

const exportFilename = "pomodoros.csv"

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if _, err := s.transfer.Export(r.Context(), tenantFrom(r), &buf); err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Logger.Warn("Failed to write export", "error", err)
	}
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondMessage(w, "file too large", http.StatusRequestEntityTooLarge)
			return
		}
		respondMessage(w, "file required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondMessage(w, "file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		respondMessage(w, "only .csv files are accepted", http.StatusBadRequest)
		return
	}

	result, err := s.transfer.Import(r.Context(), tenantFrom(r), file)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, api.Import{
		ImportedCount: result.Imported,
		Message:       fmt.Sprintf("%d imported, %d skipped", result.Imported, result.Skipped),
		OK:            true,
		SkippedCount:  result.Skipped,
	}, http.StatusOK)
}
