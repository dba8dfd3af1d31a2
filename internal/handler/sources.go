package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/unimatrix-fi/ofx-bridge/internal/models"
)

// HandleSources lists the inspected source files.
func (d *Dependencies) HandleSources(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	sources, err := d.Database.ListSourceFiles(r.Context())
	if err != nil {
		slog.Error("failed to list source files", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to list sources")
		return
	}
	if sources == nil {
		sources = []models.SourceFile{}
	}

	WriteJSON(w, http.StatusOK, sources)
}

// HandleConversions lists the conversion history for a month. The month
// query parameter is "YYYY-MM"; it defaults to the current month.
func (d *Dependencies) HandleConversions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	conversions, err := d.Database.ListConversions(r.Context(), month)
	if err != nil {
		slog.Error("failed to list conversions", "month", month, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to list conversions")
		return
	}
	if conversions == nil {
		conversions = []models.Conversion{}
	}

	WriteJSON(w, http.StatusOK, conversions)
}
