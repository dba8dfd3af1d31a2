package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/unimatrix-fi/ofx-bridge/internal/services"
)

// HandleNightlyTrigger emails a digest of the current month's
// conversions to the configured user.
func (d *Dependencies) HandleNightlyTrigger(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slog.Info("Starting nightly trigger processing")

	userEmail := os.Getenv("USER_EMAIL")
	if userEmail == "" {
		slog.Warn("USER_EMAIL environment variable is not set; skipping digest email")
		w.WriteHeader(http.StatusOK)
		return
	}
	if d.Email == nil {
		slog.Warn("email service unavailable; skipping digest email")
		w.WriteHeader(http.StatusOK)
		return
	}

	month := time.Now().Format("2006-01")
	conversions, err := d.Database.ListConversions(ctx, month)
	if err != nil {
		slog.Error("Failed to fetch conversions for digest", "month", month, "error", err)
		http.Error(w, "Failed to fetch conversions", http.StatusInternalServerError)
		return
	}

	if len(conversions) == 0 {
		slog.Info("No conversions this month; skipping digest email", "month", month)
		w.WriteHeader(http.StatusOK)
		return
	}

	subject := fmt.Sprintf("OFX Bridge digest for %s", month)
	body := services.RenderDigestBody(month, conversions)

	if err := d.Email.SendEmail(ctx, []string{userEmail}, subject, body); err != nil {
		slog.Error("Failed to send digest email", "email", userEmail, "error", err)
		http.Error(w, "Failed to send digest email", http.StatusInternalServerError)
		return
	}

	slog.Info("Nightly trigger processing complete", "month", month, "conversions", len(conversions), "email", userEmail)
	w.WriteHeader(http.StatusOK)
}
