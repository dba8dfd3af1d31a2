package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"
)

// HandleDownload streams a stored OFX document. The blob query parameter
// must name an export; sources are not served.
func (d *Dependencies) HandleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	blobName := r.URL.Query().Get("blob")
	if blobName == "" {
		WriteError(w, http.StatusBadRequest, "Missing blob parameter")
		return
	}
	if !strings.HasPrefix(blobName, exportPrefix) || strings.Contains(blobName, "..") {
		slog.Warn("download rejected for non-export blob", "blob_name", blobName)
		WriteError(w, http.StatusBadRequest, "Only exported documents can be downloaded")
		return
	}

	document, err := d.Blob.DownloadText(r.Context(), dataContainer, blobName)
	if err != nil {
		slog.Error("failed to download export", "blob_name", blobName, "error", err)
		WriteError(w, http.StatusNotFound, "Document not found")
		return
	}

	w.Header().Set("Content-Type", "application/x-ofx")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", path.Base(blobName)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(document)); err != nil {
		slog.Error("failed to write download response", "blob_name", blobName, "error", err)
	}
}
