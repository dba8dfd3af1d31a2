package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/unimatrix-fi/ofx-bridge/internal/models"
	"github.com/unimatrix-fi/ofx-bridge/internal/tabular"
)

// invokeRequest represents the payload from Azure Functions Custom Handler.
type invokeRequest struct {
	Data     map[string]any `json:"Data"`
	Metadata map[string]any `json:"Metadata"`
}

// ProcessQueue handles the queue trigger that inspects uploaded source
// files. It decodes the stored file and records its column set and row
// count so clients can build a column mapping without re-reading the
// blob.
func (d *Dependencies) ProcessQueue(w http.ResponseWriter, r *http.Request) {
	var invokeReq invokeRequest
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("failed to read queue request body", "error", err)
		WriteError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := json.Unmarshal(bodyBytes, &invokeReq); err != nil {
		slog.Error("failed to unmarshal queue request", "error", err)
		WriteError(w, http.StatusBadRequest, "Failed to unmarshal request")
		return
	}

	queueItemVal, ok := invokeReq.Data["queueItem"]
	if !ok {
		queueItemVal, ok = invokeReq.Data["queueitem"]
		if !ok {
			WriteError(w, http.StatusBadRequest, "Missing queueItem in Data")
			return
		}
	}

	queueItemStr, ok := queueItemVal.(string)
	if !ok {
		WriteError(w, http.StatusBadRequest, "queueItem is not a string")
		return
	}

	var queueData map[string]string
	if err := json.Unmarshal([]byte(queueItemStr), &queueData); err != nil {
		slog.Error("failed to unmarshal queueItem", "error", err)
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid queueItem JSON: %v", err))
		return
	}

	blobName := queueData["blobName"]
	if blobName == "" {
		slog.Warn("queue message missing blobName", "queue_data", queueData)
		WriteError(w, http.StatusBadRequest, "Missing blobName")
		return
	}
	filename := queueData["filename"]

	slog.Info("inspecting uploaded source", "blob_name", blobName, "filename", filename)

	data, err := d.Blob.Download(r.Context(), dataContainer, blobName)
	if err != nil {
		slog.Error("failed to download source from blob", "blob_name", blobName, "container", dataContainer, "error", err)
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to download source: %v", err))
		return
	}

	table, err := tabular.Decode(filename, data)
	if err != nil {
		slog.Warn("failed to decode source file", "blob_name", blobName, "filename", filename, "error", err)
		// Consume the message so it doesn't retry forever.
		w.WriteHeader(http.StatusOK)
		return
	}
	slog.Info("decoded source file", "blob_name", blobName, "columns", len(table.Columns), "rows", len(table.Rows))

	source := models.SourceFile{
		BlobName:   blobName,
		Filename:   filename,
		Columns:    table.Columns,
		RowCount:   len(table.Rows),
		UploadedAt: time.Now().Format(time.RFC3339),
	}

	if err := d.Database.SaveSourceFile(r.Context(), source); err != nil {
		slog.Error("failed to save source file record", "blob_name", blobName, "error", err)
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to save source record: %v", err))
		return
	}

	slog.Info("queue inspection complete", "blob_name", blobName, "columns", len(table.Columns), "rows", len(table.Rows))
	w.WriteHeader(http.StatusOK)
}
