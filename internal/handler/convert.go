package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/unimatrix-fi/ofx-bridge/internal/models"
	"github.com/unimatrix-fi/ofx-bridge/internal/ofx"
	"github.com/unimatrix-fi/ofx-bridge/internal/tabular"
)

// ConvertRequest is the payload of POST /api/convert.
type ConvertRequest struct {
	BlobName string               `json:"blobName"`
	Mapping  models.ColumnMapping `json:"mapping"`
	Account  AccountRequest       `json:"account"`
	Options  ofx.Options          `json:"options"`
	EmailTo  string               `json:"emailTo,omitempty"`
}

// AccountRequest carries the account metadata with the type still as a
// raw string so it can be validated in one place.
type AccountRequest struct {
	BankID    string `json:"bankId"`
	AccountID string `json:"accountId"`
	Type      string `json:"accountType"`
	Currency  string `json:"currency"`
	Org       string `json:"org"`
	FID       string `json:"fid"`
}

// ConvertResponse reports a finished conversion.
type ConvertResponse struct {
	Status       string `json:"status"`
	OutputBlob   string `json:"outputBlob"`
	Transactions int    `json:"transactions"`
	Dropped      int    `json:"dropped"`
	Start        string `json:"start"`
	End          string `json:"end"`
}

// HandleConvert runs one synchronous conversion: download the stored
// source, decode it, run the OFX pipeline, store the document under
// exports/ and record the run. Row-level defects never fail the request;
// a mapping that names missing columns does, before anything is written.
func (d *Dependencies) HandleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("failed to decode convert request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.BlobName == "" {
		WriteError(w, http.StatusBadRequest, "Missing blobName")
		return
	}

	accountType, err := models.ParseAccountType(req.Account.Type)
	if err != nil {
		slog.Warn("invalid account type in convert request", "account_type", req.Account.Type)
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	meta := models.AccountMeta{
		BankID:    req.Account.BankID,
		AccountID: req.Account.AccountID,
		Type:      accountType,
		Currency:  req.Account.Currency,
		Org:       req.Account.Org,
		FID:       req.Account.FID,
	}

	data, err := d.Blob.Download(r.Context(), dataContainer, req.BlobName)
	if err != nil {
		slog.Error("failed to download source for conversion", "blob_name", req.BlobName, "error", err)
		WriteError(w, http.StatusNotFound, "Source file not found: "+err.Error())
		return
	}

	table, err := tabular.Decode(req.BlobName, data)
	if err != nil {
		slog.Warn("failed to decode source for conversion", "blob_name", req.BlobName, "error", err)
		WriteError(w, http.StatusUnprocessableEntity, "Failed to decode source: "+err.Error())
		return
	}

	// The reference time enters the pipeline here; the core below is pure.
	result, err := ofx.Convert(table, req.Mapping, meta, req.Options, time.Now())
	if err != nil {
		slog.Warn("conversion rejected", "blob_name", req.BlobName, "error", err)
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	slog.Info("conversion complete", "blob_name", req.BlobName, "transactions", result.Transactions, "dropped", result.Dropped)

	outputBlob := exportPrefix + exportName(req.BlobName)
	if err := d.Blob.UploadText(r.Context(), dataContainer, outputBlob, result.Document); err != nil {
		slog.Error("failed to store OFX document", "output_blob", outputBlob, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to store document: "+err.Error())
		return
	}

	conv := models.Conversion{
		ID:           uuid.New().String(),
		SourceBlob:   req.BlobName,
		OutputBlob:   outputBlob,
		Transactions: result.Transactions,
		Dropped:      result.Dropped,
		Start:        result.Start.Format("20060102"),
		End:          result.End.Format("20060102"),
		Currency:     meta.Currency,
		AccountType:  string(meta.Type),
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
	if err := d.Database.SaveConversion(r.Context(), conv); err != nil {
		// History is best-effort; the document is already stored.
		slog.Error("failed to record conversion", "conversion_id", conv.ID, "error", err)
	}

	if req.EmailTo != "" && d.Email != nil {
		filename := path.Base(outputBlob)
		if err := d.Email.SendStatement(r.Context(), []string{req.EmailTo}, filename, result.Document, result.Transactions, result.Dropped, conv.Start, conv.End); err != nil {
			slog.Error("failed to email statement", "recipient", req.EmailTo, "error", err)
		} else {
			slog.Info("statement emailed", "recipient", req.EmailTo, "output_blob", outputBlob)
		}
	}

	WriteJSON(w, http.StatusOK, ConvertResponse{
		Status:       "success",
		OutputBlob:   outputBlob,
		Transactions: result.Transactions,
		Dropped:      result.Dropped,
		Start:        conv.Start,
		End:          conv.End,
	})
}

// exportName derives the .ofx file name from the source blob name.
func exportName(blobName string) string {
	base := path.Base(blobName)
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".ofx"
}
