package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unimatrix-fi/ofx-bridge/internal/models"
)

func TestHandleSources_Success(t *testing.T) {
	mockDB := &MockDatabaseClient{
		ListSourceFilesFunc: func(ctx context.Context) ([]models.SourceFile, error) {
			return []models.SourceFile{
				{BlobName: "uploads/20240601-120000-statement.csv", Filename: "statement.csv", Columns: []string{"Date", "Amount"}, RowCount: 12},
			}, nil
		},
	}
	deps := &Dependencies{Database: mockDB}

	w := httptest.NewRecorder()
	deps.HandleSources(w, httptest.NewRequest(http.MethodGet, "/api/sources", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var sources []models.SourceFile
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&sources))
	assert.Len(t, sources, 1)
	assert.Equal(t, "statement.csv", sources[0].Filename)
}

func TestHandleSources_EmptyListIsNotNull(t *testing.T) {
	deps := &Dependencies{Database: &MockDatabaseClient{}}

	w := httptest.NewRecorder()
	deps.HandleSources(w, httptest.NewRequest(http.MethodGet, "/api/sources", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestHandleSources_DatabaseError(t *testing.T) {
	mockDB := &MockDatabaseClient{
		ListSourceFilesFunc: func(ctx context.Context) ([]models.SourceFile, error) {
			return nil, errors.New("table unavailable")
		},
	}
	deps := &Dependencies{Database: mockDB}

	w := httptest.NewRecorder()
	deps.HandleSources(w, httptest.NewRequest(http.MethodGet, "/api/sources", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleConversions_MonthParameter(t *testing.T) {
	var requestedMonth string
	mockDB := &MockDatabaseClient{
		ListConversionsFunc: func(ctx context.Context, month string) ([]models.Conversion, error) {
			requestedMonth = month
			return []models.Conversion{{ID: "abc", OutputBlob: "exports/statement.ofx"}}, nil
		},
	}
	deps := &Dependencies{Database: mockDB}

	w := httptest.NewRecorder()
	deps.HandleConversions(w, httptest.NewRequest(http.MethodGet, "/api/conversions?month=2024-06", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-06", requestedMonth)
	var conversions []models.Conversion
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&conversions))
	assert.Len(t, conversions, 1)
}

func TestHandleConversions_DefaultsToCurrentMonth(t *testing.T) {
	var requestedMonth string
	mockDB := &MockDatabaseClient{
		ListConversionsFunc: func(ctx context.Context, month string) ([]models.Conversion, error) {
			requestedMonth = month
			return nil, nil
		},
	}
	deps := &Dependencies{Database: mockDB}

	w := httptest.NewRecorder()
	deps.HandleConversions(w, httptest.NewRequest(http.MethodGet, "/api/conversions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Regexp(t, `^\d{4}-\d{2}$`, requestedMonth)
}
