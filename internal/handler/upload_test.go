package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	part.Write([]byte(content))
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestHandleUpload_Success(t *testing.T) {
	mockBlob := &MockBlobClient{}
	mockQueue := &MockQueueClient{}
	deps := &Dependencies{
		Blob:  mockBlob,
		Queue: mockQueue,
	}

	body, contentType := multipartBody(t, "statement.csv", "Date,Amount\n2024-01-05,100")

	mockBlob.UploadFunc = func(ctx context.Context, containerName, blobName string, data []byte) error {
		assert.Equal(t, dataContainer, containerName)
		assert.True(t, strings.HasPrefix(blobName, uploadPrefix))
		// The blob name carries a timestamp, so just check the suffix
		assert.True(t, strings.HasSuffix(blobName, "-statement.csv"))
		assert.Equal(t, "Date,Amount\n2024-01-05,100", string(data))
		return nil
	}

	mockQueue.EnqueueMessageFunc = func(ctx context.Context, queueName string, message any) error {
		assert.Equal(t, inspectQueue, queueName)
		msgMap, ok := message.(map[string]string)
		assert.True(t, ok)
		assert.Equal(t, "statement.csv", msgMap["filename"])
		assert.Contains(t, msgMap["blobName"], uploadPrefix)
		return nil
	}

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	deps.HandleUpload(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "success", resp["status"])
	assert.NotEmpty(t, resp["blobName"])
}

func TestHandleUpload_MethodNotAllowed(t *testing.T) {
	deps := &Dependencies{}
	req := httptest.NewRequest(http.MethodGet, "/api/upload", nil)
	w := httptest.NewRecorder()

	deps.HandleUpload(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleUpload_MissingFile(t *testing.T) {
	deps := &Dependencies{}
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()

	deps.HandleUpload(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUpload_BlobFailure(t *testing.T) {
	mockBlob := &MockBlobClient{
		UploadFunc: func(ctx context.Context, containerName, blobName string, data []byte) error {
			return errors.New("storage down")
		},
	}
	deps := &Dependencies{Blob: mockBlob, Queue: &MockQueueClient{}}

	body, contentType := multipartBody(t, "statement.csv", "x")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	deps.HandleUpload(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
