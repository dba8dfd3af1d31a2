package handler

import (
	"context"
	"errors"

	"github.com/unimatrix-fi/ofx-bridge/internal/models"
	"github.com/unimatrix-fi/ofx-bridge/internal/services"
)

// MockDatabaseClient is a function-field mock of DatabaseClient.
type MockDatabaseClient struct {
	SaveSourceFileFunc  func(ctx context.Context, source models.SourceFile) error
	ListSourceFilesFunc func(ctx context.Context) ([]models.SourceFile, error)
	SaveConversionFunc  func(ctx context.Context, conv models.Conversion) error
	ListConversionsFunc func(ctx context.Context, month string) ([]models.Conversion, error)
}

func (m *MockDatabaseClient) SaveSourceFile(ctx context.Context, source models.SourceFile) error {
	if m.SaveSourceFileFunc != nil {
		return m.SaveSourceFileFunc(ctx, source)
	}
	return nil
}

func (m *MockDatabaseClient) ListSourceFiles(ctx context.Context) ([]models.SourceFile, error) {
	if m.ListSourceFilesFunc != nil {
		return m.ListSourceFilesFunc(ctx)
	}
	return nil, nil
}

func (m *MockDatabaseClient) SaveConversion(ctx context.Context, conv models.Conversion) error {
	if m.SaveConversionFunc != nil {
		return m.SaveConversionFunc(ctx, conv)
	}
	return nil
}

func (m *MockDatabaseClient) ListConversions(ctx context.Context, month string) ([]models.Conversion, error) {
	if m.ListConversionsFunc != nil {
		return m.ListConversionsFunc(ctx, month)
	}
	return nil, nil
}

// MockBlobClient is a function-field mock of BlobClient.
type MockBlobClient struct {
	UploadFunc       func(ctx context.Context, containerName, blobName string, data []byte) error
	DownloadFunc     func(ctx context.Context, containerName, blobName string) ([]byte, error)
	UploadTextFunc   func(ctx context.Context, containerName, blobName, text string) error
	DownloadTextFunc func(ctx context.Context, containerName, blobName string) (string, error)
}

func (m *MockBlobClient) Upload(ctx context.Context, containerName, blobName string, data []byte) error {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, containerName, blobName, data)
	}
	return nil
}

func (m *MockBlobClient) Download(ctx context.Context, containerName, blobName string) ([]byte, error) {
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, containerName, blobName)
	}
	return nil, errors.New("not found")
}

func (m *MockBlobClient) UploadText(ctx context.Context, containerName, blobName, text string) error {
	if m.UploadTextFunc != nil {
		return m.UploadTextFunc(ctx, containerName, blobName, text)
	}
	return nil
}

func (m *MockBlobClient) DownloadText(ctx context.Context, containerName, blobName string) (string, error) {
	if m.DownloadTextFunc != nil {
		return m.DownloadTextFunc(ctx, containerName, blobName)
	}
	return "", errors.New("not found")
}

// MockQueueClient is a function-field mock of QueueClient.
type MockQueueClient struct {
	EnqueueMessageFunc func(ctx context.Context, queueName string, message any) error
}

func (m *MockQueueClient) EnqueueMessage(ctx context.Context, queueName string, message any) error {
	if m.EnqueueMessageFunc != nil {
		return m.EnqueueMessageFunc(ctx, queueName, message)
	}
	return nil
}

// MockEmailClient is a function-field mock of EmailClient.
type MockEmailClient struct {
	SendEmailFunc     func(ctx context.Context, to []string, subject, body string, attachments ...services.Attachment) error
	SendStatementFunc func(ctx context.Context, to []string, filename, document string, transactions, dropped int, start, end string) error
}

func (m *MockEmailClient) SendEmail(ctx context.Context, to []string, subject, body string, attachments ...services.Attachment) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, to, subject, body, attachments...)
	}
	return nil
}

func (m *MockEmailClient) SendStatement(ctx context.Context, to []string, filename, document string, transactions, dropped int, start, end string) error {
	if m.SendStatementFunc != nil {
		return m.SendStatementFunc(ctx, to, filename, document, transactions, dropped, start, end)
	}
	return nil
}
