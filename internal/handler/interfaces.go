package handler

import (
	"context"

	"github.com/unimatrix-fi/ofx-bridge/internal/models"
	"github.com/unimatrix-fi/ofx-bridge/internal/services"
)

// DatabaseClient defines the interface for database operations used by handlers.
type DatabaseClient interface {
	SaveSourceFile(ctx context.Context, source models.SourceFile) error
	ListSourceFiles(ctx context.Context) ([]models.SourceFile, error)
	SaveConversion(ctx context.Context, conv models.Conversion) error
	ListConversions(ctx context.Context, month string) ([]models.Conversion, error)
}

// BlobClient defines the interface for blob storage operations used by handlers.
type BlobClient interface {
	Upload(ctx context.Context, containerName, blobName string, data []byte) error
	Download(ctx context.Context, containerName, blobName string) ([]byte, error)
	UploadText(ctx context.Context, containerName, blobName, text string) error
	DownloadText(ctx context.Context, containerName, blobName string) (string, error)
}

// QueueClient defines the interface for queue operations used by handlers.
type QueueClient interface {
	EnqueueMessage(ctx context.Context, queueName string, message any) error
}

// EmailClient defines the interface for email operations used by handlers.
type EmailClient interface {
	SendEmail(ctx context.Context, to []string, subject, body string, attachments ...services.Attachment) error
	SendStatement(ctx context.Context, to []string, filename, document string, transactions, dropped int, start, end string) error
}
