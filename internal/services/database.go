package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"
	"github.com/unimatrix-fi/ofx-bridge/internal/models"
)

const sourcesPartition = "SOURCES"

// DatabaseService handles interactions with Azure Table Storage. It keeps
// the catalog of inspected source files and the conversion history.
type DatabaseService struct {
	serviceClient    *aztables.ServiceClient
	sourcesTable     string
	conversionsTable string
}

// NewDatabaseService creates a new DatabaseService instance.
func NewDatabaseService() (*DatabaseService, error) {
	tableURL := os.Getenv("TABLE_SERVICE_URL")
	if tableURL == "" {
		return nil, fmt.Errorf("TABLE_SERVICE_URL environment variable is required")
	}

	sourcesTable := os.Getenv("SOURCES_TABLE")
	if sourcesTable == "" {
		sourcesTable = "sources"
	}

	conversionsTable := os.Getenv("CONVERSIONS_TABLE")
	if conversionsTable == "" {
		conversionsTable = "conversions"
	}

	var client *aztables.ServiceClient

	// Check if running locally with Azurite (http endpoint)
	if isLocal(tableURL) {
		slog.Info("using Azurite credentials for database service")
		name, key := getAzuriteCredentials()
		cred, err := aztables.NewSharedKeyCredential(name, key)
		if err != nil {
			return nil, fmt.Errorf("failed to create shared key credential: %w", err)
		}
		var err2 error
		client, err2 = aztables.NewServiceClientWithSharedKey(tableURL, cred, nil)
		if err2 != nil {
			return nil, fmt.Errorf("failed to create table service client with shared key: %w", err2)
		}
	} else {
		// Production: Managed Identity
		slog.Info("using default Azure credentials for database service")
		cred, err := newDefaultAzureCredential()
		if err != nil {
			return nil, fmt.Errorf("failed to create default azure credential: %w", err)
		}
		var err2 error
		client, err2 = aztables.NewServiceClient(tableURL, cred, nil)
		if err2 != nil {
			return nil, fmt.Errorf("failed to create table service client: %w", err2)
		}
	}

	svc := &DatabaseService{
		serviceClient:    client,
		sourcesTable:     sourcesTable,
		conversionsTable: conversionsTable,
	}

	// Ensure tables exist
	if err := svc.CreateTables(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	slog.Info("database service initialized successfully",
		"table_url", tableURL,
		"sources_table", sourcesTable,
		"conversions_table", conversionsTable,
	)
	return svc, nil
}

// CreateTables ensures all required tables exist in Azure Table Storage.
func (s *DatabaseService) CreateTables(ctx context.Context) error {
	for _, tableName := range []string{s.sourcesTable, s.conversionsTable} {
		_, err := s.serviceClient.CreateTable(ctx, tableName, nil)
		if err != nil {
			// Ignore error if table already exists
			var azErr *azcore.ResponseError
			if errors.As(err, &azErr) && azErr.ErrorCode == "TableAlreadyExists" {
				continue
			}
			return fmt.Errorf("failed to create table %s: %w", tableName, err)
		}
	}
	return nil
}

// getClient returns a client for the specified table.
func (s *DatabaseService) getClient(tableName string) *aztables.Client {
	return s.serviceClient.NewClient(tableName)
}

// sourceRowKey derives a table-safe row key from a blob name (blob names
// contain '/' which RowKey forbids).
func sourceRowKey(blobName string) string {
	hash := sha256.Sum256([]byte(blobName))
	return hex.EncodeToString(hash[:])
}

// SaveSourceFile upserts the record of an inspected source file.
func (s *DatabaseService) SaveSourceFile(ctx context.Context, source models.SourceFile) error {
	client := s.getClient(s.sourcesTable)

	entity := map[string]any{
		"PartitionKey": sourcesPartition,
		"RowKey":       sourceRowKey(source.BlobName),
		"BlobName":     source.BlobName,
		"Filename":     source.Filename,
		"Columns":      strings.Join(source.Columns, "\n"),
		"RowCount":     source.RowCount,
		"UploadedAt":   source.UploadedAt,
	}

	entityJson, _ := json.Marshal(entity)
	if _, err := client.UpsertEntity(ctx, entityJson, nil); err != nil {
		return fmt.Errorf("failed to upsert source file %s: %w", source.BlobName, err)
	}
	return nil
}

// ListSourceFiles retrieves all inspected source files.
func (s *DatabaseService) ListSourceFiles(ctx context.Context) ([]models.SourceFile, error) {
	client := s.getClient(s.sourcesTable)

	filter := fmt.Sprintf("PartitionKey eq '%s'", sourcesPartition)
	pager := client.NewListEntitiesPager(&aztables.ListEntitiesOptions{
		Filter: &filter,
	})

	var sources []models.SourceFile

	for pager.More() {
		resp, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list source files: %w", err)
		}

		for _, entity := range resp.Entities {
			var parsed map[string]any
			if err := json.Unmarshal(entity, &parsed); err != nil {
				continue
			}

			source := models.SourceFile{
				BlobName:   getString(parsed, "BlobName"),
				Filename:   getString(parsed, "Filename"),
				RowCount:   getInt(parsed, "RowCount"),
				UploadedAt: getString(parsed, "UploadedAt"),
			}
			if cols := getString(parsed, "Columns"); cols != "" {
				source.Columns = strings.Split(cols, "\n")
			}
			sources = append(sources, source)
		}
	}

	return sources, nil
}

// SaveConversion records a finished conversion. History is partitioned by
// month of creation so listing a month stays a single-partition query.
func (s *DatabaseService) SaveConversion(ctx context.Context, conv models.Conversion) error {
	client := s.getClient(s.conversionsTable)

	entity := map[string]any{
		"PartitionKey": conversionPartition(conv.CreatedAt),
		"RowKey":       conv.ID,
		"SourceBlob":   conv.SourceBlob,
		"OutputBlob":   conv.OutputBlob,
		"Transactions": conv.Transactions,
		"Dropped":      conv.Dropped,
		"Start":        conv.Start,
		"End":          conv.End,
		"Currency":     conv.Currency,
		"AccountType":  conv.AccountType,
		"CreatedAt":    conv.CreatedAt,
	}

	entityJson, _ := json.Marshal(entity)
	if _, err := client.UpsertEntity(ctx, entityJson, nil); err != nil {
		return fmt.Errorf("failed to save conversion %s: %w", conv.ID, err)
	}
	return nil
}

// ListConversions retrieves the conversion history for a month ("YYYY-MM").
func (s *DatabaseService) ListConversions(ctx context.Context, month string) ([]models.Conversion, error) {
	client := s.getClient(s.conversionsTable)

	filter := fmt.Sprintf("PartitionKey eq 'conv_%s'", month)
	pager := client.NewListEntitiesPager(&aztables.ListEntitiesOptions{
		Filter: &filter,
	})

	var conversions []models.Conversion

	for pager.More() {
		resp, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list conversions: %w", err)
		}

		for _, entity := range resp.Entities {
			var parsed map[string]any
			if err := json.Unmarshal(entity, &parsed); err != nil {
				continue
			}

			conversions = append(conversions, models.Conversion{
				ID:           getString(parsed, "RowKey"),
				SourceBlob:   getString(parsed, "SourceBlob"),
				OutputBlob:   getString(parsed, "OutputBlob"),
				Transactions: getInt(parsed, "Transactions"),
				Dropped:      getInt(parsed, "Dropped"),
				Start:        getString(parsed, "Start"),
				End:          getString(parsed, "End"),
				Currency:     getString(parsed, "Currency"),
				AccountType:  getString(parsed, "AccountType"),
				CreatedAt:    getString(parsed, "CreatedAt"),
			})
		}
	}

	return conversions, nil
}

// conversionPartition derives the month partition from an ISO timestamp.
func conversionPartition(createdAt string) string {
	if len(createdAt) >= 7 {
		return "conv_" + createdAt[:7]
	}
	return "conv_unknown"
}

func getString(parsed map[string]any, key string) string {
	if v, ok := parsed[key].(string); ok {
		return v
	}
	return ""
}

func getInt(parsed map[string]any, key string) int {
	if v, ok := parsed[key].(float64); ok {
		return int(v)
	}
	if v, ok := parsed[key].(int32); ok {
		return int(v)
	}
	if v, ok := parsed[key].(string); ok {
		var i int
		fmt.Sscanf(v, "%d", &i)
		return i
	}
	return 0
}
