package models

// SourceFile describes an uploaded tabular source after inspection. The
// column list is what a client needs to build a ColumnMapping.
type SourceFile struct {
	BlobName   string   `json:"blobName"`
	Filename   string   `json:"filename"`
	Columns    []string `json:"columns"`
	RowCount   int      `json:"rowCount"`
	UploadedAt string   `json:"uploadedAt"` // ISO 8601
}

// Conversion is one recorded conversion run: which source produced which
// export, with the statement stats returned to the caller.
type Conversion struct {
	ID           string `json:"id"`
	SourceBlob   string `json:"sourceBlob"`
	OutputBlob   string `json:"outputBlob"`
	Transactions int    `json:"transactions"`
	Dropped      int    `json:"dropped"`
	Start        string `json:"start"` // YYYYMMDD
	End          string `json:"end"`   // YYYYMMDD
	Currency     string `json:"currency"`
	AccountType  string `json:"accountType"`
	CreatedAt    string `json:"createdAt"` // ISO 8601
}
