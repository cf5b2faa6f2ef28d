package domain

// Client is a billed party. Clients are soft-deleted via IsActive so that
// finalized bills keep a resolvable reference.
type Client struct {
	ClientID      string `json:"clientID"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	GSTIN         string `json:"gstin"`
	Address       string `json:"address"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}

// ClientImportRow is one row of a bulk client import, already parsed from CSV
// on the caller's side.
type ClientImportRow struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	GSTIN         string `json:"gstin"`
	Address       string `json:"address"`
}

// ClientImportResult buckets every row of a bulk import by outcome. Rows are
// processed independently; one row's failure never aborts the batch.
type ClientImportResult struct {
	Imported   []ImportedClient   `json:"imported"`
	Duplicates []DuplicateClient  `json:"duplicates"`
	Errors     []ImportRowError   `json:"errors"`
	Counts     ClientImportCounts `json:"counts"`
}

type ImportedClient struct {
	Row      int    `json:"row"`
	ClientID string `json:"clientID"`
	Name     string `json:"name"`
}

type DuplicateClient struct {
	Row              int    `json:"row"`
	Name             string `json:"name"`
	ExistingClientID string `json:"existingClientID"`
}

type ImportRowError struct {
	Row     int    `json:"row"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type ClientImportCounts struct {
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
}
