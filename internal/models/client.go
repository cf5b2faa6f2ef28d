package models

// Client is the clients table row. is_active implements soft delete.
type Client struct {
	ClientID      string `db:"client_id"`
	Name          string `db:"name"`
	ContactPerson string `db:"contact_person"`
	Phone         string `db:"phone"`
	Email         string `db:"email"`
	GSTIN         string `db:"gstin"`
	Address       string `db:"address"`
	IsActive      bool   `db:"is_active"`
	AuditFields
}
