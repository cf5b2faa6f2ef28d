package pgsql

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The repository queries and the migration DDL are maintained by hand, so a
// column added on one side and forgotten on the other only surfaces at
// runtime as a 42703 or 23502. This test parses the migration and checks
// every column list the repositories insert with against it, both ways:
// inserted columns must exist, and NOT NULL columns without a default must
// be inserted.

const migrationPath = "../../../../migrations/000001_init_schema.up.sql"

type ddlColumn struct {
	notNull    bool
	hasDefault bool
}

func loadSchema(t *testing.T) map[string]map[string]ddlColumn {
	t.Helper()

	raw, err := os.ReadFile(migrationPath)
	require.NoError(t, err)

	schema := map[string]map[string]ddlColumn{}
	var current map[string]ddlColumn

	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "CREATE TABLE ") {
			name := strings.TrimSuffix(strings.TrimPrefix(line, "CREATE TABLE "), " (")
			current = map[string]ddlColumn{}
			schema[name] = current
			continue
		}
		if current == nil {
			continue
		}
		if strings.HasPrefix(line, ")") {
			current = nil
			continue
		}
		for _, constraint := range []string{"UNIQUE", "CHECK", "PRIMARY KEY", "FOREIGN KEY", "CONSTRAINT"} {
			if strings.HasPrefix(line, constraint) {
				line = ""
				break
			}
		}
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		current[fields[0]] = ddlColumn{
			notNull:    strings.Contains(line, "NOT NULL") || strings.Contains(line, "PRIMARY KEY"),
			hasDefault: strings.Contains(line, "DEFAULT"),
		}
	}
	return schema
}

func TestRepositoryColumnsMatchSchema(t *testing.T) {
	schema := loadSchema(t)

	cases := []struct {
		table   string
		columns string
	}{
		{"users", userColumns},
		{"headers", headerColumns},
		{"header_bank_details", bankDetailColumns},
		{"clients", clientColumns},
		{"particulars", particularsColumns},
		{"gst_rates", gstRateColumns},
		{"payment_terms", paymentTermColumns},
		{"bills", billColumns},
		{"bill_services", billServiceColumns},
		{"bill_payments", billPaymentColumns},
		{"bill_history", billHistoryColumns},
	}
	for _, tc := range cases {
		t.Run(tc.table, func(t *testing.T) {
			ddl, ok := schema[tc.table]
			require.True(t, ok, "table %s missing from migration", tc.table)

			inserted := map[string]bool{}
			for _, c := range strings.Split(tc.columns, ",") {
				name := strings.TrimSpace(c)
				require.Contains(t, ddl, name, "repository writes %s.%s but the DDL does not declare it", tc.table, name)
				inserted[name] = true
			}
			for name, col := range ddl {
				if col.notNull && !col.hasDefault {
					require.True(t, inserted[name],
						"%s.%s is NOT NULL without a default but the repository insert omits it", tc.table, name)
				}
			}
		})
	}
}
