//go:build unit

package repository

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The repositories hand-write their SQL, so nothing but this test ties the
// insert column lists to the migration. A drifted column only surfaces at
// runtime as SQLSTATE 42703.
func TestInsertColumnsMatchSchema(t *testing.T) {
	schema, err := os.ReadFile("../../../db/migrations/0001_init.sql")
	require.NoError(t, err)

	tests := []struct {
		name  string
		table string
		query string
	}{
		{"notifications insert", "notifications", insertNotification},
		{"bookings insert", "bookings", insertBooking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defined := tableColumns(t, string(schema), tt.table)
			for _, col := range insertColumns(t, tt.query, tt.table) {
				require.Contains(t, defined, col,
					"column %q is not defined on table %s", col, tt.table)
			}
		})
	}
}

func tableColumns(t *testing.T, schema, table string) map[string]struct{} {
	t.Helper()

	re := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS ` + table + ` \((.*?)\n\);`)
	m := re.FindStringSubmatch(schema)
	require.NotNil(t, m, "table %s not found in migration", table)

	cols := make(map[string]struct{})
	lineRe := regexp.MustCompile(`^\s*([a-z_]+)\s`)
	for _, line := range strings.Split(m[1], "\n") {
		if lm := lineRe.FindStringSubmatch(line); lm != nil {
			cols[lm[1]] = struct{}{}
		}
	}
	return cols
}

func insertColumns(t *testing.T, query, table string) []string {
	t.Helper()

	re := regexp.MustCompile(`(?s)INSERT INTO ` + table + ` \((.*?)\)`)
	m := re.FindStringSubmatch(query)
	require.NotNil(t, m, "query does not insert into %s", table)

	var cols []string
	for _, c := range strings.Split(m[1], ",") {
		cols = append(cols, strings.TrimSpace(c))
	}
	return cols
}
