package models

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
Column Mismatch Report Usage:

The catalog reads and writes rows through a field mapping table that accepts
several spellings per field (image_url, imageUrl, ...). The report compares
the live tables with that mapping table.

1. Set the environment variable: GENERATE_COLUMN_REPORT=true
2. Run the service.

For every table it lists:
- columns present in the database that no field accepts (ignored on read)
- fields with none of their accepted columns present (always defaulted on read)

Example output:
=== COLUMN MISMATCH REPORT ===
--- Table: projects ---
Unmapped columns:
  - created_at
Fields with no column:
  - detailVideo (accepts: detail_video, detailVideo)

=== SUMMARY ===
Total mismatches across all tables: 2
*/

// ExpectedColumns maps a field name to the column names it accepts, per table.
type ExpectedColumns map[string]map[string][]string

// Migrate creates or extends the catalog tables.
func Migrate(db *gorm.DB) error {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             0,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)
	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
		Logger:                 newLogger,
	})

	if err := migrateDB.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return fmt.Errorf("enabling pgcrypto extension: %w", err)
	}
	if err := migrateDB.AutoMigrate(Tables()...); err != nil {
		return fmt.Errorf("migrating catalog tables: %w", err)
	}
	return nil
}

// GenerateColumnMismatchReport writes the drift between live tables and the
// accepted columns to w and returns the number of mismatches found.
func GenerateColumnMismatchReport(db *gorm.DB, expected ExpectedColumns, w io.Writer) int {
	fmt.Fprintln(w, "=== COLUMN MISMATCH REPORT ===")

	tables := make([]string, 0, len(expected))
	for name := range expected {
		tables = append(tables, name)
	}
	sort.Strings(tables)

	total := 0
	for _, tableName := range tables {
		fmt.Fprintf(w, "\n--- Table: %s ---\n", tableName)

		dbColumns, err := getTableColumns(db, tableName)
		if err != nil {
			if strings.Contains(err.Error(), "does not exist") {
				fmt.Fprintln(w, "Table does not exist yet (run with MIGRATE=true)")
			} else {
				fmt.Fprintf(w, "Error getting columns for table %s: %v\n", tableName, err)
			}
			continue
		}

		unmapped, missing := findColumnMismatches(dbColumns, expected[tableName])
		if len(unmapped) == 0 && len(missing) == 0 {
			fmt.Fprintln(w, "All columns are accounted for.")
			continue
		}
		if len(unmapped) > 0 {
			fmt.Fprintln(w, "Unmapped columns:")
			for _, col := range unmapped {
				fmt.Fprintf(w, "  - %s\n", col)
			}
		}
		if len(missing) > 0 {
			fmt.Fprintln(w, "Fields with no column:")
			for _, field := range missing {
				fmt.Fprintf(w, "  - %s (accepts: %s)\n", field, strings.Join(expected[tableName][field], ", "))
			}
		}
		total += len(unmapped) + len(missing)
	}

	fmt.Fprintf(w, "\n=== SUMMARY ===\n")
	fmt.Fprintf(w, "Total mismatches across all tables: %d\n", total)
	return total
}

// getTableColumns retrieves column names from a database table
func getTableColumns(db *gorm.DB, tableName string) ([]string, error) {
	var columns []string
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = ?
		AND table_schema = CURRENT_SCHEMA()
		ORDER BY ordinal_position
	`

	err := db.Raw(query, tableName).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("error querying columns for table %s: %w", tableName, err)
	}

	if len(columns) == 0 {
		var tableExists bool
		tableQuery := `
			SELECT EXISTS (
				SELECT FROM information_schema.tables
				WHERE table_schema = CURRENT_SCHEMA()
				AND table_name = ?
			)
		`
		if err := db.Raw(tableQuery, tableName).Scan(&tableExists).Error; err != nil {
			return nil, fmt.Errorf("error checking if table %s exists: %w", tableName, err)
		}

		if !tableExists {
			return nil, fmt.Errorf("table %s does not exist", tableName)
		}
	}

	return columns, nil
}

// findColumnMismatches returns the database columns no field accepts and the
// fields none of whose accepted columns exist. Both are sorted.
func findColumnMismatches(dbColumns []string, fields map[string][]string) (unmapped, missing []string) {
	present := make(map[string]bool, len(dbColumns))
	for _, col := range dbColumns {
		present[col] = true
	}

	accepted := make(map[string]bool)
	for field, columns := range fields {
		found := false
		for _, col := range columns {
			accepted[col] = true
			if present[col] {
				found = true
			}
		}
		if !found {
			missing = append(missing, field)
		}
	}

	for _, col := range dbColumns {
		if !accepted[col] {
			unmapped = append(unmapped, col)
		}
	}
	sort.Strings(missing)
	return unmapped, missing
}
