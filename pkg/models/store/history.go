package store

import "time"

// ExportRecord is one row of the export history ledger.
type ExportRecord struct {
	Subject     string
	Format      string // csv | pdf | zip
	FileName    string
	SizeBytes   int64
	GeneratedAt time.Time
}
