package api

import "time"

// ExportRequest selects the NSGs included in one delimited export action.
type ExportRequest struct {
	NSGs []string `json:"nsgs"`
}

// DocumentRequest selects the single NSG for a paginated document export.
type DocumentRequest struct {
	NSG string `json:"nsg"`
}

type Error struct {
	Message string `json:"message"`
}

type NSG struct {
	Name          string `json:"name"`
	ResourceGroup string `json:"resource_group"`
	Location      string `json:"location"`
}

type ExportRecord struct {
	Subject     string    `json:"subject"`
	Format      string    `json:"format"`
	FileName    string    `json:"file_name"`
	SizeBytes   int64     `json:"size_bytes"`
	GeneratedAt time.Time `json:"generated_at"`
}
