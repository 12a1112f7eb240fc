package domain

// StoreDiagnostic describes the optional audit store for the /test
// endpoint. Env values are reported only as set / not_set.
type StoreDiagnostic struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
