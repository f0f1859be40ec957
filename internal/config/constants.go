package config

const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./library.db"

	DefaultPort = 8501

	// DefaultExportSchedule runs the export daily at 03:00
	DefaultExportSchedule = "0 3 * * *"
)

// envFiles are loaded in order when present; values already set in the
// environment win.
var envFiles = []string{".env", ".env.local"}
