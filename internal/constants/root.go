package constants

const (
	AppName           = "lifetrack"
	Version           = "v1.0.0"
	DefaultConfigPath = "~/.config/lifetrack/lifetrack.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Export constants
	ExportVersion    = "1.0"
	ExportFilePrefix = "life-tracker-backup-"
	ExportFileSuffix = ".json"
	ExportDays       = 90

	// Time window constants
	DefaultWindowMinutes = 30
	WarningThresholdMin  = 10

	// Notify constants
	NotifierLockfileName   = "lifetrack-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.lifetrack"
	TrayAppExecutable      = "lifetrack-tray"
)
