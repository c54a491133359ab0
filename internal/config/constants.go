package config

const (
	// DefaultDatabasePath is the default path for the jumpdb database
	DefaultDatabasePath = "~/.local/share/jumpdb/jumpdb.db"

	// DefaultZDataPath is where z keeps its database unless _Z_DATA is set
	DefaultZDataPath = "~/.z"

	// ExcludeDirsSeparator separates patterns in EXCLUDE_DIRS
	ExcludeDirsSeparator = ":"
)
