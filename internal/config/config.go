package config

import (
	"strings"

	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Import
		Audit
	}

	Database struct {
		Path string
	}
	Import struct {
		ZDataPath   string   // Default source for `import`
		ExcludeDirs []string // Glob patterns of directories never imported
	}
	Audit struct {
		Dir string // Empty disables JSON import reports
	}
)

// getZDataPath returns the z database path, honouring z's own _Z_DATA variable
func getZDataPath(v *viper.Viper) string {
	if path := v.GetString("Z_DATA_PATH"); path != "" {
		return path
	}
	if path := v.GetString("_Z_DATA"); path != "" {
		return path
	}
	return DefaultZDataPath
}

func splitExcludeDirs(raw string) []string {
	var patterns []string
	for _, p := range strings.Split(raw, ExcludeDirsSeparator) {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

func NewConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix("jumpdb")
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("z_data_path", "")
	v.SetDefault("exclude_dirs", "")
	v.SetDefault("audit_dir", "")

	// _Z_DATA belongs to z itself and is read without the prefix
	_ = v.BindEnv("_Z_DATA", "_Z_DATA")

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Import: Import{
			ZDataPath:   getZDataPath(v),
			ExcludeDirs: splitExcludeDirs(v.GetString("EXCLUDE_DIRS")),
		},
		Audit: Audit{
			Dir: v.GetString("AUDIT_DIR"),
		},
	}
}
