package config

const (
	defaultDataDir   = "~/.local/share/quizdb/data"
	defaultDBPath    = "~/.local/share/quizdb/quizdb.db"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			DBPath:  defaultDBPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
