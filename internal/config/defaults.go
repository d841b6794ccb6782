package config

const (
	defaultLogDir                 = "~/.local/share/lbxoverlap/logs"
	defaultBind                   = "127.0.0.1:3000"
	defaultMaxUploadMB            = 20
	defaultReadTimeoutSeconds     = 30
	defaultWriteTimeoutSeconds    = 30
	defaultShutdownTimeoutSeconds = 5
	defaultBatchRoot              = "."
	defaultBatchFormat            = "text"
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Server: Server{
			Bind:                   defaultBind,
			MaxUploadMB:            defaultMaxUploadMB,
			ReadTimeoutSeconds:     defaultReadTimeoutSeconds,
			WriteTimeoutSeconds:    defaultWriteTimeoutSeconds,
			ShutdownTimeoutSeconds: defaultShutdownTimeoutSeconds,
		},
		Batch: Batch{
			Root:   defaultBatchRoot,
			Format: defaultBatchFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
