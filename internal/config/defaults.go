package config

// Default configuration values.
const (
	DefaultTimeoutSeconds = 120
	DefaultJUnitPath      = "fmtgate-report.xml"
	DefaultJSONPath       = "formatted_files.json"

	// MaxJobs caps the worker count. Beyond this, goroutine scheduling
	// overhead outweighs parallelism benefits for fmtgate's I/O-bound
	// per-file work (subprocess spawning, file copies).
	MaxJobs = 256
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	applyReportDefaults(cfg)
}

func applyReportDefaults(cfg *Config) {
	if cfg.Reports == nil {
		cfg.Reports = &ReportsConfig{}
	}
	if cfg.Reports.JUnit == "" {
		cfg.Reports.JUnit = DefaultJUnitPath
	}
	if cfg.Reports.JSON == "" {
		cfg.Reports.JSON = DefaultJSONPath
	}
}
