package config

import "time"

// Timer durations.
const (
	TickInterval      = time.Second
	DefaultTargetFast = 16 * time.Hour
)

// TimestampLayout is the DD/MM/YYYY hh:mm pattern used to show and edit session times.
const TimestampLayout = "02/01/2006 15:04"

// Session log backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Application settings.
const (
	AppName        = "fastlog"
	ConfigFileName = "config.yaml"
	DebugLogFile   = "debug.log"
	DebugEnvVar    = "FASTLOG_DEBUG"
	DefaultTheme   = "default"
)
