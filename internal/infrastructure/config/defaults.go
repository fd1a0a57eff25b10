package config

import "time"

const (
	DefaultEnv             = "local"
	DefaultHTTPPort        = "8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFile         = "logs/scraper.log"
	DefaultProvider        = "dolarito"
)

// Log rotation
const (
	DefaultLogMaxSizeMB   = 10
	DefaultLogMaxBackups  = 3
	DefaultLogMaxAgeDays  = 28
	DefaultLogCompression = true
)

// Source page. The layout is fixed, so these are not configurable.
const (
	DefaultSourceURL      = "https://www.dolarito.ar/"
	DefaultRequestTimeout = 10 * time.Second
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultMaxBodyBytes   = 2 << 20
)
