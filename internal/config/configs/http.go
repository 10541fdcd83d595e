package configs

import "time"

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// MetricsPath is where Prometheus metrics are served. Empty disables
	// the endpoint.
	MetricsPath string `env:"METRICS_PATH" envDefault:"/metrics"`
}
