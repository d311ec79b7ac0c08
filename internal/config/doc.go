// Package config defines the application configuration and its three
// sources, in priority order: command-line flags, environment variables
// (prefixed with ERRCALC_), and built-in defaults.
package config
