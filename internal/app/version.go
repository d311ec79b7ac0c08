package app

import (
	"fmt"
	"io"
)

// Version is the application version. It can be overridden at build time:
//
//	go build -ldflags "-X github.com/agbru/errcalc/internal/app.Version=v1.2.3"
var Version = "1.0.0"

// HasVersionFlag reports whether args contain a version flag.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-version", "--version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "errcalc %s\n", Version)
}
