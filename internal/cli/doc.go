// Package cli turns the command line into an app.Config: it declares the
// cobra command, maps flags onto playback and logging settings and reports
// usage problems as ExitError values carrying the process exit code.
package cli
