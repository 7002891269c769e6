package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/graphstep/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const longHelp = `graphstep - step through breadth-first and depth-first traversals.

Loads a graph from GRAPH_PATH (an .hcl or .yaml file, or a directory of .hcl
files) and reads playback commands from standard input. Type 'help' once it
is running for the command list.`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		config    *app.Config
		algorithm string
		start     string
		speed     int
		autoplay  bool
		renderers []string
		logFormat string
		logLevel  string
		port      int
	)

	cmd := &cobra.Command{
		Use:           "graphstep [flags] GRAPH_PATH",
		Short:         "Step through BFS and DFS traversals of a small graph.",
		Long:          longHelp,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				slog.Debug("No graph path provided, printing usage and exiting.")
				return cmd.Usage()
			}

			logFormat = strings.ToLower(logFormat)
			if logFormat != "text" && logFormat != "json" {
				return &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
			}
			logLevel = strings.ToLower(logLevel)
			switch logLevel {
			case "debug", "info", "warn", "error":
			default:
				return &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
			}

			c, err := app.NewConfig(app.Config{
				GraphPath:       args[0],
				Algorithm:       algorithm,
				Start:           start,
				SpeedMs:         speed,
				Autoplay:        autoplay,
				Renderers:       renderers,
				LogFormat:       logFormat,
				LogLevel:        logLevel,
				HealthcheckPort: port,
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			config = c
			return nil
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringVarP(&algorithm, "algorithm", "a", "", "Traversal algorithm: 'bfs' or 'dfs'. Overrides the graph file.")
	flags.StringVarP(&start, "start", "s", "", "Start node id. Overrides the graph file.")
	flags.IntVar(&speed, "speed", 0, "Automatic stepping interval in milliseconds. Overrides the graph file.")
	flags.BoolVar(&autoplay, "autoplay", false, "Start playing immediately.")
	flags.StringArrayVarP(&renderers, "renderer", "r", nil, "Enable a renderer by name (repeatable): terminal, print, log, socketio.")
	flags.StringVar(&logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.IntVar(&port, "healthcheck-port", 0, "Port for the HTTP health check and metrics server. 0 is disabled.")

	if err := cmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if config == nil {
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", fmt.Sprintf("%+v", *config))
	return config, false, nil
}
