package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/httpcheck/internal/cliconfig"
	"github.com/bft-labs/httpcheck/internal/domain"
	"github.com/bft-labs/httpcheck/pkg/httpcheck"
	logAdapter "github.com/bft-labs/httpcheck/pkg/log"
)

const longHelp = `Minimal HTTP response checker.

Sends one raw HTTP/1.1 request over plain TCP with "Connection: close" and
prints whatever the server sends back, unparsed, until it closes the
connection. Useful for looking at exactly what a host:port answers.`

var exampleUsage = strings.TrimSpace(`
  httpcheck example.com
  httpcheck 10.0.0.7 -p 8080 --path /healthz -H "Accept: */*" --timeout 2
  httpcheck localhost -X head -H "X-Debug: 1" -H "X-Trace: abc"
  httpcheck localhost --config ./probe.toml --log-level debug`)

// exitUsage is the status for both bad arguments and connection failures,
// matching the argument-parser convention.
const exitUsage = 2

// usageError marks errors caused by the command line itself.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func exactlyOneHost(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

// newRootCmd builds the httpcheck command writing the response to stdout and
// diagnostics to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "httpcheck HOST",
		Short:         "Send a raw HTTP/1.1 request and print the raw response",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       httpcheck.Version,
		Args:          exactlyOneHost,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Host = args[0]

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgPath != "" {
				fc, err := cliconfig.LoadFileConfig(cfgPath)
				if err != nil {
					return usageError{fmt.Errorf("load config: %w", err)}
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			if err := cfg.Validate(); err != nil {
				return usageError{err}
			}

			level, _ := cfg.Level()
			log := cliconfig.Logger(stderr, level)
			log.Debug().Interface("config", cfg).Msg("configuration")

			client := httpcheck.New(
				httpcheck.WithTimeout(cfg.TimeoutDuration()),
				httpcheck.WithLogger(logAdapter.NewZerologAdapterWithLogger(log)),
			)

			resp, err := client.Do(cmd.Context(), cfg.Request())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout, resp)
			return err
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.Flags().IntVarP(&cfg.Port, "port", "p", cfg.Port, "port where the server listens")
	root.Flags().StringVar(&cfg.Path, "path", cfg.Path, "resource path to request")
	root.Flags().StringVarP(&cfg.Method, "method", "X", cfg.Method, "HTTP method to use (upper-cased)")
	root.Flags().StringArrayVarP(&cfg.Headers, "header", "H", nil, "additional header line to send (can be repeated)")
	root.Flags().Float64Var(&cfg.Timeout, "timeout", cfg.Timeout, "socket timeout in seconds")
	root.Flags().StringVar(&cfgPath, "config", "", "path to an optional TOML config file")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level on stderr (debug, info, warn, error)")
	root.Flags().BoolP("version", "V", false, "show program's version number and exit")

	return root
}

// report writes err to stderr and returns the process exit status.
func report(stderr io.Writer, cmd *cobra.Command, err error) int {
	if err == nil {
		return 0
	}

	var ce *domain.ConnectionError
	switch {
	case errors.As(err, &ce):
		log := cliconfig.Logger(stderr, zerolog.ErrorLevel)
		log.Error().
			Str("host", ce.Host).
			Int("port", ce.Port).
			Str("phase", ce.Phase.String()).
			Bool("timeout", ce.Timeout()).
			Msg(ce.Error())
	default:
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		fmt.Fprintf(stderr, "%s: error: %v\n", cmd.Name(), err)
	}
	return exitUsage
}
