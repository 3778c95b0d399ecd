package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/VictoriaMetrics/metrics"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/spf13/cobra"

	ds "github.com/oaiiae/contactbook/datastores"
	"github.com/oaiiae/contactbook/handlers"
	"github.com/oaiiae/contactbook/logger"
	"github.com/oaiiae/contactbook/repl"
	"github.com/oaiiae/contactbook/router"
)

var version = "dev" // set with -ldflags "-X main.version=..."

// Options for the CLI. Pass `--page-size` or set the `SERVICE_PAGE_SIZE` env var.
type Options struct {
	PageSize    int    `doc:"contacts per page when listing"               default:"5"`
	Prompt      string `doc:"prompt printed before reading a command"`
	LogLevel    string `doc:"log from debug, info, warn or error"          default:"warn"`
	LogFile     string `doc:"append logs to file"`
	LogFormat   string `doc:"format logs as text or json"                  default:"text"`
	MetricsFile string `doc:"write prometheus metrics to file on exit"`
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		log := logger.New(&logger.Options{
			Level:  options.LogLevel,
			File:   options.LogFile,
			Format: options.LogFormat,
		})
		prompt := options.Prompt
		if prompt == "" {
			prompt = repl.DefaultPrompt
		}

		set := metrics.NewSet()
		r := router.New(
			router.OptUseMiddleware(
				router.LoggerMiddleware(log),
				router.MeterCommands(set),
				router.RecoverMiddleware(log),
			),
			router.OptFallback(handlers.Unknown),
			router.OptAutoRegister(&handlers.Greeting{}),
			router.OptAutoRegister(&handlers.Contacts{
				Store:        ds.NewContactsInmem(),
				PageSize:     options.PageSize,
				ErrorHandler: router.ErrorHandler(log),
			}),
		)

		ctx, cancel := context.WithCancel(context.Background())
		loop := &repl.Loop{Dispatcher: r, In: os.Stdin, Out: os.Stdout, Prompt: prompt, Logger: log}

		hooks.OnStart(func() {
			defer writeMetrics(options.MetricsFile, set, log)
			err := loop.Run(ctx)
			if err != nil {
				log.Error("repl stopped", "err", err)
			}
		})
		hooks.OnStop(func() {
			cancel()
			writeMetrics(options.MetricsFile, set, log)
		})
	})

	cli.Root().Use = "contactbook"
	cli.Root().AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "contactbook", version)
		},
	})
	cli.Run()
}

// writeMetrics writes set, the build info and the process metrics to path in
// the prometheus text format. It does nothing if path is empty.
func writeMetrics(path string, set *metrics.Set, log *slog.Logger) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		log.Warn("could not create metrics file", "err", err)
		return
	}
	defer f.Close()
	writePrometheus(f, set)
}

func writePrometheus(w io.Writer, set *metrics.Set) {
	fmt.Fprint(w, joinQuote("build_info{goversion=", runtime.Version(), ",version=", version, "} 1\n"))
	set.WritePrometheus(w)
	metrics.WriteProcessMetrics(w)
}

// joinQuote is [strings.Join] with " as separator.
func joinQuote(elems ...string) string { return strings.Join(elems, `"`) }
