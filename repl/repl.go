// Package repl reads commands from an input, one per line, and prints their results.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const DefaultPrompt = "Please enter command and args: "

// Dispatcher is implemented by [router.Router].
type Dispatcher interface {
	Handle(ctx context.Context, line string) (output string, terminal bool, err error)
}

type Loop struct {
	Dispatcher Dispatcher
	In         io.Reader
	Out        io.Writer
	Prompt     string
	Logger     *slog.Logger
}

// Run prompts for and dispatches lines until a terminal command has run,
// the input is exhausted or ctx is done. Blank lines are skipped.
func (l *Loop) Run(ctx context.Context) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	reader := bufio.NewReader(l.In)
	for {
		fmt.Fprint(l.Out, l.Prompt)
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(l.Out)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		output, terminal, err := l.Dispatcher.Handle(ctx, line)
		if err != nil {
			logger.Error("command failed", "line", line, "err", err)
			fmt.Fprintln(l.Out, "error:", err)
			continue
		}
		fmt.Fprintln(l.Out, output)
		if terminal {
			return nil
		}
	}
}
