package router

import (
	"context"
	"reflect"
	"strings"

	"golang.org/x/text/cases"
)

// Handler runs a command with its positional arguments and returns the text to display.
type Handler = func(ctx context.Context, args []string) (string, error)

type Command struct {
	Name     string
	Handler  Handler
	Terminal bool // the REPL stops after running it
}

// Call is one dispatched command as seen by middlewares.
// Output and Err are set once the handler has returned.
type Call struct {
	Context context.Context
	Command *Command
	Args    []string
	Output  string
	Err     error
}

type Middleware = func(call *Call, next func(*Call))

// Router resolves input lines to commands. A command name is made of one or
// more words matched case-insensitively against the leading tokens of a line.
type Router struct {
	commands    map[string]*Command
	words       int
	fallback    *Command
	middlewares []Middleware
	fold        cases.Caser
}

func New(opts ...func(*Router)) *Router {
	r := &Router{
		commands: make(map[string]*Command),
		fallback: &Command{Name: "unknown", Handler: func(context.Context, []string) (string, error) { return "", nil }},
		fold:     cases.Fold(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func OptUseMiddleware(middlewares ...Middleware) func(*Router) {
	return func(r *Router) { r.middlewares = append(r.middlewares, middlewares...) }
}

// OptFallback sets the handler of lines that match no command.
func OptFallback(handler Handler) func(*Router) {
	return func(r *Router) { r.fallback.Handler = handler }
}

func OptAutoRegister(v any) func(*Router) {
	return func(r *Router) { AutoRegister(r, v) }
}

// OptTerminal marks the command as ending the REPL.
func OptTerminal() func(*Command) {
	return func(c *Command) { c.Terminal = true }
}

// AutoRegister calls every method of v named Register* that has the signature func(*Router).
func AutoRegister(r *Router, v any) {
	val := reflect.ValueOf(v)
	typ := val.Type()
	for i := range typ.NumMethod() {
		if !strings.HasPrefix(typ.Method(i).Name, "Register") {
			continue
		}
		if register, ok := val.Method(i).Interface().(func(*Router)); ok {
			register(r)
		}
	}
}

// Register adds a command, replacing any command with the same name.
func (r *Router) Register(name string, handler Handler, opts ...func(*Command)) {
	words := strings.Fields(name)
	c := &Command{Name: strings.Join(words, " "), Handler: handler}
	for _, opt := range opts {
		opt(c)
	}
	r.commands[r.key(words)] = c
	r.words = max(r.words, len(words))
}

// Resolve finds the command named by the shortest matching run of leading
// tokens of line and returns it with the remaining tokens as arguments.
// The fallback command is returned when nothing matches.
func (r *Router) Resolve(line string) (*Command, []string) {
	fields := strings.Fields(line)
	for n := 1; n <= min(r.words, len(fields)); n++ {
		if c, ok := r.commands[r.key(fields[:n])]; ok {
			return c, fields[n:]
		}
	}
	if len(fields) == 0 {
		return r.fallback, nil
	}
	return r.fallback, fields[1:]
}

// Handle resolves line and runs the command through the middlewares.
func (r *Router) Handle(ctx context.Context, line string) (output string, terminal bool, err error) {
	c, args := r.Resolve(line)
	call := &Call{Context: ctx, Command: c, Args: args}
	r.serve(call, 0)
	return call.Output, c.Terminal, call.Err
}

func (r *Router) serve(call *Call, i int) {
	if i == len(r.middlewares) {
		call.Output, call.Err = call.Command.Handler(call.Context, call.Args)
		return
	}
	r.middlewares[i](call, func(call *Call) { r.serve(call, i+1) })
}

func (r *Router) key(words []string) string {
	folded := make([]string, len(words))
	for i, w := range words {
		folded[i] = r.fold.String(w)
	}
	return strings.Join(folded, " ")
}
