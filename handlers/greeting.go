package handlers

import (
	"context"

	"github.com/oaiiae/contactbook/router"
)

type Greeting struct{}

func (h *Greeting) RegisterHello(r *router.Router) { // called by [router.AutoRegister]
	r.Register("hello", h.hello)
}

func (h *Greeting) hello(context.Context, []string) (string, error) {
	return "How can I help you?", nil
}

func (h *Greeting) RegisterExit(r *router.Router) { // called by [router.AutoRegister]
	for _, name := range []string{"exit", "good bye", "close"} {
		r.Register(name, h.exit, router.OptTerminal())
	}
}

func (h *Greeting) exit(context.Context, []string) (string, error) {
	return "Goodbye!", nil
}
