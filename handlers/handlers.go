package handlers

import (
	"context"
	"errors"

	ds "github.com/oaiiae/contactbook/datastores"
	"github.com/oaiiae/contactbook/router"
)

var ErrMissingArgument = errors.New("handlers: missing argument")

// handlerWithErrorHandler passes errors to do, when not nil, then turns the
// errors a user can act on into their display text. Other errors are returned as is.
func handlerWithErrorHandler(handler router.Handler, do func(context.Context, error)) router.Handler {
	return func(ctx context.Context, args []string) (string, error) {
		output, err := handler(ctx, args)
		if err == nil {
			return output, nil
		}
		if do != nil {
			do(ctx, err)
		}

		var valueErr *ds.ValueError
		switch {
		case errors.Is(err, ds.ErrObjectNotFound):
			return "User not found", nil
		case errors.As(err, &valueErr):
			return valueErr.Message, nil
		case errors.Is(err, ErrMissingArgument):
			return "Enter user name", nil
		default:
			return "", err
		}
	}
}

// arg returns args[i] or [ErrMissingArgument].
func arg(args []string, i int) (string, error) {
	if i >= len(args) {
		return "", ErrMissingArgument
	}
	return args[i], nil
}

// optArg returns args[i] or the empty string.
func optArg(args []string, i int) string {
	if i >= len(args) {
		return ""
	}
	return args[i]
}

// Unknown handles lines that match no command.
func Unknown(context.Context, []string) (string, error) {
	return "unknown_command", nil
}
