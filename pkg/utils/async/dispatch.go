package async

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sidebar-dev/sidebar/pkg/utils/logging"
)

// Dispatch executes a handler function asynchronously in a new goroutine.
// The gateway delivers events on its own goroutine; handlers must not
// block it. A background context is used so the handler survives the
// originating call, but the logger is preserved.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := logging.With(context.Background(), logging.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(bgCtx).Error("panic in async handler", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logging.From(bgCtx).Error("async handler failed", "error", goerr.Unwrap(err))
		}
	}()
}
