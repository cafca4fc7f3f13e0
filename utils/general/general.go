package generalutils

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// HandleSignals returns a context cancelled on SIGINT or SIGTERM.
func HandleSignals(log *zap.Logger) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info("received termination signal", zap.Stringer("signal", sig))
		cancel()
	}()

	return ctx
}
