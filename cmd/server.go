package cmd

import (
	"context"
	"log"
	httpNet "net/http"
	"os"
	"os/signal"
	"syscall"

	"alpharoot/internal/delivery/http"
	"alpharoot/internal/service"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the alpharoot API server",
	Run:   Start,
}

func Start(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}

	services := service.NewService(
		appDep.cfg,
		appDep.log,
		appDep.cache,
		appDep.store,
		appDep.rng,
	)
	httpHandler := http.NewHttpAPIHandler(ctx, appDep.echo, appDep.validator, services)

	apiServer := NewHTTPServer(ctx, appDep, httpHandler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := apiServer.Start(); err != nil && err != httpNet.ErrServerClosed {
			return err
		}
		return nil
	})

	// Wait for shutdown signal or server failure
	<-gctx.Done()
	appDep.log.Info("Shutting down gracefully...")

	if err := apiServer.Stop(); err != nil {
		log.Fatalf("Failed to stop HTTP server: %v", err)
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}

	if err := appDep.Close(); err != nil {
		log.Fatalf("Failed to close app dependency: %v", err)
	}
}
