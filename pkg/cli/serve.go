package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/sidebar-dev/sidebar/pkg/cli/config"
	ctrl "github.com/sidebar-dev/sidebar/pkg/controller/discord"
	discordsvc "github.com/sidebar-dev/sidebar/pkg/service/discord"
	"github.com/sidebar-dev/sidebar/pkg/usecase"
	"github.com/sidebar-dev/sidebar/pkg/utils/logging"
	"github.com/sidebar-dev/sidebar/pkg/utils/safe"
)

func cmdServe() *cli.Command {
	var addr string
	var appCfg config.App
	var repoCfg config.Repository
	var discordCfg config.Discord

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Health endpoint address",
			Value:       ":8080",
			Sources:     cli.EnvVars("SIDEBAR_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, discordCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the bot",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load application config")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			session, err := discordCfg.NewSession()
			if err != nil {
				return goerr.Wrap(err, "failed to configure Discord session")
			}

			uc := usecase.New(repo, discordsvc.New(session))

			var ctrlOpts []ctrl.Option
			if cfg.DefaultPrefix != "" {
				ctrlOpts = append(ctrlOpts, ctrl.WithDefaultPrefix(cfg.DefaultPrefix))
			}
			if cfg.Activity != "" {
				ctrlOpts = append(ctrlOpts, ctrl.WithActivity(cfg.Activity))
			}
			controller := ctrl.New(uc, ctrlOpts...)
			controller.Register(session)

			if err := session.Open(); err != nil {
				return goerr.Wrap(err, "failed to open gateway connection")
			}
			defer safe.Close(ctx, session)

			// Liveness endpoint for the deployment platform; the bot's
			// real work arrives over the gateway socket.
			r := chi.NewRouter()
			r.Use(middleware.Recoverer)
			r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("OK"))
			})
			server := &http.Server{
				Addr:              addr,
				Handler:           r,
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, egCtx := errgroup.WithContext(sigCtx)
			eg.Go(func() error {
				logging.Default().Info("Starting health endpoint", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return goerr.Wrap(err, "health endpoint failed")
				}
				return nil
			})
			eg.Go(func() error {
				<-egCtx.Done()
				logging.Default().Info("Shutting down")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					logging.Default().Error("failed to shut down health endpoint", "error", err.Error())
				}
				return nil
			})

			return eg.Wait()
		},
	}
}
