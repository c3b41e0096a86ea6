package commands

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/varunriyer/ozark-app/internal/api"
	"github.com/varunriyer/ozark-app/internal/cache"
	"github.com/varunriyer/ozark-app/internal/config"
	"github.com/varunriyer/ozark-app/internal/logger"
	"github.com/varunriyer/ozark-app/internal/memory"
)

func newServeCommand() *cobra.Command {
	var configPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the statement conversion HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath, addr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to ozark.yaml")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func runServe(configPath, addr string) error {
	log := logger.New()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Serve.Addr
	}

	store, err := memory.OpenFileStore(cfg.Memory.Path)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler := &api.Handler{
		Store: store,
		Cache: cache.New(),
		Log:   log,
	}
	handler.Register(app)

	log.Info().Str("addr", addr).Msg("serving statement conversion API")
	return app.Listen(addr)
}
