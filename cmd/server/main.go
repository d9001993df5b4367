package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/saransh1220/artist-console/internal/gateway"
	"github.com/saransh1220/artist-console/internal/gateway/middleware"
	"github.com/saransh1220/artist-console/internal/modules/auth"
	authDomain "github.com/saransh1220/artist-console/internal/modules/auth/domain"
	"github.com/saransh1220/artist-console/internal/modules/auth/infrastructure/cookie"
	"github.com/saransh1220/artist-console/internal/modules/auth/infrastructure/jwt"
	"github.com/saransh1220/artist-console/internal/modules/dashboard"
	"github.com/saransh1220/artist-console/internal/modules/resource"
	"github.com/saransh1220/artist-console/internal/shared/infrastructure/cache"
	"github.com/saransh1220/artist-console/internal/shared/infrastructure/config"
	"github.com/saransh1220/artist-console/internal/shared/infrastructure/restapi"
	"github.com/saransh1220/artist-console/internal/shared/logger"
	"github.com/saransh1220/artist-console/internal/shared/tracing"
	"github.com/saransh1220/artist-console/internal/shared/web"
	"github.com/saransh1220/artist-console/pkg/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "artist-console",
	Short: "Artist management console",
	Long:  `Server-rendered admin console for users, artists, managers and their music, backed by the artist management REST API`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the console web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of artist-console",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "artist-console version %s\n", version.Get())
	},
}

var decodeTokenCmd = &cobra.Command{
	Use:   "decode-token <jwt>",
	Short: "Print the unverified payload of an access token and the auth state it yields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token := jwt.Decode(args[0])
		if token == nil {
			return fmt.Errorf("token could not be decoded")
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Token *authDomain.DecodedToken
			State authDomain.AuthState
		}{token, authDomain.DeriveAuthState(token)})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, versionCmd, decodeTokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	cfg := config.Load()

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	log.Info("starting artist-console", zap.String("version", version.Get()), zap.String("env", cfg.Env))

	shutdownTracing, err := tracing.Init(ctx, log, cfg.Tracing, cfg.Env)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	handler, closeStore, err := build(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	return gateway.NewServer(cfg.Server.Port, handler, log).Start()
}

// build wires the modules into the routed handler chain
func build(cfg config.Config, log *zap.Logger) (http.Handler, func(), error) {
	client, err := restapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout, log)
	if err != nil {
		return nil, nil, fmt.Errorf("init api client: %w", err)
	}

	store, closeStore, err := cacheStore(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	render, err := web.NewRenderer(log)
	if err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("parse templates: %w", err)
	}

	authModule := auth.NewModule(client, cookie.Options{Secure: cfg.Cookie.Secure, Domain: cfg.Cookie.Domain}, render, log)
	resourceModule := resource.NewModule(client, store, cfg.Cache.TTL, log)
	dashboardModule := dashboard.NewModule(resourceModule.Service(), render, log)

	routes := gateway.RouterConfig{
		AuthHandler:      authModule.HTTPHandler(),
		DashboardHandler: dashboardModule.HTTPHandler(),
		AuthMiddleware:   middleware.NewAuthMiddleware(authModule.Cookies(), render),
		RateLimiter:      middleware.NewRateLimiter(cfg.Server.LoginRateLimit),
		Logger:           log.Named("http"),
	}
	return gateway.Handler(routes, gateway.SetupRoutes(routes)), closeStore, nil
}

func cacheStore(cfg config.Config, log *zap.Logger) (cache.Store, func(), error) {
	switch cfg.Cache.Driver {
	case "redis":
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info("resource cache backed by redis", zap.String("host", cfg.Redis.Host))
		return cache.NewRedisStore(client, "artist-console:"), func() { client.Close() }, nil
	case "", "memory":
		return cache.NewMemoryStore(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
}
