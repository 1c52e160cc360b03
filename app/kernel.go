package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/km-arc/learn-di/app/cases"
	"github.com/km-arc/learn-di/app/hardware"
	"github.com/km-arc/learn-di/framework/clock"
	"github.com/km-arc/learn-di/framework/config"
	"github.com/km-arc/learn-di/framework/container"
	"github.com/km-arc/learn-di/framework/log"
	"github.com/km-arc/learn-di/framework/providers"
	"github.com/km-arc/learn-di/framework/routing"
)

const shutdownTimeout = 5 * time.Second

// Options tune New. The zero value loads .env and the environment, logs to
// stderr, reads the system clock and draws random serials.
type Options struct {
	EnvFiles  []string
	Config    *config.Config // skips loading when set
	LogOutput io.Writer
	Clock     clock.Clock
	Serials   hardware.Serials
}

// Application owns the root component every case and request runs under.
type Application struct {
	root    *container.Component
	cfg     *config.Config
	logger  zerolog.Logger
	router  *routing.Router
	clock   clock.Clock
	serials hardware.Serials
}

// New loads and validates the configuration, then builds the application
// component from the framework modules and the showcase application modules.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Load(opts.EnvFiles...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	logger := log.New(cfg.Log, opts.LogOutput)
	clk := opts.Clock
	if clk == nil {
		clk = clock.SystemClock()
	}
	serials := opts.Serials
	if serials == nil {
		serials = hardware.RandomSerials()
	}

	b := hardware.ApplicationComponent.Builder().
		WithLogger(logger).
		Strict(cfg.Container.Strict)
	modules := append(providers.Framework(cfg, &logger), cases.ApplicationModules(cfg.App.Name, clk, serials)...)
	for _, m := range modules {
		b.Module(m)
	}
	root, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("app: build %s component: %w", hardware.ApplicationComponent.Name(), err)
	}

	router, err := container.Get[*routing.Router](root)
	if err != nil {
		return nil, err
	}

	a := &Application{
		root:    root,
		cfg:     cfg,
		logger:  logger,
		router:  router,
		clock:   clk,
		serials: serials,
	}
	a.routes()

	logger.Debug().
		Str("component", root.ID()).
		Int("bindings", len(root.Bindings())).
		Bool("strict", cfg.Container.Strict).
		Msg("application built")
	return a, nil
}

// Root returns the application component.
func (a *Application) Root() *container.Component { return a.root }

// Config returns the validated configuration.
func (a *Application) Config() *config.Config { return a.cfg }

// Logger returns the application logger.
func (a *Application) Logger() zerolog.Logger { return a.logger }

// Router returns the HTTP router with the showcase routes registered.
func (a *Application) Router() *routing.Router { return a.router }

// Env returns what cases run with, rendered with the configured showcase values.
func (a *Application) Env() cases.Env {
	return a.envWith(a.cfg.Showcase)
}

func (a *Application) envWith(showcase config.ShowcaseConfig) cases.Env {
	return cases.Env{
		Application: a.root,
		Clock:       a.clock,
		Serials:     a.serials,
		Showcase:    showcase,
	}
}

// RunCase runs one case by id.
func (a *Application) RunCase(id string) (string, error) {
	c, ok := cases.Find(id)
	if !ok {
		return "", fmt.Errorf("app: unknown case %q", id)
	}
	return a.runCase(c, a.Env())
}

func (a *Application) runCase(c cases.Case, env cases.Env) (string, error) {
	start := time.Now()
	out, err := c.Run(env)
	ev := a.logger.Debug()
	if err != nil {
		ev = a.logger.Error().Err(err)
	}
	ev.Str("case", c.ID).Dur("duration", time.Since(start)).Msg("case run")
	return out, err
}

// Run listens on the configured port and serves until ctx is done.
func (a *Application) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+a.cfg.App.Port)
	if err != nil {
		return err
	}
	return a.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	a.logger.Info().
		Str("addr", ln.Addr().String()).
		Str("env", a.Environment()).
		Msgf("%s running on http://%s", a.cfg.App.Name, ln.Addr())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.cfg.App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.cfg.App.Debug }
func (a *Application) Version() string     { return "0.1.0" }
