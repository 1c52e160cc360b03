package providers

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/km-arc/learn-di/framework/config"
	"github.com/km-arc/learn-di/framework/container"
	"github.com/km-arc/learn-di/framework/log"
	"github.com/km-arc/learn-di/framework/routing"
)

// ── ConfigModule ──────────────────────────────────────────────────────────────

// ConfigModule loads the application configuration from .env and the
// environment, once per component hosting container.Singleton.
//
// Bound keys:
//   - *config.Config                 (singleton)
//   - log.Config                     (derived from *config.Config)
//   - config.ShowcaseConfig          (derived from *config.Config)
//
// A preloaded Config skips loading entirely.
type ConfigModule struct {
	container.BaseModule
	EnvFiles []string
	Config   *config.Config
}

func (m *ConfigModule) Name() string { return "config" }

func (m *ConfigModule) Configure(b *container.Binder) {
	if m.Config != nil {
		container.BindInstance(b, m.Config)
	} else {
		envFiles := m.EnvFiles
		container.Provide(b, func() *config.Config {
			return config.Load(envFiles...)
		}).In(container.Singleton)
	}

	container.Provide1(b, container.Need[*config.Config](), func(cfg *config.Config) log.Config {
		return cfg.Log
	})
	container.Provide1(b, container.Need[*config.Config](), func(cfg *config.Config) config.ShowcaseConfig {
		return cfg.Showcase
	})
}

// ── LoggerModule ──────────────────────────────────────────────────────────────

// LoggerModule builds the application logger from log.Config, unless a
// ready Logger is given.
//
// Bound keys:
//   - zerolog.Logger   (singleton)
type LoggerModule struct {
	container.BaseModule
	Out    io.Writer // stderr when nil
	Logger *zerolog.Logger
}

func (m *LoggerModule) Name() string { return "logger" }

func (m *LoggerModule) Configure(b *container.Binder) {
	if m.Logger != nil {
		container.BindInstance(b, *m.Logger)
		return
	}
	out := m.Out
	container.Provide1(b, container.Need[log.Config](), func(cfg log.Config) zerolog.Logger {
		return log.New(cfg, out)
	}).In(container.Singleton)
}

// ── RouterModule ──────────────────────────────────────────────────────────────

// RouterModule registers the HTTP router.
//
// Bound keys:
//   - *routing.Router  (singleton)
type RouterModule struct {
	container.BaseModule
}

func (m *RouterModule) Name() string { return "router" }

func (m *RouterModule) Configure(b *container.Binder) {
	container.Provide1(b, container.Need[zerolog.Logger](), routing.New).In(container.Singleton)
}

// Framework returns the modules every application root installs. A nil cfg
// is loaded from envFiles when first resolved; a nil logger is built from it.
func Framework(cfg *config.Config, logger *zerolog.Logger, envFiles ...string) []container.Module {
	return []container.Module{
		&ConfigModule{Config: cfg, EnvFiles: envFiles},
		&LoggerModule{Logger: logger},
		&RouterModule{},
	}
}
