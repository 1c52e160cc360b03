package providers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/learn-di/framework/config"
	"github.com/km-arc/learn-di/framework/container"
	"github.com/km-arc/learn-di/framework/log"
	"github.com/km-arc/learn-di/framework/providers"
	"github.com/km-arc/learn-di/framework/routing"
)

var root = container.Define("root", container.HostsScopes(container.Singleton))

func preloaded() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "LearnDI", Env: "testing", Port: "8000"},
		Log: log.Config{Level: "info", Format: log.FormatJSON},
		Showcase: config.ShowcaseConfig{
			WindowsPrice: 1, LinuxPrice: 2, MemorySize: 3, BluetoothVersion: "4.0", ActivityColor: "red",
		},
	}
}

func TestConfigModule_PreloadedConfig(t *testing.T) {
	cfg := preloaded()
	c, err := root.Builder().Module(&providers.ConfigModule{Config: cfg}).Strict(true).Build()
	require.NoError(t, err)

	assert.Same(t, cfg, container.MustGet[*config.Config](c))
	assert.Equal(t, log.FormatJSON, container.MustGet[log.Config](c).Format)
	assert.Equal(t, "4.0", container.MustGet[config.ShowcaseConfig](c).BluetoothVersion)
}

func TestConfigModule_LoadsOncePerComponent(t *testing.T) {
	t.Setenv("APP_NAME", "FromEnv")
	c, err := root.Builder().Module(&providers.ConfigModule{EnvFiles: []string{"testdata/missing.env"}}).Build()
	require.NoError(t, err)

	first := container.MustGet[*config.Config](c)
	assert.Equal(t, "FromEnv", first.App.Name)
	assert.Same(t, first, container.MustGet[*config.Config](c))
}

func TestLoggerModule_WritesConfiguredFormat(t *testing.T) {
	var buf bytes.Buffer
	c, err := root.Builder().
		Module(&providers.ConfigModule{Config: preloaded()}).
		Module(&providers.LoggerModule{Out: &buf}).
		Build()
	require.NoError(t, err)

	logger := container.MustGet[zerolog.Logger](c)
	logger.Info().Msg("booted")
	assert.Contains(t, buf.String(), `"message":"booted"`)
}

func TestRouterModule_SingletonRouter(t *testing.T) {
	c, err := root.Builder().
		Module(&providers.ConfigModule{Config: preloaded()}).
		Module(&providers.LoggerModule{Out: &bytes.Buffer{}}).
		Module(&providers.RouterModule{}).
		Strict(true).
		Build()
	require.NoError(t, err)

	r := container.MustGet[*routing.Router](c)
	assert.Same(t, r, container.MustGet[*routing.Router](c))

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestFramework_InstallsAllModules(t *testing.T) {
	b := root.Builder()
	for _, m := range providers.Framework(nil, nil, "testdata/missing.env") {
		b.Module(m)
	}
	c, err := b.Strict(true).Build()
	require.NoError(t, err)

	for _, key := range []container.Key{
		container.KeyOf[*config.Config](),
		container.KeyOf[zerolog.Logger](),
		container.KeyOf[*routing.Router](),
	} {
		assert.True(t, c.Has(key), key.String())
	}
}

func TestRouterModule_NeedsLogger(t *testing.T) {
	_, err := root.Builder().Module(&providers.RouterModule{}).Strict(true).Build()

	var unsatisfied container.UnsatisfiedDependencyError
	require.ErrorAs(t, err, &unsatisfied)
	assert.Equal(t, container.KeyOf[zerolog.Logger](), unsatisfied.Key)
}

func TestFramework_UsesLoadedConfigAndLogger(t *testing.T) {
	cfg := preloaded()
	var buf bytes.Buffer
	ready := zerolog.New(&buf)

	b := root.Builder()
	for _, m := range providers.Framework(cfg, &ready) {
		b.Module(m)
	}
	c, err := b.Strict(true).Build()
	require.NoError(t, err)

	assert.Same(t, cfg, container.MustGet[*config.Config](c))
	logger := container.MustGet[zerolog.Logger](c)
	logger.Info().Msg("shared")
	assert.Contains(t, buf.String(), `"message":"shared"`)
}

func TestLoggerModule_ReadyLogger(t *testing.T) {
	var buf bytes.Buffer
	ready := zerolog.New(&buf)
	c, err := root.Builder().Module(&providers.LoggerModule{Logger: &ready}).Strict(true).Build()
	require.NoError(t, err)

	logger := container.MustGet[zerolog.Logger](c)
	logger.Warn().Msg("ready")
	assert.Contains(t, buf.String(), `"message":"ready"`)
}
