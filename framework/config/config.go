package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/km-arc/learn-di/framework/http/validation"
	"github.com/km-arc/learn-di/framework/log"
)

// Config is the central typed configuration struct.
type Config struct {
	App       AppConfig
	Log       log.Config
	Container ContainerConfig
	Showcase  ShowcaseConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
	Port  string
}

type ContainerConfig struct {
	// Strict validates every component graph when it is built.
	Strict bool
}

// ShowcaseConfig holds the values the tutorial cases are rendered with.
type ShowcaseConfig struct {
	WindowsPrice     int
	LinuxPrice       int
	MemorySize       int
	BluetoothVersion string
	ActivityColor    string
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:  env("APP_NAME", "LearnDI"),
			Env:   env("APP_ENV", "local"),
			Debug: envBool("APP_DEBUG", false),
			Port:  env("APP_PORT", "8000"),
		},
		Log: log.Config{
			Level:  env("LOG_LEVEL", "info"),
			Format: env("LOG_FORMAT", log.FormatConsole),
		},
		Container: ContainerConfig{
			Strict: envBool("CONTAINER_STRICT", true),
		},
		Showcase: ShowcaseConfig{
			WindowsPrice:     GetInt("SHOWCASE_WINDOWS_PRICE", 6666),
			LinuxPrice:       GetInt("SHOWCASE_LINUX_PRICE", 8888),
			MemorySize:       GetInt("SHOWCASE_MEMORY_SIZE", 8192),
			BluetoothVersion: env("SHOWCASE_BLUETOOTH_VERSION", "2.3"),
			ActivityColor:    env("SHOWCASE_ACTIVITY_COLOR", "cyan"),
		},
	}
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	v := validation.Make(map[string]string{
		"app_name":                   c.App.Name,
		"app_env":                    c.App.Env,
		"app_port":                   c.App.Port,
		"log_level":                  strings.ToLower(c.Log.Level),
		"log_format":                 strings.ToLower(c.Log.Format),
		"showcase_windows_price":     strconv.Itoa(c.Showcase.WindowsPrice),
		"showcase_linux_price":       strconv.Itoa(c.Showcase.LinuxPrice),
		"showcase_memory_size":       strconv.Itoa(c.Showcase.MemorySize),
		"showcase_bluetooth_version": c.Showcase.BluetoothVersion,
		"showcase_activity_color":    c.Showcase.ActivityColor,
	}, validation.Rules{
		"app_name":                   "required|max:64",
		"app_env":                    "required|in:local,production,testing",
		"app_port":                   "required|integer|gte:1|lte:65535",
		"log_level":                  "required|in:trace,debug,info,warn,error,fatal,panic,disabled",
		"log_format":                 "required|in:console,json",
		"showcase_windows_price":     "gte:0",
		"showcase_linux_price":       "gte:0",
		"showcase_memory_size":       "gte:1",
		"showcase_bluetooth_version": "required|version",
		"showcase_activity_color":    "required|alpha",
	})
	return v.Validate()
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
