package app

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/gdgmilano/devfest-tools/pkg/constants"

	devfesttools "github.com/gdgmilano/devfest-tools"
)

// Config holds the application configuration loaded from flags,
// environment variables, .env files and the optional config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Sync configuration
	DataDir          string
	ProviderURL      string
	ForceRefresh     bool
	Backups          bool
	SpeakerOverwrite bool

	// Event configuration for digests
	EventName    string
	EventHashtag string
	EventBaseURL string
	EventDay     string
	MainTags     []string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (.devfest-tools.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("DEVFEST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".devfest-tools")
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),

		ConfigFile: viper.ConfigFileUsed(),

		DataDir:          viper.GetString("data_dir"),
		ProviderURL:      viper.GetString("provider_url"),
		ForceRefresh:     viper.GetBool("force_refresh"),
		Backups:          viper.GetBool("backups"),
		SpeakerOverwrite: viper.GetBool("speaker_overwrite"),

		EventName:    viper.GetString("event_name"),
		EventHashtag: viper.GetString("event_hashtag"),
		EventBaseURL: viper.GetString("event_base_url"),
		EventDay:     viper.GetString("event_day"),
		MainTags:     viper.GetStringSlice("main_tags"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Defaults
	if config.DataDir == "" {
		config.DataDir = constants.DefaultDataDir
	}
	if config.ProviderURL == "" {
		config.ProviderURL = devfesttools.DefaultProviderURL
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags so flags
// take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
