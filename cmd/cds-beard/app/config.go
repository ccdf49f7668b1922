package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from environment
// variables, .env files, and an optional config file.
type Config struct {
	// Global flags
	Quiet   bool
	NoColor bool
	Output  string

	// Config file
	ConfigFile string

	// Matching configuration
	Workers int

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.cds-beard.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".cds-beard")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Output:  viper.GetString("output"),

		ConfigFile: viper.ConfigFileUsed(),

		Workers: viper.GetInt("workers"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
	}

	if config.Workers == 0 {
		config.Workers = 1
	}
	if config.Output == "" {
		config.Output = "json"
	}

	return config, nil
}

// loadEnvFiles loads .env files from the current directory, best effort.
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
