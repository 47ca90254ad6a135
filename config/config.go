package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Study planner specifics
	Planner        PlannerConfig
	Session        SessionConfig
	GoogleCalendar GoogleCalendarConfig
	Telegram       TelegramConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PlannerConfig struct {
	MaxTokens   int    // output cap sent with every generation request
	Timezone    string // IANA name used for "today" and days remaining
	DefaultView string // view shown once a plan exists: combined or dashboard
}

type SessionConfig struct {
	TTL                 time.Duration
	MaxSessions         int
	PlanRateLimitPerMin int
	CookieName          string
	CookieSecure        bool
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// TelegramConfig enables sending plans to one chat. Both fields are needed.
type TelegramConfig struct {
	BotToken string
	ChatID   int64
	APIURL   string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // bounds the whole provider chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Planner
	cfg.Planner.MaxTokens = viper.GetInt("planner.max_tokens")
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.DefaultView = viper.GetString("planner.default_view")

	// Sessions
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.PlanRateLimitPerMin = viper.GetInt("session.plan_rate_limit_per_min")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.CookieSecure = viper.GetBool("session.cookie_secure")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Telegram (optional)
	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	cfg.Telegram.APIURL = viper.GetString("telegram.api_url")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Without a usable credential the form must not be served.
	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, &ConfigurationError{Err: err}
	}

	if err := validatePlannerConfig(&cfg.Planner); err != nil {
		return nil, &ConfigurationError{Err: err}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("planner.max_tokens", 300)
	viper.SetDefault("planner.timezone", "Local")
	viper.SetDefault("planner.default_view", "combined")

	viper.SetDefault("session.ttl", "2h")
	viper.SetDefault("session.max_sessions", 1000)
	viper.SetDefault("session.plan_rate_limit_per_min", 6)
	viper.SetDefault("session.cookie_name", "planner_session")
	viper.SetDefault("session.cookie_secure", false)

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		// Unresolved placeholders count as missing credentials.
		return ""
	}

	return value
}

// validateLLMConfig requires at least one enabled provider with a credential.
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	usable := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true

		if provider.APIKey != "" {
			usable++
		}
	}

	if usable == 0 {
		return fmt.Errorf("no enabled LLM provider has an API key")
	}

	if cfg.MaxTotalTimeout != "" {
		if _, err := time.ParseDuration(cfg.MaxTotalTimeout); err != nil {
			return fmt.Errorf("invalid llm.max_total_timeout: %w", err)
		}
	}

	return nil
}

func validatePlannerConfig(cfg *PlannerConfig) error {
	if cfg.MaxTokens <= 0 {
		return fmt.Errorf("planner.max_tokens must be positive")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("invalid planner.timezone: %w", err)
	}
	switch cfg.DefaultView {
	case "combined", "dashboard":
	default:
		return fmt.Errorf("planner.default_view must be combined or dashboard, got %q", cfg.DefaultView)
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
