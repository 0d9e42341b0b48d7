package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv       = "NEWS_VERIFIER_CONFIG"
	httpAddrEnv         = "HTTP_ADDR"
	logLevelEnv         = "LOG_LEVEL"
	newsAPIKeyEnv       = "NEWS_API_KEY"
	classifierURLEnv    = "CLASSIFIER_URL"
	classifierAPIKeyEnv = "CLASSIFIER_API_KEY"
)

// Config holds high-level settings required across the application.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Classifier ClassifierConfig `yaml:"classifier"`
	NewsAPI    NewsAPIConfig    `yaml:"newsApi"`
	Reputation ReputationConfig `yaml:"reputation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// ClassifierConfig describes the inference-service integration.
type ClassifierConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"apiKey"`
}

// NewsAPIConfig wires the external article search provider.
type NewsAPIConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"apiKey"`
}

// ReputationConfig lists the trusted and untrusted domain sets. They are
// loaded once at startup and never mutated at runtime.
type ReputationConfig struct {
	TrustedDomains   []string `yaml:"trustedDomains"`
	UntrustedDomains []string `yaml:"untrustedDomains"`
}

// LoggingConfig controls the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(httpAddrEnv); v != "" {
		c.Server.Addr = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(newsAPIKeyEnv); v != "" {
		c.NewsAPI.APIKey = v
	}

	if v := os.Getenv(classifierURLEnv); v != "" {
		c.Classifier.URL = v
	}

	if v := os.Getenv(classifierAPIKeyEnv); v != "" {
		c.Classifier.APIKey = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if len(override.Server.AllowedOrigins) > 0 {
		base.Server.AllowedOrigins = override.Server.AllowedOrigins
	}

	if override.Classifier.URL != "" {
		base.Classifier.URL = override.Classifier.URL
	}
	if override.Classifier.APIKey != "" {
		base.Classifier.APIKey = override.Classifier.APIKey
	}

	if override.NewsAPI.URL != "" {
		base.NewsAPI.URL = override.NewsAPI.URL
	}
	if override.NewsAPI.APIKey != "" {
		base.NewsAPI.APIKey = override.NewsAPI.APIKey
	}

	if len(override.Reputation.TrustedDomains) > 0 {
		base.Reputation.TrustedDomains = override.Reputation.TrustedDomains
	}
	if len(override.Reputation.UntrustedDomains) > 0 {
		base.Reputation.UntrustedDomains = override.Reputation.UntrustedDomains
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr: ":8080",
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:3001",
				"http://127.0.0.1:3000",
				"http://localhost:8080",
			},
		},
		Classifier: ClassifierConfig{
			URL: "http://localhost:8000",
		},
		NewsAPI: NewsAPIConfig{
			URL: "https://newsapi.org/v2/everything",
		},
		Reputation: ReputationConfig{
			TrustedDomains: []string{
				"bbc.co.uk",
				"nytimes.com",
				"reuters.com",
				"apnews.com",
				"npr.org",
				"theguardian.com",
			},
			UntrustedDomains: []string{
				"yourscvnews.com",
				"worldtruth.tv",
				"abcnews.com.co",
				"theonion.com",
			},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
