package broker

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Source selects where menus come from.
const (
	SourceDocument = "document" // parsed from uploaded slide decks
	SourceFeed     = "feed"     // fetched from the realtime database
)

// Config holds the full broker configuration.
type Config struct {
	Listen      string `yaml:"listen" env:"LISTEN" env-default:":5001"`
	Source      string `yaml:"source" env:"MENU_SOURCE" env-default:"document"`
	UploadsDir  string `yaml:"uploads_dir" env:"UPLOADS_DIR" env-default:"uploads"`
	MenusDir    string `yaml:"menus_dir" env:"MENUS_DIR" env-default:"menus"`
	AuditDB     string `yaml:"audit_db" env:"AUDIT_DB" env-default:"db/audit.db"`
	RulesPath   string `yaml:"rules_path" env:"RULES_PATH"`
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	MaxUploadMB int    `yaml:"max_upload_mb" env:"MAX_UPLOAD_MB" env-default:"50"`

	Feed FeedConfig `yaml:"feed"`

	// MCPTransport enables the MCP server when set to "stdio".
	MCPTransport string `yaml:"mcp_transport" env:"MCP_TRANSPORT"`
}

// FeedConfig configures the realtime-database source.
type FeedConfig struct {
	URL        string `yaml:"url" env:"FEED_URL"`
	TimeoutSec int    `yaml:"timeout_sec" env:"FEED_TIMEOUT_SEC" env-default:"8"`
}

// Timeout returns the feed wait bound as a duration.
func (f FeedConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSec) * time.Second
}

// LoadConfig reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults. The file path comes from CONFIG_PATH
// (fallback "./config.yaml"); a missing default file means ENV + defaults
// only, a missing explicit file is an error.
func LoadConfig() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceDocument, SourceFeed:
	default:
		return fmt.Errorf("source must be %q or %q, got %q", SourceDocument, SourceFeed, c.Source)
	}
	if c.Source == SourceFeed && c.Feed.URL == "" {
		return fmt.Errorf("feed.url is required with the feed source")
	}
	if c.MenusDir == "" {
		return fmt.Errorf("menus_dir is required")
	}
	if c.UploadsDir == "" {
		return fmt.Errorf("uploads_dir is required")
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("max_upload_mb must be positive")
	}
	if c.Feed.TimeoutSec <= 0 {
		return fmt.Errorf("feed.timeout_sec must be positive")
	}
	return nil
}
