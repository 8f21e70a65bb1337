package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	configName = ".exomind"
	envPrefix  = "EXOM"

	DefaultNotesRoot = "."
	DefaultOutRoot   = ".neural"
	DefaultTopK      = 10
	DefaultAddr      = ":8765"
	DefaultLogLevel  = "warn"
)

// Config holds the resolved settings shared by every entry point
type Config struct {
	NotesRoot string   `mapstructure:"notes_root" validate:"required"`
	OutRoot   string   `mapstructure:"out_root" validate:"required"`
	Graph     string   `mapstructure:"graph"`
	NoteDirs  []string `mapstructure:"note_dirs" validate:"dive,required"`
	LogLevel  string   `mapstructure:"log_level" validate:"oneof=debug info warn error"`

	Recall RecallConfig `mapstructure:"recall"`
	Index  IndexConfig  `mapstructure:"index"`
	Serve  ServeConfig  `mapstructure:"serve"`
}

// RecallConfig holds ranking defaults
type RecallConfig struct {
	TopK           int     `mapstructure:"topk" validate:"gte=1"`
	LexicalWeight  float64 `mapstructure:"lexical_weight" validate:"gte=0"`
	GraphWeight    float64 `mapstructure:"graph_weight" validate:"gte=0"`
	SemanticWeight float64 `mapstructure:"semantic_weight" validate:"gte=0"`
}

// IndexConfig holds indexing options
type IndexConfig struct {
	SQLiteMirror bool `mapstructure:"sqlite_mirror"`
}

// ServeConfig holds HTTP server options
type ServeConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// SetDefaults registers every default on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("notes_root", DefaultNotesRoot)
	v.SetDefault("out_root", DefaultOutRoot)
	v.SetDefault("graph", "")
	v.SetDefault("note_dirs", []string{})
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetDefault("recall.topk", DefaultTopK)
	v.SetDefault("recall.lexical_weight", 1.0)
	v.SetDefault("recall.graph_weight", 1.0)
	v.SetDefault("recall.semantic_weight", 1.0)

	v.SetDefault("index.sqlite_mirror", true)
	v.SetDefault("serve.addr", DefaultAddr)
}

// Load reads .exomind.yaml from the working directory or ~/.config/exomind,
// then applies EXOM_* environment overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "exomind"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	return LoadFrom(v)
}

// LoadFrom resolves a Config from an already prepared viper instance
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// GraphPath returns the configured graph document, defaulting to <out_root>/graph.json
func (c *Config) GraphPath() string {
	if c.Graph != "" {
		return c.Graph
	}
	return filepath.Join(c.OutRoot, "graph.json")
}

// ExpandPath expands "~" and a leading "~/" to the home directory.
// Other paths, including "~user", are returned unchanged.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
