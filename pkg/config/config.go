// Package config resolves formatter configuration for the CLI and the
// editor server. Precedence, highest first: command-line flags, environment
// variables, the .journalfmt.yaml config file, built-in defaults. The result
// is always a fully-populated options value; unrecognized or out-of-range
// settings silently fall back to their defaults so a single bad field never
// blocks an operation.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/shunichi-ikebuchi/journalfmt/pkg/journal"
)

// DefaultConfigFile is looked up in the current directory when no explicit
// config path is given.
const DefaultConfigFile = ".journalfmt.yaml"

// DefaultRefreshInterval is how often the account index rescans the
// workspace.
const DefaultRefreshInterval = 30 * time.Second

// Config is the resolved application configuration.
type Config struct {
	// Options are the fully-populated formatter options.
	Options journal.Options
	// Workspace is the root directory scanned for account names.
	Workspace string
	// CacheDB is the SQLite account-index cache path; empty selects the
	// default under the workspace.
	CacheDB string
	// RefreshInterval is the account-index rescan interval.
	RefreshInterval time.Duration
}

// FileConfig mirrors the YAML config file. Pointer fields distinguish "not
// set" from zero values.
type FileConfig struct {
	AmountColumn    *int    `yaml:"amount_column"`
	Alignment       *string `yaml:"alignment"`
	IndentWidth     *int    `yaml:"indent_width"`
	NegativeStyle   *string `yaml:"negative_style"`
	DateFormat      *string `yaml:"date_format"`
	CommentChar     *string `yaml:"comment_char"`
	Workspace       *string `yaml:"workspace"`
	CacheDB         *string `yaml:"cache_db"`
	RefreshInterval *string `yaml:"refresh_interval"`
}

// Overrides carries flag-level settings. Nil fields are unset and do not
// shadow lower-precedence sources.
type Overrides struct {
	AmountColumn  *int
	Alignment     *string
	IndentWidth   *int
	NegativeStyle *string
	DateFormat    *string
	CommentChar   *string
	Workspace     *string
	CacheDB       *string
}

// Load resolves the configuration. It loads a .env file when one is present
// (or the explicit envPath), then applies config file, environment, and
// flag overrides in increasing precedence. Only I/O problems with an
// explicitly named file are reported as errors; a missing default config
// file is not an error.
func Load(overrides Overrides, cfgPath, envPath string) (Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return Config{}, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := Config{
		Options:         journal.DefaultOptions(),
		RefreshInterval: DefaultRefreshInterval,
	}

	fileCfg, err := readFileConfig(cfgPath)
	if err != nil {
		return Config{}, err
	}
	applyFileConfig(&cfg, fileCfg)
	applyEnv(&cfg)
	applyOverrides(&cfg, overrides)

	cfg.Options = cfg.Options.Normalize()
	return cfg, nil
}

func readFileConfig(cfgPath string) (FileConfig, error) {
	var fc FileConfig

	explicit := cfgPath != ""
	if !explicit {
		cfgPath = DefaultConfigFile
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		if explicit {
			return fc, fmt.Errorf("failed to read config file: %w", err)
		}
		return fc, nil
	}

	if err := yaml.Unmarshal(data, &fc); err != nil {
		if explicit {
			return fc, fmt.Errorf("failed to parse YAML: %w", err)
		}
		return FileConfig{}, nil
	}
	return fc, nil
}

func applyFileConfig(cfg *Config, fc FileConfig) {
	if fc.AmountColumn != nil {
		cfg.Options.AmountColumn = *fc.AmountColumn
	}
	if fc.Alignment != nil {
		setAlignment(&cfg.Options, *fc.Alignment)
	}
	if fc.IndentWidth != nil {
		cfg.Options.IndentWidth = *fc.IndentWidth
	}
	if fc.NegativeStyle != nil {
		setNegativeStyle(&cfg.Options, *fc.NegativeStyle)
	}
	if fc.DateFormat != nil {
		setDateFormat(&cfg.Options, *fc.DateFormat)
	}
	if fc.CommentChar != nil {
		setCommentChar(&cfg.Options, *fc.CommentChar)
	}
	if fc.Workspace != nil {
		cfg.Workspace = *fc.Workspace
	}
	if fc.CacheDB != nil {
		cfg.CacheDB = *fc.CacheDB
	}
	if fc.RefreshInterval != nil {
		if d, err := time.ParseDuration(*fc.RefreshInterval); err == nil && d > 0 {
			cfg.RefreshInterval = d
		}
	}
}

func applyEnv(cfg *Config) {
	if v, ok := intEnv("JOURNALFMT_AMOUNT_COLUMN"); ok {
		cfg.Options.AmountColumn = v
	}
	if v := os.Getenv("JOURNALFMT_ALIGNMENT"); v != "" {
		setAlignment(&cfg.Options, v)
	}
	if v, ok := intEnv("JOURNALFMT_INDENT_WIDTH"); ok {
		cfg.Options.IndentWidth = v
	}
	if v := os.Getenv("JOURNALFMT_NEGATIVE_STYLE"); v != "" {
		setNegativeStyle(&cfg.Options, v)
	}
	if v := os.Getenv("JOURNALFMT_DATE_FORMAT"); v != "" {
		setDateFormat(&cfg.Options, v)
	}
	if v := os.Getenv("JOURNALFMT_COMMENT_CHAR"); v != "" {
		setCommentChar(&cfg.Options, v)
	}
	if v := os.Getenv("JOURNALFMT_WORKSPACE"); v != "" {
		cfg.Workspace = v
	}
	if v := os.Getenv("JOURNALFMT_CACHE_DB"); v != "" {
		cfg.CacheDB = v
	}
	if v := os.Getenv("JOURNALFMT_REFRESH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RefreshInterval = d
		}
	}
}

func applyOverrides(cfg *Config, o Overrides) {
	if o.AmountColumn != nil {
		cfg.Options.AmountColumn = *o.AmountColumn
	}
	if o.Alignment != nil {
		setAlignment(&cfg.Options, *o.Alignment)
	}
	if o.IndentWidth != nil {
		cfg.Options.IndentWidth = *o.IndentWidth
	}
	if o.NegativeStyle != nil {
		setNegativeStyle(&cfg.Options, *o.NegativeStyle)
	}
	if o.DateFormat != nil {
		setDateFormat(&cfg.Options, *o.DateFormat)
	}
	if o.CommentChar != nil {
		setCommentChar(&cfg.Options, *o.CommentChar)
	}
	if o.Workspace != nil {
		cfg.Workspace = *o.Workspace
	}
	if o.CacheDB != nil {
		cfg.CacheDB = *o.CacheDB
	}
}

// Enum setters ignore unknown values so the lower-precedence setting (or the
// default) survives a bad input.

func setAlignment(opts *journal.Options, v string) {
	switch v {
	case "widest":
		opts.Alignment = journal.AlignWidest
	case "fixed":
		opts.Alignment = journal.AlignFixedColumn
	}
}

func setNegativeStyle(opts *journal.Options, v string) {
	switch v {
	case "symbol-before-sign":
		opts.NegativeStyle = journal.SymbolBeforeSign
	case "sign-before-symbol":
		opts.NegativeStyle = journal.SignBeforeSymbol
	}
}

func setDateFormat(opts *journal.Options, v string) {
	switch v {
	case "YYYY-MM-DD":
		opts.DateFormat = journal.DateISO
	case "YYYY/MM/DD":
		opts.DateFormat = journal.DateSlash
	case "YYYY.MM.DD":
		opts.DateFormat = journal.DateDot
	}
}

func setCommentChar(opts *journal.Options, v string) {
	if len(v) == 1 {
		opts.CommentChar = v[0]
	}
}

func intEnv(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
