// Package config loads peimport settings from defaults and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"github.com/ZacharyZcR/PEImport/internal/catalog"
	"github.com/ZacharyZcR/PEImport/internal/report"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "peimport"

	// DefaultConfigFile is the configuration file name inside the config directory.
	DefaultConfigFile = "config.yaml"
)

// ErrConfigNotFound is returned when an explicitly requested configuration
// file does not exist.
var ErrConfigNotFound = errors.New("配置文件不存在")

// Config holds report and output settings. Command-line flags override
// whatever is loaded here.
type Config struct {
	// Format is the report format (text, html, markdown, json, pdf).
	Format string `yaml:"format" default:"text"`
	// Dangerous enables dangerous-function marking.
	Dangerous bool `yaml:"dangerous"`
	// MinFunctions pads every DLL section to this many entries. 0 disables padding.
	MinFunctions int `yaml:"min_functions"`
	// MaxPerDLL caps the functions listed per DLL. 0 means unlimited.
	MaxPerDLL int `yaml:"max_per_dll"`
	// KnownOnly drops DLLs the catalog does not describe.
	KnownOnly bool `yaml:"known_only"`
	// Catalog is an optional YAML overlay merged over the built-in table.
	Catalog string `yaml:"catalog"`
	// OutputDir is where reports are written when no output file is given.
	OutputDir string `yaml:"output_dir" default:"."`
	// CatalogMin is the padding used by the catalog subcommand.
	CatalogMin int `yaml:"catalog_min" default:"100"`
}

// New returns a Config populated with defaults.
func New() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		// Only malformed struct tags make Set fail.
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}

// XDGConfigDir returns the peimport configuration directory.
// On Linux: ~/.config/peimport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return filepath.Join(XDGConfigDir(), DefaultConfigFile)
}

// Load reads the configuration at path. An empty path means DefaultPath,
// and a missing default file yields the defaults. A missing explicit path
// returns ErrConfigNotFound.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return New(), nil
		}
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and the format name.
func (c *Config) Validate() error {
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.MinFunctions < 0 {
		return fmt.Errorf("min_functions 不能为负数: %d", c.MinFunctions)
	}
	if c.MaxPerDLL < 0 {
		return fmt.Errorf("max_per_dll 不能为负数: %d", c.MaxPerDLL)
	}
	if c.CatalogMin < 0 {
		return fmt.Errorf("catalog_min 不能为负数: %d", c.CatalogMin)
	}
	return nil
}

// ReportFormat returns the parsed report format.
func (c *Config) ReportFormat() report.Format {
	f, err := report.ParseFormat(c.Format)
	if err != nil {
		return report.FormatText
	}
	return f
}

// ReportOptions maps the configuration onto report build options.
func (c *Config) ReportOptions() report.Options {
	return report.Options{
		MarkDangerous: c.Dangerous,
		MinFunctions:  c.MinFunctions,
		MaxPerDLL:     c.MaxPerDLL,
		KnownOnly:     c.KnownOnly,
	}
}

// LoadCatalog returns the built-in catalog merged with the configured overlay.
func (c *Config) LoadCatalog() (*catalog.Catalog, error) {
	if c.Catalog == "" {
		return catalog.Default(), nil
	}
	overlay, err := catalog.LoadOverlay(c.Catalog)
	if err != nil {
		return nil, err
	}
	return catalog.Default().Merge(overlay), nil
}
