package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tpsify/tpsify/internal/sites"
)

type Config struct {
	Output     string `yaml:"output"`
	LabelColor string `yaml:"label_color"`
	Interval   string `yaml:"interval"`
	Debounce   string `yaml:"debounce"`
	MaxPasses  int    `yaml:"max_passes"`
	Debug      bool   `yaml:"debug"`

	Cookie           string `yaml:"cookie"`
	CookieFile       string `yaml:"cookie_file"`
	UserAgent        string `yaml:"user_agent"`
	BypassCloudflare bool   `yaml:"bypass_cloudflare"`

	// Sites is the detection table. Empty means the built-in table; the
	// converter consumes whatever is here without validating it further.
	Sites sites.Table `yaml:"sites,omitempty"`
}

type Options struct {
	IgnoreConfig     bool
	Debug            bool
	Output           string
	LabelColor       string
	Interval         string
	Debounce         string
	MaxPasses        int
	Cookie           string
	CookieFile       string
	UserAgent        string
	BypassCloudflare bool
}

func DefaultConfig() *Config {
	return &Config{
		Output:     "",
		LabelColor: "#90EE90",
		Interval:   "2s",
		Debounce:   "400ms",
		MaxPasses:  0,
		Sites:      sites.Defaults(),
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// LoadMerged loads the active profile (or the in-memory default) and lays
// the CLI flags over it. The second return value names where the config
// came from, for the startup banner.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		merge(cfg, opts)
		normalize(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		merge(cfg, opts)
		normalize(cfg)
		return cfg, "(default config in memory)\nRun `tpsify config init` to create an actual config\n", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	merge(cfg, opts)
	normalize(cfg)

	return cfg, activePath, nil
}

func merge(c *Config, o Options) {
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.LabelColor != "" {
		c.LabelColor = o.LabelColor
	}
	if o.Interval != "" {
		c.Interval = o.Interval
	}
	if o.Debounce != "" {
		c.Debounce = o.Debounce
	}
	if o.MaxPasses != 0 {
		c.MaxPasses = o.MaxPasses
	}
	if o.Debug {
		c.Debug = true
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.BypassCloudflare {
		c.BypassCloudflare = true
	}
}

func normalize(c *Config) {
	if c.LabelColor == "" {
		c.LabelColor = "#90EE90"
	}
	if c.Interval == "" {
		c.Interval = "2s"
	}
	if c.Debounce == "" {
		c.Debounce = "400ms"
	}
	if len(c.Sites) == 0 {
		c.Sites = sites.Defaults()
	}
}

// PollInterval parses the interval field, falling back to the default on
// nonsense rather than failing a session over a config typo.
func (c *Config) PollInterval() time.Duration {
	d, err := time.ParseDuration(c.Interval)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

func (c *Config) DebounceWindow() time.Duration {
	d, err := time.ParseDuration(c.Debounce)
	if err != nil || d <= 0 {
		return 400 * time.Millisecond
	}
	return d
}

func (c *Config) Print() {
	if c.Output != "" {
		fmt.Printf(" -output: %s\n", c.Output)
	}
	fmt.Printf(" -label_color: %s\n", c.LabelColor)
	fmt.Printf(" -interval: %s\n", c.Interval)
	fmt.Printf(" -debounce: %s\n", c.Debounce)
	if c.MaxPasses > 0 {
		fmt.Printf(" -max_passes: %d\n", c.MaxPasses)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	if c.CookieFile != "" {
		fmt.Printf(" -cookie_file: %s\n", c.CookieFile)
	}
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	if c.BypassCloudflare {
		fmt.Printf(" -bypass_cloudflare: %t\n", c.BypassCloudflare)
	}
	fmt.Printf(" -sites: %d configured\n", len(c.Sites))
	for _, p := range c.Sites {
		fmt.Printf("    %s (%d rules)\n", p.Host, len(p.Rules))
	}
}
