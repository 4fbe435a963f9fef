// Package config loads myrt.yaml with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "myrt"
	configType = "yaml"
	envPrefix  = "MYRT"
)

// Config is the decoded myrt.yaml.
type Config struct {
	Palette PaletteConfig `mapstructure:"palette" yaml:"palette" json:"palette"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output" json:"output"`
	Targets TargetsConfig `mapstructure:"targets" yaml:"targets" json:"targets"`
	Log     LogConfig     `mapstructure:"log" yaml:"log" json:"log"`

	// Path is the file the config was read from, empty when defaults only.
	Path string `mapstructure:"-" yaml:"-" json:"path,omitempty"`
}

type PaletteConfig struct {
	// File is a YAML palette overlay applied to the built-in table.
	File string `mapstructure:"file" yaml:"file" json:"file"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir"`
}

type TargetsConfig struct {
	VSCode  VSCodeConfig  `mapstructure:"vscode" yaml:"vscode" json:"vscode"`
	Ghostty GhosttyConfig `mapstructure:"ghostty" yaml:"ghostty" json:"ghostty"`
}

type VSCodeConfig struct {
	Enabled              bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Dir                  string `mapstructure:"dir" yaml:"dir" json:"dir"`
	LightName            string `mapstructure:"light_name" yaml:"light_name" json:"light_name"`
	DarkName             string `mapstructure:"dark_name" yaml:"dark_name" json:"dark_name"`
	SemanticHighlighting bool   `mapstructure:"semantic_highlighting" yaml:"semantic_highlighting" json:"semantic_highlighting"`
}

type GhosttyConfig struct {
	Enabled   bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Dir       string `mapstructure:"dir" yaml:"dir" json:"dir"`
	LightFile string `mapstructure:"light_file" yaml:"light_file" json:"light_file"`
	DarkFile  string `mapstructure:"dark_file" yaml:"dark_file" json:"dark_file"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		Output: OutputConfig{Dir: "dist"},
		Targets: TargetsConfig{
			VSCode: VSCodeConfig{
				Enabled:              true,
				Dir:                  "vscode",
				LightName:            "Myrt Light",
				DarkName:             "Myrt Dark",
				SemanticHighlighting: true,
			},
			Ghostty: GhosttyConfig{
				Enabled:   true,
				Dir:       "ghostty",
				LightFile: "myrt-light",
				DarkFile:  "myrt-dark",
			},
		},
		Log: LogConfig{Level: "info", Format: "console"},
	}
}

// New returns a viper instance with defaults, search paths and env binding.
// An explicit path disables the search.
func New(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		return v
	}
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(".")
	if dir, err := configDirPath(); err == nil {
		v.AddConfigPath(dir)
	}
	return v
}

// Load reads the configuration. A missing file yields the defaults unless
// path names it explicitly.
func Load(path string) (*Config, error) {
	return Decode(New(path))
}

// Decode reads v's config file, if any, and unmarshals the merged settings.
func Decode(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Path = v.ConfigFileUsed()
	if err := cfg.resolvePaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// VSCodeDir is where the VS Code artifacts are written.
func (c *Config) VSCodeDir() string {
	return joinOutput(c.Output.Dir, c.Targets.VSCode.Dir)
}

// GhosttyDir is where the Ghostty artifacts are written.
func (c *Config) GhosttyDir() string {
	return joinOutput(c.Output.Dir, c.Targets.Ghostty.Dir)
}

// WatchedFiles lists the files whose changes should trigger a rebuild.
func (c *Config) WatchedFiles() []string {
	var files []string
	if c.Path != "" {
		files = append(files, c.Path)
	}
	if c.Palette.File != "" {
		files = append(files, c.Palette.File)
	}
	return files
}

// resolvePaths makes the palette path relative to the config file.
func (c *Config) resolvePaths() error {
	if c.Palette.File == "" || filepath.IsAbs(c.Palette.File) || c.Path == "" {
		return nil
	}
	abs, err := filepath.Abs(filepath.Join(filepath.Dir(c.Path), c.Palette.File))
	if err != nil {
		return fmt.Errorf("resolve palette file: %w", err)
	}
	c.Palette.File = abs
	return nil
}

func joinOutput(root, dir string) string {
	if filepath.IsAbs(dir) || root == "" {
		return dir
	}
	return filepath.Join(root, dir)
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("palette.file", d.Palette.File)
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("targets.vscode.enabled", d.Targets.VSCode.Enabled)
	v.SetDefault("targets.vscode.dir", d.Targets.VSCode.Dir)
	v.SetDefault("targets.vscode.light_name", d.Targets.VSCode.LightName)
	v.SetDefault("targets.vscode.dark_name", d.Targets.VSCode.DarkName)
	v.SetDefault("targets.vscode.semantic_highlighting", d.Targets.VSCode.SemanticHighlighting)
	v.SetDefault("targets.ghostty.enabled", d.Targets.Ghostty.Enabled)
	v.SetDefault("targets.ghostty.dir", d.Targets.Ghostty.Dir)
	v.SetDefault("targets.ghostty.light_file", d.Targets.Ghostty.LightFile)
	v.SetDefault("targets.ghostty.dark_file", d.Targets.Ghostty.DarkFile)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

func configDirPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", configName), nil
}
