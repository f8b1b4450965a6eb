// Package config loads and validates the site configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/alnah/go-mdpage/internal/fileutil"
	"github.com/alnah/go-mdpage/internal/pipeline"
	"github.com/alnah/go-mdpage/internal/yamlutil"
)

// AppName names the user config subdirectory.
const AppName = "mdpage"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxAddrLength       = 255
	MaxPathLength       = 4096
	MaxURLLength        = 2048
	MaxStyleLength      = 50
	MaxPagePathLength   = 512
	MaxScriptFileLength = 255
)

// Defaults.
const (
	DefaultAddr          = ":8080"
	DefaultReadTimeout   = 10 * time.Second
	DefaultWriteTimeout  = 30 * time.Second
	DefaultDocumentsDir  = "./documents"
	DefaultComponentsDir = "./app/components"
	DefaultScriptsDir    = "./app/components/client"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

// Config holds all configuration for the page renderer and its server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Content  ContentConfig  `yaml:"content"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Partials PartialsConfig `yaml:"partials"`
	Scripts  []PageScript   `yaml:"scripts"`
	Assets   AssetsConfig   `yaml:"assets"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig defines HTTP listener options.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

// ContentConfig locates the site content on disk.
type ContentConfig struct {
	DocumentsDir  string `yaml:"documentsDir"`  // <path>.md files
	ComponentsDir string `yaml:"componentsDir"` // <name>.html partials
	ScriptsDir    string `yaml:"scriptsDir"`    // Page scripts
}

// MarkdownConfig toggles optional rendering features.
type MarkdownConfig struct {
	WikiBaseURL    string `yaml:"wikiBaseURL"` // Empty = /glossary#
	GFM            bool   `yaml:"gfm"`
	Highlight      bool   `yaml:"highlight"`
	HighlightStyle string `yaml:"highlightStyle"` // Chroma style, empty = github
	Permalinks     bool   `yaml:"permalinks"`
	Sanitize       bool   `yaml:"sanitize"`
}

// PartialsConfig defines placeholder resolution options.
type PartialsConfig struct {
	Strict bool `yaml:"strict"` // Unresolved placeholders fail the render
}

// PageScript binds a document path to a client script inlined in its page.
type PageScript struct {
	Path string `yaml:"path"` // Document path, e.g. "glossary"
	File string `yaml:"file"` // File name inside content.scriptsDir
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// LogConfig defines logging options.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// DefaultPageScripts returns the built-in path to script bindings.
func DefaultPageScripts() []PageScript {
	return []PageScript{
		{Path: "glossary", File: "glossary-scripts.js"},
		{Path: "overview", File: "ecosystem-scripts.js"},
		{Path: "tour", File: "tour-scripts.js"},
	}
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         DefaultAddr,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
		},
		Content: ContentConfig{
			DocumentsDir:  DefaultDocumentsDir,
			ComponentsDir: DefaultComponentsDir,
			ScriptsDir:    DefaultScriptsDir,
		},
		Markdown: MarkdownConfig{WikiBaseURL: pipeline.DefaultWikiBaseURL},
		Scripts:  DefaultPageScripts(),
		Log:      LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("server.addr", c.Server.Addr, MaxAddrLength); err != nil {
		return err
	}
	if c.Server.ReadTimeout < 0 {
		return fmt.Errorf("%w: server.readTimeout must not be negative, got %s", ErrInvalidValue, c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout < 0 {
		return fmt.Errorf("%w: server.writeTimeout must not be negative, got %s", ErrInvalidValue, c.Server.WriteTimeout)
	}

	dirs := []struct{ field, value string }{
		{"content.documentsDir", c.Content.DocumentsDir},
		{"content.componentsDir", c.Content.ComponentsDir},
		{"content.scriptsDir", c.Content.ScriptsDir},
		{"assets.basePath", c.Assets.BasePath},
	}
	for _, d := range dirs {
		if err := validateFieldLength(d.field, d.value, MaxPathLength); err != nil {
			return err
		}
	}
	if c.Content.DocumentsDir == "" {
		return fmt.Errorf("%w: content.documentsDir is required", ErrInvalidValue)
	}

	if err := validateFieldLength("markdown.wikiBaseURL", c.Markdown.WikiBaseURL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("markdown.highlightStyle", c.Markdown.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}
	if c.Markdown.Highlight && c.Markdown.HighlightStyle != "" {
		if err := pipeline.ValidateHighlightStyle(c.Markdown.HighlightStyle); err != nil {
			return fmt.Errorf("%w: markdown.highlightStyle: %w", ErrInvalidValue, err)
		}
	}

	seen := make(map[string]bool, len(c.Scripts))
	for i, s := range c.Scripts {
		field := fmt.Sprintf("scripts[%d]", i)
		if s.Path == "" {
			return fmt.Errorf("%w: %s.path is required", ErrInvalidValue, field)
		}
		if err := validateFieldLength(field+".path", s.Path, MaxPagePathLength); err != nil {
			return err
		}
		if err := validateFieldLength(field+".file", s.File, MaxScriptFileLength); err != nil {
			return err
		}
		if err := fileutil.ValidateFileName(s.File); err != nil {
			return fmt.Errorf("%w: %s.file: %v", ErrInvalidValue, field, err)
		}
		if seen[s.Path] {
			return fmt.Errorf("%w: %s.path %q is bound twice", ErrInvalidValue, field, s.Path)
		}
		seen[s.Path] = true
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
		// valid
	default:
		return fmt.Errorf("%w: log.format %q (must be text or json)", ErrInvalidValue, c.Log.Format)
	}

	return nil
}

// ParseLevel converts a log.level value to a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q (must be debug, info, warn or error)", ErrInvalidValue, s)
	}
	return level, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name on fsys.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values absent from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(fsys afero.Fs, nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(fsys, nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := afero.ReadFile(fsys, configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, the user config dir /mdpage/
func resolveConfigPath(fsys afero.Fs, name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(fsys, localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppName, name+ext)
			if fileutil.FileExists(fsys, userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
