// Package config loads padpatch settings from defaults, a YAML config file,
// PADPATCH_* environment variables and flags, in increasing precedence.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jmylchreest/padpatch/pkg/patch/safearea"
)

// EnvPrefix prefixes environment overrides, e.g. PADPATCH_ROOT.
const EnvPrefix = "PADPATCH"

// Scope selects the files a pipeline visits: every file below one of Dirs
// (relative to the root) whose extension is in Extensions and whose
// slash-separated path matches none of the Exclude globs.
type Scope struct {
	Dirs       []string `json:"dirs" yaml:"dirs" mapstructure:"dirs" validate:"required,min=1,dive,required"`
	Extensions []string `json:"extensions" yaml:"extensions" mapstructure:"extensions" validate:"required,min=1,dive,startswith=."`
	Exclude    []string `json:"exclude,omitempty" yaml:"exclude,omitempty" mapstructure:"exclude" validate:"omitempty,dive,glob"`
}

// Excludes reports whether path matches one of the exclude patterns.
// Patterns use doublestar syntax, e.g. "**/_layout.tsx".
func (s Scope) Excludes(path string) bool {
	path = filepath.ToSlash(path)
	for _, pattern := range s.Exclude {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

// Config holds all padpatch configuration.
type Config struct {
	// Root is the application directory every scope is relative to.
	Root string `json:"root" yaml:"root" mapstructure:"root" validate:"required"`

	// Patch scopes the patch pipeline.
	Patch Scope `json:"patch" yaml:"patch" mapstructure:"patch"`

	// Clean scopes the clean pipeline.
	Clean Scope `json:"clean" yaml:"clean" mapstructure:"clean"`

	// Profile overrides the default source conventions. Empty fields keep
	// their defaults.
	Profile safearea.Profile `json:"profile" yaml:"profile" mapstructure:"profile" validate:"-"`
}

// Default returns the configuration the tool was originally written against.
func Default() *Config {
	return &Config{
		Root: ".",
		Patch: Scope{
			Dirs:       []string{"app/(owner)", "app/(kasir)", "app/(gudang)", "app/(auth)"},
			Extensions: []string{".tsx"},
		},
		Clean: Scope{
			Dirs:       []string{"app"},
			Extensions: []string{".tsx"},
		},
		Profile: safearea.DefaultProfile(),
	}
}

// SetDefaults registers defaults and environment handling on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("root", d.Root)
	v.SetDefault("patch.dirs", d.Patch.Dirs)
	v.SetDefault("patch.extensions", d.Patch.Extensions)
	v.SetDefault("clean.dirs", d.Clean.Dirs)
	v.SetDefault("clean.extensions", d.Clean.Extensions)

	// The prefix must be set before BindEnv, which captures it.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("patch.exclude")
	_ = v.BindEnv("clean.exclude")
}

// Load builds a validated Config from v. Profile fields missing from v keep
// their defaults.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config parse failed: %w", err)
	}
	cfg.Profile = safearea.DefaultProfile().Merge(cfg.Profile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(fl.Field().String())
	})
	return v
}

// Validate checks the scopes and the profile.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := c.Profile.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ValidateScope checks a scope assembled outside Load, e.g. from flags.
func ValidateScope(s Scope) error {
	return validate.Struct(s)
}
