// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the gallery configuration from YAML or TOML
// files.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/cactuskit/cactus/ribbon"
	"github.com/cactuskit/cactus/stripe"
)

// Config is the gallery configuration.
type Config struct {
	Title string `yaml:"title" toml:"title" validate:"required"`
	Theme Theme  `yaml:"theme" toml:"theme"`
	// Components lists the enabled components in display order. An
	// empty list enables every component.
	Components []string `yaml:"components" toml:"components" validate:"dive,component_name"`
	Stripes    Stripes  `yaml:"stripes" toml:"stripes"`
	Ribbon     Ribbon   `yaml:"ribbon" toml:"ribbon"`
	Dial       Dial     `yaml:"dial" toml:"dial"`
	// Watch reloads the file when it changes.
	Watch bool `yaml:"watch" toml:"watch"`
}

// Theme overrides the gallery colors. Colors are X11 color names or
// hexadecimal #rrggbb or #rrggbbaa values.
type Theme struct {
	Background string `yaml:"background" toml:"background" validate:"omitempty,color"`
	Foreground string `yaml:"foreground" toml:"foreground" validate:"omitempty,color"`
	Accent     string `yaml:"accent" toml:"accent" validate:"omitempty,color"`
}

// Stripes configures the striped fill demos.
type Stripes struct {
	Angle     float64 `yaml:"angle" toml:"angle" validate:"finite"`
	LineWidth float64 `yaml:"line_width" toml:"line_width" validate:"finite,gt=0"`
	Spacing   float64 `yaml:"spacing" toml:"spacing" validate:"finite,gte=0"`
	Opacity   float64 `yaml:"opacity" toml:"opacity" validate:"finite,gte=0,lte=1"`
}

// Ribbon configures the ribbon demo.
type Ribbon struct {
	Height        float64 `yaml:"height" toml:"height" validate:"finite,gt=0"`
	Perspective   float64 `yaml:"perspective" toml:"perspective" validate:"finite,gte=0,lte=1"`
	ShadowOpacity float64 `yaml:"shadow_opacity" toml:"shadow_opacity" validate:"finite,gte=0,lte=1"`
}

// Dial configures the context menu demo.
type Dial struct {
	Items     int     `yaml:"items" toml:"items" validate:"min=2,max=12"`
	Threshold float64 `yaml:"threshold" toml:"threshold" validate:"finite,gte=0"`
}

// ParseError is a syntax error in a configuration file.
type ParseError struct {
	Path string
	// Line is 1-based, or 0 when unknown.
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("config: %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("config: %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

// Default returns the configuration used without a file.
func Default() *Config {
	return &Config{
		Title:   "Cactus",
		Stripes: Stripes{Angle: 45, LineWidth: 5, Spacing: 5, Opacity: 1},
		Ribbon:  Ribbon{Height: 160, Perspective: 0.3, ShadowOpacity: 0.2},
		Dial:    Dial{Items: 5, Threshold: 30},
	}
}

// Load reads, decodes and validates the file at path. Fields missing
// from the file keep their Default values. Files with the .toml
// extension are decoded as TOML, all others as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes data read from path.
func Parse(path string, data []byte) (*Config, error) {
	cfg := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			line := 0
			var perr toml.ParseError
			if errors.As(err, &perr) {
				line = perr.Position.Line
			}
			return nil, &ParseError{Path: path, Line: line, Err: err}
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &ParseError{Path: path, Line: extractLine(err), Err: err}
		}
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func extractLine(err error) int {
	m := yamlLine.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return 0
	}
	line, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return line
}

// Spec returns the stripe parameters.
func (s Stripes) Spec() stripe.Spec {
	return stripe.Spec{Angle: s.Angle, LineWidth: s.LineWidth, Spacing: s.Spacing, Opacity: s.Opacity}
}

// Apply copies the configured ribbon parameters to r.
func (c Ribbon) Apply(r ribbon.Ribbon) ribbon.Ribbon {
	r.Height = c.Height
	r.Perspective = c.Perspective
	r.ShadowOpacity = c.ShadowOpacity
	return r
}

// ParseColor resolves an X11 color name or a #rrggbb or #rrggbbaa
// value.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 && len(hex) != 8 {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		if len(hex) == 6 {
			hex += "ff"
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// Colors returns the configured colors. Unset colors are returned as
// fallback.
func (t Theme) Colors(fallback [3]color.NRGBA) (bg, fg, accent color.NRGBA, err error) {
	vals := [3]string{t.Background, t.Foreground, t.Accent}
	out := fallback
	for i, v := range vals {
		if v == "" {
			continue
		}
		if out[i], err = ParseColor(v); err != nil {
			return
		}
	}
	return out[0], out[1], out[2], nil
}
