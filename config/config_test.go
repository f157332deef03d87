// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cactuskit/cactus/internal/logger"
	"github.com/cactuskit/cactus/ribbon"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	yamlConfig := `title: Demo
theme:
  accent: "#336699"
components: [ribbon, stripes]
stripes:
  angle: 30
ribbon:
  height: 200
`
	tomlConfig := `title = "Demo"
components = ["dial"]

[dial]
items = 7
threshold = 20
`

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "yaml overrides defaults",
			file:     "gallery.yaml",
			contents: yamlConfig,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Demo", cfg.Title)
				assert.Equal(t, []string{"ribbon", "stripes"}, cfg.Components)
				assert.Equal(t, 30.0, cfg.Stripes.Angle)
				assert.Equal(t, 5.0, cfg.Stripes.LineWidth)
				assert.Equal(t, 200.0, cfg.Ribbon.Height)
				assert.Equal(t, 0.3, cfg.Ribbon.Perspective)
			},
		},
		{
			name:     "toml by extension",
			file:     "gallery.toml",
			contents: tomlConfig,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, 7, cfg.Dial.Items)
				assert.Equal(t, 20.0, cfg.Dial.Threshold)
				assert.Equal(t, []string{"dial"}, cfg.Components)
			},
		},
		{
			name:     "yaml syntax error carries the line",
			file:     "broken.yaml",
			contents: "title: Demo\nstripes:\n  angle: [1\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var perr *ParseError
				require.ErrorAs(t, err, &perr)
				assert.Positive(t, perr.Line)
				assert.Contains(t, err.Error(), "broken.yaml")
			},
		},
		{
			name:     "toml syntax error carries the line",
			file:     "broken.toml",
			contents: "title = \"Demo\"\nitems = = 3\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var perr *ParseError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, 2, perr.Line)
			},
		},
		{
			name:     "validation failure names the field",
			file:     "invalid.yaml",
			contents: "title: Demo\nribbon:\n  perspective: 2\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "config.ribbon.perspective", verr.Field)
				assert.Equal(t, "lte", verr.Tag)
			},
		},
		{
			name:     "infinite yaml angle",
			file:     "inf.yaml",
			contents: "title: Demo\nstripes:\n  angle: .inf\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "config.stripes.angle", verr.Field)
				assert.Equal(t, "finite", verr.Tag)
			},
		},
		{
			name:     "infinite toml angle",
			file:     "inf.toml",
			contents: "title = \"Demo\"\n\n[stripes]\nangle = -inf\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "config.stripes.angle", verr.Field)
				assert.Equal(t, "finite", verr.Tag)
			},
		},
		{
			name:     "NaN line width",
			file:     "nan.yaml",
			contents: "title: Demo\nstripes:\n  line_width: .nan\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "config.stripes.linewidth", verr.Field)
				assert.Equal(t, "finite", verr.Tag)
			},
		},
		{
			name:     "infinite ribbon height",
			file:     "height.yaml",
			contents: "title: Demo\nribbon:\n  height: .inf\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "finite", verr.Tag)
			},
		},
		{
			name:     "unknown color",
			file:     "color.yaml",
			contents: "title: Demo\ntheme:\n  background: notacolor\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "color", verr.Tag)
			},
		},
		{
			name:     "bad component name",
			file:     "names.yaml",
			contents: "title: Demo\ncomponents: [Ribbon]\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "component_name", verr.Tag)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Load(writeFile(t, tc.file, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(Default()))
	require.Error(t, Validate(nil))
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want color.NRGBA
		err  bool
	}{
		{in: "#ff8000", want: color.NRGBA{R: 255, G: 128, A: 255}},
		{in: "#ff800080", want: color.NRGBA{R: 255, G: 128, A: 128}},
		{in: "Tomato", want: color.NRGBA{R: 255, G: 99, B: 71, A: 255}},
		{in: "#ff80", err: true},
		{in: "#gggggg", err: true},
		{in: "mauvelous", err: true},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if tc.err {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestThemeColors(t *testing.T) {
	t.Parallel()

	fallback := [3]color.NRGBA{{A: 1}, {A: 2}, {A: 3}}
	bg, fg, accent, err := Theme{Foreground: "black"}.Colors(fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback[0], bg)
	assert.Equal(t, color.NRGBA{A: 255}, fg)
	assert.Equal(t, fallback[2], accent)

	_, _, _, err = Theme{Accent: "#12"}.Colors(fallback)
	assert.Error(t, err)
}

func TestConversions(t *testing.T) {
	t.Parallel()

	cfg := Default()
	spec := cfg.Stripes.Spec()
	assert.Equal(t, 45.0, spec.Angle)
	assert.Equal(t, 5.0, spec.Spacing)

	r := cfg.Ribbon.Apply(ribbon.Ribbon{Nodes: []ribbon.Node{{Width: 10}}})
	assert.Equal(t, 160.0, r.Height)
	assert.Equal(t, 0.2, r.ShadowOpacity)
	assert.Len(t, r.Nodes, 1)
}

func TestWatch(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "gallery.yaml", "title: First\n")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := Watch(ctx, path, logger.Nop())
	require.NoError(t, err)

	// An invalid intermediate write is skipped.
	require.NoError(t, os.WriteFile(path, []byte("title: [\n"), 0o644))
	time.Sleep(2 * watchDebounce)
	require.NoError(t, os.WriteFile(path, []byte("title: Second\n"), 0o644))

	select {
	case cfg := <-updates:
		require.NotNil(t, cfg)
		assert.Equal(t, "Second", cfg.Title)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload")
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-updates:
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}
