// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "ribbon")
	require.Contains(t, out, "time-dial")
	require.NotContains(t, out, "ID")
}

func TestListCommandConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Few\ncomponents: [ticket, stripes]\n"), 0o644))

	out, err := execute(t, "list", "--config", path, "--ids")
	require.NoError(t, err)
	require.Contains(t, out, "ticket")
	require.Contains(t, out, "stripes")
	require.NotContains(t, out, "ribbon")
	require.Contains(t, out, "ID")
}

func TestListCommandUnknownComponent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Bad\ncomponents: [teapot]\n"), 0o644))

	_, err := execute(t, "list", "--config", path)
	require.ErrorContains(t, err, "teapot")
}

func TestSnapshotCommand(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{"stripes", "radial-lines", "ribbon"} {
		path := filepath.Join(t.TempDir(), kind+".png")
		_, err := execute(t, "snapshot", kind, "-o", path, "--width", "120", "--height", "80", "--log-level", "warn")
		require.NoError(t, err, kind)

		f, err := os.Open(path)
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		require.Equal(t, 120, img.Bounds().Dx())
		require.Equal(t, 80, img.Bounds().Dy())
	}
}

func TestSnapshotCommandErrors(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "snapshot", "teapot", "-o", filepath.Join(t.TempDir(), "x.png"))
	require.ErrorContains(t, err, "teapot")

	_, err = execute(t, "snapshot", "stripes")
	require.Error(t, err)

	_, err = execute(t, "list", "--log-level", "loud")
	require.Error(t, err)
}
