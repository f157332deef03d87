// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/cactuskit/cactus/catalog"
	"github.com/cactuskit/cactus/config"
	"github.com/cactuskit/cactus/internal/logger"
	"github.com/cactuskit/cactus/widget/cactus"
)

type galleryOptions struct {
	open string
}

func newGalleryCmd(root *rootFlags) *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Open the component gallery window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.open, "open", "", "Open the demo of the named component")

	return cmd
}

func runGallery(root *rootFlags, opts *galleryOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	s, err := newGalleryState(cfg)
	if err != nil {
		return err
	}
	if opts.open != "" && !s.gallery.Show(opts.open) {
		root.log.Warn("component not listed", "name", opts.open)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := new(app.Window)
	w.Option(app.Title(cfg.Title), app.Size(unit.Dp(480), unit.Dp(860)))

	var reloads <-chan *config.Config
	if cfg.Watch && root.configPath != "" {
		reloads, err = config.Watch(ctx, root.configPath, root.log)
		if err != nil {
			cancel()
			return err
		}
	}
	updates := make(chan *config.Config, 1)
	go forward(reloads, updates, w)

	go func() {
		defer cancel()
		if err := s.run(w, updates, root.log); err != nil {
			root.log.Error(err, "gallery")
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

// forward passes reloaded configurations to the window loop and wakes
// it up.
func forward(reloads <-chan *config.Config, updates chan *config.Config, w *app.Window) {
	if reloads == nil {
		return
	}
	for cfg := range reloads {
		select {
		case <-updates:
		default:
		}
		updates <- cfg
		w.Invalidate()
	}
}

type galleryState struct {
	theme   *cactus.Theme
	gallery *catalog.Gallery
}

func newGalleryState(cfg *config.Config) (*galleryState, error) {
	s := &galleryState{gallery: catalog.NewGallery(cfg.Title, nil)}
	if err := s.apply(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// apply rebuilds the theme and the component list from cfg.
func (s *galleryState) apply(cfg *config.Config) error {
	th, err := catalog.NewTheme(cfg.Theme)
	if err != nil {
		return err
	}
	entries, err := catalog.Default(cfg).Select(cfg.Components)
	if err != nil {
		return err
	}
	s.theme = th
	s.gallery.Title = cfg.Title
	s.gallery.SetEntries(entries)
	return nil
}

func (s *galleryState) run(w *app.Window, updates <-chan *config.Config, log *logger.Logger) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			select {
			case cfg := <-updates:
				if err := s.apply(cfg); err != nil {
					log.Error(err, "config apply")
				} else {
					w.Option(app.Title(cfg.Title))
				}
			default:
			}
			gtx := app.NewContext(&ops, e)
			s.gallery.Layout(gtx, s.theme)
			e.Frame(gtx.Ops)
		}
	}
}
