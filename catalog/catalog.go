// SPDX-License-Identifier: Unlicense OR MIT

/*
Package catalog registers the cactus components together with their demo
views.

A Component pairs a name and a short description with a Layout that
draws a demo of the component. Demos drawn with interactive set to false
are previews: they are laid out with a disabled context and ignore
input.
*/
package catalog

import (
	"fmt"
	"image/color"

	"gioui.org/layout"
	"github.com/google/uuid"

	"github.com/cactuskit/cactus/config"
	"github.com/cactuskit/cactus/widget/cactus"
)

// Component is anything a user can see and interact with in the
// gallery.
type Component interface {
	// Name is the short, unique, lowercase name of the component.
	Name() string
	Description() string
	// Layout draws the demo of the component.
	Layout(gtx layout.Context, th *cactus.Theme, interactive bool) layout.Dimensions
}

// namespace derives stable identifiers from component names.
var namespace = uuid.MustParse("6a1f4f0e-7c1d-4e0b-9d55-2b8a3c6f1e42")

// Entry is a registered component.
type Entry struct {
	ID uuid.UUID
	Component
}

// Registry is an ordered set of components with unique names.
type Registry struct {
	entries []Entry
	byName  map[string]int
}

// NewRegistry returns a registry of components. It panics if two
// components share a name.
func NewRegistry(components ...Component) *Registry {
	r := &Registry{byName: make(map[string]int)}
	for _, c := range components {
		if _, err := r.Register(c); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds c and returns its identifier. Identifiers are derived
// from the name and stay the same across runs.
func (r *Registry) Register(c Component) (uuid.UUID, error) {
	name := c.Name()
	if _, exists := r.byName[name]; exists {
		return uuid.Nil, fmt.Errorf("catalog: duplicate component %q", name)
	}
	id := uuid.NewSHA1(namespace, []byte(name))
	r.byName[name] = len(r.entries)
	r.entries = append(r.entries, Entry{ID: id, Component: c})
	return id, nil
}

// Lookup returns the component named name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Len returns the number of components.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns the components in registration order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Select returns the named components in the given order, or every
// component when names is empty.
func (r *Registry) Select(names []string) ([]Entry, error) {
	if len(names) == 0 {
		return r.Entries(), nil
	}
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		e, ok := r.Lookup(n)
		if !ok {
			return nil, fmt.Errorf("catalog: unknown component %q", n)
		}
		out = append(out, e)
	}
	return out, nil
}

// NewTheme returns the default theme with the colors of cfg applied.
func NewTheme(cfg config.Theme) (*cactus.Theme, error) {
	th := cactus.NewTheme()
	bg, fg, accent, err := cfg.Colors([3]color.NRGBA{th.Bg, th.Fg, th.Accent})
	if err != nil {
		return nil, fmt.Errorf("catalog: theme: %w", err)
	}
	th.Bg, th.Fg = bg, fg
	th.Accent, th.ContrastBg = accent, accent
	return th, nil
}
