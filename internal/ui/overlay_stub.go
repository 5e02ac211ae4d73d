//go:build !ebiten

package ui

import "torus-life/internal/sims/life"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*life.Life, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// SetCursor is a no-op in headless builds.
func (o *Overlay) SetCursor(int, int, int) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
