package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyboardInput asks to quit on Escape, Q or the window's close button.
type keyboardInput struct{}

func (keyboardInput) QuitRequested() bool {
	return ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ)
}
