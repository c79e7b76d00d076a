package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bwatkins/gones/nes"
)

// buttonKeys maps each controller button, in nes.Button* bit order, to
// the ebiten key that drives it.
var buttonKeys = []struct {
	button uint8
	key    ebiten.Key
}{
	{nes.ButtonA, ebiten.KeyZ},
	{nes.ButtonB, ebiten.KeyX},
	{nes.ButtonSelect, ebiten.KeyShiftRight},
	{nes.ButtonStart, ebiten.KeyEnter},
	{nes.ButtonUp, ebiten.KeyUp},
	{nes.ButtonDown, ebiten.KeyDown},
	{nes.ButtonLeft, ebiten.KeyLeft},
	{nes.ButtonRight, ebiten.KeyRight},
}

// ebitenButtons polls ebiten's keyboard state to satisfy
// nes.ButtonSource for controller port 1.
type ebitenButtons struct{}

func newEbitenButtons() *ebitenButtons { return &ebitenButtons{} }

func (e *ebitenButtons) ButtonState() uint8 {
	var state uint8
	for _, bk := range buttonKeys {
		if ebiten.IsKeyPressed(bk.key) {
			state |= bk.button
		}
	}
	return state
}
