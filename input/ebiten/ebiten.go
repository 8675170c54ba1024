// Package ebiten binds keyboards and gamepads to boards through Ebiten's
// input polling.
package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/stackfall/session"
	"github.com/plus3/stackfall/tetris"
)

// Keyboard maps the four board actions to keys.
type Keyboard struct {
	Keys [tetris.ActionCount]ebiten.Key
}

// WASD is the left hand keyboard layout.
func WASD() *Keyboard {
	return &Keyboard{Keys: [tetris.ActionCount]ebiten.Key{
		tetris.MoveLeft:  ebiten.KeyA,
		tetris.MoveRight: ebiten.KeyD,
		tetris.Rotate:    ebiten.KeyW,
		tetris.SoftDrop:  ebiten.KeyS,
	}}
}

// Arrows is the arrow key layout.
func Arrows() *Keyboard {
	return &Keyboard{Keys: [tetris.ActionCount]ebiten.Key{
		tetris.MoveLeft:  ebiten.KeyArrowLeft,
		tetris.MoveRight: ebiten.KeyArrowRight,
		tetris.Rotate:    ebiten.KeyArrowUp,
		tetris.SoftDrop:  ebiten.KeyArrowDown,
	}}
}

func (k *Keyboard) Pressed(a tetris.Action) bool {
	return inpututil.IsKeyJustPressed(k.Keys[a])
}

func (k *Keyboard) Held(a tetris.Action) bool {
	return ebiten.IsKeyPressed(k.Keys[a])
}

// gamepadButtons maps actions to the right face cluster of a standard
// layout gamepad.
var gamepadButtons = [tetris.ActionCount]ebiten.StandardGamepadButton{
	tetris.MoveLeft:  ebiten.StandardGamepadButtonRightLeft,
	tetris.MoveRight: ebiten.StandardGamepadButtonRightRight,
	tetris.Rotate:    ebiten.StandardGamepadButtonRightTop,
	tetris.SoftDrop:  ebiten.StandardGamepadButtonRightBottom,
}

// Gamepad reads the n-th connected gamepad. A gamepad that is not connected
// reports nothing.
type Gamepad struct {
	Index int

	ids []ebiten.GamepadID
	id  ebiten.GamepadID
	ok  bool
}

// Poll resolves the gamepad for this frame.
func (g *Gamepad) Poll() {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	g.ok = g.Index < len(g.ids) && ebiten.IsStandardGamepadLayoutAvailable(g.ids[g.Index])
	if g.ok {
		g.id = g.ids[g.Index]
	}
}

func (g *Gamepad) Pressed(a tetris.Action) bool {
	return g.ok && inpututil.IsStandardGamepadButtonJustPressed(g.id, gamepadButtons[a])
}

func (g *Gamepad) Held(a tetris.Action) bool {
	return g.ok && ebiten.IsStandardGamepadButtonPressed(g.id, gamepadButtons[a])
}

// ForSlot returns the input bound to a board slot. A single player plays
// with the arrow keys. With more players slot 0 uses WASD, slot 1 the
// arrows and slots 2 and 3 the first two gamepads.
func ForSlot(players, slot int) tetris.Input {
	if players == 1 && slot == 0 {
		return Arrows()
	}
	switch slot {
	case 0:
		return WASD()
	case 1:
		return Arrows()
	case 2:
		return &Gamepad{Index: 0}
	case 3:
		return &Gamepad{Index: 1}
	}
	panic(fmt.Sprintf("no input binding for slot %d", slot))
}

// Controls reads the session commands: P pauses and Enter restarts.
type Controls struct{}

var commandKeys = map[session.Command]ebiten.Key{
	session.CommandPause:   ebiten.KeyP,
	session.CommandRestart: ebiten.KeyEnter,
}

func (Controls) Pressed(c session.Command) bool {
	key, ok := commandKeys[c]
	return ok && inpututil.IsKeyJustPressed(key)
}
