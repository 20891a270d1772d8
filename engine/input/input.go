// Package input translates raw key state into the camera's per-frame input snapshot
// and into edge-triggered application actions.
package input

import (
	"github.com/Carmen-Shannon/eventhorizon/common"
	"github.com/Carmen-Shannon/eventhorizon/engine/camera"
)

// KeyReader reports whether a key is currently held. Key codes follow GLFW numbering.
type KeyReader interface {
	IsKeyDown(keyCode uint32) bool
}

// Action is a discrete command triggered on the frame a key goes down.
type Action int

const (
	ActionCycleMode Action = iota
	ActionReset
	ActionNextResolution
	ActionPreviousResolution
	ActionSaveResolution
)

// String returns the action name for logs.
func (a Action) String() string {
	switch a {
	case ActionCycleMode:
		return "cycle_mode"
	case ActionReset:
		return "reset"
	case ActionNextResolution:
		return "next_resolution"
	case ActionPreviousResolution:
		return "previous_resolution"
	case ActionSaveResolution:
		return "save_resolution"
	default:
		return "unknown"
	}
}

// Bindings maps the logical camera controls and actions to key codes.
type Bindings struct {
	MoveForward  uint32
	MoveBackward uint32
	MoveUp       uint32
	MoveDown     uint32

	YawLeft   uint32
	YawRight  uint32
	PitchUp   uint32
	PitchDown uint32
	RollLeft  uint32
	RollRight uint32

	Actions map[Action]uint32
}

// DefaultBindings returns the standard layout: D/A forward and back, W/S up and down,
// J/L yaw, I/K pitch, U/O roll, C cycles mode, R resets, ] and [ step the resolution,
// P saves it.
//
// Returns:
//   - Bindings: the default key bindings
func DefaultBindings() Bindings {
	return Bindings{
		MoveForward:  common.KeyD,
		MoveBackward: common.KeyA,
		MoveUp:       common.KeyW,
		MoveDown:     common.KeyS,
		YawLeft:      common.KeyJ,
		YawRight:     common.KeyL,
		PitchUp:      common.KeyI,
		PitchDown:    common.KeyK,
		RollLeft:     common.KeyU,
		RollRight:    common.KeyO,
		Actions: map[Action]uint32{
			ActionCycleMode:          common.KeyC,
			ActionReset:              common.KeyR,
			ActionNextResolution:     common.KeyRightBracket,
			ActionPreviousResolution: common.KeyLeftBracket,
			ActionSaveResolution:     common.KeyP,
		},
	}
}

// actionOrder fixes the order in which simultaneous actions are reported.
var actionOrder = []Action{
	ActionCycleMode,
	ActionReset,
	ActionNextResolution,
	ActionPreviousResolution,
	ActionSaveResolution,
}

// Keymap reads a KeyReader through a set of Bindings.
// It remembers which action keys were down on the previous poll so actions fire once per press.
// A Keymap is used from the frame loop only and is not safe for concurrent use.
type Keymap struct {
	bindings Bindings
	wasDown  map[Action]bool
}

// NewKeymap creates a Keymap for the given bindings.
//
// Parameters:
//   - bindings: the key bindings to use
//
// Returns:
//   - *Keymap: the new keymap
func NewKeymap(bindings Bindings) *Keymap {
	return &Keymap{
		bindings: bindings,
		wasDown:  make(map[Action]bool, len(bindings.Actions)),
	}
}

// Snapshot returns the held state of the camera controls.
//
// Parameters:
//   - keys: the key state source
//
// Returns:
//   - camera.InputSnapshot: the state of the camera keys this frame
func (k *Keymap) Snapshot(keys KeyReader) camera.InputSnapshot {
	b := k.bindings
	return camera.InputSnapshot{
		MoveForward:  keys.IsKeyDown(b.MoveForward),
		MoveBackward: keys.IsKeyDown(b.MoveBackward),
		MoveUp:       keys.IsKeyDown(b.MoveUp),
		MoveDown:     keys.IsKeyDown(b.MoveDown),
		YawLeft:      keys.IsKeyDown(b.YawLeft),
		YawRight:     keys.IsKeyDown(b.YawRight),
		PitchUp:      keys.IsKeyDown(b.PitchUp),
		PitchDown:    keys.IsKeyDown(b.PitchDown),
		RollLeft:     keys.IsKeyDown(b.RollLeft),
		RollRight:    keys.IsKeyDown(b.RollRight),
	}
}

// Actions returns the actions whose key went down since the previous call.
// Holding a key reports its action once; it fires again only after release.
//
// Parameters:
//   - keys: the key state source
//
// Returns:
//   - []Action: newly triggered actions in a fixed order
func (k *Keymap) Actions(keys KeyReader) []Action {
	var fired []Action
	for _, a := range actionOrder {
		code, ok := k.bindings.Actions[a]
		if !ok {
			continue
		}
		down := keys.IsKeyDown(code)
		if down && !k.wasDown[a] {
			fired = append(fired, a)
		}
		k.wasDown[a] = down
	}
	return fired
}
