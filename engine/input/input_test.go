package input

import (
	"testing"

	"github.com/Carmen-Shannon/eventhorizon/common"
	"github.com/Carmen-Shannon/eventhorizon/engine/camera"
	"github.com/stretchr/testify/assert"
)

type fakeKeys map[uint32]bool

func (f fakeKeys) IsKeyDown(keyCode uint32) bool {
	return f[keyCode]
}

func TestSnapshotDefaultBindings(t *testing.T) {
	km := NewKeymap(DefaultBindings())

	assert.Equal(t, camera.InputSnapshot{}, km.Snapshot(fakeKeys{}))

	got := km.Snapshot(fakeKeys{
		common.KeyD: true,
		common.KeyS: true,
		common.KeyJ: true,
		common.KeyK: true,
		common.KeyO: true,
	})
	assert.Equal(t, camera.InputSnapshot{
		MoveForward: true,
		MoveDown:    true,
		YawLeft:     true,
		PitchDown:   true,
		RollRight:   true,
	}, got)

	got = km.Snapshot(fakeKeys{
		common.KeyA: true,
		common.KeyW: true,
		common.KeyL: true,
		common.KeyI: true,
		common.KeyU: true,
	})
	assert.Equal(t, camera.InputSnapshot{
		MoveBackward: true,
		MoveUp:       true,
		YawRight:     true,
		PitchUp:      true,
		RollLeft:     true,
	}, got)
}

func TestActionsFireOncePerPress(t *testing.T) {
	km := NewKeymap(DefaultBindings())
	keys := fakeKeys{}

	assert.Empty(t, km.Actions(keys))

	keys[common.KeyC] = true
	assert.Equal(t, []Action{ActionCycleMode}, km.Actions(keys))
	assert.Empty(t, km.Actions(keys), "held key must not repeat")

	keys[common.KeyC] = false
	assert.Empty(t, km.Actions(keys))

	keys[common.KeyC] = true
	keys[common.KeyRightBracket] = true
	keys[common.KeyR] = true
	assert.Equal(t, []Action{ActionCycleMode, ActionReset, ActionNextResolution}, km.Actions(keys))
}

func TestCustomBindingsWithoutActions(t *testing.T) {
	b := DefaultBindings()
	b.MoveForward = common.KeyW
	b.Actions = nil
	km := NewKeymap(b)

	keys := fakeKeys{common.KeyW: true, common.KeyC: true}
	snap := km.Snapshot(keys)
	assert.True(t, snap.MoveForward)
	assert.True(t, snap.MoveUp)
	assert.Empty(t, km.Actions(keys))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "cycle_mode", ActionCycleMode.String())
	assert.Equal(t, "save_resolution", ActionSaveResolution.String())
	assert.Equal(t, "unknown", Action(99).String())
}
