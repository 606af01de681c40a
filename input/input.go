package input

import (
	cfg "github.com/automoto/digimorph/config"
	"github.com/automoto/digimorph/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
)

// Binding maps one queued action to the keys and gamepad buttons that
// trigger it.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var (
	MoveLeft  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	MoveRight = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}

	// SwapKeys select roster slots 0..n-1.
	SwapKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

	Bindings = map[cfg.ActionID]Binding{
		cfg.ActionJump: {
			Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		cfg.ActionDash: {
			Keys:                   []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyK},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
		},
		cfg.ActionMelee: {
			Keys:                   []ebiten.Key{ebiten.KeyJ, ebiten.KeyX},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
		},
		cfg.ActionRanged: {
			Keys:                   []ebiten.Key{ebiten.KeyL, ebiten.KeyC},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
		},
		cfg.ActionMorphForward: {
			Keys:                   []ebiten.Key{ebiten.KeyE},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
		},
		cfg.ActionMorphBackward: {
			Keys:                   []ebiten.Key{ebiten.KeyQ},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
		},
	}

	AnalogDeadzone = 0.25
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll reads the keyboard and gamepads and queues the result on agent's
// intent. Call once per frame before the tick.
func Poll(agent *donburi.Entry) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	left := anyKeyPressed(MoveLeft)
	right := anyKeyPressed(MoveRight)
	axis := Axis(left, right)
	if axis == 0 {
		axis = analogAxis(gamepadIDs)
	}
	systems.QueueMove(agent, axis)

	for action, binding := range Bindings {
		if !justPressed(binding) {
			continue
		}
		if action == cfg.ActionMorphForward {
			// Only the first evolution option is reachable from a single key.
			systems.QueueEvolution(agent, 0)
			continue
		}
		systems.QueueAction(agent, action)
	}

	for i, key := range SwapKeys {
		if inpututil.IsKeyJustPressed(key) {
			systems.QueueSwap(agent, i)
		}
	}
}

// Axis folds two held directions into a movement axis.
func Axis(left, right bool) float64 {
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	}
	return 0
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func justPressed(binding Binding) bool {
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// analogAxis reads the left stick of the first gamepad past the deadzone.
func analogAxis(gamepads []ebiten.GamepadID) float64 {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -AnalogDeadzone || h > AnalogDeadzone {
			return h
		}
	}
	return 0
}
