// Package input maps device-level key codes to high-level camera intents.
// The layering keeps device sampling (Ebiten, terminal) separate from what
// the player is actually asking for.
package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
)

// Action represents a high-level intent of the viewer.
type Action int

const (
	ActionNone Action = iota

	// Continuous camera movement, in the camera's local frame.
	ActionMoveForward
	ActionMoveBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight

	// Meta
	ActionZoomIn
	ActionZoomOut
	ActionScreenshot
	ActionQuit
)

// RawInput is an event emitted directly from an input device. Code is a
// device-specific identifier (e.g. "w", "arrow_up", "gamepad_dpad_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// Intent is the high-level description of what the viewer wants to do.
type Intent struct {
	Action Action
}

// bindings maps raw codes to actions. Multiple codes may point to the same
// Action.
var bindings = map[string]Action{
	// Movement (WASD and arrows)
	"w":           ActionMoveForward,
	"arrow_up":    ActionMoveForward,
	"s":           ActionMoveBack,
	"arrow_down":  ActionMoveBack,
	"a":           ActionStrafeLeft,
	"arrow_left":  ActionStrafeLeft,
	"d":           ActionStrafeRight,
	"arrow_right": ActionStrafeRight,

	// Rotation
	"q": ActionTurnLeft,
	"e": ActionTurnRight,

	// Zoom
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,

	// Meta
	"f12":    ActionScreenshot,
	"escape": ActionQuit,

	// Gamepad
	"gamepad_dpad_up":    ActionMoveForward,
	"gamepad_dpad_down":  ActionMoveBack,
	"gamepad_dpad_left":  ActionStrafeLeft,
	"gamepad_dpad_right": ActionStrafeRight,
	"gamepad_start":      ActionQuit,
}

// MapToIntent applies the current bindings to a raw input and returns a
// high-level Intent. Unknown codes map to ActionNone.
func MapToIntent(ev RawInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveForward:
		return "Move Forward"
	case ActionMoveBack:
		return "Move Back"
	case ActionStrafeLeft:
		return "Strafe Left"
	case ActionStrafeRight:
		return "Strafe Right"
	case ActionTurnLeft:
		return "Turn Left"
	case ActionTurnRight:
		return "Turn Right"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// BindingsByAction returns the current bindings grouped by action, with
// codes sorted so help output is stable.
func BindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
