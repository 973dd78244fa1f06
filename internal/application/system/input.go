package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the abstract input for one tick.
// The zero value is neutral: no axis, no edges, nothing held.
type InputState struct {
	Horizontal float64 // [-1, 1]
	FaceRight  bool    // edge
	FaceLeft   bool    // edge
	Jump       bool    // edge
	FireDown   bool    // edge
	FireHeld   bool    // level
	FireUp     bool    // edge
}

// AxisConfig shapes how a digital axis ramps toward its target.
// Sensitivity 0 means raw input.
type AxisConfig struct {
	Sensitivity float64 // units per second toward the pressed direction
	Gravity     float64 // units per second back toward zero when released
	Snap        bool    // jump to zero when reversing direction
}

// Axis smooths a raw -1/0/+1 axis into a continuous value
type Axis struct {
	config AxisConfig
	value  float64
}

// NewAxis creates a new axis smoother
func NewAxis(cfg AxisConfig) *Axis {
	return &Axis{config: cfg}
}

// Update moves the axis toward raw and returns the new value
func (a *Axis) Update(raw, dt float64) float64 {
	raw = clampAxis(raw)
	if a.config.Sensitivity <= 0 {
		a.value = raw
		return a.value
	}

	if a.config.Snap && raw != 0 && a.value != 0 && (raw > 0) != (a.value > 0) {
		a.value = 0
	}

	rate := a.config.Sensitivity
	if raw == 0 {
		rate = a.config.Gravity
		if rate <= 0 {
			a.value = 0
			return a.value
		}
	}

	step := rate * dt
	switch {
	case a.value < raw:
		a.value += step
		if a.value > raw {
			a.value = raw
		}
	case a.value > raw:
		a.value -= step
		if a.value < raw {
			a.value = raw
		}
	}
	return a.value
}

// Value returns the current axis value
func (a *Axis) Value() float64 {
	return a.value
}

// Reset sets the axis back to neutral
func (a *Axis) Reset() {
	a.value = 0
}

// InputSystem reads keyboard and gamepad input into an InputState
type InputSystem struct {
	axis *Axis
	dt   float64
}

// NewInputSystem creates a new input system
func NewInputSystem(axis AxisConfig, dt float64) *InputSystem {
	return &InputSystem{axis: NewAxis(axis), dt: dt}
}

// SetAxisConfig replaces the axis smoothing settings
func (s *InputSystem) SetAxisConfig(cfg AxisConfig) {
	s.axis.config = cfg
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	raw := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		raw--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		raw++
	}

	fireDown := inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	fireHeld := ebiten.IsKeyPressed(ebiten.KeyJ) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	fireUp := inpututil.IsKeyJustReleased(ebiten.KeyJ) || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	jump := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	faceRight := inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight)
	faceLeft := inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft)

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal); v > 0.25 || v < -0.25 {
			raw = v
		}
		faceRight = faceRight || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftRight)
		faceLeft = faceLeft || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		jump = jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		fireDown = fireDown || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		fireHeld = fireHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
		fireUp = fireUp || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightLeft)
	}

	return InputState{
		Horizontal: s.axis.Update(raw, s.dt),
		FaceRight:  faceRight,
		FaceLeft:   faceLeft,
		Jump:       jump,
		FireDown:   fireDown,
		FireHeld:   fireHeld,
		FireUp:     fireUp,
	}
}
