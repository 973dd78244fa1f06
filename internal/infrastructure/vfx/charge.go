// Package vfx renders the charge glow and the muzzle flash
package vfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"

	"github.com/younwookim/rockman/internal/domain/entity"
)

const (
	pulsePeriod   = 0.35 // seconds per half cycle
	flashDuration = 0.15
)

// ChargeEffect is an effects sink that animates a pulsing ring while the
// shot charges and a short flash when it fires
type ChargeEffect struct {
	active bool
	rising bool
	pulse  *gween.Tween
	glow   float32 // 0..1

	flash      *gween.Tween
	flashValue float32 // 1..0
}

// NewChargeEffect creates an idle effect
func NewChargeEffect() *ChargeEffect {
	return &ChargeEffect{}
}

// BeginChargeEffect starts the pulse
func (e *ChargeEffect) BeginChargeEffect() {
	e.active = true
	e.rising = true
	e.glow = 0
	e.pulse = gween.New(0, 1, pulsePeriod, ease.InOutSine)
}

// EndChargeEffect stops the pulse
func (e *ChargeEffect) EndChargeEffect() {
	e.active = false
	e.pulse = nil
	e.glow = 0
}

// PlayFireSound starts the muzzle flash
func (e *ChargeEffect) PlayFireSound() {
	e.flash = gween.New(1, 0, flashDuration, ease.OutQuad)
	e.flashValue = 1
}

// Update advances the tweens by dt seconds
func (e *ChargeEffect) Update(dt float64) {
	if e.pulse != nil {
		v, done := e.pulse.Update(float32(dt))
		e.glow = v
		if done {
			// Ping-pong
			e.rising = !e.rising
			if e.rising {
				e.pulse = gween.New(0, 1, pulsePeriod, ease.InOutSine)
			} else {
				e.pulse = gween.New(1, 0, pulsePeriod, ease.InOutSine)
			}
		}
	}

	if e.flash != nil {
		v, done := e.flash.Update(float32(dt))
		e.flashValue = v
		if done {
			e.flash = nil
			e.flashValue = 0
		}
	}
}

// Active reports whether the charge pulse is running
func (e *ChargeEffect) Active() bool {
	return e.active
}

// Glow returns the current pulse intensity in [0, 1]
func (e *ChargeEffect) Glow() float64 {
	return float64(e.glow)
}

// Flash returns the current flash intensity in [0, 1]
func (e *ChargeEffect) Flash() float64 {
	return float64(e.flashValue)
}

// Draw renders the ring around the player and the flash at the muzzle.
// The ring grows with the charge time.
func (e *ChargeEffect) Draw(screen *ebiten.Image, center, muzzle entity.Vec2, chargeTime float64) {
	if e.active {
		frac := entity.ClampCharge(chargeTime) / entity.MaxChargeTime
		radius := float32(10 + 10*frac)
		c := fade(colornames.Deepskyblue, 0.35+0.65*e.glow)
		vector.StrokeCircle(screen, float32(center.X), float32(center.Y), radius, 1.5, c, true)
	}

	if e.flashValue > 0 {
		c := fade(colornames.Lightyellow, e.flashValue)
		vector.DrawFilledCircle(screen, float32(muzzle.X), float32(muzzle.Y), 2+4*e.flashValue, c, true)
	}
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	// Premultiplied
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
