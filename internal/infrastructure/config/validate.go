package config

import (
	"errors"
	"fmt"
	"math"
)

// RangeError reports a config value outside its allowed range
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64 // +Inf when unbounded
}

func (e *RangeError) Error() string {
	if math.IsInf(e.Max, 1) {
		return fmt.Sprintf("%s = %g, must be >= %g", e.Field, e.Value, e.Min)
	}
	return fmt.Sprintf("%s = %g, must be in [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

type rangeCheck struct {
	field    string
	value    float64
	min, max float64
}

// Validate checks every bounded field and returns all violations joined
func (c *GameConfig) Validate() error {
	unbounded := math.Inf(1)
	checks := []rangeCheck{
		{"display.screenWidth", float64(c.Display.ScreenWidth), 1, unbounded},
		{"display.screenHeight", float64(c.Display.ScreenHeight), 1, unbounded},
		{"display.scale", float64(c.Display.Scale), 1, 16},
		{"display.framerate", float64(c.Display.Framerate), 1, 240},
		{"physics.iterations", float64(c.Physics.Iterations), 0, 100},
		{"player.movementSpeed", c.Player.MovementSpeed, 0, 5000},
		{"player.jumpImpulse", c.Player.JumpImpulse, 0, 3000},
		{"player.projectileSpeed", c.Player.ProjectileSpeed, 0, 5000},
		{"player.hp", float64(c.Player.HP), 0, 200},
		{"player.attackBase", float64(c.Player.AttackBase), 0, unbounded},
		{"player.groundSensorRadius", c.Player.GroundSensorRadius, 0, unbounded},
		{"player.size.width", c.Player.Size.Width, 1, unbounded},
		{"player.size.height", c.Player.Size.Height, 1, unbounded},
		{"player.axis.sensitivity", c.Player.Axis.Sensitivity, 0, unbounded},
		{"player.axis.gravity", c.Player.Axis.Gravity, 0, unbounded},
		{"projectile.lifetime", c.Projectile.Lifetime, 0, unbounded},
		{"projectile.radius", c.Projectile.Radius, 0, unbounded},
		{"targets.hp", float64(c.Targets.HP), 0, unbounded},
		{"targets.respawnDelay", c.Targets.RespawnDelay, 0, unbounded},
	}

	var errs []error
	for _, ch := range checks {
		if math.IsNaN(ch.value) || ch.value < ch.min || ch.value > ch.max {
			errs = append(errs, &RangeError{Field: ch.field, Value: ch.value, Min: ch.min, Max: ch.max})
		}
	}
	return errors.Join(errs...)
}
