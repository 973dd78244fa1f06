package config

import "github.com/younwookim/rockman/internal/domain/entity"

// GameConfig is the root of game.json / game.yaml
type GameConfig struct {
	Display    DisplayConfig    `json:"display" yaml:"display"`
	Physics    PhysicsSettings  `json:"physics" yaml:"physics"`
	Player     PlayerSettings   `json:"player" yaml:"player"`
	Projectile ProjectileConfig `json:"projectile" yaml:"projectile"`
	Targets    TargetsConfig    `json:"targets" yaml:"targets"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
	Framerate    int `json:"framerate" yaml:"framerate"`
}

type PhysicsSettings struct {
	Gravity    float64 `json:"gravity" yaml:"gravity"` // px/s², +Y is down
	Iterations int     `json:"iterations" yaml:"iterations"`
}

// PlayerSettings holds the character tuning values
type PlayerSettings struct {
	MovementSpeed      float64    `json:"movementSpeed" yaml:"movementSpeed"`
	JumpImpulse        float64    `json:"jumpImpulse" yaml:"jumpImpulse"`
	ProjectileSpeed    float64    `json:"projectileSpeed" yaml:"projectileSpeed"`
	HP                 int        `json:"hp" yaml:"hp"`
	AttackBase         int        `json:"attackBase" yaml:"attackBase"`
	GroundSensorOffset Point      `json:"groundSensorOffset" yaml:"groundSensorOffset"`
	GroundSensorRadius float64    `json:"groundSensorRadius" yaml:"groundSensorRadius"`
	MuzzleOffset       Point      `json:"muzzleOffset" yaml:"muzzleOffset"`
	Size               Size       `json:"size" yaml:"size"`
	Spawn              Point      `json:"spawn" yaml:"spawn"`
	Axis               AxisConfig `json:"axis" yaml:"axis"`
}

// AxisConfig shapes the horizontal input axis. Sensitivity 0 means raw.
type AxisConfig struct {
	Sensitivity float64 `json:"sensitivity" yaml:"sensitivity"`
	Gravity     float64 `json:"gravity" yaml:"gravity"`
	Snap        bool    `json:"snap" yaml:"snap"`
}

// ProjectileConfig configures fired shots
type ProjectileConfig struct {
	Lifetime      float64 `json:"lifetime" yaml:"lifetime"` // seconds
	Radius        float64 `json:"radius" yaml:"radius"`     // at scale 1
	Pierce        bool    `json:"pierce" yaml:"pierce"`
	IgnoreGravity bool    `json:"ignoreGravity" yaml:"ignoreGravity"`
}

// TargetsConfig places the training dummies
type TargetsConfig struct {
	HP           int     `json:"hp" yaml:"hp"`
	Size         Size    `json:"size" yaml:"size"`
	RespawnDelay float64 `json:"respawnDelay" yaml:"respawnDelay"` // seconds, 0 = never
	Positions    []Point `json:"positions" yaml:"positions"`
}

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Vec2 converts to the domain vector type
func (p Point) Vec2() entity.Vec2 {
	return entity.Vec2{X: p.X, Y: p.Y}
}

// PlayerConfig converts the tuning section into the domain config
func (p PlayerSettings) PlayerConfig() entity.PlayerConfig {
	return entity.PlayerConfig{
		MovementSpeed:      p.MovementSpeed,
		JumpImpulse:        p.JumpImpulse,
		ProjectileSpeed:    p.ProjectileSpeed,
		GroundSensorOffset: p.GroundSensorOffset.Vec2(),
		GroundSensorRadius: p.GroundSensorRadius,
		MuzzleOffset:       p.MuzzleOffset.Vec2(),
		MaxHP:              p.HP,
		AttackBase:         p.AttackBase,
	}
}

// TickDuration returns the fixed step in seconds
func (d DisplayConfig) TickDuration() float64 {
	if d.Framerate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(d.Framerate)
}
