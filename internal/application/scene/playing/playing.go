// Package playing provides the main gameplay scene.
package playing

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/rockman/internal/application/replay"
	"github.com/younwookim/rockman/internal/application/scene"
	"github.com/younwookim/rockman/internal/application/state"
	"github.com/younwookim/rockman/internal/application/system"
	"github.com/younwookim/rockman/internal/domain/entity"
	"github.com/younwookim/rockman/internal/ecs"
	"github.com/younwookim/rockman/internal/infrastructure/config"
	"github.com/younwookim/rockman/internal/infrastructure/physics"
	"github.com/younwookim/rockman/internal/infrastructure/vfx"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorFloor    = color.RGBA{80, 80, 100, 255}
	colorWall     = color.RGBA{50, 50, 70, 255}
	colorJumpPad  = colornames.Orange
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorEnemy    = color.RGBA{200, 100, 100, 255}
	colorShot     = colornames.Lightskyblue
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
)

// InputSource supplies the input for one tick
type InputSource interface {
	GetInput() system.InputState
}

// Options configures a Playing scene
type Options struct {
	ConfigName string // written into recordings
	Record     bool
	RecordPath string             // "" = timestamped file name
	Replay     *replay.ReplayData // play back instead of reading devices
	Input      InputSource        // overrides the keyboard/gamepad reader
	Effects    []system.Effects   // extra sinks next to the charge glow, e.g. audio
}

type respawn struct {
	pos   entity.Vec2
	timer float64
}

// Playing is the main gameplay scene
type Playing struct {
	config *config.GameConfig
	opts   Options
	state  state.GameState

	world       *ecs.World
	phys        *physics.World
	player      *entity.Player
	controller  *system.PlayerController
	projectiles *system.ProjectileSystem
	combat      *system.CombatResolver
	arena       []surface
	respawns    []respawn

	inputSystem *system.InputSystem
	input       InputSource

	// Input recording / playback
	replayer *replay.Replayer
	recorder *replay.Recorder

	charge   *vfx.ChargeEffect
	effects  system.Effects
	animator *animator

	screenW int
	screenH int
	dt      float64

	hits      int
	debugDraw bool
}

// New creates a new Playing scene and builds the training room.
func New(cfg *config.GameConfig, opts Options) *Playing {
	dt := cfg.Display.TickDuration()
	if opts.Replay != nil && opts.Replay.TickRate > 0 {
		dt = 1.0 / float64(opts.Replay.TickRate)
	}

	inputSystem := system.NewInputSystem(axisConfig(cfg.Player.Axis), dt)
	charge := vfx.NewChargeEffect()

	p := &Playing{
		config:      cfg,
		opts:        opts,
		inputSystem: inputSystem,
		input:       inputSystem,
		charge:      charge,
		effects:     system.MultiEffects(append([]system.Effects{charge}, opts.Effects...)),
		animator:    newAnimator(),
		screenW:     cfg.Display.ScreenWidth,
		screenH:     cfg.Display.ScreenHeight,
		dt:          dt,
	}
	if opts.Input != nil {
		p.input = opts.Input
	}

	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		log.Printf("Replaying %d frames (config: %s)", p.replayer.TotalFrames(), opts.Replay.Config)
	} else if opts.Record {
		p.recorder = replay.NewRecorder(opts.ConfigName, tickRate(dt))
		log.Printf("Recording enabled: %s", p.recordFilename())
	}

	p.reset()
	return p
}

// reset rebuilds the world from the current config
func (p *Playing) reset() {
	if p.controller != nil && p.controller.Charge().State() == system.ChargeCharging {
		p.effects.EndChargeEffect()
	}

	cfg := p.config
	p.world = ecs.NewWorld()
	p.phys = physics.NewWorld(physicsConfig(cfg))
	p.arena = buildArena(p.world, p.phys, arenaLayout(p.screenW, p.screenH))

	spawn := cfg.Player.Spawn.Vec2()
	id := p.world.CreatePlayer()
	p.player = entity.NewPlayer(id, spawn, cfg.Player.PlayerConfig())
	p.phys.AddPlayer(id, spawn, cfg.Player.Size.Width/2, cfg.Player.Size.Height/2)

	p.combat = system.NewCombatResolver(p.world)
	p.combat.OnDamage = func(entity.EntityID, int) { p.hits++ }
	p.projectiles = system.NewProjectileSystem(projectileConfig(cfg), p.world, p.phys, p.combat)
	p.phys.OnCollision = p.projectiles.OnCollision

	p.controller = system.NewPlayerController(p.player, system.ControllerDeps{
		Body:     p.phys,
		Prober:   p.phys,
		Spawner:  p.projectiles,
		Effects:  p.effects,
		Animator: p.animator,
	})

	p.respawns = p.respawns[:0]
	for _, pos := range cfg.Targets.Positions {
		p.spawnTarget(pos.Vec2())
	}

	p.animator.reset()
	p.hits = 0
	p.controller.Initialize()

	p.state = state.StatePlaying
	if p.replayer != nil {
		p.state = state.StateReplaying
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		p.debugDraw = !p.debugDraw
	}

	switch p.state {
	case state.StatePlaying, state.StateReplaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePaused
			return nil, nil
		}

		// F5: Save recording manually
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
			p.saveRecording()
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			p.restart()
			return nil, nil
		}

		p.advance()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
			if p.replayer != nil {
				p.state = state.StateReplaying
			}
		}
	case state.StateReplayFinished:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

// advance reads one tick of input, records it and steps the world
func (p *Playing) advance() {
	input, ok := p.nextInput()
	if !ok {
		p.state = state.StateReplayFinished
		log.Printf("Replay finished (%d frames)", p.replayer.TotalFrames())
		return
	}

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.step(input)
}

func (p *Playing) nextInput() (system.InputState, bool) {
	if p.replayer != nil {
		return p.replayer.GetInput()
	}
	return p.input.GetInput(), true
}

// step runs one fixed tick. Projectile lifetimes tick before the physics
// step so the collision window opens fresh for it.
func (p *Playing) step(input system.InputState) {
	p.controller.Tick(p.dt, input)
	p.projectiles.Update(p.dt)

	p.phys.Step(p.dt)

	p.projectiles.SyncBodies(p.phys)
	p.player.Position, p.player.Velocity = p.phys.BodyState(p.player.ID)

	p.updateTargets(p.dt)
	p.charge.Update(p.dt)
	p.animator.update(p.dt)
}

// updateTargets removes dead dummies and brings them back after the delay
func (p *Playing) updateTargets(dt float64) {
	delay := p.config.Targets.RespawnDelay

	for _, id := range p.world.EnemyIDs() {
		e := p.world.Enemies[id]
		e.Update(dt)
		if e.IsAlive() {
			continue
		}
		p.phys.Destroy(system.DestroyIntent{EntityID: id})
		p.world.DestroyEntity(id)
		if delay > 0 {
			p.respawns = append(p.respawns, respawn{pos: e.Position, timer: delay})
		}
	}

	kept := p.respawns[:0]
	for _, r := range p.respawns {
		r.timer -= dt
		if r.timer <= respawnEpsilon {
			p.spawnTarget(r.pos)
			continue
		}
		kept = append(kept, r)
	}
	p.respawns = kept
}

const respawnEpsilon = 1e-6

func (p *Playing) spawnTarget(pos entity.Vec2) {
	t := p.config.Targets
	e := p.world.CreateEnemy(pos, t.Size.Width/2, t.Size.Height/2, t.HP)
	p.phys.AddEnemy(e.ID, pos, e.HalfW, e.HalfH)
}

// ApplyConfig swaps in reloaded tuning without restarting. Display size and
// target placement take effect on the next restart.
func (p *Playing) ApplyConfig(cfg *config.GameConfig) {
	p.config = cfg
	p.player.ApplyConfig(cfg.Player.PlayerConfig())
	p.phys.SetConfig(physicsConfig(cfg))
	p.projectiles.SetConfig(projectileConfig(cfg))
	p.inputSystem.SetAxisConfig(axisConfig(cfg.Player.Axis))
}

func (p *Playing) restart() {
	if p.replayer != nil {
		p.replayer.Reset()
	}

	// Reset recorder if recording
	if p.recorder != nil {
		if p.recorder.FrameCount() > 0 {
			p.saveRecording()
		}
		p.recorder = replay.NewRecorder(p.opts.ConfigName, tickRate(p.dt))
		log.Printf("Recording restarted")
	}

	p.reset()
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename()
	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

func (p *Playing) recordFilename() string {
	if p.opts.RecordPath != "" {
		return p.opts.RecordPath
	}
	return replay.GenerateFilename()
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawArena(screen)
	p.drawTargets(screen)
	p.drawProjectiles(screen)
	p.drawPlayer(screen)
	p.charge.Draw(screen, p.player.Position, p.player.MuzzlePoint(), p.player.ChargeTimer)

	if p.debugDraw {
		p.drawDebug(screen)
	}
	p.drawHUD(screen)

	// Draw state overlays
	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateReplayFinished:
		p.drawReplayFinishedOverlay(screen)
	}
}

func (p *Playing) drawArena(screen *ebiten.Image) {
	for _, s := range p.arena {
		var c color.Color
		switch s.Kind {
		case entity.SurfaceFloor:
			c = colorFloor
		case entity.SurfaceJumpPad:
			c = colorJumpPad
		default:
			c = colorWall
		}
		w, h := s.size()
		ebitenutil.DrawRect(screen, s.Min.X, s.Min.Y, w, h, c)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	w := p.config.Player.Size.Width
	h := p.config.Player.Size.Height
	x := p.player.Position.X - w/2
	y := p.player.Position.Y - h/2 + p.animator.bob()

	// Flash on attack
	c := colorPlayer
	if p.animator.attacking() {
		c = color.RGBA{200, 255, 200, 255}
	}
	ebitenutil.DrawRect(screen, x, y, w, h, c)

	// Eye on the facing side
	eye := p.player.Position.Add(p.player.Facing.Local(entity.Vec2{X: w/2 - 4, Y: -h/4}))
	ebitenutil.DrawRect(screen, eye.X-1, eye.Y-1+p.animator.bob(), 2, 2, colornames.White)
}

func (p *Playing) drawTargets(screen *ebiten.Image) {
	for _, id := range p.world.EnemyIDs() {
		e := p.world.Enemies[id]

		// Flash on hit
		c := colorEnemy
		if e.HitTimer > 0 {
			c = color.RGBA{255, 255, 255, 255}
		}
		x := e.Position.X - e.HalfW
		y := e.Position.Y - e.HalfH
		ebitenutil.DrawRect(screen, x, y, e.HalfW*2, e.HalfH*2, c)

		// Health bar
		ratio := float64(e.Health) / float64(max(e.MaxHealth, 1))
		ebitenutil.DrawRect(screen, x, y-5, e.HalfW*2, 3, colorHealthBG)
		ebitenutil.DrawRect(screen, x, y-5, e.HalfW*2*ratio, 3, colorHealthFG)
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image) {
	base := p.config.Projectile.Radius
	for _, id := range p.world.ProjectileIDs() {
		pr := p.world.Projectiles[id]
		if !pr.Active {
			continue
		}
		r := float32(base * pr.VisualScale)
		vector.DrawFilledCircle(screen, float32(pr.Position.X), float32(pr.Position.Y), r, colorShot, true)
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit saves any pending recording and silences effects
func (p *Playing) OnExit() {
	if p.controller.Charge().State() == system.ChargeCharging {
		p.effects.EndChargeEffect()
	}
	if p.recorder != nil && p.recorder.FrameCount() > 0 {
		p.saveRecording()
		p.recorder.Stop()
	}
}

func physicsConfig(cfg *config.GameConfig) physics.Config {
	return physics.Config{
		Gravity:          cfg.Physics.Gravity,
		Iterations:       cfg.Physics.Iterations,
		ProjectileRadius: cfg.Projectile.Radius,
		IgnoreGravity:    cfg.Projectile.IgnoreGravity,
	}
}

func projectileConfig(cfg *config.GameConfig) system.ProjectileConfig {
	return system.ProjectileConfig{
		Lifetime: cfg.Projectile.Lifetime,
		Pierce:   cfg.Projectile.Pierce,
	}
}

func axisConfig(a config.AxisConfig) system.AxisConfig {
	return system.AxisConfig{
		Sensitivity: a.Sensitivity,
		Gravity:     a.Gravity,
		Snap:        a.Snap,
	}
}

func tickRate(dt float64) int {
	if dt <= 0 {
		return 60
	}
	return int(1/dt + 0.5)
}
