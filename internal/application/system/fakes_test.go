package system

import (
	"github.com/younwookim/rockman/internal/domain/entity"
)

type probeCall struct {
	origin entity.Vec2
	radius float64
	mask   entity.LayerMask
}

// fakePhysics records every request and answers probes with a canned result
type fakePhysics struct {
	positions  map[entity.EntityID]entity.Vec2
	velocities map[entity.EntityID]entity.Vec2

	probeKind entity.SurfaceKind
	probeOK   bool
	probes    []probeCall

	intents []Intent
	spawned map[entity.EntityID]SpawnIntent
}

func newFakePhysics() *fakePhysics {
	return &fakePhysics{
		positions:  make(map[entity.EntityID]entity.Vec2),
		velocities: make(map[entity.EntityID]entity.Vec2),
		spawned:    make(map[entity.EntityID]SpawnIntent),
	}
}

func (f *fakePhysics) groundAt(kind entity.SurfaceKind) {
	f.probeKind, f.probeOK = kind, true
}

func (f *fakePhysics) airborne() {
	f.probeKind, f.probeOK = entity.SurfaceNone, false
}

func (f *fakePhysics) Probe(origin entity.Vec2, radius float64, mask entity.LayerMask) (entity.SurfaceKind, bool) {
	f.probes = append(f.probes, probeCall{origin: origin, radius: radius, mask: mask})
	return f.probeKind, f.probeOK
}

func (f *fakePhysics) BodyState(id entity.EntityID) (entity.Vec2, entity.Vec2) {
	return f.positions[id], f.velocities[id]
}

func (f *fakePhysics) SetVelocityX(intent MoveIntent) {
	f.intents = append(f.intents, intent)
	v := f.velocities[intent.EntityID]
	v.X = intent.VX
	f.velocities[intent.EntityID] = v
}

func (f *fakePhysics) ApplyImpulse(intent JumpIntent) {
	f.intents = append(f.intents, intent)
}

func (f *fakePhysics) SpawnProjectile(id entity.EntityID, intent SpawnIntent) {
	f.intents = append(f.intents, intent)
	f.spawned[id] = intent
}

func (f *fakePhysics) Destroy(intent DestroyIntent) {
	f.intents = append(f.intents, intent)
	delete(f.spawned, intent.EntityID)
}

func (f *fakePhysics) jumps() []JumpIntent {
	var out []JumpIntent
	for _, i := range f.intents {
		if j, ok := i.(JumpIntent); ok {
			out = append(out, j)
		}
	}
	return out
}

func (f *fakePhysics) destroys() []DestroyIntent {
	var out []DestroyIntent
	for _, i := range f.intents {
		if d, ok := i.(DestroyIntent); ok {
			out = append(out, d)
		}
	}
	return out
}

// fakeSpawner captures spawn requests without a registry
type fakeSpawner struct {
	intents []SpawnIntent
	nextID  entity.EntityID
}

func (s *fakeSpawner) Spawn(intent SpawnIntent) entity.EntityID {
	s.intents = append(s.intents, intent)
	s.nextID++
	return s.nextID
}

// fakeEffects records notification order
type fakeEffects struct {
	calls []string
}

func (e *fakeEffects) BeginChargeEffect() { e.calls = append(e.calls, "begin") }
func (e *fakeEffects) EndChargeEffect()   { e.calls = append(e.calls, "end") }
func (e *fakeEffects) PlayFireSound()     { e.calls = append(e.calls, "fire") }

// fakeAnimator records animator parameters
type fakeAnimator struct {
	bools    map[AnimParam]bool
	triggers []AnimParam
}

func newFakeAnimator() *fakeAnimator {
	return &fakeAnimator{bools: make(map[AnimParam]bool)}
}

func (a *fakeAnimator) SetBool(param AnimParam, value bool) { a.bools[param] = value }
func (a *fakeAnimator) Trigger(param AnimParam)             { a.triggers = append(a.triggers, param) }

func createTestPlayer() *entity.Player {
	return entity.NewPlayer(1, entity.Vec2{X: 100, Y: 100}, entity.PlayerConfig{
		MovementSpeed:      4800,
		JumpImpulse:        320,
		ProjectileSpeed:    400,
		GroundSensorOffset: entity.Vec2{X: 0, Y: 12},
		GroundSensorRadius: 3,
		MuzzleOffset:       entity.Vec2{X: 10, Y: -2},
		MaxHP:              100,
		AttackBase:         10,
	})
}
