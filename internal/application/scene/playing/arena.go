package playing

import (
	"github.com/younwookim/rockman/internal/domain/entity"
	"github.com/younwookim/rockman/internal/ecs"
	"github.com/younwookim/rockman/internal/infrastructure/physics"
)

// Fixed training room. Level loading is out of scope, so the layout is
// derived from the screen size.
const (
	floorHeight = 20.0
	wallWidth   = 10.0
)

// surface is a static rectangle of level geometry
type surface struct {
	ID       entity.EntityID
	Kind     entity.SurfaceKind
	Min, Max entity.Vec2
}

func (s surface) size() (w, h float64) {
	return s.Max.X - s.Min.X, s.Max.Y - s.Min.Y
}

// arenaLayout returns the training room surfaces for a screen size
func arenaLayout(screenW, screenH int) []surface {
	w, h := float64(screenW), float64(screenH)
	floorTop := h - floorHeight

	return []surface{
		{Kind: entity.SurfaceFloor, Min: entity.Vec2{X: 0, Y: floorTop}, Max: entity.Vec2{X: w, Y: h}},
		{Kind: entity.SurfaceWall, Min: entity.Vec2{X: -wallWidth, Y: 0}, Max: entity.Vec2{X: 0, Y: h}},
		{Kind: entity.SurfaceWall, Min: entity.Vec2{X: w, Y: 0}, Max: entity.Vec2{X: w + wallWidth, Y: h}},
		// Platform the third dummy stands on
		{Kind: entity.SurfaceFloor, Min: entity.Vec2{X: 200, Y: floorTop - 80}, Max: entity.Vec2{X: 280, Y: floorTop - 70}},
		{Kind: entity.SurfaceFloor, Min: entity.Vec2{X: 120, Y: floorTop - 40}, Max: entity.Vec2{X: 170, Y: floorTop - 34}},
		// Jump pad is set into the floor, flush with its top
		{Kind: entity.SurfaceJumpPad, Min: entity.Vec2{X: 160, Y: floorTop}, Max: entity.Vec2{X: 190, Y: floorTop + 4}},
	}
}

// buildArena registers the layout in the entity registry and the physics world
func buildArena(world *ecs.World, phys *physics.World, layout []surface) []surface {
	built := make([]surface, 0, len(layout))
	for _, s := range layout {
		s.ID = world.CreateSurface(s.Kind)
		phys.AddSurface(s.ID, s.Kind, s.Min, s.Max)
		built = append(built, s)
	}
	return built
}
