package system

import "github.com/younwookim/rockman/internal/domain/entity"

// GroundSensor recomputes the player's grounded flag from an overlap probe
type GroundSensor struct {
	prober GroundProber
	mask   entity.LayerMask
}

// NewGroundSensor creates a sensor probing the ground layer
func NewGroundSensor(prober GroundProber) *GroundSensor {
	return &GroundSensor{prober: prober, mask: entity.LayerGround}
}

// Update probes at the player's sensor origin and sets IsGrounded.
// Anything other than a Floor or JumpPad hit, including no hit, is airborne.
func (s *GroundSensor) Update(player *entity.Player) {
	kind, ok := s.prober.Probe(player.SensorOrigin(), player.Config.GroundSensorRadius, s.mask)
	player.IsGrounded = ok && kind.IsGround()
}
