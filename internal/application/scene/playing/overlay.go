package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/rockman/internal/domain/entity"
)

func (p *Playing) drawHUD(screen *ebiten.Image) {
	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 14)
	barW := 100.0
	barH := 6.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	healthRatio := float64(p.player.HP) / float64(max(p.player.MaxHP, 1))
	ebitenutil.DrawRect(screen, barX, barY, barW*healthRatio, barH, colorHealthFG)

	// Charge bar
	chargeX := barX + barW + 10
	ebitenutil.DrawRect(screen, chargeX, barY, barW, barH, colorHealthBG)
	chargeRatio := entity.ClampCharge(p.player.ChargeTimer) / entity.MaxChargeTime
	ebitenutil.DrawRect(screen, chargeX, barY, barW*chargeRatio, barH, colornames.Deepskyblue)

	attack, scale := p.controller.Charge().Preview(p.player)
	status := fmt.Sprintf("ATK %d  x%.1f  %s  shots %d  hits %d",
		attack, scale, groundLabel(p.player.IsGrounded), p.projectiles.Count(), p.hits)
	ebitenutil.DebugPrintAt(screen, status, int(barX), p.screenH-32)

	switch {
	case p.replayer != nil:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames()), p.screenW-110, 4)
	case p.recorder != nil:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REC %d", p.recorder.FrameCount()), p.screenW-70, 4)
	}

	// Controls
	ebitenutil.DebugPrint(screen, "A/D: Move | Space: Jump | J/LClick: Charge | Tab: Debug | R: Restart | ESC: Pause")
}

// drawDebug shows the ground probe and muzzle the way an editor gizmo would
func (p *Playing) drawDebug(screen *ebiten.Image) {
	origin := p.player.SensorOrigin()
	probeColor := colornames.Yellow
	if p.player.IsGrounded {
		probeColor = colornames.Lime
	}
	radius := float32(max(p.player.Config.GroundSensorRadius, 0.5))
	vector.StrokeCircle(screen, float32(origin.X), float32(origin.Y), radius, 1, probeColor, true)

	muzzle := p.player.MuzzlePoint()
	vector.DrawFilledCircle(screen, float32(muzzle.X), float32(muzzle.Y), 1.5, colornames.Red, true)

	for _, s := range p.arena {
		ebitenutil.DebugPrintAt(screen, s.Kind.String(), int(s.Min.X)+2, int(s.Min.Y)-14)
	}

	info := fmt.Sprintf("pos %.1f,%.1f  vel %.1f,%.1f  %s  charge %s %.2fs",
		p.player.Position.X, p.player.Position.Y,
		p.player.Velocity.X, p.player.Velocity.Y,
		p.player.Facing, p.controller.Charge().State(), p.player.ChargeTimer)
	ebitenutil.DebugPrintAt(screen, info, 4, 16)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawReplayFinishedOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 60, 160}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("REPLAY FINISHED\n\nHits: %d\n\nPress R to watch again", p.hits)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

func groundLabel(grounded bool) string {
	if grounded {
		return "GROUND"
	}
	return "AIR"
}
