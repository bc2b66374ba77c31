package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/space-kitsune/components"
	cfg "github.com/automoto/space-kitsune/config"
	"github.com/automoto/space-kitsune/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug draws the broadphase window from above with the rail running up
// the screen, centered on the chase camera, followed by a line of player stats.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	integrator := components.Integrator.Get(spaceEntry)

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	windowW := float64(cfg.Physics.WindowWidth)
	windowH := float64(cfg.Physics.WindowBehind + cfg.Physics.WindowAhead)
	scale := min(width/windowW, height/windowH)

	// Without a camera, frame the whole window
	focusX, focusZ := integrator.OriginX+windowW/2, integrator.OriginZ+windowH/2
	anchor := 0.5
	var shakeX, shakeY float64
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		focusX, focusZ = camera.Position.X, camera.Position.Y
		anchor = cfg.Camera.Anchor
		shakeX, shakeY = camera.Shake.X, camera.Shake.Y
	}
	toScreen := func(worldX, worldZ float64) (float64, float64) {
		return width/2 + (worldX-focusX)*scale + shakeX,
			height*anchor - (worldZ-focusZ)*scale + shakeY
	}

	for _, obj := range space.Objects() {
		x, y := toScreen(obj.X+integrator.OriginX, obj.Y+obj.H+integrator.OriginZ)
		w, h := max(obj.W*scale, 1), max(obj.H*scale, 1)

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.White
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = enemyColor(obj.Data)
		} else if obj.HasTags(tags.ResolvProjectile) {
			if e, ok := obj.Data.(*donburi.Entry); ok && e.Valid() {
				c = components.Projectile.Get(e).Tint
			}
		}

		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
	}

	// Reticle, projected onto the same plane
	if view, ok := ReadPlayerView(ecs.World); ok {
		rx, ry := toScreen(view.Reticle.X(), view.Reticle.Z())
		vector.FillRect(screen, float32(rx-2), float32(ry), 5, 1, cfg.Green, false)
		vector.FillRect(screen, float32(rx), float32(ry-2), 1, 5, cfg.Green, false)

		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"z %.1f  speed %s %.2f  energy %.2f",
			view.Position.Z(), view.Mode, view.SpeedRatio, view.EnergyRatio,
		))
	}
}

func enemyColor(data interface{}) color.RGBA {
	e, ok := data.(*donburi.Entry)
	if !ok || !e.Valid() {
		return cfg.Red
	}
	switch components.Enemy.Get(e).Kind {
	case cfg.EnemySniper:
		return cfg.Purple
	case cfg.EnemyZippy:
		return cfg.Orange
	default:
		return cfg.Red
	}
}
