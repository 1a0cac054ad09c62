package sim

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DrawStats prints FPS, the current mode, and the particle count in the
// screen's top-left corner. Intended for the example programs.
func DrawStats(screen *ebiten.Image, scene *Scene) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f\nmode: %s\nparticles: %d",
		ebiten.ActualFPS(), scene.Lattice().Mode, scene.Lattice().Count(),
	))
}
