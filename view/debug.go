package view

import (
	"fmt"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"

	"github.com/erdincmutlu/gridview/coords"
)

func drawDebug(screen *ebiten.Image, pointer *coords.Pointer) error {
	return ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f  pointer: %s", ebiten.CurrentFPS(), pointer.State()))
}
