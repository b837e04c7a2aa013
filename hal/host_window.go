//go:build !tinygo

package hal

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"lume/internal/buildinfo"
)

// RunWindow opens a desktop window that presents the surface at 2x pixel
// scale and forwards mouse input. It blocks until the window closes (or
// Escape is pressed) and returns any initialization or tick error.
func RunWindow(newApp func(HAL) (Step, error)) error {
	h := New().(*hostHAL)
	step, err := newApp(h)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Lume (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.sfc.width*2, h.sfc.height*2)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

type hostGame struct {
	h      *hostHAL
	img    *image.RGBA
	sfcImg *ebiten.Image
	step   Step
}

func (g *hostGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.h.ptr.poll()
	g.h.t.step()
	if g.step != nil {
		if err := g.step(g.h.t.NowMillis()); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	sfc := g.h.sfc
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, sfc.width, sfc.height))
		g.sfcImg = ebiten.NewImage(sfc.width, sfc.height)
	}

	sfc.snapshot(g.img.Pix)
	g.sfcImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.sfcImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.sfc.width, g.h.sfc.height
}
