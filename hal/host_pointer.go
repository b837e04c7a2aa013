//go:build !tinygo

package hal

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// hostPointer exposes the desktop mouse as the watch's touch pointer. The
// window polls it once per tick; cursor coordinates are already in logical
// panel space because the window Layout matches the panel size.
type hostPointer struct {
	mu   sync.Mutex
	last PointerSample
}

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	s := PointerSample{
		X:       x,
		Y:       y,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	p.mu.Lock()
	p.last = s
	p.mu.Unlock()
}

func (p *hostPointer) Sample() PointerSample {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}
