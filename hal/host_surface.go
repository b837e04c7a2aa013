//go:build !tinygo

package hal

import "sync"

type hostSurface struct {
	mu     sync.Mutex
	width  int
	height int
	pix    []byte // RGBA, 4 bytes per pixel
}

func newHostSurface(width, height int) *hostSurface {
	s := &hostSurface{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
	s.Clear()
	return s
}

func (s *hostSurface) Width() int  { return s.width }
func (s *hostSurface) Height() int { return s.height }

func (s *hostSurface) SetRGB(x, y int, r, g, b uint8) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	off := (y*s.width + x) * 4
	s.pix[off+0] = r
	s.pix[off+1] = g
	s.pix[off+2] = b
	s.pix[off+3] = 0xFF
}

func (s *hostSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i+0] = 0
		s.pix[i+1] = 0
		s.pix[i+2] = 0
		s.pix[i+3] = 0xFF
	}
}

func (s *hostSurface) snapshot(dst []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(dst, s.pix)
}
