package hal

// RGB565 packs 8-bit channels into 16 bits (rrrrrggggggbbbbb) by truncation.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGB888 expands a packed 5-6-5 pixel to 8-bit channels by left shift only:
// the 5-bit channels <<3, the 6-bit green <<2. Lossy but deterministic; a
// full-scale packed pixel expands to (248, 252, 248), not (255, 255, 255).
func RGB888(p uint16) (r, g, b uint8) {
	r = uint8(((p >> 11) & 0x1F) << 3)
	g = uint8(((p >> 5) & 0x3F) << 2)
	b = uint8((p & 0x1F) << 3)
	return r, g, b
}
