package cube

// Background is the palette index every frame is cleared to.
const Background uint8 = 0x0

// FacePalette lists the colors faces are painted with. Entry 0 is the
// background and is never assigned to a face.
var FacePalette = [...]uint8{Background, 0x9, 0xd, 0xb, 0xa, 0xc, 0xe}

// FaceColor returns the palette index for face i.
func FaceColor(i int) uint8 {
	return FacePalette[i%(len(FacePalette)-1)+1]
}

// Attr packs a text-mode color attribute: low nibble foreground, high nibble
// background.
func Attr(fg, bg uint8) uint8 {
	return (bg&0x0F)<<4 | fg&0x0F
}
