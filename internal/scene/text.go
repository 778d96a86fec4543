package scene

import (
	"image"
	"image/draw"
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var glyphFont *opentype.Font

var (
	faceMu sync.Mutex
	faces  = map[int]font.Face{}
)

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	glyphFont = f
}

// faceForSize returns a cached font face for the given pixel size. Sticker
// sizes are user supplied, so faces are built on demand rather than from a
// fixed list.
func faceForSize(size int) font.Face {
	faceMu.Lock()
	defer faceMu.Unlock()
	if face, ok := faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(glyphFont, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
	faces[size] = face
	return face
}

// DrawGlyph paints glyph centred on (cx, cy) at the given pixel size using
// src as the ink source.
func DrawGlyph(dst draw.Image, glyph string, cx, cy, size int, src image.Image) {
	face := faceForSize(size)
	d := &font.Drawer{Dst: dst, Src: src, Face: face}
	w := d.MeasureString(glyph).Ceil()
	m := face.Metrics()
	baseline := cy + (m.Ascent.Ceil()-m.Descent.Ceil())/2
	d.Dot = fixed.P(cx-w/2, baseline)
	d.DrawString(glyph)
}

// GlyphWidth reports the advance width of glyph at the given pixel size.
func GlyphWidth(glyph string, size int) int {
	d := &font.Drawer{Face: faceForSize(size)}
	return d.MeasureString(glyph).Ceil()
}
