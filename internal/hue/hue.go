// Package hue shifts blue hues of an image towards purple.
//
// Hues are normalized to [0,1) on the colour wheel (0 = red). Two bands are
// remapped: the blue band [0.50, 0.70] and, for saturated colours only, the
// light blue band [0.45, 0.50). Everything else is left alone.
package hue

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Band is the hue bucket a colour falls into.
type Band int

const (
	BandNone Band = iota
	BandBlue
	BandLightBlue
)

const (
	blueMin = 0.50
	blueMax = 0.70

	lightBlueMin = 0.45
	lightBlueSat = 0.2

	blueShift      = 0.111
	lightBlueShift = 0.139
)

func (b Band) String() string {
	switch b {
	case BandBlue:
		return "blue"
	case BandLightBlue:
		return "light-blue"
	}
	return "none"
}

// Shift returns the hue offset applied to colours in the band.
func (b Band) Shift() float64 {
	switch b {
	case BandBlue:
		return blueShift
	case BandLightBlue:
		return lightBlueShift
	}
	return 0
}

// Classify buckets a normalized hue h with saturation s. The blue band is
// checked first.
func Classify(h, s float64) Band {
	if h >= blueMin && h <= blueMax {
		return BandBlue
	}
	if h >= lightBlueMin && h < blueMin && s > lightBlueSat {
		return BandLightBlue
	}
	return BandNone
}

// ShiftHue returns the remapped hue and whether h fell into a band.
func ShiftHue(h, s float64) (float64, bool) {
	band := Classify(h, s)
	if band == BandNone {
		return h, false
	}
	h += band.Shift()
	// 1.0 and 0.0 are the same hue; folding 1.0 too keeps h in [0,1).
	if h >= 1.0 {
		h -= 1.0
	}
	return h, true
}

// ShiftColor remaps a single non-premultiplied pixel. Fully transparent
// pixels and pixels outside both bands are returned unchanged; otherwise
// alpha is kept and the channels are truncated back to 8 bits.
func ShiftColor(c color.NRGBA) color.NRGBA {
	if c.A == 0 {
		return c
	}
	h, s, v := Hsv(c)
	shifted, ok := ShiftHue(h, s)
	if !ok {
		return c
	}
	r, g, b := hsvToRGB(shifted, s, v)
	return color.NRGBA{R: channel(r), G: channel(g), B: channel(b), A: c.A}
}

// hsvToRGB uses the sector formula (p, q, t) rather than colorful.Hsv.
// The two differ in the last bits, and truncation to 8 bits turns that into
// whole-unit differences in the converted icons.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	}
	return v, p, q
}

// Hsv returns the normalized hue, saturation and value of c.
func Hsv(c color.NRGBA) (h, s, v float64) {
	h, s, v = colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsv()
	return h / 360, s, v
}

func channel(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(math.Floor(f * 255))
}

// Shift returns a shifted copy of img with the same size, anchored at 0,0.
// The source is coerced to non-premultiplied RGBA first, so palette, grey
// and 16-bit images are handled the same way; img itself is not modified.
func Shift(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	ShiftInPlace(dst)
	return dst
}

// ShiftInPlace remaps every pixel of img.
func ShiftInPlace(img *image.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			px := img.Pix[i : i+4 : i+4]
			c := ShiftColor(color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]})
			px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
		}
	}
}
