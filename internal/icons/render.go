// Package icons renders the application icons and installer artwork with
// OpenCV drawing primitives.
package icons

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

const (
	IconSize = 64

	SidebarWidth  = 164
	SidebarHeight = 314
	HeaderWidth   = 500
	HeaderHeight  = 58
)

// Glyph is the look of one icon: a coloured rounded square with a letter.
type Glyph struct {
	Name   string
	Color  color.RGBA
	Letter string
}

var glyphs = []Glyph{
	{Name: "word", Color: color.RGBA{R: 43, G: 87, B: 154, A: 255}, Letter: "W"},
	{Name: "excel", Color: color.RGBA{R: 33, G: 115, B: 70, A: 255}, Letter: "X"},
	{Name: "powerpoint", Color: color.RGBA{R: 208, G: 68, B: 35, A: 255}, Letter: "P"},
	{Name: "access", Color: color.RGBA{R: 164, G: 55, B: 58, A: 255}, Letter: "A"},
	{Name: "outlook", Color: color.RGBA{R: 0, G: 114, B: 198, A: 255}, Letter: "O"},
	{Name: "office", Color: color.RGBA{R: 0, G: 0, B: 128, A: 255}, Letter: "O"},
}

var (
	white       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	borderWhite = color.RGBA{R: 255, G: 255, B: 255, A: 180}
	navy        = color.RGBA{R: 0, G: 0, B: 128, A: 255}
	black       = color.RGBA{A: 255}
)

func Glyphs() []Glyph {
	out := make([]Glyph, len(glyphs))
	copy(out, glyphs)
	return out
}

func Lookup(name string) (Glyph, bool) {
	for _, g := range glyphs {
		if g.Name == name {
			return g, true
		}
	}
	return Glyph{}, false
}

// RenderIcon draws g as a size×size BGRA image. The caller owns the Mat.
func RenderIcon(g Glyph, size int) (gocv.Mat, error) {
	if size < 16 {
		return gocv.Mat{}, fmt.Errorf("icon size %d too small", size)
	}

	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), size, size, gocv.MatTypeCV8UC4)
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, fmt.Errorf("failed to allocate %dx%d icon", size, size)
	}

	radius := size / 8
	fillRounded(&mat, image.Rect(0, 0, size, size), radius, borderWhite)
	fillRounded(&mat, image.Rect(2, 2, size-2, size-2), radius-1, g.Color)

	scale := float64(size) / 32
	thickness := size / 16
	if thickness < 1 {
		thickness = 1
	}
	text := gocv.GetTextSize(g.Letter, gocv.FontHersheyDuplex, scale, thickness)
	origin := image.Pt((size-text.X)/2, (size+text.Y)/2)
	gocv.PutText(&mat, g.Letter, origin, gocv.FontHersheyDuplex, scale, white, thickness)

	return mat, nil
}

// fillRounded paints r with corners of the given radius left untouched.
func fillRounded(mat *gocv.Mat, r image.Rectangle, radius int, c color.RGBA) {
	if radius < 1 {
		gocv.Rectangle(mat, r, c, -1)
		return
	}
	gocv.Rectangle(mat, image.Rect(r.Min.X+radius, r.Min.Y, r.Max.X-radius, r.Max.Y), c, -1)
	gocv.Rectangle(mat, image.Rect(r.Min.X, r.Min.Y+radius, r.Max.X, r.Max.Y-radius), c, -1)
	for _, p := range []image.Point{
		{r.Min.X + radius, r.Min.Y + radius},
		{r.Max.X - radius - 1, r.Min.Y + radius},
		{r.Min.X + radius, r.Max.Y - radius - 1},
		{r.Max.X - radius - 1, r.Max.Y - radius - 1},
	} {
		gocv.Circle(mat, p, radius, c, -1)
	}
}

// RenderSidebar draws the 164×314 installer sidebar: a navy gradient with
// the product name and a four colour flag.
func RenderSidebar() gocv.Mat {
	mat := gocv.NewMatWithSize(SidebarHeight, SidebarWidth, gocv.MatTypeCV8UC3)
	for y := 0; y < SidebarHeight; y++ {
		t := float64(y) / SidebarHeight
		c := color.RGBA{R: uint8(t * 10), G: uint8(t * 50), B: uint8(100 + t*80), A: 255}
		gocv.Line(&mat, image.Pt(0, y), image.Pt(SidebarWidth-1, y), c, 1)
	}

	gocv.PutText(&mat, "Microsoft", image.Pt(10, 32), gocv.FontHersheySimplex, 0.5, white, 1)
	gocv.PutText(&mat, "Office", image.Pt(10, 60), gocv.FontHersheyDuplex, 0.9, color.RGBA{R: 255, G: 200, A: 255}, 2)
	gocv.PutText(&mat, "97", image.Pt(10, 92), gocv.FontHersheyDuplex, 1.0, color.RGBA{R: 255, G: 220, A: 255}, 2)

	const flagSize = 20
	flag := []struct {
		at image.Point
		c  color.RGBA
	}{
		{image.Pt(20, 110), color.RGBA{R: 255, A: 255}},
		{image.Pt(20+flagSize+2, 110), color.RGBA{G: 170, A: 255}},
		{image.Pt(20, 110+flagSize+2), color.RGBA{B: 255, A: 255}},
		{image.Pt(20+flagSize+2, 110+flagSize+2), color.RGBA{R: 255, G: 220, A: 255}},
	}
	for _, sq := range flag {
		gocv.Rectangle(&mat, image.Rectangle{Min: sq.at, Max: sq.at.Add(image.Pt(flagSize, flagSize))}, sq.c, -1)
	}

	rule := color.RGBA{R: 200, G: 200, B: 255, A: 255}
	gocv.Line(&mat, image.Pt(10, SidebarHeight-40), image.Pt(140, SidebarHeight-40), rule, 1)
	gocv.Line(&mat, image.Pt(10, SidebarHeight-35), image.Pt(140, SidebarHeight-35), rule, 1)
	return mat
}

// RenderHeader draws the 500×58 installer header: white with a navy frame
// and the setup title.
func RenderHeader() gocv.Mat {
	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), HeaderHeight, HeaderWidth, gocv.MatTypeCV8UC3)
	gocv.Rectangle(&mat, image.Rect(0, 0, HeaderWidth, HeaderHeight), navy, 4)
	gocv.PutText(&mat, "Microsoft Office 97 Setup", image.Pt(20, 36), gocv.FontHersheySimplex, 0.7, black, 2)
	return mat
}

// Encode compresses mat with the codec for ext. The caller still owns mat.
func Encode(mat gocv.Mat, ext gocv.FileExt) ([]byte, error) {
	buf, err := gocv.IMEncode(ext, mat)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", ext, err)
	}
	defer buf.Close()

	data := buf.GetBytes()
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// IconPNG renders and encodes the named icon.
func IconPNG(name string, size int) ([]byte, error) {
	g, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown icon %q", name)
	}
	mat, err := RenderIcon(g, size)
	if err != nil {
		return nil, err
	}
	defer mat.Close()
	return Encode(mat, gocv.PNGFileExt)
}

func SidebarImage(ext gocv.FileExt) ([]byte, error) {
	mat := RenderSidebar()
	defer mat.Close()
	return Encode(mat, ext)
}

func HeaderImage(ext gocv.FileExt) ([]byte, error) {
	mat := RenderHeader()
	defer mat.Close()
	return Encode(mat, ext)
}
