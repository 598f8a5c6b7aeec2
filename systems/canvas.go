package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteSubImage *ebiten.Image

// whitePixel returns a 1x1 white source for vertex-colored triangles
func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// canvas draws additive shapes in logical pixels onto a backing image that
// is scale times larger.
type canvas struct {
	dst   *ebiten.Image
	scale float32
	vs    []ebiten.Vertex
	is    []uint16
	op    ebiten.DrawTrianglesOptions
}

// rgba is a straight-alpha color with components in 0..1
type rgba struct {
	R, G, B, A float64
}

func newCanvas(dst *ebiten.Image, dpr float64) *canvas {
	if dpr <= 0 {
		dpr = 1
	}
	return &canvas{
		dst:   dst,
		scale: float32(dpr),
		op: ebiten.DrawTrianglesOptions{
			Blend:     ebiten.BlendLighter,
			AntiAlias: true,
		},
	}
}

func (c *canvas) strokeLine(x0, y0, x1, y1, width float64, clr rgba) {
	var path vector.Path
	path.MoveTo(c.px(x0), c.px(y0))
	path.LineTo(c.px(x1), c.px(y1))

	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width: float32(width) * c.scale,
	})
	c.flush(clr)
}

func (c *canvas) fillCircle(cx, cy, r float64, clr rgba) {
	var path vector.Path
	path.Arc(c.px(cx), c.px(cy), float32(r)*c.scale, 0, 2*math.Pi, vector.Clockwise)
	path.Close()

	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.flush(clr)
}

func (c *canvas) flush(clr rgba) {
	if len(c.is) == 0 {
		return
	}
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = float32(clr.R)
		c.vs[i].ColorG = float32(clr.G)
		c.vs[i].ColorB = float32(clr.B)
		c.vs[i].ColorA = float32(clr.A)
	}
	c.dst.DrawTriangles(c.vs, c.is, whitePixel(), &c.op)
}

func (c *canvas) px(v float64) float32 {
	return float32(v) * c.scale
}
