package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"wildfire-ca/internal/core"
)

const labelHeight = 16

// Frame renders g scaled up by scale with nearest-neighbour sampling and,
// when label is non-empty, a caption strip above the grid.
func Frame(g *core.FloatGrid, scale int, label string) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	src := IntensityImage(g)

	top := 0
	if label != "" {
		top = labelHeight
	}
	dst := image.NewRGBA(image.Rect(0, 0, g.W*scale, g.H*scale+top))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, xdraw.Src)
	xdraw.NearestNeighbor.Scale(dst, image.Rect(0, top, g.W*scale, g.H*scale+top), src, src.Bounds(), xdraw.Src, nil)

	if label != "" {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(color.White),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4, 12),
		}
		d.DrawString(label)
	}
	return dst
}
