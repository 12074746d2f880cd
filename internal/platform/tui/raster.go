package tui

import (
	"math"

	"github.com/vovakirdan/wasm-arcade/internal/core"
	"github.com/vovakirdan/wasm-arcade/internal/draw"
)

// point is a vertex position in screen pixels.
type point struct{ x, y float64 }

// toPixels maps a clip-space vertex onto a w×h pixel grid.
func toPixels(v draw.Vertex, w, h int) point {
	return point{
		x: (float64(v.X) + 1) / 2 * float64(w),
		y: (1 - float64(v.Y)) / 2 * float64(h),
	}
}

// edge returns twice the signed area of (a, b, p).
func edge(a, b, p point) float64 {
	return (b.x-a.x)*(p.y-a.y) - (b.y-a.y)*(p.x-a.x)
}

// Rasterize paints commands onto s in stream order.
//
// Each command is drawn as the triangle list its indices describe. A pixel
// is covered when its centre lies inside a triangle, edges included, and is
// painted at most once per command so translucent commands blend once.
// Textures are not sampled: textured commands are drawn in their colour.
func Rasterize(s *core.Screen, cmds []draw.Command) {
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 {
		return
	}
	for i := range cmds {
		rasterizeCommand(s, &cmds[i], w, h)
	}
}

func rasterizeCommand(s *core.Screen, cmd *draw.Command, w, h int) {
	if cmd.A <= 0 || len(cmd.Vertices) == 0 {
		return
	}

	pts := make([]point, len(cmd.Vertices))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, v := range cmd.Vertices {
		p := toPixels(v, w, h)
		pts[i] = p
		minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
		minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
	}

	x0 := max(0, int(math.Floor(minX)))
	y0 := max(0, int(math.Floor(minY)))
	x1 := min(w-1, int(math.Ceil(maxX)))
	y1 := min(h-1, int(math.Ceil(maxY)))
	if x0 > x1 || y0 > y1 {
		return
	}

	bw := x1 - x0 + 1
	covered := make([]bool, bw*(y1-y0+1))
	for t := 0; t+2 < len(cmd.Indices); t += 3 {
		ia, ib, ic := cmd.Indices[t], cmd.Indices[t+1], cmd.Indices[t+2]
		if int(ia) >= len(pts) || int(ib) >= len(pts) || int(ic) >= len(pts) {
			continue
		}
		a, b, c := pts[ia], pts[ib], pts[ic]
		area := edge(a, b, c)
		if area == 0 {
			continue
		}
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				p := point{float64(x) + 0.5, float64(y) + 0.5}
				e0, e1, e2 := edge(a, b, p), edge(b, c, p), edge(c, a, p)
				if area < 0 {
					e0, e1, e2 = -e0, -e1, -e2
				}
				if e0 >= 0 && e1 >= 0 && e2 >= 0 {
					covered[(y-y0)*bw+(x-x0)] = true
				}
			}
		}
	}

	fill := cmd.Color()
	opaque := cmd.A >= int32(draw.Opaque)
	alpha := float64(cmd.A) / float64(draw.Opaque)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !covered[(y-y0)*bw+(x-x0)] {
				continue
			}
			if opaque {
				s.Set(x, y, fill)
			} else {
				s.Set(x, y, s.Get(x, y).Blend(fill, alpha))
			}
		}
	}
}
