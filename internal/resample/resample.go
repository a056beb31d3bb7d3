// Package resample maps a source raster onto a target matrix under one of
// five placement modes.
//
// Sampling is nearest-neighbor everywhere and crop windows copy samples
// verbatim. That is a requirement, not a shortcut: the emitted words must
// match the source colors exactly, and small LED targets are supposed to
// look blocky.
package resample

import "github.com/llehouerou/ledforge/internal/frame"

// Resample renders src onto a tw x th target under the given mode. The
// target starts as opaque black; offX/offY shift the crop window and are
// clamped so the window never leaves the source. Offsets are ignored by
// stretch and fit.
func Resample(src frame.Grid, tw, th int, mode Mode, offX, offY int) frame.Grid {
	dst := frame.NewGrid(tw, th)

	switch mode {
	case CropTop, CropBottom, CropCenter:
		cropInto(dst, src, mode, offX, offY)
	case Stretch:
		scaleInto(dst, src, 0, 0, tw, th)
	case Fit:
		fitInto(dst, src)
	}
	return dst
}

func cropInto(dst, src frame.Grid, mode Mode, offX, offY int) {
	sw := min(dst.Width, src.Width)
	sh := min(dst.Height, src.Height)

	var sx, sy int
	switch mode {
	case CropTop:
		sx, sy = offX, offY
	case CropBottom:
		sx, sy = offX, max(0, src.Height-sh)+offY
	case CropCenter:
		sx = (src.Width-sw)/2 + offX
		sy = (src.Height-sh)/2 + offY
	}
	sx = clamp(sx, 0, src.Width-sw)
	sy = clamp(sy, 0, src.Height-sh)

	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			dst.Set(x, y, src.At(sx+x, sy+y))
		}
	}
}

// scaleInto maps the whole source onto the dw x dh rectangle of dst at
// (dx, dy), nearest-neighbor.
func scaleInto(dst, src frame.Grid, dx, dy, dw, dh int) {
	for y := 0; y < dh; y++ {
		sy := y * src.Height / dh
		for x := 0; x < dw; x++ {
			sx := x * src.Width / dw
			dst.Set(dx+x, dy+y, src.At(sx, sy))
		}
	}
}

func fitInto(dst, src frame.Grid) {
	scale := float64(dst.Width) / float64(src.Width)
	if s := float64(dst.Height) / float64(src.Height); s < scale {
		scale = s
	}
	dw := max(1, int(float64(src.Width)*scale))
	dh := max(1, int(float64(src.Height)*scale))
	scaleInto(dst, src, (dst.Width-dw)/2, (dst.Height-dh)/2, dw, dh)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
