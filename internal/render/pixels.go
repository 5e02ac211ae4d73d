package render

import (
	"image"
	"image/color"
)

// FillRGBA converts encoded cell values into RGBA pixels in buf using palette.
// Values past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func FillRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range buf[:4*len(cells)] {
			buf[i] = 0
		}
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		col := palette[idx]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Image renders a w*h grid of encoded cells into a new RGBA image, one pixel
// per cell scaled up by scale.
func Image(w, h int, cells []uint8, palette []color.RGBA, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	if len(cells) != w*h {
		return img
	}
	row := make([]byte, 4*w)
	for y := 0; y < h; y++ {
		FillRGBA(row, cells[y*w:(y+1)*w], palette)
		for sy := 0; sy < scale; sy++ {
			off := img.PixOffset(0, y*scale+sy)
			dst := img.Pix[off : off+4*w*scale]
			for x := 0; x < w; x++ {
				px := row[4*x : 4*x+4]
				for sx := 0; sx < scale; sx++ {
					copy(dst[4*(x*scale+sx):], px)
				}
			}
		}
	}
	return img
}
