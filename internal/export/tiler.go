package export

import (
	"image"
	"image/draw"
)

// A4 纸面比例，分页高度按位图宽度换算
const (
	a4WidthMM  = 210
	a4HeightMM = 297
)

// PageHeightPx 给定位图宽度下单页对应的像素高度（宽:高 = 210:297）。
func PageHeightPx(bitmapWidth int) int {
	return bitmapWidth * a4HeightMM / a4WidthMM
}

// SliceHeights 把总高度切成每页高度的段，末段是余数（不足整页保留实际高度）。
func SliceHeights(totalHeight, pageHeight int) []int {
	if totalHeight <= 0 || pageHeight <= 0 {
		return nil
	}
	var out []int
	for remaining := totalHeight; remaining > 0; remaining -= pageHeight {
		h := pageHeight
		if remaining < pageHeight {
			h = remaining
		}
		out = append(out, h)
	}
	return out
}

// Tile 按 A4 比例把整页截图纵向切成逐页子图
func Tile(img image.Image) []image.Image {
	b := img.Bounds()
	pageH := PageHeightPx(b.Dx())
	heights := SliceHeights(b.Dy(), pageH)

	pages := make([]image.Image, 0, len(heights))
	y := b.Min.Y
	for _, h := range heights {
		rect := image.Rect(b.Min.X, y, b.Max.X, y+h)
		pages = append(pages, subImage(img, rect))
		y += h
	}
	return pages
}

// subImage 有 SubImage 就直接切，没有就复制一份
func subImage(img image.Image, rect image.Rectangle) image.Image {
	type subImager interface {
		SubImage(r image.Rectangle) image.Image
	}
	if si, ok := img.(subImager); ok {
		return si.SubImage(rect)
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), img, rect.Min, draw.Src)
	return dst
}
