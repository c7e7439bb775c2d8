package export

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestPageHeightPx(t *testing.T) {
	// 210:297 比例
	if got := PageHeightPx(210); got != 297 {
		t.Fatalf("PageHeightPx(210) = %d, want 297", got)
	}
	if got := PageHeightPx(794); got != 1123 {
		t.Fatalf("PageHeightPx(794) = %d, want 1123", got)
	}
}

func TestSliceHeights(t *testing.T) {
	cases := []struct {
		name        string
		total, page int
		want        []int
	}{
		{"exact single", 100, 100, []int{100}},
		{"exact multiple", 300, 100, []int{100, 100, 100}},
		{"remainder last", 250, 100, []int{100, 100, 50}},
		{"shorter than page", 40, 100, []int{40}},
		{"zero total", 0, 100, nil},
		{"zero page", 100, 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SliceHeights(tc.total, tc.page)
			if len(got) != len(tc.want) {
				t.Fatalf("SliceHeights(%d, %d) = %v, want %v", tc.total, tc.page, got, tc.want)
			}
			sum := 0
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("SliceHeights(%d, %d) = %v, want %v", tc.total, tc.page, got, tc.want)
				}
				sum += got[i]
			}
			if sum != tc.total {
				t.Fatalf("sum of slices = %d, want %d", sum, tc.total)
			}
		})
	}
}

func TestTile(t *testing.T) {
	// 宽 210 → 页高 297；总高 700 → 297 + 297 + 106
	img := image.NewRGBA(image.Rect(0, 0, 210, 700))
	pages := Tile(img)
	if len(pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(pages))
	}
	wantHeights := []int{297, 297, 106}
	for i, p := range pages {
		b := p.Bounds()
		if b.Dx() != 210 {
			t.Errorf("page %d width = %d, want 210", i, b.Dx())
		}
		if b.Dy() != wantHeights[i] {
			t.Errorf("page %d height = %d, want %d", i, b.Dy(), wantHeights[i])
		}
	}
}

func TestTilePreservesPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 210, 400))
	mark := color.RGBA{R: 200, A: 255}
	img.Set(10, 310, mark) // 落在第二页
	pages := Tile(img)
	if len(pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(pages))
	}
	b := pages[1].Bounds()
	r, _, _, _ := pages[1].At(b.Min.X+10, b.Min.Y+13).RGBA() // 310 - 297 = 13
	if r>>8 != 200 {
		t.Fatalf("marked pixel not on page 2: r = %d", r>>8)
	}
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"", StrategyDeclarative, false},
		{"declarative", StrategyDeclarative, false},
		{"raster", StrategyRaster, false},
		{" Raster ", StrategyRaster, false},
		{"tiled", "", true},
	}
	for _, tc := range cases {
		got, err := ParseStrategy(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseStrategy(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseStrategy(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestRasterPagesHTML(t *testing.T) {
	pages := []image.Image{
		image.NewRGBA(image.Rect(0, 0, 10, 14)),
		image.NewRGBA(image.Rect(0, 0, 10, 7)),
	}
	html, err := rasterPagesHTML(pages)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(html, "data:image/png;base64,"); got != 2 {
		t.Fatalf("inline images = %d, want 2", got)
	}
	if !strings.Contains(html, "size: A4") {
		t.Error("missing A4 page rule")
	}
}
