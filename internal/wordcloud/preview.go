package wordcloud

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
)

// Preview downscales a rendered cloud to cols terminal columns and returns
// a half-block rendition: each cell shows two vertical pixels, the top one
// as the foreground of "▀" and the bottom one as the background. Aspect
// ratio is preserved assuming a 1:2 terminal cell.
func Preview(img image.Image, cols int) string {
	if img == nil || cols < 1 {
		return ""
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}

	rows := int(float64(cols) * float64(b.Dy()) / float64(b.Dx()) / 2)
	if rows < 1 {
		rows = 1
	}

	small := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, xdraw.Src, nil)

	var sb strings.Builder
	for row := range rows {
		for col := range cols {
			top := small.RGBAAt(col, row*2)
			bottom := small.RGBAAt(col, row*2+1)
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", top.R, top.G, top.B))).
				Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", bottom.R, bottom.G, bottom.B)))
			sb.WriteString(cell.Render("▀"))
		}
		if row < rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
