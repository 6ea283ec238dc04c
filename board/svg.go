package board

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

const (
	svgCell   = 60
	svgMargin = 40
	svgSize   = 6*svgCell + 2*svgMargin
)

func svgXY(i int) (int, int) {
	x, y := Coords(i)
	// SVG y grows downward.
	return svgMargin + x*svgCell, svgMargin + (6-y)*svgCell
}

// RenderSVG draws the position as an SVG document. Every edge between
// adjacent points is drawn once; pieces are filled circles.
func RenderSVG(w io.Writer, p Position) {
	canvas := svg.New(w)
	canvas.Start(svgSize, svgSize)
	canvas.Rect(0, 0, svgSize, svgSize, "fill:#e8c887")
	for i := 0; i < NumPoints; i++ {
		x1, y1 := svgXY(i)
		for _, j := range Neighbors(i) {
			if j < i {
				continue
			}
			x2, y2 := svgXY(j)
			canvas.Line(x1, y1, x2, y2, "stroke:#3b2a14;stroke-width:3")
		}
	}
	for i, v := range p {
		x, y := svgXY(i)
		switch v {
		case White:
			canvas.Circle(x, y, 18, "fill:#fafafa;stroke:#222;stroke-width:2")
		case Black:
			canvas.Circle(x, y, 18, "fill:#222;stroke:#000;stroke-width:2")
		default:
			canvas.Circle(x, y, 5, "fill:#3b2a14")
		}
		canvas.Text(x+12, y-12, fmt.Sprint(i), "font-size:11px;fill:#5a4020")
	}
	canvas.End()
}
