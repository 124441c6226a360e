package datastructure

import (
	"bytes"
	"fmt"
)

type PathCommandType uint8

const (
	MoveTo PathCommandType = iota
	LineTo
	QuadraticTo
	SmoothQuadraticTo
)

// PathCommand is one SVG path command. Control is meaningful for QuadraticTo
// and SmoothQuadraticTo only. A SmoothQuadraticTo serializes without its
// control point ("T x,y"), so Control holds the resolved reflection of the
// previous control point. Renderers that lack the T shorthand (pdf) replay
// the curve from it.
type PathCommand struct {
	Type    PathCommandType `json:"type"`
	Control PlanarPoint     `json:"control"`
	End     PlanarPoint     `json:"end"`
}

func NewMoveTo(end PlanarPoint) PathCommand {
	return PathCommand{Type: MoveTo, End: end}
}

func NewLineTo(end PlanarPoint) PathCommand {
	return PathCommand{Type: LineTo, End: end}
}

func NewQuadraticTo(control, end PlanarPoint) PathCommand {
	return PathCommand{Type: QuadraticTo, Control: control, End: end}
}

func NewSmoothQuadraticTo(control, end PlanarPoint) PathCommand {
	return PathCommand{Type: SmoothQuadraticTo, Control: control, End: end}
}

// Path is an ordered SVG command list.
type Path []PathCommand

func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// String renders the path in SVG "d" attribute syntax. Commands are joined
// by single spaces and every coordinate carries exactly 2 decimal places.
func (p Path) String() string {
	var buf bytes.Buffer
	for i, cmd := range p {
		if i > 0 {
			buf.WriteByte(' ')
		}
		switch cmd.Type {
		case MoveTo:
			fmt.Fprintf(&buf, "M %.2f,%.2f", cmd.End.X, cmd.End.Y)
		case LineTo:
			fmt.Fprintf(&buf, "L %.2f,%.2f", cmd.End.X, cmd.End.Y)
		case QuadraticTo:
			fmt.Fprintf(&buf, "Q %.2f,%.2f %.2f,%.2f", cmd.Control.X, cmd.Control.Y,
				cmd.End.X, cmd.End.Y)
		case SmoothQuadraticTo:
			fmt.Fprintf(&buf, "T %.2f,%.2f", cmd.End.X, cmd.End.Y)
		}
	}
	return buf.String()
}

// GradientStop is one stop of the elevation profile gradient. Offset is a
// percentage in [0,100], Hue an hsl hue in degrees.
type GradientStop struct {
	Offset float64 `json:"offset"`
	Hue    float64 `json:"hue"`
}

func NewGradientStop(offset, hue float64) GradientStop {
	return GradientStop{
		Offset: offset,
		Hue:    hue,
	}
}

func (g GradientStop) Color() string {
	return fmt.Sprintf("hsl(%g, 70%%, 50%%)", g.Hue)
}
