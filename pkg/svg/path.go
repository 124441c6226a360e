// Package svg turns projected track geometry into SVG path command lists and
// standalone SVG documents.
package svg

import (
	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
)

// DirectPath connects every projected point with straight line commands.
// An empty input yields an empty path.
func DirectPath(points []datastructure.PlanarPoint) datastructure.Path {
	if len(points) == 0 {
		return datastructure.Path{}
	}

	path := make(datastructure.Path, 0, len(points))
	path = append(path, datastructure.NewMoveTo(points[0]))
	for _, p := range points[1:] {
		path = append(path, datastructure.NewLineTo(p))
	}
	return path
}

// OptimizedPath renders a simplified polyline as a smooth quadratic chain:
// one explicit Q through the second point, then T shorthands through the
// segment midpoints, closing on the last point. SVG defines the implicit
// control of a T command as the reflection of the previous control point
// through the current start point; lastControl threads that state through
// the build so every emitted command carries its resolved control point.
func OptimizedPath(simplified []datastructure.PlanarPoint) datastructure.Path {
	if len(simplified) < 2 {
		return datastructure.Path{}
	}

	path := make(datastructure.Path, 0, len(simplified))
	path = append(path, datastructure.NewMoveTo(simplified[0]))

	if len(simplified) == 2 {
		path = append(path, datastructure.NewLineTo(simplified[1]))
		return path
	}

	control := simplified[1]
	end := datastructure.MidPoint(simplified[1], simplified[2])
	path = append(path, datastructure.NewQuadraticTo(control, end))

	lastControl := control
	current := end

	for i := 2; i < len(simplified)-1; i++ {
		next := datastructure.MidPoint(simplified[i], simplified[i+1])
		lastControl = reflectControl(lastControl, current)
		path = append(path, datastructure.NewSmoothQuadraticTo(lastControl, next))
		current = next
	}

	lastControl = reflectControl(lastControl, current)
	path = append(path, datastructure.NewSmoothQuadraticTo(lastControl, simplified[len(simplified)-1]))
	return path
}

func reflectControl(control, through datastructure.PlanarPoint) datastructure.PlanarPoint {
	return datastructure.NewPlanarPoint(2*through.X-control.X, 2*through.Y-control.Y)
}
