package geo

import (
	"container/list"
	"math"

	"github.com/jkoick/gpx-to-svg/pkg/datastructure"
)

const (
	// DefaultEpsilon is the simplification tolerance in canvas units applied
	// when the caller does not choose one.
	DefaultEpsilon = 2.0
)

// https://cartography-playground.gitlab.io/playgrounds/douglas-peucker-algorithm/

// DouglasPeucker drops every point closer than epsilon to the chord of its
// surrounding kept points. The first and last point always survive and the
// output preserves input order. Pending ranges live on an explicit work list
// instead of the call stack, so deeply split tracks cannot overflow it.
// Inputs shorter than 3 points are returned as-is.
func DouglasPeucker(points []datastructure.PlanarPoint, epsilon float64) []datastructure.PlanarPoint {
	size := len(points)
	if size < 3 {
		return points
	}

	kepts := make([]bool, size)
	kepts[0] = true
	kepts[size-1] = true

	stack := list.New()
	stack.PushBack([2]int{0, size - 1})

	for stack.Len() > 0 {
		pair := stack.Remove(stack.Back()).([2]int)
		left, right := pair[0], pair[1]
		var maxDist float64
		farthestIndex := left

		// farthest interior point from the (left,right) chord, earliest index wins ties
		for i := left + 1; i < right; i++ {
			dist := PointLinePerpendicularDistance(points[left], points[right], points[i])
			if dist > maxDist && dist > epsilon {
				maxDist = dist
				farthestIndex = i
			}
		}

		if maxDist > epsilon {
			kepts[farthestIndex] = true
			if left < farthestIndex {
				stack.PushBack([2]int{left, farthestIndex})
			}
			if farthestIndex < right {
				stack.PushBack([2]int{farthestIndex, right})
			}
		}
	}

	simplified := make([]datastructure.PlanarPoint, 0, size)
	for i, necessary := range kepts {
		if necessary {
			simplified = append(simplified, points[i])
		}
	}
	return simplified
}

// PointLinePerpendicularDistance is the distance from p to the infinite line
// through lineStart and lineEnd. A zero-length chord degenerates to the plain
// euclidean distance between p and lineStart.
func PointLinePerpendicularDistance(lineStart, lineEnd, p datastructure.PlanarPoint) float64 {
	if lineStart.X == lineEnd.X && lineStart.Y == lineEnd.Y {
		dx := p.X - lineStart.X
		dy := p.Y - lineStart.Y
		return math.Sqrt(dx*dx + dy*dy)
	}

	num := math.Abs((lineEnd.Y-lineStart.Y)*p.X - (lineEnd.X-lineStart.X)*p.Y +
		lineEnd.X*lineStart.Y - lineEnd.Y*lineStart.X)
	den := math.Sqrt((lineEnd.Y-lineStart.Y)*(lineEnd.Y-lineStart.Y) +
		(lineEnd.X-lineStart.X)*(lineEnd.X-lineStart.X))
	return num / den
}
