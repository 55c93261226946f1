package vision

import (
	"math"

	"plant-segmentation/internal/domain/entity"
)

// verticalEpsilon ниже этого |vx| линия считается вертикальной
const verticalEpsilon = 1e-6

// EdgeIntersections строит отрезок по направлению (vx, vy) через (x, y)
// от левого края маски (x=0) до правого (x=width-1). Почти вертикальная
// линия не пересекает боковые края, для неё возвращается вертикаль
// от y=0 до y=height-1.
func EdgeIntersections(vx, vy, x, y float64, width, height int) entity.LineSegment {
	if math.Abs(vx) < verticalEpsilon {
		xi := int(x)
		return entity.LineSegment{
			Start: entity.Point{X: xi, Y: 0},
			End:   entity.Point{X: xi, Y: height - 1},
		}
	}

	slope := vy / vx
	leftY := y - x*slope
	rightY := y + (float64(width-1)-x)*slope
	return entity.LineSegment{
		Start: entity.Point{X: 0, Y: int(leftY)},
		End:   entity.Point{X: width - 1, Y: int(rightY)},
	}
}
