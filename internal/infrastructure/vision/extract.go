//go:build gocv
// +build gocv

package vision

import (
	"gocv.io/x/gocv"

	"plant-segmentation/internal/domain/entity"
)

// ExtractPrimitives находит на маске повёрнутые прямоугольники (bbox)
// или направляющие линии через всю ширину.
func ExtractPrimitives(mask gocv.Mat, bbox bool) ([]entity.BoundingBox, []entity.LineSegment) {
	contours := gocv.FindContours(mask, gocv.RetrievalTree, gocv.ChainApproxSimple)
	defer contours.Close()

	if bbox {
		return detectBoxes(contours, MinContourArea), nil
	}
	return nil, detectLines(contours, MinContourArea, mask.Cols(), mask.Rows())
}

func detectBoxes(contours gocv.PointsVector, areaThreshold float64) []entity.BoundingBox {
	boxes := make([]entity.BoundingBox, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		if gocv.ContourArea(c) < areaThreshold {
			continue
		}

		rect := gocv.MinAreaRect2(c)
		if len(rect.Points) != 4 {
			continue
		}
		var box entity.BoundingBox
		for j, p := range rect.Points {
			// вершины усекаются к нулю
			box.Corners[j] = entity.Point{X: int(p.X), Y: int(p.Y)}
		}
		boxes = append(boxes, box)
	}
	return boxes
}

func detectLines(contours gocv.PointsVector, areaThreshold float64, width, height int) []entity.LineSegment {
	lines := make([]entity.LineSegment, 0, contours.Size())

	line := gocv.NewMat()
	defer line.Close()

	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		if gocv.ContourArea(c) < areaThreshold {
			continue
		}

		gocv.FitLine(c, &line, gocv.DistL2, 0, 0.01, 0.01)
		vx := float64(line.GetFloatAt(0, 0))
		vy := float64(line.GetFloatAt(1, 0))
		x := float64(line.GetFloatAt(2, 0))
		y := float64(line.GetFloatAt(3, 0))
		lines = append(lines, EdgeIntersections(vx, vy, x, y, width, height))
	}
	return lines
}
