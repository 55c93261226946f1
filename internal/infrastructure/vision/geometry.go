//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"

	"plant-segmentation/internal/domain/entity"
)

// DominantAngle возвращает самый частый угол ориентации среди контуров
// площадью не меньше areaThreshold.
func DominantAngle(contours gocv.PointsVector, areaThreshold float64) (int, error) {
	angles := make([]int, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		if gocv.ContourArea(c) < areaThreshold {
			continue
		}
		rect := gocv.MinAreaRect2(c)
		angles = append(angles, RectOrientation(rect.Angle, float64(rect.Width), float64(rect.Height)))
	}

	angle, ok := MostFrequent(angles)
	if !ok {
		return 0, fmt.Errorf("%w (threshold %.0f, %d contours)", entity.ErrNoDominantContour, areaThreshold, contours.Size())
	}
	return angle, nil
}

// RotateNoCrop поворачивает изображение вокруг центра, увеличивая холст
// так, чтобы ничего не обрезалось.
func RotateNoCrop(img gocv.Mat, angle float64) gocv.Mat {
	w, h := img.Cols(), img.Rows()
	center := image.Pt(w/2, h/2)

	rot := gocv.GetRotationMatrix2D(center, angle, 1.0)
	defer rot.Close()

	cos := math.Abs(rot.GetDoubleAt(0, 0))
	sin := math.Abs(rot.GetDoubleAt(0, 1))
	newW := int(math.Round(float64(h)*sin + float64(w)*cos))
	newH := int(math.Round(float64(h)*cos + float64(w)*sin))

	// сдвигаем центр в середину нового холста
	rot.SetDoubleAt(0, 2, rot.GetDoubleAt(0, 2)+float64(newW)/2-float64(center.X))
	rot.SetDoubleAt(1, 2, rot.GetDoubleAt(1, 2)+float64(newH)/2-float64(center.Y))

	rotated := gocv.NewMat()
	gocv.WarpAffine(img, &rotated, rot, image.Pt(newW, newH))
	return rotated
}

// RotateAndCrop поворачивает без обрезки и вырезает из центра окно
// width×height. Результат всегда ровно width×height.
func RotateAndCrop(img gocv.Mat, angle float64, width, height int) gocv.Mat {
	rotated := RotateNoCrop(img, angle)
	defer rotated.Close()

	out := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, img.Type())

	cx, cy := rotated.Cols()/2, rotated.Rows()/2
	window := image.Rect(cx-width/2, cy-height/2, cx-width/2+width, cy-height/2+height)
	visible := window.Intersect(image.Rect(0, 0, rotated.Cols(), rotated.Rows()))
	if visible.Empty() {
		return out
	}

	src := rotated.Region(visible)
	defer src.Close()
	dst := out.Region(visible.Sub(window.Min))
	defer dst.Close()
	src.CopyTo(&dst)

	return out
}
