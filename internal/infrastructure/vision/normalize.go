//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"runtime"

	"gocv.io/x/gocv"
)

// NormalizeContrast растягивает яркость BGR-изображения по гистограмме
// серого, отсекая clipPercent пикселей поровну с обоих концов.
func NormalizeContrast(img gocv.Mat, clipPercent float64) (gocv.Mat, float64, float64, error) {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	hist := gocv.NewMat()
	defer hist.Close()
	mask := gocv.NewMat()
	defer mask.Close()
	gocv.CalcHist([]gocv.Mat{gray}, []int{0}, mask, &hist, []int{256}, []float64{0, 256}, false)

	bins := make([]float64, 256)
	for i := range bins {
		bins[i] = float64(hist.GetFloatAt(i, 0))
	}

	minGray, maxGray := ClipBounds(bins, clipPercent)
	alpha, beta, err := ScaleParams(minGray, maxGray)
	if err != nil {
		return gocv.NewMat(), 0, 0, err
	}

	out, err := ConvertScale(img, alpha, beta)
	if err != nil {
		return gocv.NewMat(), 0, 0, err
	}
	return out, alpha, beta, nil
}

// ConvertScale применяет pixel*alpha+beta поэлементно с насыщением до uint8
func ConvertScale(img gocv.Mat, alpha, beta float64) (gocv.Mat, error) {
	table := ScaleLUT(alpha, beta)
	lut, err := gocv.NewMatFromBytes(1, len(table), gocv.MatTypeCV8U, table)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("build lut: %w", err)
	}
	defer lut.Close()

	out := gocv.NewMat()
	gocv.LUT(img, lut, &out)
	runtime.KeepAlive(table)
	return out, nil
}
