package vision

import (
	"fmt"

	"plant-segmentation/internal/domain/entity"
)

// DefaultClipPercent процент отсечения гистограммы в конвейере (почти без отсечения)
const DefaultClipPercent = 1.0

// ClipBounds находит minGray и maxGray по накопленной гистограмме.
// clipPercent делится поровну между тёмным и светлым хвостами.
func ClipBounds(hist []float64, clipPercent float64) (minGray, maxGray int) {
	n := len(hist)
	if n == 0 {
		return 0, -1
	}

	acc := make([]float64, n)
	acc[0] = hist[0]
	for i := 1; i < n; i++ {
		acc[i] = acc[i-1] + hist[i]
	}

	total := acc[n-1]
	clip := clipPercent * total / 100 / 2

	for minGray < n-1 && acc[minGray] < clip {
		minGray++
	}

	maxGray = n - 1
	for maxGray >= 0 && acc[maxGray] >= total-clip {
		maxGray--
	}
	return minGray, maxGray
}

// ScaleParams считает alpha и beta для растяжения [minGray, maxGray] в [0, 255]
func ScaleParams(minGray, maxGray int) (alpha, beta float64, err error) {
	if maxGray <= minGray {
		return 0, 0, fmt.Errorf("%w: min gray %d, max gray %d", entity.ErrDegenerateHistogram, minGray, maxGray)
	}
	alpha = 255 / float64(maxGray-minGray)
	beta = -float64(minGray) * alpha
	return alpha, beta, nil
}

// ScaleLUT таблица v*alpha+beta с насыщением и отбрасыванием дробной части
func ScaleLUT(alpha, beta float64) []byte {
	lut := make([]byte, 256)
	for v := range lut {
		x := float64(v)*alpha + beta
		switch {
		case x < 0:
			x = 0
		case x > 255:
			x = 255
		}
		lut[v] = byte(x)
	}
	return lut
}
