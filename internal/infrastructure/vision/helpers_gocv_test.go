//go:build gocv
// +build gocv

package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"plant-segmentation/internal/domain/entity"
)

// fixedModel всегда возвращает один и тот же кластер
type fixedModel struct {
	id int
}

func (m fixedModel) NearestCluster(features entity.FeatureVector) (int, error) {
	return m.id, nil
}

func uniformImage(rows, cols int, gray float64) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(gray, gray, gray, 0), rows, cols, gocv.MatTypeCV8UC3)
}

// bandImage светло-серый фон с насыщенной красной вертикальной полосой
func bandImage() gocv.Mat {
	img := uniformImage(400, 100, 200)
	gocv.Rectangle(&img, image.Rect(10, 0, 90, 400), color.RGBA{R: 255, A: 255}, -1)
	return img
}

func encodePNG(t *testing.T, img gocv.Mat) []byte {
	t.Helper()
	buf, err := gocv.IMEncode(gocv.PNGFileExt, img)
	require.NoError(t, err)
	defer buf.Close()
	return buf.GetBytes()
}
