//go:build gocv
// +build gocv

package vision

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"plant-segmentation/internal/domain/entity"
)

func noiseImage(t *testing.T, rows, cols int) gocv.Mat {
	t.Helper()
	data := make([]byte, rows*cols*3)
	rng := rand.New(rand.NewSource(11))
	for i := range data {
		data[i] = byte(40 + rng.Intn(150))
	}
	img, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC3, data)
	require.NoError(t, err)
	return img.Clone()
}

func TestConvertScale_Identity(t *testing.T) {
	img := noiseImage(t, 32, 48)
	defer img.Close()

	out, err := ConvertScale(img, 1, 0)
	require.NoError(t, err)
	defer out.Close()
	require.Equal(t, img.ToBytes(), out.ToBytes())
}

func TestNormalizeContrast_StretchesRange(t *testing.T) {
	img := noiseImage(t, 64, 64)
	defer img.Close()

	out, alpha, beta, err := NormalizeContrast(img, 1)
	require.NoError(t, err)
	defer out.Close()

	require.Greater(t, alpha, 1.0)
	require.Less(t, beta, 0.0)
	require.Equal(t, img.Rows(), out.Rows())
	require.Equal(t, img.Cols(), out.Cols())
	require.Equal(t, gocv.MatTypeCV8UC3, out.Type())

	minV, maxV := 255, 0
	for _, v := range out.ToBytes() {
		minV = min(minV, int(v))
		maxV = max(maxV, int(v))
	}
	require.Equal(t, 0, minV)
	require.Equal(t, 255, maxV)
}

func TestNormalizeContrast_TwoTones(t *testing.T) {
	img := bandImage()
	defer img.Close()

	out, _, _, err := NormalizeContrast(img, 1)
	require.NoError(t, err)
	defer out.Close()

	bg := out.GetVecbAt(200, 0)
	require.Equal(t, []uint8{255, 255, 255}, []uint8{bg[0], bg[1], bg[2]})
	band := out.GetVecbAt(200, 50)
	require.Equal(t, []uint8{0, 0, 255}, []uint8{band[0], band[1], band[2]})
}

func TestNormalizeContrast_Degenerate(t *testing.T) {
	img := uniformImage(50, 50, 128)
	defer img.Close()

	out, _, _, err := NormalizeContrast(img, 1)
	defer out.Close()
	require.ErrorIs(t, err, entity.ErrDegenerateHistogram)
}
