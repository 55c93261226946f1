package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"plant-segmentation/internal/domain/entity"
)

func TestParamsFor(t *testing.T) {
	cr, err := ParamsFor(entity.Label0)
	require.NoError(t, err)
	require.Equal(t, ColorSpaceYCrCb, cr.ColorSpace)
	require.Equal(t, channelCr, cr.Channel)
	require.True(t, cr.Inverse)
	require.Equal(t, float32(2), cr.C)
	require.Equal(t, 15, cr.OpenIterations)
	require.Equal(t, 60, cr.CloseIterations)

	sat, err := ParamsFor(entity.Label1)
	require.NoError(t, err)
	require.Equal(t, ColorSpaceHSV, sat.ColorSpace)
	require.Equal(t, channelSat, sat.Channel)
	require.False(t, sat.Inverse)
	require.Equal(t, float32(1), sat.C)

	hue, err := ParamsFor(entity.Label3)
	require.NoError(t, err)
	require.Equal(t, channelHue, hue.Channel)

	for _, p := range []BranchParams{cr, sat, hue} {
		require.Equal(t, 31, p.BlockSize)
		require.Equal(t, 5, p.BlurSize)
		require.Equal(t, MinContourArea, p.AreaThreshold)
	}
}

func TestParamsFor_SharedBranch(t *testing.T) {
	two, err := ParamsFor(entity.Label2)
	require.NoError(t, err)
	four, err := ParamsFor(entity.Label4)
	require.NoError(t, err)

	require.Equal(t, two, four)
	require.Equal(t, channelCb, two.Channel)
	require.Equal(t, float32(-5), two.C)
	require.Equal(t, 60, two.OpenIterations)
	require.Equal(t, 60, two.CloseIterations)
}

func TestParamsFor_Unknown(t *testing.T) {
	_, err := ParamsFor(entity.Label("9"))
	require.ErrorIs(t, err, entity.ErrClassification)
}
