package telegram

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"plant-segmentation/internal/domain/entity"
)

func TestWantsBoxes(t *testing.T) {
	require.True(t, wantsBoxes("bbox"))
	require.True(t, wantsBoxes("  BBox "))
	require.False(t, wantsBoxes(""))
	require.False(t, wantsBoxes("lines"))
}

func TestResultMessage(t *testing.T) {
	empty := &entity.SegmentationResult{Label: entity.Label2}
	require.Equal(t, "✅ Категория 2. Структуры не обнаружены.", resultMessage(empty))

	withBoxes := &entity.SegmentationResult{
		Label: entity.Label1,
		BBox:  true,
		Boxes: make([]entity.BoundingBox, 3),
	}
	require.Equal(t, "✅ Категория 1. Найдено структур: 3.", resultMessage(withBoxes))
}

func TestErrorMessage(t *testing.T) {
	require.Equal(t, msgBusy, errorMessage(entity.ErrBusy))
	require.Equal(t, msgTimeout, errorMessage(fmt.Errorf("%w: deadline", entity.ErrTimeout)))
	require.Equal(t, msgDecodeError, errorMessage(entity.NewPipelineError(entity.StageDecode, "", entity.ErrDecode)))
	require.Equal(t, msgProcessingError, errorMessage(entity.ErrNoDominantContour))
}
