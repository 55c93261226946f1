package port

import (
	"context"

	"plant-segmentation/internal/domain/entity"
)

// Segmenter интерфейс конвейера сегментации
type Segmenter interface {
	// Segment классифицирует изображение и извлекает примитивы
	Segment(ctx context.Context, imageData []byte, bbox bool) (*entity.SegmentationResult, error)

	// Annotate рисует примитивы поверх изображения
	Annotate(imageData []byte, result *entity.SegmentationResult) ([]byte, error)
}
