//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"plant-segmentation/internal/domain/entity"
	"plant-segmentation/internal/domain/port"
)

var errNoGoCV = errors.New("gocv build tag is not enabled")

// Pipeline заглушка конвейера для сборки без OpenCV
type Pipeline struct {
	model  port.ClusterModel
	logger *zap.Logger
}

// NewPipeline создаёт конвейер-заглушку (без OpenCV).
func NewPipeline(model port.ClusterModel, logger *zap.Logger) *Pipeline {
	return &Pipeline{model: model, logger: logger}
}

// Segment возвращает ошибку, если сборка без тега gocv.
func (p *Pipeline) Segment(ctx context.Context, imageData []byte, bbox bool) (*entity.SegmentationResult, error) {
	_ = ctx
	_ = imageData
	_ = bbox
	return nil, errNoGoCV
}

// Annotate возвращает ошибку, если сборка без тега gocv.
func (p *Pipeline) Annotate(imageData []byte, result *entity.SegmentationResult) ([]byte, error) {
	_ = imageData
	_ = result
	return nil, errNoGoCV
}

var _ port.Segmenter = (*Pipeline)(nil)
