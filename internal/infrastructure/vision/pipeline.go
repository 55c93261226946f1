//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"time"

	"go.uber.org/zap"
	"gocv.io/x/gocv"

	"plant-segmentation/internal/domain/entity"
	"plant-segmentation/internal/domain/port"
	"plant-segmentation/internal/infrastructure/classifier"
)

// Pipeline декодирует изображение, классифицирует его по среднему цвету,
// строит маску выбранной веткой и извлекает примитивы.
// Модель только читается, поэтому Pipeline безопасен для конкурентных вызовов.
type Pipeline struct {
	model       port.ClusterModel
	clipPercent float64
	logger      *zap.Logger
}

// NewPipeline создаёт конвейер с загруженной моделью
func NewPipeline(model port.ClusterModel, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		model:       model,
		clipPercent: DefaultClipPercent,
		logger:      logger,
	}
}

// Segment выполняет полный конвейер над одним изображением
func (p *Pipeline) Segment(ctx context.Context, imageData []byte, bbox bool) (*entity.SegmentationResult, error) {
	_ = ctx
	start := time.Now()

	img, err := decodeToMat(imageData)
	if err != nil {
		return nil, entity.NewPipelineError(entity.StageDecode, "", err)
	}
	defer img.Close()

	features := MeanFeatures(img)
	label, err := classifier.Classify(p.model, features)
	if err != nil {
		return nil, entity.NewPipelineError(entity.StageClassify, "", err)
	}

	mask, err := p.buildMask(img, label)
	defer mask.Close()
	if err != nil {
		return nil, err
	}

	boxes, lines := ExtractPrimitives(mask, bbox)

	p.logger.Debug("image segmented",
		zap.String("label", string(label)),
		zap.Int("width", img.Cols()),
		zap.Int("height", img.Rows()),
		zap.Bool("bbox", bbox),
		zap.Int("boxes", len(boxes)),
		zap.Int("lines", len(lines)),
		zap.Duration("duration", time.Since(start)))

	return &entity.SegmentationResult{
		Label:       label,
		ImageWidth:  img.Cols(),
		ImageHeight: img.Rows(),
		BBox:        bbox,
		Boxes:       boxes,
		Lines:       lines,
	}, nil
}

// buildMask нормализует контраст и запускает ветку сегментации.
// Плоская гистограмма означает отсутствие структур: маска пустая.
func (p *Pipeline) buildMask(img gocv.Mat, label entity.Label) (gocv.Mat, error) {
	normalized, alpha, beta, err := NormalizeContrast(img, p.clipPercent)
	defer normalized.Close()
	if errors.Is(err, entity.ErrDegenerateHistogram) {
		p.logger.Debug("flat histogram, returning empty mask",
			zap.String("label", string(label)), zap.Error(err))
		return blankMask(img.Rows(), img.Cols()), nil
	}
	if err != nil {
		return gocv.NewMat(), entity.NewPipelineError(entity.StageNormalize, label, err)
	}

	p.logger.Debug("contrast normalized",
		zap.String("label", string(label)),
		zap.Float64("alpha", alpha),
		zap.Float64("beta", beta))

	mask, err := Segment(normalized, label)
	if err != nil {
		return gocv.NewMat(), entity.NewPipelineError(entity.StageSegment, label, err)
	}
	return mask, nil
}

// Annotate рисует примитивы на изображении и возвращает JPEG
func (p *Pipeline) Annotate(imageData []byte, result *entity.SegmentationResult) ([]byte, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	green := color.RGBA{G: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}
	for _, box := range result.Boxes {
		for i := range box.Corners {
			a, b := box.Corners[i], box.Corners[(i+1)%4]
			gocv.Line(&mat, image.Pt(a.X, a.Y), image.Pt(b.X, b.Y), green, 2)
		}
	}
	for _, l := range result.Lines {
		gocv.Line(&mat, image.Pt(l.Start.X, l.Start.Y), image.Pt(l.End.X, l.End.Y), red, 2)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MeanFeatures средний цвет изображения в порядке RGB
func MeanFeatures(img gocv.Mat) entity.FeatureVector {
	s := gocv.Mean(img)
	return entity.FeatureVector{s.Val3, s.Val2, s.Val1}
}

// decodeToMat превращает байты изображения в BGR gocv.Mat
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	if len(imageData) == 0 {
		return gocv.NewMat(), fmt.Errorf("%w: empty payload", entity.ErrDecode)
	}
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), fmt.Errorf("%w: failed to decode image", entity.ErrDecode)
}

var _ port.Segmenter = (*Pipeline)(nil)
