package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"go.uber.org/zap"

	"plant-segmentation/internal/domain/entity"
	"plant-segmentation/internal/domain/port"
)

// SegmentRequest полезная нагрузка запроса: изображение в base64 и форма ответа
type SegmentRequest struct {
	Base64 string
	BBox   bool
}

// Options ограничения на выполнение конвейера
type Options struct {
	MaxConcurrent  int           // одновременных вызовов конвейера
	QueueTimeout   time.Duration // сколько ждать свободного слота
	RequestTimeout time.Duration // дедлайн на весь вызов
}

// SegmentationService запускает конвейер сегментации с ограничением
// параллелизма и дедлайном на вызов.
type SegmentationService struct {
	segmenter      port.Segmenter
	logger         *zap.Logger
	semaphore      chan struct{}
	queueTimeout   time.Duration
	requestTimeout time.Duration
}

// NewSegmentationService создаёт сервис поверх конвейера
func NewSegmentationService(segmenter port.Segmenter, opts Options, logger *zap.Logger) *SegmentationService {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SegmentationService{
		segmenter:      segmenter,
		logger:         logger,
		semaphore:      make(chan struct{}, opts.MaxConcurrent),
		queueTimeout:   opts.QueueTimeout,
		requestTimeout: opts.RequestTimeout,
	}
}

// SegmentBase64 декодирует base64 и запускает конвейер
func (s *SegmentationService) SegmentBase64(ctx context.Context, req SegmentRequest) (*entity.SegmentationResult, error) {
	if req.Base64 == "" {
		return nil, entity.NewPipelineError(entity.StageDecode, "", fmt.Errorf("%w: base64 field is empty", entity.ErrDecode))
	}

	data, err := base64.StdEncoding.DecodeString(req.Base64)
	if err != nil {
		return nil, entity.NewPipelineError(entity.StageDecode, "", fmt.Errorf("%w: invalid base64: %v", entity.ErrDecode, err))
	}
	return s.Segment(ctx, data, req.BBox)
}

// Segment запускает конвейер над сырыми байтами изображения
func (s *SegmentationService) Segment(ctx context.Context, imageData []byte, bbox bool) (*entity.SegmentationResult, error) {
	if len(imageData) == 0 {
		return nil, entity.NewPipelineError(entity.StageDecode, "", fmt.Errorf("%w: empty payload", entity.ErrDecode))
	}

	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	if err := s.acquire(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	s.logger.Info("processing started", zap.Int("bytes", len(imageData)), zap.Bool("bbox", bbox))

	type outcome struct {
		result *entity.SegmentationResult
		err    error
	}
	done := make(chan outcome, 1)

	// Конвейер синхронный и не прерывается: по дедлайну результат отбрасывается,
	// а слот освобождается, когда вычисление завершится.
	go func() {
		defer s.release()
		result, err := s.segmenter.Segment(ctx, imageData, bbox)
		done <- outcome{result: result, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			s.logger.Warn("processing failed",
				zap.String("kind", entity.ErrorKind(out.err)),
				zap.Duration("duration", time.Since(start)),
				zap.Error(out.err))
			return nil, out.err
		}
		s.logger.Info("request processed",
			zap.String("label", string(out.result.Label)),
			zap.Int("primitives", len(out.result.PointLists())),
			zap.Duration("duration", time.Since(start)))
		return out.result, nil
	case <-ctx.Done():
		s.logger.Warn("processing deadline exceeded", zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("%w: %v", entity.ErrTimeout, ctx.Err())
	}
}

// Annotate рисует результат поверх исходного изображения
func (s *SegmentationService) Annotate(imageData []byte, result *entity.SegmentationResult) ([]byte, error) {
	return s.segmenter.Annotate(imageData, result)
}

func (s *SegmentationService) acquire(ctx context.Context) error {
	wait := ctx
	if s.queueTimeout > 0 {
		var cancel context.CancelFunc
		wait, cancel = context.WithTimeout(ctx, s.queueTimeout)
		defer cancel()
	}

	select {
	case s.semaphore <- struct{}{}:
		return nil
	case <-wait.Done():
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %v", entity.ErrTimeout, ctx.Err())
		}
		return entity.ErrBusy
	}
}

func (s *SegmentationService) release() {
	<-s.semaphore
}
