package container

import (
	"fmt"

	"go.uber.org/zap"

	"plant-segmentation/config"
	app "plant-segmentation/internal/application"
	"plant-segmentation/internal/domain/port"
	"plant-segmentation/internal/infrastructure/classifier"
	"plant-segmentation/internal/infrastructure/vision"
)

type Container struct {
	Config              *config.Config
	SegmentationService *app.SegmentationService
}

// New собирает сервисы приложения поверх готового конвейера
func New(cfg *config.Config, segmenter port.Segmenter, logger *zap.Logger) *Container {
	service := app.NewSegmentationService(segmenter, app.Options{
		MaxConcurrent:  cfg.Pipeline.MaxConcurrent,
		QueueTimeout:   cfg.Pipeline.QueueTimeout,
		RequestTimeout: cfg.Pipeline.RequestTimeout,
	}, logger.Named("segmentation"))

	return &Container{
		Config:              cfg,
		SegmentationService: service,
	}
}

// Build загружает модель классификатора и собирает конвейер
func Build(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	model, err := classifier.Load(cfg.Model.Path)
	if err != nil {
		return nil, fmt.Errorf("load classification model: %w", err)
	}

	logger.Info("classification model loaded",
		zap.String("path", cfg.Model.Path),
		zap.Int("k", model.K))

	pipeline := vision.NewPipeline(model, logger.Named("pipeline"))
	return New(cfg, pipeline, logger), nil
}
