package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"plant-segmentation/internal/infrastructure/classifier"
	"plant-segmentation/internal/infrastructure/logging"
)

func main() {
	dataset := flag.String("dataset", "data", "directory with numbered *.png training images")
	output := flag.String("output", "models/kmeans.json", "path of the model file to write")
	k := flag.Int("k", 5, "number of clusters")
	seed := flag.Int64("seed", 0, "random seed")
	flag.Parse()

	logger, err := logging.New("debug", os.Getenv("LOGLEVEL"))
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	samples, err := classifier.LoadDataset(*dataset)
	if err != nil {
		logger.Fatal("failed to load dataset", zap.Error(err))
	}
	for _, s := range samples {
		logger.Debug("sample", zap.String("file", filepath.Base(s.Path)), zap.Float64s("mean_rgb", s.Features))
	}

	opts := classifier.DefaultFitOptions()
	opts.K = *k
	opts.Seed = *seed

	model, err := classifier.Fit(classifier.Features(samples), opts)
	if err != nil {
		logger.Fatal("failed to fit model", zap.Error(err))
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		logger.Fatal("failed to create output directory", zap.Error(err))
	}
	if err := model.Save(*output); err != nil {
		logger.Fatal("failed to save model", zap.Error(err))
	}

	logger.Info("model trained",
		zap.Int("samples", len(samples)),
		zap.Int("k", model.K),
		zap.Float64("inertia", model.Inertia),
		zap.String("output", *output))
}
