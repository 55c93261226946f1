package classifier

import "errors"

// FitOptions параметры обучения k-средних
type FitOptions struct {
	K        int
	Restarts int     // число запусков, остаётся лучший по инерции
	MaxIter  int     // предел итераций одного запуска
	Tol      float64 // сдвиг центров, при котором запуск останавливается
	Seed     int64
}

// DefaultFitOptions пять кластеров, детерминированный seed
func DefaultFitOptions() FitOptions {
	return FitOptions{K: 5, Restarts: 10, MaxIter: 300, Tol: 1e-4, Seed: 0}
}

func (o *FitOptions) normalize(samples [][]float64) error {
	if o.K <= 0 {
		return errors.New("k must be positive")
	}
	if len(samples) < o.K {
		return errors.New("not enough samples for the requested number of clusters")
	}
	dim := len(samples[0])
	if dim == 0 {
		return errors.New("samples have no features")
	}
	for _, s := range samples {
		if len(s) != dim {
			return errors.New("samples have different dimensions")
		}
	}
	if o.Restarts <= 0 {
		o.Restarts = 1
	}
	if o.MaxIter <= 0 {
		o.MaxIter = 300
	}
	return nil
}
