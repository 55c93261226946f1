//go:build gocv
// +build gocv

package classifier

import (
	"runtime"

	"gocv.io/x/gocv"
)

// Fit обучает модель k-средних через OpenCV (инициализация k-means++),
// оставляя запуск с наименьшей инерцией.
func Fit(samples [][]float64, opts FitOptions) (*Model, error) {
	if err := opts.normalize(samples); err != nil {
		return nil, err
	}

	dim := len(samples[0])
	data := gocv.NewMatWithSize(len(samples), dim, gocv.MatTypeCV32F)
	defer data.Close()
	for i, s := range samples {
		for j, v := range s {
			data.SetFloatAt(i, j, float32(v))
		}
	}

	labels := gocv.NewMat()
	defer labels.Close()
	centers := gocv.NewMat()
	defer centers.Close()

	criteria := gocv.NewTermCriteria(gocv.EPS+gocv.MaxIter, opts.MaxIter, opts.Tol)

	// генератор OpenCV привязан к потоку ОС
	runtime.LockOSThread()
	gocv.SetRNGSeed(int(opts.Seed))
	inertia := gocv.KMeans(data, opts.K, &labels, criteria, opts.Restarts, gocv.KMeansPPCenters, &centers)
	runtime.UnlockOSThread()

	out := make([][]float64, opts.K)
	for i := range out {
		out[i] = make([]float64, dim)
		for j := range out[i] {
			out[i][j] = float64(centers.GetFloatAt(i, j))
		}
	}
	return &Model{K: opts.K, Centers: out, Inertia: inertia}, nil
}
