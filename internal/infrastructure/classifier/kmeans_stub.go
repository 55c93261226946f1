//go:build !gocv
// +build !gocv

package classifier

import "errors"

var errNoGoCV = errors.New("gocv build tag is not enabled")

// Fit возвращает ошибку, если сборка без тега gocv.
func Fit(samples [][]float64, opts FitOptions) (*Model, error) {
	if err := opts.normalize(samples); err != nil {
		return nil, err
	}
	return nil, errNoGoCV
}
