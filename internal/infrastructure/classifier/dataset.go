package classifier

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// Sample одно обучающее изображение и его признаки
type Sample struct {
	Path     string
	Features []float64
}

// LoadDataset читает все *.png из каталога в порядке числовых имён (1.png, 2.png, 10.png)
// и считает для каждого средний цвет
func LoadDataset(dir string) ([]Sample, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		return nil, fmt.Errorf("list dataset: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no png images in %s", dir)
	}

	ids := make(map[string]int, len(paths))
	for _, p := range paths {
		stem := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		id, err := strconv.Atoi(stem)
		if err != nil {
			return nil, fmt.Errorf("dataset file %s: name is not a number", filepath.Base(p))
		}
		ids[p] = id
	}
	sort.Slice(paths, func(i, j int) bool { return ids[paths[i]] < ids[paths[j]] })

	samples := make([]Sample, 0, len(paths))
	for _, p := range paths {
		img, err := imaging.Open(p)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", p, err)
		}
		features := MeanColor(img)
		if features == nil {
			return nil, fmt.Errorf("image %s is empty", p)
		}
		samples = append(samples, Sample{Path: p, Features: features})
	}
	return samples, nil
}

// Features возвращает матрицу признаков выборки
func Features(samples []Sample) [][]float64 {
	out := make([][]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Features
	}
	return out
}
