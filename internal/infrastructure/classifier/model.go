package classifier

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"

	"plant-segmentation/internal/domain/entity"
	"plant-segmentation/internal/domain/port"
)

// Model модель k-средних: центры кластеров в пространстве среднего цвета.
// После загрузки не изменяется и безопасна для конкурентного чтения.
type Model struct {
	K       int         `json:"k"`
	Centers [][]float64 `json:"centers"`
	Inertia float64     `json:"inertia"`
}

// Load читает модель из JSON-файла
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save записывает модель в JSON-файл
func (m *Model) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model: %w", err)
	}
	return nil
}

func (m *Model) validate() error {
	if len(m.Centers) == 0 {
		return fmt.Errorf("model has no centers")
	}
	if m.K != 0 && m.K != len(m.Centers) {
		return fmt.Errorf("model declares k=%d but has %d centers", m.K, len(m.Centers))
	}
	dim := len(m.Centers[0])
	for i, c := range m.Centers {
		if len(c) != dim || dim == 0 {
			return fmt.Errorf("center %d has dimension %d, want %d", i, len(c), dim)
		}
	}
	return nil
}

// NearestCluster возвращает индекс ближайшего центра (при равенстве меньший)
func (m *Model) NearestCluster(features entity.FeatureVector) (int, error) {
	if len(features) == 0 {
		return 0, fmt.Errorf("%w: empty feature vector", entity.ErrClassification)
	}
	if len(m.Centers) == 0 || len(m.Centers[0]) != len(features) {
		return 0, fmt.Errorf("%w: feature vector has %d values", entity.ErrClassification, len(features))
	}
	return nearest(m.Centers, features), nil
}

func nearest(centers [][]float64, v []float64) int {
	best, bestDist := 0, floats.Distance(centers[0], v, 2)
	for i := 1; i < len(centers); i++ {
		if d := floats.Distance(centers[i], v, 2); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Classify запрашивает модель и возвращает метку ближайшего кластера
func Classify(model port.ClusterModel, features entity.FeatureVector) (entity.Label, error) {
	if len(features) == 0 {
		return "", fmt.Errorf("%w: empty feature vector", entity.ErrClassification)
	}
	id, err := model.NearestCluster(features)
	if err != nil {
		return "", err
	}
	return entity.LabelFromCluster(id)
}

var _ port.ClusterModel = (*Model)(nil)
