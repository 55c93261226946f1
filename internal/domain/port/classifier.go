package port

import "plant-segmentation/internal/domain/entity"

// ClusterModel предобученная модель кластеризации, только чтение
type ClusterModel interface {
	// NearestCluster возвращает номер ближайшего кластера
	NearestCluster(features entity.FeatureVector) (int, error)
}
