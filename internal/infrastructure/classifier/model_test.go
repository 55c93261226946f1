package classifier

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"plant-segmentation/internal/domain/entity"
)

func testModel() *Model {
	return &Model{
		K: 5,
		Centers: [][]float64{
			{40, 90, 30},
			{120, 130, 110},
			{200, 180, 90},
			{90, 60, 40},
			{230, 230, 230},
		},
	}
}

func TestNearestCluster(t *testing.T) {
	m := testModel()

	id, err := m.NearestCluster(entity.FeatureVector{45, 85, 35})
	require.NoError(t, err)
	require.Equal(t, 0, id)

	id, err = m.NearestCluster(entity.FeatureVector{225, 228, 235})
	require.NoError(t, err)
	require.Equal(t, 4, id)
}

func TestNearestCluster_TieTakesLowestIndex(t *testing.T) {
	m := &Model{Centers: [][]float64{{0, 0, 0}, {2, 0, 0}}}
	id, err := m.NearestCluster(entity.FeatureVector{1, 0, 0})
	require.NoError(t, err)
	require.Equal(t, 0, id)
}

func TestNearestCluster_InvalidVector(t *testing.T) {
	m := testModel()

	_, err := m.NearestCluster(nil)
	require.ErrorIs(t, err, entity.ErrClassification)

	_, err = m.NearestCluster(entity.FeatureVector{1, 2})
	require.ErrorIs(t, err, entity.ErrClassification)
}

func TestClassify_Deterministic(t *testing.T) {
	m := testModel()
	fv := entity.FeatureVector{118, 127, 105}

	first, err := Classify(m, fv)
	require.NoError(t, err)
	require.Equal(t, entity.Label1, first)

	for i := 0; i < 10; i++ {
		got, err := Classify(m, fv)
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
}

func TestClassify_Empty(t *testing.T) {
	_, err := Classify(testModel(), entity.FeatureVector{})
	require.ErrorIs(t, err, entity.ErrClassification)
}

func TestClassify_ClusterOutOfRange(t *testing.T) {
	m := &Model{Centers: [][]float64{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 4}, {5, 5, 5}}}
	_, err := Classify(m, entity.FeatureVector{5, 5, 5})
	require.ErrorIs(t, err, entity.ErrClassification)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	m := testModel()
	require.NoError(t, m.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, m.Centers, loaded.Centers)
	require.Equal(t, 5, loaded.K)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	bad := &Model{K: 3, Centers: [][]float64{{1, 2, 3}}}
	require.NoError(t, bad.Save(path))

	_, err := Load(path)
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
