package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelBranch(t *testing.T) {
	cases := map[Label]Branch{
		Label0: BranchCr,
		Label1: BranchSaturation,
		Label2: BranchCb,
		Label3: BranchHue,
		Label4: BranchCb,
	}
	for label, want := range cases {
		got, err := label.Branch()
		require.NoError(t, err)
		require.Equal(t, want, got, "label %s", label)
	}
}

func TestLabelBranch_Unknown(t *testing.T) {
	_, err := Label("5").Branch()
	require.ErrorIs(t, err, ErrClassification)

	_, err = ParseLabel("")
	require.ErrorIs(t, err, ErrClassification)
}

func TestLabelFromCluster(t *testing.T) {
	for id := 0; id < NumLabels; id++ {
		l, err := LabelFromCluster(id)
		require.NoError(t, err)

		parsed, err := ParseLabel(string(l))
		require.NoError(t, err)
		require.Equal(t, l, parsed)
	}

	_, err := LabelFromCluster(NumLabels)
	require.ErrorIs(t, err, ErrClassification)
	_, err = LabelFromCluster(-1)
	require.ErrorIs(t, err, ErrClassification)
}
