package entity

import (
	"fmt"
	"strconv"
)

// Label категория образца растения, которую возвращает классификатор
type Label string

const (
	Label0 Label = "0"
	Label1 Label = "1"
	Label2 Label = "2"
	Label3 Label = "3"
	Label4 Label = "4"
)

// NumLabels число кластеров модели классификации
const NumLabels = 5

// Branch ветка сегментации, выбираемая по метке
type Branch int

const (
	BranchCr         Branch = iota + 1 // YCrCb, канал Cr
	BranchSaturation                   // HSV, канал S
	BranchCb                           // YCrCb, канал Cb (метки 2 и 4)
	BranchHue                          // HSV, канал H
)

func (b Branch) String() string {
	switch b {
	case BranchCr:
		return "cr"
	case BranchSaturation:
		return "saturation"
	case BranchCb:
		return "cb"
	case BranchHue:
		return "hue"
	default:
		return "unknown"
	}
}

// ParseLabel проверяет строковый код метки
func ParseLabel(s string) (Label, error) {
	l := Label(s)
	if _, err := l.Branch(); err != nil {
		return "", err
	}
	return l, nil
}

// LabelFromCluster переводит номер кластера модели в метку
func LabelFromCluster(id int) (Label, error) {
	if id < 0 || id >= NumLabels {
		return "", fmt.Errorf("%w: cluster id %d out of range", ErrClassification, id)
	}
	return Label(strconv.Itoa(id)), nil
}

// Branch возвращает ветку сегментации для метки.
// Метки 2 и 4 намеренно разделяют одну ветку.
func (l Label) Branch() (Branch, error) {
	switch l {
	case Label0:
		return BranchCr, nil
	case Label1:
		return BranchSaturation, nil
	case Label2, Label4:
		return BranchCb, nil
	case Label3:
		return BranchHue, nil
	default:
		return 0, fmt.Errorf("%w: unknown label %q", ErrClassification, string(l))
	}
}
