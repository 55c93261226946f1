package vision

import (
	"fmt"

	"plant-segmentation/internal/domain/entity"
)

const (
	// MinContourArea контуры меньшей площади отбрасываются везде
	MinContourArea = 500.0

	blurSize  = 5
	blockSize = 31

	defaultC         = 1
	defaultOpenIter  = 15
	defaultCloseIter = 60
)

// ColorSpace цветовое пространство, из которого берётся канал
type ColorSpace int

const (
	ColorSpaceYCrCb ColorSpace = iota
	ColorSpaceHSV
)

// Индексы каналов после cvtColor и split
const (
	channelCr  = 1 // Y, Cr, Cb
	channelCb  = 2
	channelHue = 0 // H, S, V
	channelSat = 1
)

// BranchParams параметры одной ветки сегментации
type BranchParams struct {
	Branch          entity.Branch
	ColorSpace      ColorSpace
	Channel         int
	BlurSize        int
	BlockSize       int
	C               float32
	Inverse         bool // THRESH_BINARY_INV вместо THRESH_BINARY
	OpenIterations  int
	CloseIterations int
	AreaThreshold   float64
}

func baseParams(b entity.Branch, space ColorSpace, channel int) BranchParams {
	return BranchParams{
		Branch:          b,
		ColorSpace:      space,
		Channel:         channel,
		BlurSize:        blurSize,
		BlockSize:       blockSize,
		C:               defaultC,
		OpenIterations:  defaultOpenIter,
		CloseIterations: defaultCloseIter,
		AreaThreshold:   MinContourArea,
	}
}

// ParamsFor возвращает параметры ветки для метки
func ParamsFor(label entity.Label) (BranchParams, error) {
	branch, err := label.Branch()
	if err != nil {
		return BranchParams{}, err
	}

	switch branch {
	case entity.BranchCr:
		p := baseParams(branch, ColorSpaceYCrCb, channelCr)
		p.C = 2
		p.Inverse = true
		return p, nil
	case entity.BranchSaturation:
		return baseParams(branch, ColorSpaceHSV, channelSat), nil
	case entity.BranchCb:
		p := baseParams(branch, ColorSpaceYCrCb, channelCb)
		p.C = -5
		p.Inverse = true
		p.OpenIterations = 60
		return p, nil
	case entity.BranchHue:
		return baseParams(branch, ColorSpaceHSV, channelHue), nil
	}
	return BranchParams{}, fmt.Errorf("%w: no parameters for branch %s", entity.ErrClassification, branch)
}
