//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"plant-segmentation/internal/domain/entity"
)

// Segment строит бинарную маску для метки: выбор канала, размытие,
// затем общая процедура segmentChannel.
func Segment(img gocv.Mat, label entity.Label) (gocv.Mat, error) {
	params, err := ParamsFor(label)
	if err != nil {
		return gocv.NewMat(), err
	}

	channel, err := selectChannel(img, params)
	defer channel.Close()
	if err != nil {
		return gocv.NewMat(), err
	}

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(channel, &blurred, image.Pt(params.BlurSize, params.BlurSize), 0, 0, gocv.BorderDefault)

	return segmentChannel(blurred, params)
}

func selectChannel(img gocv.Mat, p BranchParams) (gocv.Mat, error) {
	code := gocv.ColorBGRToYCrCb
	if p.ColorSpace == ColorSpaceHSV {
		code = gocv.ColorBGRToHSV
	}

	converted := gocv.NewMat()
	defer converted.Close()
	gocv.CvtColor(img, &converted, code)

	channels := gocv.Split(converted)
	for i := range channels {
		defer channels[i].Close()
	}
	if p.Channel >= len(channels) {
		return gocv.NewMat(), fmt.Errorf("channel %d not available, image has %d", p.Channel, len(channels))
	}
	return channels[p.Channel].Clone(), nil
}

// segmentChannel бинаризует канал, выравнивает структуры по вертикали,
// чистит маску вертикальной морфологией и возвращает исходную геометрию.
func segmentChannel(channel gocv.Mat, p BranchParams) (gocv.Mat, error) {
	thresholdType := gocv.ThresholdBinary
	if p.Inverse {
		thresholdType = gocv.ThresholdBinaryInv
	}

	binary := gocv.NewMat()
	defer binary.Close()
	gocv.AdaptiveThreshold(channel, &binary, 255, gocv.AdaptiveThresholdMean, thresholdType, p.BlockSize, p.C)

	square := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3))
	defer square.Close()

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.MorphologyEx(binary, &mask, gocv.MorphClose, square)

	// выравнивать нечего
	if gocv.CountNonZero(mask) == 0 {
		return mask.Clone(), nil
	}

	contours := gocv.FindContours(mask, gocv.RetrievalTree, gocv.ChainApproxSimple)
	defer contours.Close()

	angle, err := DominantAngle(contours, p.AreaThreshold)
	if err != nil {
		return gocv.NewMat(), err
	}
	correction := VerticalCorrection(float64(angle))

	rotated := RotateNoCrop(mask, correction)
	defer rotated.Close()

	vertical := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(1, 3))
	defer vertical.Close()

	opened := gocv.NewMat()
	defer opened.Close()
	gocv.MorphologyExWithParams(rotated, &opened, gocv.MorphOpen, vertical, p.OpenIterations, gocv.BorderConstant)

	closed := gocv.NewMat()
	defer closed.Close()
	gocv.MorphologyExWithParams(opened, &closed, gocv.MorphClose, vertical, p.CloseIterations, gocv.BorderConstant)

	return RotateAndCrop(closed, -correction, channel.Cols(), channel.Rows()), nil
}

func blankMask(rows, cols int) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), rows, cols, gocv.MatTypeCV8U)
}
