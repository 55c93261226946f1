package classifier

import (
	"image"
	"image/color"

	"plant-segmentation/internal/domain/entity"
)

// MeanColor считает средний цвет по всем пикселям в порядке RGB
func MeanColor(img image.Image) entity.FeatureVector {
	b := img.Bounds()
	n := float64(b.Dx() * b.Dy())
	if n == 0 {
		return nil
	}

	var sr, sg, sb float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// альфа отбрасывается без домножения, как при декодировании в BGR
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			sr += float64(c.R)
			sg += float64(c.G)
			sb += float64(c.B)
		}
	}
	return entity.FeatureVector{sr / n, sg / n, sb / n}
}
