package vision

import (
	"math"
	"sort"
)

// VerticalCorrection переводит доминирующий угол в угол поворота,
// после которого структуры становятся вертикальными. Углы вне таблицы
// (0, 270, 360, ...) возвращаются без изменений.
func VerticalCorrection(angle float64) float64 {
	switch {
	case (angle > -180 && angle < -90) || (angle > 90 && angle < 180):
		return angle + 90
	case (angle > -90 && angle < 0) || (angle > 180 && angle < 270):
		return angle - 90
	case (angle > 0 && angle < 90) || (angle > 270 && angle < 360):
		return angle - 90
	case angle == 90 || angle == -90 || angle == 180 || angle == -180:
		return 0
	}
	return angle
}

// RectOrientation угол повёрнутого прямоугольника с поправкой на 90°,
// если ширина меньше высоты, округлённый до градуса.
func RectOrientation(angle, width, height float64) int {
	if width < height {
		angle += 90
	}
	return int(math.Round(angle))
}

// MostFrequent возвращает моду. Частоты просматриваются по возрастанию угла,
// поэтому при равенстве побеждает меньший угол и порядок входа не важен.
func MostFrequent(angles []int) (int, bool) {
	if len(angles) == 0 {
		return 0, false
	}

	counts := make(map[int]int, len(angles))
	for _, a := range angles {
		counts[a]++
	}

	distinct := make([]int, 0, len(counts))
	for a := range counts {
		distinct = append(distinct, a)
	}
	sort.Ints(distinct)

	best := distinct[0]
	for _, a := range distinct[1:] {
		if counts[a] > counts[best] {
			best = a
		}
	}
	return best, true
}
