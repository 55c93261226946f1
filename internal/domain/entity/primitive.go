package entity

import "encoding/json"

// Point целочисленная точка изображения
type Point struct {
	X int
	Y int
}

// MarshalJSON сериализует точку как пару [x, y]
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON читает точку из пары [x, y]
func (p *Point) UnmarshalJSON(data []byte) error {
	var xy [2]int
	if err := json.Unmarshal(data, &xy); err != nil {
		return err
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

// BoundingBox повёрнутый прямоугольник, описанный вокруг контура
type BoundingBox struct {
	Corners [4]Point
}

// Center возвращает центр прямоугольника
func (b BoundingBox) Center() (x, y int) {
	sx, sy := 0, 0
	for _, c := range b.Corners {
		sx += c.X
		sy += c.Y
	}
	return sx / 4, sy / 4
}

// Points возвращает вершины прямоугольника
func (b BoundingBox) Points() []Point {
	return b.Corners[:]
}

// LineSegment направляющая линия через всю ширину маски
type LineSegment struct {
	Start Point // пересечение с левым краем
	End   Point // пересечение с правым краем
}

// Points возвращает концы отрезка: сначала правый край, затем левый
func (l LineSegment) Points() []Point {
	return []Point{l.End, l.Start}
}

// Primitive общий вид примитива для ответа
type Primitive interface {
	Points() []Point
}
