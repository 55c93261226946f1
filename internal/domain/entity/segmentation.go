package entity

// SegmentationResult итог обработки одного изображения
type SegmentationResult struct {
	Label       Label         // предсказанная категория
	ImageWidth  int           // ширина изображения
	ImageHeight int           // высота изображения
	BBox        bool          // true: Boxes, false: Lines
	Boxes       []BoundingBox // прямоугольники (BBox == true)
	Lines       []LineSegment // линии (BBox == false)
}

// Primitives возвращает примитивы в запрошенной форме
func (r *SegmentationResult) Primitives() []Primitive {
	if r.BBox {
		out := make([]Primitive, 0, len(r.Boxes))
		for _, b := range r.Boxes {
			out = append(out, b)
		}
		return out
	}
	out := make([]Primitive, 0, len(r.Lines))
	for _, l := range r.Lines {
		out = append(out, l)
	}
	return out
}

// PointLists возвращает примитивы как списки точек
func (r *SegmentationResult) PointLists() [][]Point {
	prims := r.Primitives()
	out := make([][]Point, 0, len(prims))
	for _, p := range prims {
		out = append(out, p.Points())
	}
	return out
}

// FeatureVector средний цвет изображения в порядке RGB
type FeatureVector []float64
