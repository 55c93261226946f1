package entity

import (
	"errors"
	"fmt"
)

var (
	ErrDecode              = errors.New("image payload is empty or cannot be decoded")
	ErrDegenerateHistogram = errors.New("degenerate intensity histogram")
	ErrNoDominantContour   = errors.New("no contour exceeds the area threshold")
	ErrClassification      = errors.New("classification failed")
	ErrBusy                = errors.New("processing queue is full")
	ErrTimeout             = errors.New("processing deadline exceeded")
)

// Stage этап конвейера, на котором возникла ошибка
type Stage string

const (
	StageDecode    Stage = "decode"
	StageFeatures  Stage = "features"
	StageClassify  Stage = "classify"
	StageNormalize Stage = "normalize"
	StageSegment   Stage = "segment"
	StageExtract   Stage = "extract"
)

// PipelineError ошибка конвейера с контекстом этапа и метки
type PipelineError struct {
	Stage Stage
	Label Label
	Err   error
}

// NewPipelineError оборачивает err контекстом этапа
func NewPipelineError(stage Stage, label Label, err error) *PipelineError {
	return &PipelineError{Stage: stage, Label: label, Err: err}
}

func (e *PipelineError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("%s (label %s): %v", e.Stage, e.Label, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Kind возвращает имя вида ошибки для внешнего описания
func (e *PipelineError) Kind() string {
	return ErrorKind(e.Err)
}

// ErrorKind классифицирует ошибку по известным видам
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrDecode):
		return "DecodeError"
	case errors.Is(err, ErrDegenerateHistogram):
		return "DegenerateHistogramError"
	case errors.Is(err, ErrNoDominantContour):
		return "NoDominantContourError"
	case errors.Is(err, ErrClassification):
		return "ClassificationError"
	case errors.Is(err, ErrBusy):
		return "BusyError"
	case errors.Is(err, ErrTimeout):
		return "TimeoutError"
	default:
		return "InternalError"
	}
}
