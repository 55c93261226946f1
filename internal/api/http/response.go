package http

import "plant-segmentation/internal/domain/entity"

const (
	messageSuccess = "success"
	messageFailed  = "failed"

	// raisedOn для ошибок вне конвейера
	raisedOnAPI = "ApiSegment"
)

// SegmentPayload тело POST /v1/segment. Base64 указатель: отсутствующее
// поле отклоняется валидацией, пустая строка доходит до декодирования.
type SegmentPayload struct {
	Base64 *string `json:"base64" binding:"required"`
	BBox   bool    `json:"bbox"`
}

// ModelResponse полезная нагрузка успешного ответа
type ModelResponse struct {
	PredLabel string           `json:"pred_label"`
	Data      [][]entity.Point `json:"data"`
}

// ErrorDescription описание ошибки в ответе
type ErrorDescription struct {
	Raised   string `json:"raised"`
	RaisedOn string `json:"raisedOn"`
	Message  string `json:"message"`
	Code     string `json:"code"`
}

// Response общий конверт ответа
type Response struct {
	Message string            `json:"message"`
	Data    *ModelResponse    `json:"data"`
	Error   *ErrorDescription `json:"error"`
	Version string            `json:"version"`
}

func successResponse(result *entity.SegmentationResult, version string) Response {
	return Response{
		Message: messageSuccess,
		Data: &ModelResponse{
			PredLabel: string(result.Label),
			Data:      result.PointLists(),
		},
		Version: version,
	}
}

func failedResponse(desc ErrorDescription, version string) Response {
	return Response{
		Message: messageFailed,
		Error:   &desc,
		Version: version,
	}
}
