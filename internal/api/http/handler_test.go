package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	app "plant-segmentation/internal/application"
	"plant-segmentation/internal/domain/entity"
)

type stubSegmenter struct {
	result *entity.SegmentationResult
	err    error
	delay  time.Duration
}

func (s *stubSegmenter) Segment(ctx context.Context, imageData []byte, bbox bool) (*entity.SegmentationResult, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	res := *s.result
	res.BBox = bbox
	return &res, nil
}

func (s *stubSegmenter) Annotate(imageData []byte, result *entity.SegmentationResult) ([]byte, error) {
	return nil, nil
}

func newTestRouter(seg *stubSegmenter, opts app.Options, maxBody int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	svc := app.NewSegmentationService(seg, opts, logger)
	return NewRouter(NewHandler(svc, logger, "1.0.0", maxBody), logger)
}

func sampleResult() *entity.SegmentationResult {
	return &entity.SegmentationResult{
		Label:       entity.Label1,
		ImageWidth:  100,
		ImageHeight: 50,
		Boxes: []entity.BoundingBox{
			{Corners: [4]entity.Point{{X: 10, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 49}, {X: 10, Y: 49}}},
		},
		Lines: []entity.LineSegment{
			{Start: entity.Point{X: 0, Y: 5}, End: entity.Point{X: 99, Y: 7}},
		},
	}
}

func postSegment(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/segment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func payload(bbox bool) string {
	encoded := base64.StdEncoding.EncodeToString([]byte("image"))
	data, _ := json.Marshal(SegmentPayload{Base64: &encoded, BBox: bbox})
	return string(data)
}

func TestPing(t *testing.T) {
	r := newTestRouter(&stubSegmenter{}, app.Options{}, 1024)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/segment", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":"ok"}`, w.Body.String())
}

func TestHealthAndVersion(t *testing.T) {
	r := newTestRouter(&stubSegmenter{}, app.Options{}, 1024)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok","version":"1.0.0"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))
	require.JSONEq(t, `{"version":"1.0.0"}`, w.Body.String())
}

func TestSegment_Lines(t *testing.T) {
	r := newTestRouter(&stubSegmenter{result: sampleResult()}, app.Options{}, 1<<20)

	w, _ := postSegment(t, r, payload(false))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{
		"message": "success",
		"data": {"pred_label": "1", "data": [[[99,7],[0,5]]]},
		"error": null,
		"version": "1.0.0"
	}`, w.Body.String())
}

func TestSegment_Boxes(t *testing.T) {
	r := newTestRouter(&stubSegmenter{result: sampleResult()}, app.Options{}, 1<<20)

	w, resp := postSegment(t, r, payload(true))
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, resp.Error)
	require.Len(t, resp.Data.Data, 1)
	require.Len(t, resp.Data.Data[0], 4)
	require.Equal(t, entity.Point{X: 20, Y: 49}, resp.Data.Data[0][2])
}

func TestSegment_EmptyPrimitivesIsArray(t *testing.T) {
	r := newTestRouter(&stubSegmenter{result: &entity.SegmentationResult{Label: entity.Label4}}, app.Options{}, 1<<20)

	w, _ := postSegment(t, r, payload(false))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"data":[]`)
}

func TestSegment_ValidationErrors(t *testing.T) {
	r := newTestRouter(&stubSegmenter{result: sampleResult()}, app.Options{}, 1<<20)

	for _, body := range []string{`{"bbox":true}`, `not json`, `{"base64":null}`} {
		w, resp := postSegment(t, r, body)
		require.Equal(t, http.StatusBadRequest, w.Code, body)
		require.Equal(t, "failed", resp.Message)
		require.Nil(t, resp.Data)
		require.Equal(t, "ValidationError", resp.Error.Raised)
		require.Equal(t, "ApiSegment", resp.Error.RaisedOn)
		require.Equal(t, "400", resp.Error.Code)
		require.Equal(t, "1.0.0", resp.Version)
	}
}

func TestSegment_EmptyBase64IsDecodeError(t *testing.T) {
	r := newTestRouter(&stubSegmenter{result: sampleResult()}, app.Options{}, 1<<20)

	w, resp := postSegment(t, r, `{"base64":"","bbox":true}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "DecodeError", resp.Error.Raised)
	require.Equal(t, "decode", resp.Error.RaisedOn)
	require.Equal(t, "400", resp.Error.Code)
}

func TestSegment_InvalidBase64(t *testing.T) {
	r := newTestRouter(&stubSegmenter{result: sampleResult()}, app.Options{}, 1<<20)

	w, resp := postSegment(t, r, `{"base64":"***"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "DecodeError", resp.Error.Raised)
	require.Equal(t, "decode", resp.Error.RaisedOn)
}

func TestSegment_PipelineError(t *testing.T) {
	err := entity.NewPipelineError(entity.StageSegment, entity.Label0, entity.ErrNoDominantContour)
	r := newTestRouter(&stubSegmenter{err: err}, app.Options{}, 1<<20)

	w, resp := postSegment(t, r, payload(false))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "NoDominantContourError", resp.Error.Raised)
	require.Equal(t, "segment", resp.Error.RaisedOn)
	require.Contains(t, resp.Error.Message, "label 0")
}

func TestSegment_Timeout(t *testing.T) {
	seg := &stubSegmenter{result: sampleResult(), delay: 200 * time.Millisecond}
	r := newTestRouter(seg, app.Options{MaxConcurrent: 1, RequestTimeout: 10 * time.Millisecond}, 1<<20)

	w, resp := postSegment(t, r, payload(false))
	require.Equal(t, http.StatusGatewayTimeout, w.Code)
	require.Equal(t, "TimeoutError", resp.Error.Raised)
	require.Equal(t, "504", resp.Error.Code)
}

func TestSegment_BodyTooLarge(t *testing.T) {
	r := newTestRouter(&stubSegmenter{result: sampleResult()}, app.Options{}, 16)

	big := `{"base64":"` + strings.Repeat("A", 64) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/segment", bytes.NewBufferString(big))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
