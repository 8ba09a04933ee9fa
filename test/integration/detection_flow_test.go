package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/grachmannico95/statement-fraud-detector/internal/anomaly"
	"github.com/grachmannico95/statement-fraud-detector/internal/config"
	"github.com/grachmannico95/statement-fraud-detector/internal/detection"
	"github.com/grachmannico95/statement-fraud-detector/internal/domain"
	"github.com/grachmannico95/statement-fraud-detector/internal/eventbus"
	"github.com/grachmannico95/statement-fraud-detector/internal/extractor"
	"github.com/grachmannico95/statement-fraud-detector/internal/handler"
	"github.com/grachmannico95/statement-fraud-detector/internal/report"
	"github.com/grachmannico95/statement-fraud-detector/internal/risk"
	"github.com/grachmannico95/statement-fraud-detector/internal/server"
	"github.com/grachmannico95/statement-fraud-detector/internal/service"
	"github.com/grachmannico95/statement-fraud-detector/internal/storage"
	"github.com/grachmannico95/statement-fraud-detector/internal/validation"
	"github.com/grachmannico95/statement-fraud-detector/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T) *httptest.Server {
	log := logger.NewNop()
	repo := storage.NewMemoryStore()

	engine := risk.NewEngine(nil, log)
	pipeline := detection.NewPipeline(
		validation.NewSet(validation.WithSourceValidator(validation.PDFProvenance{})),
		anomaly.NewSet(),
		engine,
		log,
	)

	bus := eventbus.New(log, &eventbus.Config{ChannelBuffer: 10, MaxAttempts: 2})
	consumer := eventbus.NewDetectionConsumer(repo, extractor.New(nil, log), pipeline, log, 2)
	require.NoError(t, bus.Subscribe(eventbus.EventTypeDetection, consumer))
	require.NoError(t, bus.Start(context.Background()))
	t.Cleanup(func() { _ = bus.Shutdown(context.Background()) })

	svc := service.NewDetectionService(repo, pipeline, bus, report.NewRenderer(engine.Thresholds()), log)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: "8080",
			Host: "0.0.0.0",
		},
	}
	srv := server.New(cfg, log,
		handler.NewDetectionHandler(svc, log, 1<<20, false),
		handler.NewHealthHandler(false),
	)

	testServer := httptest.NewServer(srv.Handler())
	t.Cleanup(testServer.Close)
	return testServer
}

func sampleDocumentJSON(t *testing.T) []byte {
	t.Helper()
	data, err := json.Marshal(detection.SampleDocument())
	require.NoError(t, err)
	return data
}

func postJSON(t *testing.T, url string, body []byte) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthCheck(t *testing.T) {
	srv := setupTestServer(t)

	resp := get(t, srv.URL+"/health")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["model_available"])
}

func TestDetectionFlow(t *testing.T) {
	srv := setupTestServer(t)

	resp := postJSON(t, srv.URL+"/detections", sampleDocumentJSON(t))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.DetectionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "DOC123", result.DocumentID)
	assert.Equal(t, 42.0, result.BaseRiskScore)
	assert.Equal(t, 42.0, result.CombinedRiskScore)
	assert.Nil(t, result.LLMRiskScore)
	assert.Equal(t, domain.ClassificationFraudLikely, result.Classification)

	// Stored result is served back unchanged.
	resp = get(t, srv.URL+"/detections/DOC123")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stored domain.DetectionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stored))
	assert.Equal(t, result, stored)

	resp = get(t, srv.URL+"/detections/DOC123/issues?severity=warn&per_page=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page struct {
		Items []domain.ValidationIssue `json:"items"`
		Total int                      `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 5, page.Total)
	for _, issue := range page.Items {
		assert.Equal(t, domain.SeverityWarn, issue.Severity)
	}

	resp = get(t, srv.URL+"/detections/DOC123/report")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	md, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Fraud Activity Report")
	assert.Contains(t, string(md), "BALANCE_MISMATCH")
}

func TestDetectionFlow_MalformedDocument(t *testing.T) {
	srv := setupTestServer(t)

	resp := postJSON(t, srv.URL+"/detections", []byte(`{"meta": {"document_id": "X"}, "transactions": [{"id": "T1"}]}`))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDetectionFlow_NotFound(t *testing.T) {
	srv := setupTestServer(t)

	assert.Equal(t, http.StatusNotFound, get(t, srv.URL+"/detections/missing").StatusCode)
	assert.Equal(t, http.StatusNotFound, get(t, srv.URL+"/detections/missing/issues").StatusCode)
	assert.Equal(t, http.StatusNotFound, get(t, srv.URL+"/jobs/missing").StatusCode)
}

func TestDetectionFlow_RejectsNonPDFUpload(t *testing.T) {
	srv := setupTestServer(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "statement.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("id,amount\n1,10\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(srv.URL+"/detections/pdf", writer.FormDataContentType(), body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
