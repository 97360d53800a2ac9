package pacing

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/teachassist/backend/internal/generator"
	"github.com/teachassist/backend/internal/models"
)

func newTestHandler(stub *stubClient) *Handler {
	return NewHandler(NewService(generator.NewGeneratorWith(stub, "stub")))
}

func postPacing(t *testing.T, h *Handler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pacing-guide", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.GeneratePacingGuide(rr, req)
	return rr
}

func TestGeneratePacingGuideHandler_Success(t *testing.T) {
	h := newTestHandler(&stubClient{reply: shortPlanReply(5)})

	body, _ := json.Marshal(pacingRequest(5))
	rr := postPacing(t, h, body)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var resp models.PacingResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.PacingData.DailyPlan) != 5 {
		t.Errorf("expected 5 daily entries, got %d", len(resp.PacingData.DailyPlan))
	}
	if resp.PacingGuide == "" {
		t.Error("expected a plain-text pacing guide in the response")
	}
	if resp.Source != models.SourceModel {
		t.Errorf("expected source %q, got %q", models.SourceModel, resp.Source)
	}
}

func TestGeneratePacingGuideHandler_InvalidBody(t *testing.T) {
	h := newTestHandler(&stubClient{reply: shortPlanReply(5)})

	rr := postPacing(t, h, []byte("{not json"))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", rr.Code)
	}
}

func TestGeneratePacingGuideHandler_MissingField(t *testing.T) {
	req := pacingRequest(5)
	req.UnitTopic = ""
	body, _ := json.Marshal(req)

	stub := &stubClient{reply: shortPlanReply(5)}
	rr := postPacing(t, newTestHandler(stub), body)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a missing field, got %d", rr.Code)
	}

	var errResp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.Error != "unitTopic is required" {
		t.Errorf("unexpected error message %q", errResp.Error)
	}
	if stub.calls != 0 {
		t.Errorf("expected no model call on validation failure, got %d", stub.calls)
	}
}

func TestGeneratePacingGuideHandler_ModelFailure(t *testing.T) {
	h := newTestHandler(&stubClient{err: errors.New("api unavailable")})

	body, _ := json.Marshal(pacingRequest(5))
	rr := postPacing(t, h, body)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for a model failure, got %d", rr.Code)
	}
}

func TestGeneratePacingGuideHandler_DegradedStillOK(t *testing.T) {
	h := newTestHandler(&stubClient{reply: "no json here at all"})

	body, _ := json.Marshal(pacingRequest(8))
	rr := postPacing(t, h, body)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for a degraded response, got %d", rr.Code)
	}

	var resp models.PacingResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Degraded || resp.Source != models.SourceFallback {
		t.Errorf("expected degraded fallback response, got source=%q degraded=%v", resp.Source, resp.Degraded)
	}
	if len(resp.PacingData.DailyPlan) != 8 {
		t.Errorf("expected 8 synthesized entries, got %d", len(resp.PacingData.DailyPlan))
	}
}
