package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill-backend/internal/models"
	"gstbill-backend/internal/services"
)

type stubNumbering struct {
	state models.NumberingState
}

func (s *stubNumbering) Get(ctx context.Context) (*models.NumberingState, error) {
	state := s.state
	return &state, nil
}

func (s *stubNumbering) Set(ctx context.Context, prefix string, lastNumber int) error {
	s.state.Prefix = prefix
	s.state.LastNumber = lastNumber
	return nil
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	return bytes.NewReader(data)
}

func TestNextNumberEndpoint(t *testing.T) {
	svc := &services.InvoiceService{
		Numbering: &stubNumbering{state: models.NumberingState{Prefix: "INV-", LastNumber: 2030}},
	}
	h := &InvoiceHandler{Service: svc}

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/next-number", nil)
	rec := httptest.NewRecorder()
	h.NextNumber(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INV-2031", body["invoice_number"])
}

func TestGetInvoice_NonNumericID(t *testing.T) {
	h := &InvoiceHandler{}

	req := mux.SetURLVars(
		httptest.NewRequest(http.MethodGet, "/api/invoices/abc", nil),
		map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()
	h.GetInvoice(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNumberingSettingsEndpoints(t *testing.T) {
	store := &stubNumbering{state: models.NumberingState{Prefix: "INV-", LastNumber: 1000}}
	svc := &services.InvoiceService{Numbering: store}
	h := &InvoiceHandler{Service: svc}

	req := httptest.NewRequest(http.MethodPut, "/api/settings/numbering",
		jsonBody(t, models.UpdateNumberingRequest{Prefix: "BILL-", LastNumber: 500}))
	rec := httptest.NewRecorder()
	h.UpdateNumberingSettings(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var state models.NumberingState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "BILL-", state.Prefix)
	assert.Equal(t, 500, state.LastNumber)

	rec = httptest.NewRecorder()
	h.UpdateNumberingSettings(rec,
		httptest.NewRequest(http.MethodPut, "/api/settings/numbering",
			jsonBody(t, models.UpdateNumberingRequest{Prefix: "", LastNumber: 1})))
	assert.Equal(t, http.StatusBadRequest, rec.Code, "empty prefix is rejected")
}
