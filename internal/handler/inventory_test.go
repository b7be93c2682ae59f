package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
)

func TestHandleResolve(t *testing.T) {
	InitValidator()

	candidates := []domain.CandidateItem{
		{ID: "antique_vase", Name: "Antique Vase", BasePrice: 200_000, Quantity: 2},
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockRitualService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Resolve From Image",
			requestBody: ResolveRequest{Image: "aWJlZw=="},
			setupMock: func(m *MockRitualService) {
				m.On("ResolveImage", mock.Anything, "aWJlZw==").Return(candidates, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"antique_vase"`,
		},
		{
			name:        "Resolve From Text",
			requestBody: ResolveRequest{Text: "Antique Vase x2"},
			setupMock: func(m *MockRitualService) {
				m.On("ResolveText", mock.Anything, "Antique Vase x2").Return(candidates, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"antique_vase"`,
		},
		{
			name:           "Neither Image Nor Text",
			requestBody:    ResolveRequest{},
			setupMock:      func(m *MockRitualService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "OCR Unavailable",
			requestBody: ResolveRequest{Image: "aWJlZw=="},
			setupMock: func(m *MockRitualService) {
				m.On("ResolveImage", mock.Anything, mock.Anything).
					Return(nil, domain.ErrOCRUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ErrMsgOCRUnavailableError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockRitualService{}
			tt.setupMock(mockSvc)

			handler := HandleResolve(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/api/v1/inventory/resolve", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}
