package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"console_comercial/internal/adapter/http/handlers/mocks"
	"console_comercial/internal/domain/entities"
	"console_comercial/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProposalHandler_CreateProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		body       string
		setup      func(uc *mocks.MockIProposalUseCase)
		wantStatus int
	}{
		{
			name:       "malformed json",
			body:       "{",
			setup:      func(uc *mocks.MockIProposalUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative price",
			body:       `{"client_name":"Ana","total_price":-1}`,
			setup:      func(uc *mocks.MockIProposalUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "lead not found",
			body: `{"quote_request_id":"lead-x","total_price":100}`,
			setup: func(uc *mocks.MockIProposalUseCase) {
				uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, usecase.ErrLeadNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "created",
			body: `{"quote_request_id":"lead-1","client_name":"Ana","total_price":1500.5}`,
			setup: func(uc *mocks.MockIProposalUseCase) {
				uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, in usecase.ProposalInput) (entities.Proposal, error) {
						return entities.Proposal{ID: "p-1", QuoteRequestID: in.QuoteRequestID, TotalPrice: in.TotalPrice, Status: entities.ProposalStatusDraft}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIProposalUseCase(ctrl)
			tt.setup(uc)
			h := NewProposalHandler(uc)

			r := gin.New()
			r.POST("/proposals", h.CreateProposal)

			req := httptest.NewRequest(http.MethodPost, "/proposals", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestProposalHandler_UpdateProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProposalUseCase(ctrl)
	h := NewProposalHandler(uc)

	r := gin.New()
	r.PATCH("/proposals/:id", h.UpdateProposal)

	uc.EXPECT().Update(gomock.Any(), "p-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, upd usecase.ProposalUpdate) (entities.Proposal, error) {
			if upd.Status == nil || *upd.Status != entities.ProposalStatusAprovado {
				t.Fatalf("expected status aprovado, got %+v", upd.Status)
			}
			if upd.ClientName != nil {
				t.Fatalf("absent field must stay nil")
			}
			return entities.Proposal{ID: "p-1", Status: entities.ProposalStatusAprovado}, nil
		})

	req := httptest.NewRequest(http.MethodPatch, "/proposals/p-1", bytes.NewBufferString(`{"status":"aprovado"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "aprovado" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestProposalHandler_RenderProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rendered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/proposals/:id/render", h.RenderProposal)

		uc.EXPECT().Render(gomock.Any(), "p-1").Return("Olá Ana", nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/proposals/p-1/render", nil))

		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["content"] != "Olá Ana" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/proposals/:id/render", h.RenderProposal)

		uc.EXPECT().Render(gomock.Any(), "p-x").Return("", usecase.ErrProposalNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/proposals/p-x/render", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
