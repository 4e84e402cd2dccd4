package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"console_comercial/internal/adapter/http/handlers/mocks"
	"console_comercial/internal/domain/entities"
	"console_comercial/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestLeadHandler_CreateLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/leads", h.CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewBufferString(`{"phone":"11999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid event date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/leads", h.CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/leads",
			bytes.NewBufferString(`{"name":"Ana","email":"ana@test.com","event_date":"31/12/2025"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("INVALID_DATE")) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/leads", h.CreateLead)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateLeadInput) (entities.Lead, error) {
				if in.Name != "Ana" || in.EventDate == nil || in.EventDate.Day() != 20 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Lead{ID: "lead-1", Name: in.Name, Status: entities.LeadStatusNovo, CreatedAt: time.Now()}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/leads",
			bytes.NewBufferString(`{"name":"Ana","email":"ana@test.com","event_date":"2025-12-20"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "lead-1" || body["status"] != "novo" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestLeadHandler_GetAndUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/leads/:id", h.GetLead)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Lead{}, usecase.ErrLeadNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leads/missing", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/leads", h.ListLeads)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Lead{{ID: "a"}, {ID: "b"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leads", nil))

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.PATCH("/leads/:id/status", h.UpdateLeadStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "lead-1", entities.LeadStatus("bogus")).
			Return(entities.Lead{}, usecase.ErrInvalidLeadStatus)

		req := httptest.NewRequest(http.MethodPatch, "/leads/lead-1/status", bytes.NewBufferString(`{"status":"bogus"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("INVALID_LEAD_STATUS")) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("status updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.PATCH("/leads/:id/status", h.UpdateLeadStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "lead-1", entities.LeadStatusContatado).
			Return(entities.Lead{ID: "lead-1", Status: entities.LeadStatusContatado}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/leads/lead-1/status", bytes.NewBufferString(`{"status":"contatado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
