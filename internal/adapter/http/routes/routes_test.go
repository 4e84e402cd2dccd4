package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"console_comercial/internal/adapter/http/handlers"
	"console_comercial/internal/adapter/http/handlers/mocks"
	"console_comercial/internal/domain/entities"
	"console_comercial/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type routeMocks struct {
	leads      *mocks.MockILeadUseCase
	proposals  *mocks.MockIProposalUseCase
	contracts  *mocks.MockIContractUseCase
	signatures *mocks.MockISignatureUseCase
	funnel     *mocks.MockIFunnelUseCase
	payments   *mocks.MockIContractPaymentUseCase
}

func newTestRouter(t *testing.T) (*gin.Engine, routeMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := routeMocks{
		leads:      mocks.NewMockILeadUseCase(ctrl),
		proposals:  mocks.NewMockIProposalUseCase(ctrl),
		contracts:  mocks.NewMockIContractUseCase(ctrl),
		signatures: mocks.NewMockISignatureUseCase(ctrl),
		funnel:     mocks.NewMockIFunnelUseCase(ctrl),
		payments:   mocks.NewMockIContractPaymentUseCase(ctrl),
	}
	router := NewRouter(Handlers{
		Leads:      handlers.NewLeadHandler(m.leads),
		Proposals:  handlers.NewProposalHandler(m.proposals),
		Contracts:  handlers.NewContractHandler(m.contracts, "http://localhost:8080"),
		Signatures: handlers.NewSignatureHandler(m.signatures),
		Funnel:     handlers.NewFunnelHandler(m.funnel),
		Payments:   handlers.NewContractPaymentHandler(m.payments, true),
	})
	return router, m
}

func TestPing(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRoutesReachHandlers(t *testing.T) {
	router, m := newTestRouter(t)

	m.leads.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.contracts.EXPECT().UpdateTerms(gomock.Any(), "c-1", gomock.Any()).Return(entities.Contract{ID: "c-1"}, nil)
	m.contracts.EXPECT().GetPublic(gomock.Any(), "ana").Return(entities.Contract{}, usecase.ErrContractNotFound)
	m.signatures.EXPECT().EditSignature(gomock.Any(), "ana").Return(entities.Contract{Slug: "ana"}, nil)
	m.payments.EXPECT().ListByContractID(gomock.Any(), "c-1").Return(nil, nil)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/v1/leads", http.StatusOK},
		{http.MethodPatch, "/v1/contracts/c-1/terms", http.StatusOK},
		{http.MethodGet, "/v1/contrato/ana", http.StatusNotFound},
		{http.MethodDelete, "/v1/contrato/ana/signature/preview", http.StatusOK},
		{http.MethodGet, "/v1/payments/c-1", http.StatusOK},
		{http.MethodGet, "/v1/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var req *http.Request
			if tt.method == http.MethodPatch {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(`{}`))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}
