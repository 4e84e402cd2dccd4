package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"console_comercial/internal/domain/entities"
	mock_interfaces "console_comercial/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var signedForPayment = entities.Contract{
	ID: "c1", ClientEmail: "ana@example.com", Status: entities.ContractStatusSigned,
	TotalPrice: 1000, DownPayment: 300, RemainingAmount: 700,
}

type paymentMocks struct {
	repo      *mock_interfaces.MockIContractPaymentRepository
	contracts *mock_interfaces.MockIContractRepository
	gateway   *mock_interfaces.MockIPaymentGateway
}

func newPaymentUseCase(t *testing.T, settings PaymentSettings) (*ContractPaymentUseCase, paymentMocks) {
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		repo:      mock_interfaces.NewMockIContractPaymentRepository(ctrl),
		contracts: mock_interfaces.NewMockIContractRepository(ctrl),
		gateway:   mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	return NewContractPaymentUseCase(m.repo, m.contracts, m.gateway, settings), m
}

func TestContractPaymentUseCase_Charge_Validations(t *testing.T) {
	t.Run("empty contract id", func(t *testing.T) {
		uc := NewContractPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.Charge(context.Background(), " ", entities.PaymentKindEntrada, json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentContractID) {
			t.Fatalf("expected ErrInvalidPaymentContractID, got %v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		uc := NewContractPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.Charge(context.Background(), "c1", "parcela", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentKind) {
			t.Fatalf("expected ErrInvalidPaymentKind, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewContractPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.Charge(context.Background(), "c1", entities.PaymentKindEntrada, json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewContractPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.Charge(context.Background(), "c1", entities.PaymentKindEntrada, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("contract not signed", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		c := signedForPayment
		c.Status = entities.ContractStatusSent
		m.contracts.EXPECT().GetByID(gomock.Any(), "c1").Return(c, nil)

		_, err := uc.Charge(context.Background(), "c1", entities.PaymentKindEntrada, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrContractNotSigned) {
			t.Fatalf("expected ErrContractNotSigned, got %v", err)
		}
	})

	t.Run("contract not found", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.contracts.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Contract{}, nil)

		_, err := uc.Charge(context.Background(), "c1", entities.PaymentKindEntrada, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("installment already paid", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.contracts.EXPECT().GetByID(gomock.Any(), "c1").Return(signedForPayment, nil)
		m.repo.EXPECT().ListByContractID(gomock.Any(), "c1").Return([]entities.ContractPayment{
			{ID: "p0", Kind: entities.PaymentKindEntrada, Status: entities.PaymentStatusAprovado},
		}, nil)

		_, err := uc.Charge(context.Background(), "c1", entities.PaymentKindEntrada, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInstallmentAlreadyPaid) {
			t.Fatalf("expected ErrInstallmentAlreadyPaid, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.contracts.EXPECT().GetByID(gomock.Any(), "c1").Return(signedForPayment, nil)
		m.repo.EXPECT().ListByContractID(gomock.Any(), "c1").Return(nil, nil)

		_, err := uc.Charge(context.Background(), "c1", entities.PaymentKindEntrada, json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("nothing left to charge", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		c := signedForPayment
		c.DownPayment = 0
		m.contracts.EXPECT().GetByID(gomock.Any(), "c1").Return(c, nil)

		_, err := uc.Charge(context.Background(), "c1", entities.PaymentKindRestante, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrNothingToCharge) {
			t.Fatalf("expected ErrNothingToCharge, got %v", err)
		}
	})
}

func TestContractPaymentUseCase_Charge_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newPaymentUseCase(t, PaymentSettings{})
			m.contracts.EXPECT().GetByID(gomock.Any(), "c1").Return(signedForPayment, nil)
			m.repo.EXPECT().ListByContractID(gomock.Any(), "c1").Return(nil, nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.Charge(context.Background(), "c1", entities.PaymentKindEntrada, json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestContractPaymentUseCase_Charge_Success(t *testing.T) {
	cases := []struct {
		name           string
		kind           entities.PaymentKind
		amount         float64
		providerStatus string
		want           entities.PaymentStatus
	}{
		{name: "entrada approved", kind: entities.PaymentKindEntrada, amount: 300, providerStatus: "approved", want: entities.PaymentStatusAprovado},
		{name: "restante rejected", kind: entities.PaymentKindRestante, amount: 700, providerStatus: "rejected", want: entities.PaymentStatusNegado},
		{name: "entrada in process", kind: entities.PaymentKindEntrada, amount: 300, providerStatus: "in_process", want: entities.PaymentStatusPendente},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newPaymentUseCase(t, PaymentSettings{AccessToken: "TEST-token", TestPayerUserID: "123", TestPayerEmail: "sandbox@test.com"})
			m.contracts.EXPECT().GetByID(gomock.Any(), "c1").Return(signedForPayment, nil)
			m.repo.EXPECT().ListByContractID(gomock.Any(), "c1").Return([]entities.ContractPayment{
				{ID: "old", Kind: tc.kind, Status: entities.PaymentStatusNegado},
			}, nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "c1:"+string(tc.kind) {
						t.Fatalf("external_reference not set: %v", body["external_reference"])
					}
					if body["transaction_amount"] != tc.amount {
						t.Fatalf("transaction_amount should come from the contract, got %v", body["transaction_amount"])
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" {
						t.Fatalf("expected sandbox payer mapping, got %v", payer)
					}
					return "pay-1", tc.providerStatus, json.RawMessage(`{"id":1}`), nil
				},
			)
			m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ContractPayment{})).DoAndReturn(
				func(_ context.Context, p entities.ContractPayment) (entities.ContractPayment, error) {
					if p.ID != "pay-1" || p.ContractID != "c1" || p.Kind != tc.kind || p.Amount != tc.amount || p.Status != tc.want {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if p.Date.IsZero() || p.MPPayload["id"] != float64(1) {
						t.Fatalf("date and payload must be set: %+v", p)
					}
					return p, nil
				},
			)

			res, err := uc.Charge(context.Background(), "c1", tc.kind, json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"}}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("mock mode skips the gateway", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{MockMode: true})
		m.contracts.EXPECT().GetByID(gomock.Any(), "c1").Return(signedForPayment, nil)
		m.repo.EXPECT().ListByContractID(gomock.Any(), "c1").Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ContractPayment) (entities.ContractPayment, error) {
				if p.Status != entities.PaymentStatusAprovado || p.Amount != 300 || p.ID == "" {
					t.Fatalf("unexpected mock payment: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.Charge(context.Background(), "c1", "", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestContractPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewContractPaymentUseCase(nil, nil, nil, PaymentSettings{})
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.ContractPayment{}, nil)
		if _, err := uc.GetByID(context.Background(), "id-1"); !errors.Is(err, ErrContractPaymentNotFound) {
			t.Fatalf("expected ErrContractPaymentNotFound, got %v", err)
		}
	})

	t.Run("ListByContractID success", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.repo.EXPECT().ListByContractID(gomock.Any(), "c1").Return([]entities.ContractPayment{{ID: "p1", Date: time.Now()}}, nil)

		res, err := uc.ListByContractID(context.Background(), " c1 ")
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestContractPaymentUseCase_PayerHelpers(t *testing.T) {
	uc := NewContractPaymentUseCase(nil, nil, nil, PaymentSettings{})

	m := map[string]any{}
	uc.ensurePayerDefaults(m, "cliente@example.com")
	payer := m["payer"].(map[string]any)
	if payer["type"] != "customer" || payer["email"] != "cliente@example.com" {
		t.Fatalf("expected client email fallback, got %v", payer)
	}

	sandbox := NewContractPaymentUseCase(nil, nil, nil, PaymentSettings{AccessToken: "TEST-1"})
	m2 := map[string]any{"payer": map[string]any{}}
	sandbox.ensurePayerDefaults(m2, "cliente@example.com")
	if m2["payer"].(map[string]any)["email"] != "test_user_br@testuser.com" {
		t.Fatalf("expected sandbox fallback email")
	}

	m3 := map[string]any{"payer": map[string]any{"id": "999"}}
	sandbox.normalizeSandboxPayerFromUserID(m3)
	if _, ok := m3["payer"].(map[string]any)["email"]; ok {
		t.Fatalf("should not map without configured test payer")
	}

	if hasPayer(map[string]any{"payer": "x"}) || !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
		t.Fatalf("hasPayer misbehaves")
	}
	if isGatewayBadRequest(nil) || !isGatewayCustomerNotFound(errors.New("customer not found")) {
		t.Fatalf("gateway classifiers misbehave")
	}
}
