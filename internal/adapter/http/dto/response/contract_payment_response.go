package response

import (
	"time"

	"console_comercial/internal/domain/entities"
)

type ContractPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	ContractID  string    `json:"contract_id"`
	Kind        string    `json:"kind"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromContractPayment(p entities.ContractPayment) ContractPaymentResponse {
	return ContractPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		ContractID:   p.ContractID,
		Kind:         string(p.Kind),
		Amount:       p.Amount,
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromContractPayments(ps []entities.ContractPayment) []ContractPaymentResponse {
	out := make([]ContractPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromContractPayment(p))
	}
	return out
}
