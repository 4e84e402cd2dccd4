package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

type PaymentKind string

const (
	PaymentKindEntrada  PaymentKind = "entrada"
	PaymentKindRestante PaymentKind = "restante"
)

// ContractPayment is a charge made against a signed contract.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (contract_id-index): contract_id
//
// MPPayloadRaw keeps the provider response for audit; MPPayload is its parsed
// form for querying.
type ContractPayment struct {
	ID         string        `json:"id"`
	ContractID string        `json:"contract_id"`
	Kind       PaymentKind   `json:"kind"`
	Amount     float64       `json:"amount"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
