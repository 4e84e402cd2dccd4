package request

import "encoding/json"

// ContractPaymentCreateRequest is the payload for charging an installment.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas. `kind` is entrada (default) or restante.
type ContractPaymentCreateRequest struct {
	Kind      string          `json:"kind"`
	MPPayload json.RawMessage `json:"mp_payload"`
}
