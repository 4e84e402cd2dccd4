package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"console_comercial/internal/domain/entities"
	"console_comercial/internal/usecase/interfaces"
)

const (
	defaultContractPaymentsTableName = "contract_payments"
	contractPaymentsContractIDIndex  = "contract_id-index"
)

type contractPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	ContractID   string                 `dynamodbav:"contract_id"`
	Kind         string                 `dynamodbav:"kind"`
	Amount       float64                `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
}

// ContractPaymentDynamoRepository persists installment charges.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)
type ContractPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IContractPaymentRepository = (*ContractPaymentDynamoRepository)(nil)

func NewContractPaymentDynamoRepository(ddb DynamoAPI, tableName string) *ContractPaymentDynamoRepository {
	if tableName == "" {
		tableName = defaultContractPaymentsTableName
	}
	return &ContractPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ContractPaymentDynamoRepository) Create(ctx context.Context, p entities.ContractPayment) (entities.ContractPayment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toContractPaymentItem(p)); err != nil {
		return entities.ContractPayment{}, err
	}
	return p, nil
}

func (r *ContractPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContractPayment, error) {
	var it contractPaymentItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.ContractPayment{}, err
	}
	return fromContractPaymentItem(it), nil
}

// ListByContractID returns payments oldest first.
func (r *ContractPaymentDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.ContractPayment, error) {
	items, err := queryIndex[contractPaymentItem](ctx, r.ddb, r.tableName, contractPaymentsContractIDIndex, "contract_id", contractID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ContractPayment, 0, len(items))
	for _, it := range items {
		out = append(out, fromContractPaymentItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func toContractPaymentItem(p entities.ContractPayment) contractPaymentItem {
	return contractPaymentItem{
		ID:           p.ID,
		ContractID:   p.ContractID,
		Kind:         string(p.Kind),
		Amount:       p.Amount,
		Date:         p.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func fromContractPaymentItem(it contractPaymentItem) entities.ContractPayment {
	p := entities.ContractPayment{
		ID:         it.ID,
		ContractID: it.ContractID,
		Kind:       entities.PaymentKind(it.Kind),
		Amount:     it.Amount,
		Date:       parseTime(it.Date),
		Status:     entities.PaymentStatus(it.Status),
		MPPayload:  it.MPPayload,
	}
	if it.MPPayloadRaw != "" {
		p.MPPayloadRaw = json.RawMessage(it.MPPayloadRaw)
	}
	return p
}
