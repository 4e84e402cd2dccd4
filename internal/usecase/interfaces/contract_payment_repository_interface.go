package interfaces

import (
	"context"

	"console_comercial/internal/domain/entities"
)

// IContractPaymentRepository abstracts DynamoDB persistence for ContractPayment.
type IContractPaymentRepository interface {
	Create(ctx context.Context, p entities.ContractPayment) (entities.ContractPayment, error)
	GetByID(ctx context.Context, id string) (entities.ContractPayment, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.ContractPayment, error)
}
