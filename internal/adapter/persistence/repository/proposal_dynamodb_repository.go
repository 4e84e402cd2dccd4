package repository

import (
	"context"

	"console_comercial/internal/domain/entities"
	"console_comercial/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultProposalsTableName = "proposals"
	proposalsLeadIDIndex      = "quote_request_id-index"
)

type proposalItem struct {
	ID             string  `dynamodbav:"id"`
	QuoteRequestID string  `dynamodbav:"quote_request_id,omitempty"`
	ClientName     string  `dynamodbav:"client_name"`
	ClientEmail    string  `dynamodbav:"client_email,omitempty"`
	ClientPhone    string  `dynamodbav:"client_phone,omitempty"`
	EventType      string  `dynamodbav:"event_type,omitempty"`
	EventDate      string  `dynamodbav:"event_date,omitempty"`
	EventLocation  string  `dynamodbav:"event_location,omitempty"`
	Status         string  `dynamodbav:"status"`
	TotalPrice     float64 `dynamodbav:"total_price"`
	Body           string  `dynamodbav:"body,omitempty"`
	ContentHash    string  `dynamodbav:"content_hash,omitempty"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists proposals.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_request_id-index (PK: quote_request_id)
type ProposalDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb DynamoAPI, tableName string) *ProposalDynamoRepository {
	if tableName == "" {
		tableName = defaultProposalsTableName
	}
	return &ProposalDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toProposalItem(p)); err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	var it proposalItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	items, err := scanAll[proposalItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return fromProposalItems(items), nil
}

// ListByLeadID is used by back-office tooling to trace a lead's proposals.
func (r *ProposalDynamoRepository) ListByLeadID(ctx context.Context, leadID string) ([]entities.Proposal, error) {
	items, err := queryIndex[proposalItem](ctx, r.ddb, r.tableName, proposalsLeadIDIndex, "quote_request_id", leadID)
	if err != nil {
		return nil, err
	}
	return fromProposalItems(items), nil
}

// Save overwrites an existing proposal. A zero Proposal means the id is gone.
func (r *ProposalDynamoRepository) Save(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	return p, nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:             p.ID,
		QuoteRequestID: p.QuoteRequestID,
		ClientName:     p.ClientName,
		ClientEmail:    p.ClientEmail,
		ClientPhone:    p.ClientPhone,
		EventType:      p.EventType,
		EventDate:      formatTimePtr(p.EventDate),
		EventLocation:  p.EventLocation,
		Status:         string(p.Status),
		TotalPrice:     p.TotalPrice,
		Body:           p.Body,
		ContentHash:    p.ContentHash,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	return entities.Proposal{
		ID:             it.ID,
		QuoteRequestID: it.QuoteRequestID,
		ClientName:     it.ClientName,
		ClientEmail:    it.ClientEmail,
		ClientPhone:    it.ClientPhone,
		EventType:      it.EventType,
		EventDate:      parseTimePtr(it.EventDate),
		EventLocation:  it.EventLocation,
		Status:         entities.ProposalStatus(it.Status),
		TotalPrice:     it.TotalPrice,
		Body:           it.Body,
		ContentHash:    it.ContentHash,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

func fromProposalItems(items []proposalItem) []entities.Proposal {
	out := make([]entities.Proposal, 0, len(items))
	for _, it := range items {
		out = append(out, fromProposalItem(it))
	}
	return out
}
