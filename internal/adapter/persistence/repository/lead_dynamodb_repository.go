package repository

import (
	"context"
	"time"

	"console_comercial/internal/domain/entities"
	"console_comercial/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Email         string `dynamodbav:"email"`
	Phone         string `dynamodbav:"phone,omitempty"`
	EventType     string `dynamodbav:"event_type,omitempty"`
	EventDate     string `dynamodbav:"event_date,omitempty"`
	EventLocation string `dynamodbav:"event_location,omitempty"`
	Message       string `dynamodbav:"message,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at,omitempty"`
}

// LeadDynamoRepository persists inbound quote requests.
//
// Table requirements:
//   - PK: id (string)
type LeadDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb DynamoAPI, tableName string) *LeadDynamoRepository {
	if tableName == "" {
		tableName = defaultLeadsTableName
	}
	return &LeadDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toLeadItem(l)); err != nil {
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	var it leadItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	items, err := scanAll[leadItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Lead, 0, len(items))
	for _, it := range items {
		out = append(out, fromLeadItem(it))
	}
	return out, nil
}

// UpdateStatus returns a zero Lead when the id does not exist.
func (r *LeadDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#status": "status", "#updated_at": "updated_at"},
			map[string]string{"#id": "id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}
	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:            l.ID,
		Name:          l.Name,
		Email:         l.Email,
		Phone:         l.Phone,
		EventType:     l.EventType,
		EventDate:     formatTimePtr(l.EventDate),
		EventLocation: l.EventLocation,
		Message:       l.Message,
		Status:        string(l.Status),
		CreatedAt:     formatTime(l.CreatedAt),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	return entities.Lead{
		ID:            it.ID,
		Name:          it.Name,
		Email:         it.Email,
		Phone:         it.Phone,
		EventType:     it.EventType,
		EventDate:     parseTimePtr(it.EventDate),
		EventLocation: it.EventLocation,
		Message:       it.Message,
		Status:        entities.LeadStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
