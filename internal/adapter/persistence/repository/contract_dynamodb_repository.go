package repository

import (
	"context"
	"strconv"
	"strings"

	"console_comercial/internal/domain/entities"
	"console_comercial/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContractsTableName = "contracts"
	contractsSlugIndex        = "slug-index"
	contractsTokenIndex       = "public_token-index"
)

type contractItem struct {
	ID             string `dynamodbav:"id"`
	ProposalID     string `dynamodbav:"proposal_id,omitempty"`
	QuoteRequestID string `dynamodbav:"quote_request_id,omitempty"`
	SupersedesID   string `dynamodbav:"supersedes_id,omitempty"`
	Slug           string `dynamodbav:"slug,omitempty"`
	PublicToken    string `dynamodbav:"public_token,omitempty"`

	ClientName          string `dynamodbav:"client_name"`
	ClientEmail         string `dynamodbav:"client_email,omitempty"`
	ClientPhone         string `dynamodbav:"client_phone,omitempty"`
	ClientAddress       string `dynamodbav:"client_address,omitempty"`
	ClientProfession    string `dynamodbav:"client_profession,omitempty"`
	ClientMaritalStatus string `dynamodbav:"client_marital_status,omitempty"`

	EventType     string `dynamodbav:"event_type,omitempty"`
	EventDate     string `dynamodbav:"event_date,omitempty"`
	EventTime     string `dynamodbav:"event_time,omitempty"`
	EventLocation string `dynamodbav:"event_location,omitempty"`

	TotalPrice       float64 `dynamodbav:"total_price"`
	DownPayment      float64 `dynamodbav:"down_payment"`
	DownPaymentDate  string  `dynamodbav:"down_payment_date,omitempty"`
	RemainingAmount  float64 `dynamodbav:"remaining_amount"`
	RemainingDueDate string  `dynamodbav:"remaining_due_date,omitempty"`
	Notes            string  `dynamodbav:"notes,omitempty"`

	Body        string `dynamodbav:"body,omitempty"`
	Content     string `dynamodbav:"content,omitempty"`
	ContentHash string `dynamodbav:"content_hash,omitempty"`

	Status           string `dynamodbav:"status"`
	Version          int    `dynamodbav:"version"`
	VersionTimestamp string `dynamodbav:"version_timestamp,omitempty"`
	Revision         int64  `dynamodbav:"revision"`

	PreviewSignatureURL string `dynamodbav:"preview_signature_url,omitempty"`
	SignatureDrawnAt    string `dynamodbav:"signature_drawn_at,omitempty"`
	SignerName          string `dynamodbav:"signer_name,omitempty"`
	SignerEmail         string `dynamodbav:"signer_email,omitempty"`
	SignerIP            string `dynamodbav:"signer_ip,omitempty"`
	SignerUserAgent     string `dynamodbav:"signer_user_agent,omitempty"`
	SignedAt            string `dynamodbav:"signed_at,omitempty"`
	SentAt              string `dynamodbav:"sent_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists contracts with optimistic concurrency on
// the revision attribute.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: slug-index (PK: slug)
//   - GSI: public_token-index (PK: public_token)
type ContractDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb DynamoAPI, tableName string) *ContractDynamoRepository {
	if tableName == "" {
		tableName = defaultContractsTableName
	}
	return &ContractDynamoRepository{ddb: ddb, tableName: tableName}
}

// Create stores a new contract at revision 1.
func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	c.Revision = 1
	if err := putNew(ctx, r.ddb, r.tableName, toContractItem(c)); err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	var it contractItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

// GetByPublicIdentifier resolves a slug first and falls back to the opaque
// public token.
func (r *ContractDynamoRepository) GetByPublicIdentifier(ctx context.Context, identifier string) (entities.Contract, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return entities.Contract{}, nil
	}
	for _, lookup := range []struct{ index, attr string }{
		{contractsSlugIndex, "slug"},
		{contractsTokenIndex, "public_token"},
	} {
		items, err := queryIndex[contractItem](ctx, r.ddb, r.tableName, lookup.index, lookup.attr, identifier)
		if err != nil {
			return entities.Contract{}, err
		}
		if len(items) > 0 {
			// GSIs are eventually consistent; reload by key for the current revision.
			return r.GetByID(ctx, items[0].ID)
		}
	}
	return entities.Contract{}, nil
}

func (r *ContractDynamoRepository) List(ctx context.Context) ([]entities.Contract, error) {
	items, err := scanAll[contractItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Contract, 0, len(items))
	for _, it := range items {
		out = append(out, fromContractItem(it))
	}
	return out, nil
}

// Save overwrites the contract if the stored revision still equals
// expectedRevision. Records written before revisions existed match 0.
func (r *ContractDynamoRepository) Save(ctx context.Context, c entities.Contract, expectedRevision int64) (entities.Contract, error) {
	c.Revision = expectedRevision + 1
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
	}

	cond := "attribute_exists(#id) AND #revision = :expected"
	if expectedRevision == 0 {
		cond = "attribute_exists(#id) AND (attribute_not_exists(#revision) OR #revision = :expected)"
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(cond),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#revision": "revision",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedRevision, 10)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Contract{}, interfaces.ErrStaleRevision
		}
		return entities.Contract{}, err
	}
	return c, nil
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		ID:                  c.ID,
		ProposalID:          c.ProposalID,
		QuoteRequestID:      c.QuoteRequestID,
		SupersedesID:        c.SupersedesID,
		Slug:                c.Slug,
		PublicToken:         c.PublicToken,
		ClientName:          c.ClientName,
		ClientEmail:         c.ClientEmail,
		ClientPhone:         c.ClientPhone,
		ClientAddress:       c.ClientAddress,
		ClientProfession:    c.ClientProfession,
		ClientMaritalStatus: c.ClientMaritalStatus,
		EventType:           c.EventType,
		EventDate:           formatTimePtr(c.EventDate),
		EventTime:           c.EventTime,
		EventLocation:       c.EventLocation,
		TotalPrice:          c.TotalPrice,
		DownPayment:         c.DownPayment,
		DownPaymentDate:     formatTimePtr(c.DownPaymentDate),
		RemainingAmount:     c.RemainingAmount,
		RemainingDueDate:    formatTimePtr(c.RemainingDueDate),
		Notes:               c.Notes,
		Body:                c.Body,
		Content:             c.Content,
		ContentHash:         c.ContentHash,
		Status:              string(c.Status),
		Version:             c.Version,
		VersionTimestamp:    formatTime(c.VersionTimestamp),
		Revision:            c.Revision,
		PreviewSignatureURL: c.PreviewSignatureURL,
		SignatureDrawnAt:    formatTimePtr(c.SignatureDrawnAt),
		SignerName:          c.SignerName,
		SignerEmail:         c.SignerEmail,
		SignerIP:            c.SignerIP,
		SignerUserAgent:     c.SignerUserAgent,
		SignedAt:            formatTimePtr(c.SignedAt),
		SentAt:              formatTimePtr(c.SentAt),
		CreatedAt:           formatTime(c.CreatedAt),
		UpdatedAt:           formatTime(c.UpdatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	return entities.Contract{
		ID:                  it.ID,
		ProposalID:          it.ProposalID,
		QuoteRequestID:      it.QuoteRequestID,
		SupersedesID:        it.SupersedesID,
		Slug:                it.Slug,
		PublicToken:         it.PublicToken,
		ClientName:          it.ClientName,
		ClientEmail:         it.ClientEmail,
		ClientPhone:         it.ClientPhone,
		ClientAddress:       it.ClientAddress,
		ClientProfession:    it.ClientProfession,
		ClientMaritalStatus: it.ClientMaritalStatus,
		EventType:           it.EventType,
		EventDate:           parseTimePtr(it.EventDate),
		EventTime:           it.EventTime,
		EventLocation:       it.EventLocation,
		TotalPrice:          it.TotalPrice,
		DownPayment:         it.DownPayment,
		DownPaymentDate:     parseTimePtr(it.DownPaymentDate),
		RemainingAmount:     it.RemainingAmount,
		RemainingDueDate:    parseTimePtr(it.RemainingDueDate),
		Notes:               it.Notes,
		Body:                it.Body,
		Content:             it.Content,
		ContentHash:         it.ContentHash,
		Status:              entities.ContractStatus(it.Status),
		Version:             it.Version,
		VersionTimestamp:    parseTime(it.VersionTimestamp),
		Revision:            it.Revision,
		PreviewSignatureURL: it.PreviewSignatureURL,
		SignatureDrawnAt:    parseTimePtr(it.SignatureDrawnAt),
		SignerName:          it.SignerName,
		SignerEmail:         it.SignerEmail,
		SignerIP:            it.SignerIP,
		SignerUserAgent:     it.SignerUserAgent,
		SignedAt:            parseTimePtr(it.SignedAt),
		SentAt:              parseTimePtr(it.SentAt),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
