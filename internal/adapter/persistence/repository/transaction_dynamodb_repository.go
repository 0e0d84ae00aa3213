package repository

import (
	"context"
	"time"

	"github.com/cietz/laranjinhao/internal/domain/entities"
	"github.com/cietz/laranjinhao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsExternalRefIndex = "external_ref-index"
)

type transactionItem struct {
	TransactionID  string `dynamodbav:"transaction_id"`
	ExternalRef    string `dynamodbav:"external_ref,omitempty"`
	Status         string `dynamodbav:"status"`
	AmountCents    int64  `dynamodbav:"amount_cents"`
	PaymentMethod  string `dynamodbav:"payment_method,omitempty"`
	CustomerName   string `dynamodbav:"customer_name,omitempty"`
	CustomerEmail  string `dynamodbav:"customer_email,omitempty"`
	CustomerPhone  string `dynamodbav:"customer_phone,omitempty"`
	CustomerDoc    string `dynamodbav:"customer_document,omitempty"`
	CustomerIP     string `dynamodbav:"customer_ip,omitempty"`
	TrackingSrc    string `dynamodbav:"src,omitempty"`
	TrackingSck    string `dynamodbav:"sck,omitempty"`
	UTMSource      string `dynamodbav:"utm_source,omitempty"`
	UTMCampaign    string `dynamodbav:"utm_campaign,omitempty"`
	UTMMedium      string `dynamodbav:"utm_medium,omitempty"`
	UTMContent     string `dynamodbav:"utm_content,omitempty"`
	UTMTerm        string `dynamodbav:"utm_term,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	PaidAt         string `dynamodbav:"paid_at,omitempty"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: transaction_id (string)
//   - GSI: external_ref-index (PK: external_ref)

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client, tableName string) *TransactionDynamoRepository {
	if tableName == "" {
		tableName = defaultTransactionsTableName
	}
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *TransactionDynamoRepository) Save(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toTransactionItem(t))
	if err != nil {
		return entities.Transaction{}, err
	}

	// Save is an upsert: provider webhooks can land before the create
	// response finishes persisting.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, transactionID string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) GetByExternalRef(ctx context.Context, externalRef string) (entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsExternalRefIndex),
		KeyConditionExpression: aws.String("external_ref = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: externalRef},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Items) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) UpdateStatus(ctx context.Context, transactionID string, status entities.ChargeStatus, paidAt time.Time) (entities.Transaction, error) {
	expr := "SET #status = :status, #updated_at = :updated_at"
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	if !paidAt.IsZero() {
		expr += ", #paid_at = :paid_at"
		names["#paid_at"] = "paid_at"
		values[":paid_at"] = &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(transaction_id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Transaction{}, err
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	it := transactionItem{
		TransactionID: t.TransactionID,
		ExternalRef:   t.ExternalRef,
		Status:        string(t.Status),
		AmountCents:   t.AmountCents,
		PaymentMethod: t.PaymentMethod,
		CustomerName:  t.CustomerName,
		CustomerEmail: t.CustomerEmail,
		CustomerPhone: t.CustomerPhone,
		CustomerDoc:   t.CustomerDocument,
		CustomerIP:    t.CustomerIP,
		TrackingSrc:   t.Tracking.Src,
		TrackingSck:   t.Tracking.Sck,
		UTMSource:     t.Tracking.UTMSource,
		UTMCampaign:   t.Tracking.UTMCampaign,
		UTMMedium:     t.Tracking.UTMMedium,
		UTMContent:    t.Tracking.UTMContent,
		UTMTerm:       t.Tracking.UTMTerm,
		CreatedAt:     t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !t.PaidAt.IsZero() {
		it.PaidAt = t.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	paidAt, _ := time.Parse(time.RFC3339Nano, it.PaidAt)
	return entities.Transaction{
		TransactionID:    it.TransactionID,
		ExternalRef:      it.ExternalRef,
		Status:           entities.ChargeStatus(it.Status),
		AmountCents:      it.AmountCents,
		PaymentMethod:    it.PaymentMethod,
		CustomerName:     it.CustomerName,
		CustomerEmail:    it.CustomerEmail,
		CustomerPhone:    it.CustomerPhone,
		CustomerDocument: it.CustomerDoc,
		CustomerIP:       it.CustomerIP,
		Tracking: entities.TrackingParams{
			Src:         it.TrackingSrc,
			Sck:         it.TrackingSck,
			UTMSource:   it.UTMSource,
			UTMCampaign: it.UTMCampaign,
			UTMMedium:   it.UTMMedium,
			UTMContent:  it.UTMContent,
			UTMTerm:     it.UTMTerm,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		PaidAt:    paidAt,
	}
}
