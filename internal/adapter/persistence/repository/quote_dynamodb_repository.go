package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/trader2544/telvix-quote-service/internal/domain/entities"
	"github.com/trader2544/telvix-quote-service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID             string   `dynamodbav:"id"`
	Name           string   `dynamodbav:"name"`
	Email          string   `dynamodbav:"email"`
	Phone          string   `dynamodbav:"phone,omitempty"`
	ServiceID      string   `dynamodbav:"service_id"`
	FeatureIDs     []string `dynamodbav:"feature_ids,omitempty"`
	ComplexityRank int      `dynamodbav:"complexity_rank"`
	TimelineRank   int      `dynamodbav:"timeline_rank"`
	ProjectDetails string   `dynamodbav:"project_details,omitempty"`
	Currency       string   `dynamodbav:"currency"`
	QuotedTotal    string   `dynamodbav:"quoted_total"`
	DisplayTotal   string   `dynamodbav:"display_total"`
	Status         string   `dynamodbav:"status"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists QuoteRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Totals are stored as strings to avoid float drift through marshalling;
// they are parsed back on read.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.QuoteRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteRequest{}, nil
		}
		return entities.QuoteRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.QuoteRequest) quoteItem {
	return quoteItem{
		ID:             q.ID,
		Name:           q.Name,
		Email:          q.Email,
		Phone:          q.Phone,
		ServiceID:      q.ServiceID,
		FeatureIDs:     q.FeatureIDs,
		ComplexityRank: q.ComplexityRank,
		TimelineRank:   q.TimelineRank,
		ProjectDetails: q.ProjectDetails,
		Currency:       q.Currency,
		QuotedTotal:    floatToString(q.QuotedTotal),
		DisplayTotal:   q.DisplayTotal,
		Status:         string(q.Status),
		CreatedAt:      q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.QuoteRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.QuotedTotal, 64)
	return entities.QuoteRequest{
		ID:             it.ID,
		Name:           it.Name,
		Email:          it.Email,
		Phone:          it.Phone,
		ServiceID:      it.ServiceID,
		FeatureIDs:     it.FeatureIDs,
		ComplexityRank: it.ComplexityRank,
		TimelineRank:   it.TimelineRank,
		ProjectDetails: it.ProjectDetails,
		Currency:       it.Currency,
		QuotedTotal:    total,
		DisplayTotal:   it.DisplayTotal,
		Status:         entities.QuoteStatus(it.Status),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
