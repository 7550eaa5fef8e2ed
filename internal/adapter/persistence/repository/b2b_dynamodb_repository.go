package repository

import (
	"context"
	"sort"
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultB2BTableName = "b2b_applications"

type b2bItem struct {
	ID          string `dynamodbav:"id"`
	CompanyName string `dynamodbav:"company_name"`
	ContactName string `dynamodbav:"contact_name"`
	Email       string `dynamodbav:"email"`
	Phone       string `dynamodbav:"phone,omitempty"`
	Message     string `dynamodbav:"message,omitempty"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// B2BDynamoRepository persists partnership applications in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Intake volume is low; List scans with an optional status filter.

type B2BDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IB2BRepository = (*B2BDynamoRepository)(nil)

func NewB2BDynamoRepository(ddb *dynamodb.Client) *B2BDynamoRepository {
	return &B2BDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("B2B_TABLE", defaultB2BTableName),
	}
}

func (r *B2BDynamoRepository) Create(ctx context.Context, a entities.B2BApplication) (entities.B2BApplication, error) {
	it := toB2BItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.B2BApplication{}, err
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
		return entities.B2BApplication{}, err
	}
	return a, nil
}

func (r *B2BDynamoRepository) GetByID(ctx context.Context, id string) (entities.B2BApplication, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.B2BApplication{}, err
	}
	if len(out.Item) == 0 {
		return entities.B2BApplication{}, nil
	}

	var it b2bItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.B2BApplication{}, err
	}
	return fromB2BItem(it), nil
}

func (r *B2BDynamoRepository) List(ctx context.Context, status entities.B2BStatus) ([]entities.B2BApplication, error) {
	var items []entities.B2BApplication
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it b2bItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			a := fromB2BItem(it)
			if status != "" && a.Status != status {
				continue
			}
			items = append(items, a)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (r *B2BDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.B2BStatus) (entities.B2BApplication, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.B2BApplication{}, translateConditionErr(err)
	}

	var it b2bItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.B2BApplication{}, err
	}
	return fromB2BItem(it), nil
}

func toB2BItem(a entities.B2BApplication) b2bItem {
	return b2bItem{
		ID:          a.ID,
		CompanyName: a.CompanyName,
		ContactName: a.ContactName,
		Email:       a.Email,
		Phone:       a.Phone,
		Message:     a.Message,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromB2BItem(it b2bItem) entities.B2BApplication {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.B2BApplication{
		ID:          it.ID,
		CompanyName: it.CompanyName,
		ContactName: it.ContactName,
		Email:       it.Email,
		Phone:       it.Phone,
		Message:     it.Message,
		Status:      entities.B2BStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
