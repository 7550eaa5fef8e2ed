package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMechanicsTableName = "mechanics"
	mechanicsUserIDIndex      = "user_id-index"
)

type mechanicItem struct {
	ID              string   `dynamodbav:"id"`
	UserID          string   `dynamodbav:"user_id"`
	BusinessName    string   `dynamodbav:"business_name"`
	Phone           string   `dynamodbav:"phone"`
	Description     string   `dynamodbav:"description,omitempty"`
	Street          string   `dynamodbav:"street,omitempty"`
	Suburb          string   `dynamodbav:"suburb,omitempty"`
	State           string   `dynamodbav:"state,omitempty"`
	Postcode        string   `dynamodbav:"postcode,omitempty"`
	ServicesOffered []string `dynamodbav:"services_offered,omitempty"`
	RatingAverage   string   `dynamodbav:"rating_average"`
	RatingCount     int      `dynamodbav:"rating_count"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// MechanicDynamoRepository persists Mechanic entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// The directory is small, so List scans and filters client-side rather than
// maintaining service/suburb indexes.

type MechanicDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMechanicRepository = (*MechanicDynamoRepository)(nil)

func NewMechanicDynamoRepository(ddb *dynamodb.Client) *MechanicDynamoRepository {
	return &MechanicDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MECHANICS_TABLE", defaultMechanicsTableName),
	}
}

func (r *MechanicDynamoRepository) Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	it := toMechanicItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Mechanic{}, err
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
		return entities.Mechanic{}, err
	}
	return m, nil
}

func (r *MechanicDynamoRepository) GetByID(ctx context.Context, id string) (entities.Mechanic, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Mechanic{}, err
	}
	if len(out.Item) == 0 {
		return entities.Mechanic{}, nil
	}

	var it mechanicItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Mechanic{}, err
	}
	return fromMechanicItem(it), nil
}

func (r *MechanicDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Mechanic, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(mechanicsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Mechanic{}, err
	}
	if len(out.Items) == 0 {
		return entities.Mechanic{}, nil
	}

	var it mechanicItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Mechanic{}, err
	}
	return fromMechanicItem(it), nil
}

func (r *MechanicDynamoRepository) List(ctx context.Context, filter interfaces.MechanicFilter) ([]entities.Mechanic, error) {
	var items []entities.Mechanic
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
			var it mechanicItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			m := fromMechanicItem(it)
			if !matchesMechanicFilter(m, filter) {
				continue
			}
			items = append(items, m)
			if filter.Limit > 0 && len(items) >= filter.Limit {
				return items, nil
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *MechanicDynamoRepository) Update(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	m.UpdatedAt = time.Now().UTC()
	it := toMechanicItem(m)
	it.UpdatedAt = now

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Mechanic{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Mechanic{}, translateConditionErr(err)
	}
	return m, nil
}

// SetRating overwrites the aggregate. The average travels as a string to keep
// float round-tripping exact.
func (r *MechanicDynamoRepository) SetRating(ctx context.Context, id string, rating entities.Rating) (entities.Mechanic, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #rating_average = :avg, #rating_count = :count, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#rating_average": "rating_average",
			"#rating_count":   "rating_count",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":avg":        &types.AttributeValueMemberS{Value: floatToString(rating.Average)},
			":count":      &types.AttributeValueMemberN{Value: intToString(rating.Count)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Mechanic{}, translateConditionErr(err)
	}

	var it mechanicItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Mechanic{}, err
	}
	return fromMechanicItem(it), nil
}

func matchesMechanicFilter(m entities.Mechanic, filter interfaces.MechanicFilter) bool {
	if filter.ServiceType != "" {
		found := false
		for _, s := range m.ServicesOffered {
			if strings.EqualFold(s, filter.ServiceType) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.Suburb != "" && !strings.EqualFold(m.Address.Suburb, filter.Suburb) {
		return false
	}
	return true
}

func toMechanicItem(m entities.Mechanic) mechanicItem {
	return mechanicItem{
		ID:              m.ID,
		UserID:          m.UserID,
		BusinessName:    m.BusinessName,
		Phone:           m.Phone,
		Description:     m.Description,
		Street:          m.Address.Street,
		Suburb:          m.Address.Suburb,
		State:           m.Address.State,
		Postcode:        m.Address.Postcode,
		ServicesOffered: m.ServicesOffered,
		RatingAverage:   floatToString(m.Rating.Average),
		RatingCount:     m.Rating.Count,
		CreatedAt:       m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMechanicItem(it mechanicItem) entities.Mechanic {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	avg, _ := strconv.ParseFloat(it.RatingAverage, 64)
	return entities.Mechanic{
		ID:           it.ID,
		UserID:       it.UserID,
		BusinessName: it.BusinessName,
		Phone:        it.Phone,
		Description:  it.Description,
		Address: entities.Address{
			Street:   it.Street,
			Suburb:   it.Suburb,
			State:    it.State,
			Postcode: it.Postcode,
		},
		ServicesOffered: it.ServicesOffered,
		Rating:          entities.Rating{Average: avg, Count: it.RatingCount},
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
