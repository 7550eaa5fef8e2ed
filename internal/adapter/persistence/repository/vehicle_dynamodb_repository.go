package repository

import (
	"context"
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
	defaultVehiclesTableName = "vehicles"
	vehiclesUserIDIndex      = "user_id-index"
)

type vehicleItem struct {
	ID           string `dynamodbav:"id"`
	UserID       string `dynamodbav:"user_id"`
	Make         string `dynamodbav:"make"`
	Model        string `dynamodbav:"model"`
	Year         int    `dynamodbav:"year,omitempty"`
	Registration string `dynamodbav:"registration,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	it := toVehicleItem(v)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Vehicle{}, err
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
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Vehicle, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(vehiclesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Vehicle, 0, len(out.Items))
	for _, raw := range out.Items {
		var it vehicleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromVehicleItem(it))
	}
	return items, nil
}

// GetByUserAndRegistration resolves a duplicate-registration check. It queries
// the user's vehicles and compares registrations case-insensitively.
func (r *VehicleDynamoRepository) GetByUserAndRegistration(ctx context.Context, userID, registration string) (entities.Vehicle, error) {
	vehicles, err := r.ListByUserID(ctx, userID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	for _, v := range vehicles {
		if v.Registration != "" && strings.EqualFold(v.Registration, registration) {
			return v, nil
		}
	}
	return entities.Vehicle{}, nil
}

func (r *VehicleDynamoRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.UpdatedAt = time.Now().UTC()
	it := toVehicleItem(v)

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Vehicle{}, err
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
		return entities.Vehicle{}, translateConditionErr(err)
	}
	return v, nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:           v.ID,
		UserID:       v.UserID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		Registration: v.Registration,
		CreatedAt:    v.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    v.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Vehicle{
		ID:           it.ID,
		UserID:       it.UserID,
		Make:         it.Make,
		Model:        it.Model,
		Year:         it.Year,
		Registration: it.Registration,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
