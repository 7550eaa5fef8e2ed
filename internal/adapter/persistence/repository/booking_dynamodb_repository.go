package repository

import (
	"context"
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	bookingsUserIDIndex      = "user_id-index"
	bookingsMechanicIDIndex  = "mechanic_id-index"
)

type bookingItem struct {
	ID            string `dynamodbav:"id"`
	UserID        string `dynamodbav:"user_id"`
	MechanicID    string `dynamodbav:"mechanic_id,omitempty"`
	VehicleID     string `dynamodbav:"vehicle_id,omitempty"`
	QuoteID       string `dynamodbav:"quote_id,omitempty"`
	ServiceType   string `dynamodbav:"service_type"`
	VehicleMake   string `dynamodbav:"vehicle_make"`
	VehicleModel  string `dynamodbav:"vehicle_model"`
	Location      string `dynamodbav:"location"`
	Date          string `dynamodbav:"date"`
	Time          string `dynamodbav:"time"`
	Price         string `dynamodbav:"price"`
	Status        string `dynamodbav:"status"`
	PaymentStatus string `dynamodbav:"payment_status"`
	Notes         string `dynamodbav:"notes,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: mechanic_id-index (PK: mechanic_id)

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it := toBookingItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error) {
	return r.queryIndex(ctx, bookingsUserIDIndex, "user_id", userID)
}

func (r *BookingDynamoRepository) ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.Booking, error) {
	return r.queryIndex(ctx, bookingsMechanicIDIndex, "mechanic_id", mechanicID)
}

// Update rewrites the mutable fields (date, time, notes). Status and payment
// status have their own conditional paths and are not touched here.
func (r *BookingDynamoRepository) Update(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: b.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #date = :date, #time = :time, #notes = :notes, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#date":       "date",
			"#time":       "time",
			"#notes":      "notes",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":date":       &types.AttributeValueMemberS{Value: b.Date},
			":time":       &types.AttributeValueMemberS{Value: b.Time},
			":notes":      &types.AttributeValueMemberS{Value: b.Notes},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Booking{}, translateConditionErr(err)
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) UpdateStatusIf(ctx context.Context, id string, expected, next entities.BookingStatus) (entities.Booking, error) {
	return r.conditionalFlip(ctx, id, "status", string(expected), string(next))
}

func (r *BookingDynamoRepository) UpdatePaymentStatusIf(ctx context.Context, id string, expected, next entities.PaymentStatus) (entities.Booking, error) {
	return r.conditionalFlip(ctx, id, "payment_status", string(expected), string(next))
}

func (r *BookingDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *BookingDynamoRepository) conditionalFlip(ctx context.Context, id, attr, expected, next string) (entities.Booking, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #attr = :expected"),
		UpdateExpression:    aws.String("SET #attr = :next, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#attr":       attr,
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: expected},
			":next":       &types.AttributeValueMemberS{Value: next},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Booking{}, translateConditionErr(err)
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Booking, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingItem(it))
	}
	return items, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:            b.ID,
		UserID:        b.UserID,
		MechanicID:    b.MechanicID,
		VehicleID:     b.VehicleID,
		QuoteID:       b.QuoteID,
		ServiceType:   b.ServiceType,
		VehicleMake:   b.VehicleMake,
		VehicleModel:  b.VehicleModel,
		Location:      b.Location,
		Date:          b.Date,
		Time:          b.Time,
		Price:         b.Price,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Booking{
		ID:            it.ID,
		UserID:        it.UserID,
		MechanicID:    it.MechanicID,
		VehicleID:     it.VehicleID,
		QuoteID:       it.QuoteID,
		ServiceType:   it.ServiceType,
		VehicleMake:   it.VehicleMake,
		VehicleModel:  it.VehicleModel,
		Location:      it.Location,
		Date:          it.Date,
		Time:          it.Time,
		Price:         it.Price,
		Status:        entities.BookingStatus(it.Status),
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		Notes:         it.Notes,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
