package repository

import (
	"context"
	"strconv"
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesUserIDIndex      = "user_id-index"
	quotesMechanicIDIndex  = "mechanic_id-index"
)

type quoteItem struct {
	ID                string `dynamodbav:"id"`
	UserID            string `dynamodbav:"user_id"`
	MechanicID        string `dynamodbav:"mechanic_id"`
	VehicleID         string `dynamodbav:"vehicle_id,omitempty"`
	ServiceType       string `dynamodbav:"service_type"`
	Description       string `dynamodbav:"description,omitempty"`
	Status            string `dynamodbav:"status"`
	PriceAmount       string `dynamodbav:"price_amount,omitempty"`
	PriceCurrency     string `dynamodbav:"price_currency,omitempty"`
	EstimatedDuration string `dynamodbav:"estimated_duration,omitempty"`
	ValidUntil        string `dynamodbav:"valid_until,omitempty"`
	MechanicNotes     string `dynamodbav:"mechanic_notes,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: mechanic_id-index (PK: mechanic_id)
//
// Status flips go through conditional updates keyed on the current status, so
// concurrent transitions resolve to a single winner without a transaction.

type QuoteDynamoRepository struct {
	ddb               *dynamodb.Client
	tableName         string
	bookingsTableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:               ddb,
		tableName:         getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		bookingsTableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error) {
	return r.queryIndex(ctx, quotesUserIDIndex, "user_id", userID)
}

func (r *QuoteDynamoRepository) ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.Quote, error) {
	return r.queryIndex(ctx, quotesMechanicIDIndex, "mechanic_id", mechanicID)
}

// UpdateStatusIf flips the status only while the stored status still equals
// expected. A mismatch surfaces as interfaces.ErrConditionFailed.
func (r *QuoteDynamoRepository) UpdateStatusIf(ctx context.Context, id string, expected, next entities.QuoteStatus) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :next, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: string(expected)},
			":next":       &types.AttributeValueMemberS{Value: string(next)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Quote{}, translateConditionErr(err)
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// AcceptWithBooking flips the quote from Quoted to Accepted and writes the
// resulting booking in a single transaction. Either both writes land or
// neither does; losing the status race surfaces as
// interfaces.ErrConditionFailed.
func (r *QuoteDynamoRepository) AcceptWithBooking(ctx context.Context, quoteID string, b entities.Booking) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	bav, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: quoteID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
					UpdateExpression:    aws.String("SET #status = :next, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":expected":   &types.AttributeValueMemberS{Value: string(entities.QuoteStatusQuoted)},
						":next":       &types.AttributeValueMemberS{Value: string(entities.QuoteStatusAccepted)},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.bookingsTableName),
					Item:                bav,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		return translateTransactCancel(err)
	}
	return nil
}

// SetResponseIf stores the mechanic's offer and moves the quote to Quoted,
// guarded on the current status.
func (r *QuoteDynamoRepository) SetResponseIf(ctx context.Context, id string, expected entities.QuoteStatus, price entities.QuotedPrice, estimatedDuration string, validUntil time.Time, notes string) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	validUntilStr := ""
	if !validUntil.IsZero() {
		validUntilStr = validUntil.UTC().Format(time.RFC3339Nano)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression: aws.String("SET #status = :next, #price_amount = :price_amount, #price_currency = :price_currency, " +
			"#estimated_duration = :estimated_duration, #valid_until = :valid_until, #mechanic_notes = :mechanic_notes, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                 "id",
			"#status":             "status",
			"#price_amount":       "price_amount",
			"#price_currency":     "price_currency",
			"#estimated_duration": "estimated_duration",
			"#valid_until":        "valid_until",
			"#mechanic_notes":     "mechanic_notes",
			"#updated_at":         "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":           &types.AttributeValueMemberS{Value: string(expected)},
			":next":               &types.AttributeValueMemberS{Value: string(entities.QuoteStatusQuoted)},
			":price_amount":       &types.AttributeValueMemberS{Value: floatToString(price.Amount)},
			":price_currency":     &types.AttributeValueMemberS{Value: price.Currency},
			":estimated_duration": &types.AttributeValueMemberS{Value: estimatedDuration},
			":valid_until":        &types.AttributeValueMemberS{Value: validUntilStr},
			":mechanic_notes":     &types.AttributeValueMemberS{Value: notes},
			":updated_at":         &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Quote{}, translateConditionErr(err)
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Quote, error) {
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

	items := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteItem(it))
	}
	return items, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:                q.ID,
		UserID:            q.UserID,
		MechanicID:        q.MechanicID,
		VehicleID:         q.VehicleID,
		ServiceType:       q.ServiceType,
		Description:       q.Description,
		Status:            string(q.Status),
		EstimatedDuration: q.EstimatedDuration,
		MechanicNotes:     q.MechanicNotes,
		CreatedAt:         q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.QuotedPrice.Amount > 0 {
		it.PriceAmount = floatToString(q.QuotedPrice.Amount)
		it.PriceCurrency = q.QuotedPrice.Currency
	}
	if !q.ValidUntil.IsZero() {
		it.ValidUntil = q.ValidUntil.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	amount, _ := strconv.ParseFloat(it.PriceAmount, 64)
	return entities.Quote{
		ID:                it.ID,
		UserID:            it.UserID,
		MechanicID:        it.MechanicID,
		VehicleID:         it.VehicleID,
		ServiceType:       it.ServiceType,
		Description:       it.Description,
		Status:            entities.QuoteStatus(it.Status),
		QuotedPrice:       entities.QuotedPrice{Amount: amount, Currency: it.PriceCurrency},
		EstimatedDuration: it.EstimatedDuration,
		ValidUntil:        validUntil,
		MechanicNotes:     it.MechanicNotes,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
