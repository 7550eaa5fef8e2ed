package repository

import (
	"context"
	"errors"
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReviewsTableName = "reviews"
	reviewsMechanicIDIndex  = "mechanic_id-index"
	reviewsUserIDIndex      = "user_id-index"
	reviewsIDIndex          = "review_id-index"
)

type reviewItem struct {
	BookingID        string `dynamodbav:"booking_id"`
	ID               string `dynamodbav:"review_id"`
	UserID           string `dynamodbav:"user_id"`
	MechanicID       string `dynamodbav:"mechanic_id"`
	Rating           int    `dynamodbav:"rating"`
	Comment          string `dynamodbav:"comment,omitempty"`
	MechanicResponse string `dynamodbav:"mechanic_response,omitempty"`
	HelpfulVotes     int    `dynamodbav:"helpful_votes"`
	Verified         bool   `dynamodbav:"verified"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// ReviewDynamoRepository persists Review entities in DynamoDB.
//
// Table requirements:
//   - PK: booking_id (string)
//   - GSI: review_id-index (PK: review_id)
//   - GSI: mechanic_id-index (PK: mechanic_id)
//   - GSI: user_id-index (PK: user_id)
//
// Keying on booking_id makes "one review per booking" a storage invariant:
// the conditional put fails for the second writer.

type ReviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb *dynamodb.Client) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVIEWS_TABLE", defaultReviewsTableName),
	}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rv entities.Review) (entities.Review, error) {
	it := toReviewItem(rv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Review{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#booking_id)"),
		ExpressionAttributeNames: map[string]string{
			"#booking_id": "booking_id",
		},
	})
	if err != nil {
		return entities.Review{}, translateConditionErr(err)
	}
	return rv, nil
}

func (r *ReviewDynamoRepository) GetByID(ctx context.Context, id string) (entities.Review, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reviewsIDIndex),
		KeyConditionExpression: aws.String("review_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Review{}, err
	}
	if len(out.Items) == 0 {
		return entities.Review{}, nil
	}

	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Review{}, err
	}
	return fromReviewItem(it), nil
}

func (r *ReviewDynamoRepository) GetByBookingID(ctx context.Context, bookingID string) (entities.Review, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"booking_id": &types.AttributeValueMemberS{Value: bookingID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Review{}, err
	}
	if len(out.Item) == 0 {
		return entities.Review{}, nil
	}

	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Review{}, err
	}
	return fromReviewItem(it), nil
}

func (r *ReviewDynamoRepository) ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.Review, error) {
	return r.queryIndex(ctx, reviewsMechanicIDIndex, "mechanic_id", mechanicID)
}

func (r *ReviewDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Review, error) {
	return r.queryIndex(ctx, reviewsUserIDIndex, "user_id", userID)
}

func (r *ReviewDynamoRepository) SetMechanicResponse(ctx context.Context, id, response string) (entities.Review, error) {
	rv, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Review{}, err
	}
	if rv.ID == "" {
		return entities.Review{}, nil
	}

	return r.update(ctx, rv.BookingID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #mechanic_response = :response, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":response":   &types.AttributeValueMemberS{Value: response},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#mechanic_response": "mechanic_response",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ReviewDynamoRepository) IncrementHelpfulVotes(ctx context.Context, id string) (entities.Review, error) {
	rv, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Review{}, err
	}
	if rv.ID == "" {
		return entities.Review{}, nil
	}

	return r.update(ctx, rv.BookingID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "ADD #helpful_votes :one SET #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#helpful_votes": "helpful_votes",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ReviewDynamoRepository) update(
	ctx context.Context,
	bookingID string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Review, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"booking_id": &types.AttributeValueMemberS{Value: bookingID},
		},
		ConditionExpression:       aws.String("attribute_exists(#booking_id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#booking_id": "booking_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Review{}, nil
		}
		return entities.Review{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Review{}, nil
	}
	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Review{}, err
	}
	return fromReviewItem(it), nil
}

func (r *ReviewDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Review, error) {
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

	items := make([]entities.Review, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reviewItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromReviewItem(it))
	}
	return items, nil
}

func toReviewItem(rv entities.Review) reviewItem {
	return reviewItem{
		BookingID:        rv.BookingID,
		ID:               rv.ID,
		UserID:           rv.UserID,
		MechanicID:       rv.MechanicID,
		Rating:           rv.Rating,
		Comment:          rv.Comment,
		MechanicResponse: rv.MechanicResponse,
		HelpfulVotes:     rv.HelpfulVotes,
		Verified:         rv.Verified,
		CreatedAt:        rv.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        rv.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReviewItem(it reviewItem) entities.Review {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Review{
		ID:               it.ID,
		UserID:           it.UserID,
		MechanicID:       it.MechanicID,
		BookingID:        it.BookingID,
		Rating:           it.Rating,
		Comment:          it.Comment,
		MechanicResponse: it.MechanicResponse,
		HelpfulVotes:     it.HelpfulVotes,
		Verified:         it.Verified,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
