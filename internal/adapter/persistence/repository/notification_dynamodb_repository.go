package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationsUserIDIndex      = "user_id-index"
)

type notificationItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Type      string `dynamodbav:"type"`
	Title     string `dynamodbav:"title"`
	Message   string `dynamodbav:"message,omitempty"`
	EntityID  string `dynamodbav:"entity_id,omitempty"`
	IsRead    bool   `dynamodbav:"is_read"`
	ReadAt    string `dynamodbav:"read_at,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	it := toNotificationItem(n)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Notification{}, err
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
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Notification{}, err
	}
	if len(out.Item) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

// ListByUserID returns the user's notifications newest first.
func (r *NotificationDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Notification, 0, len(out.Items))
	for _, raw := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNotificationItem(it))
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string, readAt time.Time) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_read = :read, #read_at = :read_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#is_read": "is_read",
			"#read_at": "read_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read":    &types.AttributeValueMemberBOOL{Value: true},
			":read_at": &types.AttributeValueMemberS{Value: readAt.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Notification{}, translateConditionErr(err)
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

// MarkAllRead flips every unread notification for the user. Items race with
// concurrent MarkRead calls, so individual condition failures are skipped.
func (r *NotificationDynamoRepository) MarkAllRead(ctx context.Context, userID string, readAt time.Time) (int, error) {
	all, err := r.ListByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	flipped := 0
	for _, n := range all {
		if n.IsRead {
			continue
		}
		if _, err := r.MarkRead(ctx, n.ID, readAt); err != nil {
			if errors.Is(err, interfaces.ErrConditionFailed) {
				continue
			}
			return flipped, err
		}
		flipped++
	}
	return flipped, nil
}

func (r *NotificationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toNotificationItem(n entities.Notification) notificationItem {
	it := notificationItem{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		EntityID:  n.EntityID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !n.ReadAt.IsZero() {
		it.ReadAt = n.ReadAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromNotificationItem(it notificationItem) entities.Notification {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	readAt, _ := time.Parse(time.RFC3339Nano, it.ReadAt)
	return entities.Notification{
		ID:        it.ID,
		UserID:    it.UserID,
		Type:      entities.NotificationType(it.Type),
		Title:     it.Title,
		Message:   it.Message,
		EntityID:  it.EntityID,
		IsRead:    it.IsRead,
		ReadAt:    readAt,
		CreatedAt: createdAt,
	}
}
