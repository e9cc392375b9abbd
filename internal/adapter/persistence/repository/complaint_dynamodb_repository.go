package repository

import (
	"context"
	"errors"
	"os"
	"sort"
	"time"

	"civic_pulse/internal/domain/entities"
	"civic_pulse/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultComplaintsTableName = "complaints"

type complaintItem struct {
	ID          string   `dynamodbav:"id"`
	Group       string   `dynamodbav:"group"`
	Title       string   `dynamodbav:"title"`
	Description string   `dynamodbav:"description,omitempty"`
	Lat         *float64 `dynamodbav:"lat,omitempty"`
	Lon         *float64 `dynamodbav:"lon,omitempty"`
	Risk        int      `dynamodbav:"risk"`
	Photo       string   `dynamodbav:"photo,omitempty"`
	Status      string   `dynamodbav:"status"`
	CreatedAt   string   `dynamodbav:"created_at"`
}

// ComplaintDynamoRepository persists Complaint entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Listing scans the full table and orders in memory by created_at; expected
// volume is small and the API exposes no pagination.

type ComplaintDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IComplaintRepository = (*ComplaintDynamoRepository)(nil)

func NewComplaintDynamoRepository(ddb *dynamodb.Client) *ComplaintDynamoRepository {
	return &ComplaintDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMPLAINTS_TABLE", defaultComplaintsTableName),
	}
}

func (r *ComplaintDynamoRepository) Create(ctx context.Context, c entities.Complaint) (entities.Complaint, error) {
	it := toComplaintItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Complaint{}, err
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
		return entities.Complaint{}, err
	}
	return c, nil
}

func (r *ComplaintDynamoRepository) GetByID(ctx context.Context, id string) (entities.Complaint, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Complaint{}, err
	}
	if len(out.Item) == 0 {
		return entities.Complaint{}, nil
	}

	var it complaintItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Complaint{}, err
	}
	return fromComplaintItem(it), nil
}

func (r *ComplaintDynamoRepository) List(ctx context.Context) ([]entities.Complaint, error) {
	items := make([]entities.Complaint, 0)

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
			var it complaintItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromComplaintItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *ComplaintDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ComplaintStatus) (entities.Complaint, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status"
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
		names := map[string]string{
			"#status": "status",
		}
		return expr, vals, names
	})
}

func (r *ComplaintDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Complaint, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Complaint{}, nil
		}
		return entities.Complaint{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Complaint{}, nil
	}
	var it complaintItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Complaint{}, err
	}
	return fromComplaintItem(it), nil
}

func toComplaintItem(c entities.Complaint) complaintItem {
	return complaintItem{
		ID:          c.ID,
		Group:       c.Group,
		Title:       c.Title,
		Description: c.Description,
		Lat:         c.Lat,
		Lon:         c.Lon,
		Risk:        c.Risk,
		Photo:       c.PhotoPath,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromComplaintItem(it complaintItem) entities.Complaint {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Complaint{
		ID:          it.ID,
		Group:       it.Group,
		Title:       it.Title,
		Description: it.Description,
		Lat:         it.Lat,
		Lon:         it.Lon,
		Risk:        it.Risk,
		PhotoPath:   it.Photo,
		Status:      entities.ComplaintStatus(it.Status),
		CreatedAt:   createdAt,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
