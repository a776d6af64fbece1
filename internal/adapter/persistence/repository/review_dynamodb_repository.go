package repository

import (
	"context"
	"sort"

	"shopsphere/internal/domain/entities"
	"shopsphere/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultReviewsTableName = "reviews"

type reviewItem struct {
	ID        string `dynamodbav:"id"`
	ProductID string `dynamodbav:"product_id"`
	UserID    string `dynamodbav:"user_id"`
	UserName  string `dynamodbav:"user_name"`
	Rating    int    `dynamodbav:"rating"`
	Comment   string `dynamodbav:"comment"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ReviewDynamoRepository persists Review entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
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

func (r *ReviewDynamoRepository) Create(ctx context.Context, review entities.Review) (entities.Review, error) {
	av, err := attributevalue.MarshalMap(toReviewItem(review))
	if err != nil {
		return entities.Review{}, err
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
		return entities.Review{}, err
	}
	return review, nil
}

func (r *ReviewDynamoRepository) ListByProductID(ctx context.Context, productID string) ([]entities.Review, error) {
	reviews, err := r.scanByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (r *ReviewDynamoRepository) GetByProductAndUser(ctx context.Context, productID, userID string) (entities.Review, error) {
	reviews, err := r.scanByProduct(ctx, productID)
	if err != nil {
		return entities.Review{}, err
	}
	for _, review := range reviews {
		if review.UserID == userID {
			return review, nil
		}
	}
	return entities.Review{}, nil
}

func (r *ReviewDynamoRepository) scanByProduct(ctx context.Context, productID string) ([]entities.Review, error) {
	reviews := []entities.Review{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#product_id = :product_id"),
			ExpressionAttributeNames: map[string]string{
				"#product_id": "product_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":product_id": &types.AttributeValueMemberS{Value: productID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []reviewItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			reviews = append(reviews, fromReviewItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return reviews, nil
}

func toReviewItem(r entities.Review) reviewItem {
	return reviewItem{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: formatTime(r.CreatedAt),
	}
}

func fromReviewItem(it reviewItem) entities.Review {
	return entities.Review{
		ID:        it.ID,
		ProductID: it.ProductID,
		UserID:    it.UserID,
		UserName:  it.UserName,
		Rating:    it.Rating,
		Comment:   it.Comment,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
