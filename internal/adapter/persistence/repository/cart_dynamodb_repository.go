package repository

import (
	"context"

	"shopsphere/internal/domain/entities"
	"shopsphere/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCartsTableName = "carts"

type cartLineItem struct {
	ID             string `dynamodbav:"id"`
	ProductID      string `dynamodbav:"product_id"`
	Quantity       int    `dynamodbav:"quantity"`
	VariantSize    string `dynamodbav:"variant_size"`
	VariantColor   string `dynamodbav:"variant_color"`
	VariantStorage string `dynamodbav:"variant_storage"`
}

type cartItem struct {
	UserID     string         `dynamodbav:"user_id"`
	Items      []cartLineItem `dynamodbav:"items"`
	CouponCode string         `dynamodbav:"coupon_code"`
	Discount   float64        `dynamodbav:"discount"`
	CreatedAt  string         `dynamodbav:"created_at"`
	UpdatedAt  string         `dynamodbav:"updated_at"`
}

// CartDynamoRepository persists Cart entities in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
//
// Using the user id as PK guarantees one cart per user; the whole cart is
// written as a single document on every mutation.
type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

func (r *CartDynamoRepository) Get(ctx context.Context, userID string) (entities.Cart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{}, nil
	}

	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it), nil
}

func (r *CartDynamoRepository) Save(ctx context.Context, c entities.Cart) (entities.Cart, error) {
	av, err := attributevalue.MarshalMap(toCartItem(c))
	if err != nil {
		return entities.Cart{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Cart{}, err
	}
	return c, nil
}

func toCartItem(c entities.Cart) cartItem {
	lines := make([]cartLineItem, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, cartLineItem{
			ID:             item.ID,
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			VariantSize:    item.Variant.Size,
			VariantColor:   item.Variant.Color,
			VariantStorage: item.Variant.Storage,
		})
	}
	return cartItem{
		UserID:     c.UserID,
		Items:      lines,
		CouponCode: c.CouponCode,
		Discount:   c.Discount,
		CreatedAt:  formatTime(c.CreatedAt),
		UpdatedAt:  formatTime(c.UpdatedAt),
	}
}

func fromCartItem(it cartItem) entities.Cart {
	items := make([]entities.CartItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.CartItem{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Variant: entities.ItemVariant{
				Size:    line.VariantSize,
				Color:   line.VariantColor,
				Storage: line.VariantStorage,
			},
		})
	}
	return entities.Cart{
		UserID:     it.UserID,
		Items:      items,
		CouponCode: it.CouponCode,
		Discount:   it.Discount,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
