package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"shopsphere/internal/domain/entities"
	"shopsphere/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderLineItem struct {
	ProductID      string  `dynamodbav:"product_id"`
	Name           string  `dynamodbav:"name"`
	Image          string  `dynamodbav:"image"`
	Price          float64 `dynamodbav:"price"`
	Quantity       int     `dynamodbav:"quantity"`
	VariantSize    string  `dynamodbav:"variant_size"`
	VariantColor   string  `dynamodbav:"variant_color"`
	VariantStorage string  `dynamodbav:"variant_storage"`
}

type orderItem struct {
	ID              string          `dynamodbav:"id"`
	UserID          string          `dynamodbav:"user_id"`
	Items           []orderLineItem `dynamodbav:"items"`
	ShipName        string          `dynamodbav:"ship_name"`
	ShipPhone       string          `dynamodbav:"ship_phone"`
	ShipStreet      string          `dynamodbav:"ship_street"`
	ShipCity        string          `dynamodbav:"ship_city"`
	ShipState       string          `dynamodbav:"ship_state"`
	ShipZipCode     string          `dynamodbav:"ship_zip_code"`
	ShipCountry     string          `dynamodbav:"ship_country"`
	PaymentMethod   string          `dynamodbav:"payment_method"`
	PaymentID       string          `dynamodbav:"payment_id"`
	PaymentStatus   string          `dynamodbav:"payment_status"`
	PaymentUpdate   string          `dynamodbav:"payment_update_time"`
	PaymentEmail    string          `dynamodbav:"payment_email"`
	ItemsPrice      float64         `dynamodbav:"items_price"`
	ShippingPrice   float64         `dynamodbav:"shipping_price"`
	TaxPrice        float64         `dynamodbav:"tax_price"`
	DiscountPrice   float64         `dynamodbav:"discount_price"`
	CouponCode      string          `dynamodbav:"coupon_code"`
	TotalPrice      float64         `dynamodbav:"total_price"`
	Status          string          `dynamodbav:"status"`
	PaidAt          string          `dynamodbav:"paid_at"`
	DeliveredAt     string          `dynamodbav:"delivered_at"`
	CreatedAt       string          `dynamodbav:"created_at"`
	CreatedAtUnix   int64           `dynamodbav:"created_at_unix"`
	UpdatedAt       string          `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// created_at_unix duplicates the creation instant as a number because
// RFC3339Nano strings are not lexicographically ordered, and the forecast
// window needs a server-side ">=" filter.
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	orders, err := r.scan(ctx, aws.String("#user_id = :user_id"),
		map[string]string{"#user_id": "user_id"},
		map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		})
	if err != nil {
		return nil, err
	}
	sortOrdersNewestFirst(orders)
	return orders, nil
}

func (r *OrderDynamoRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	orders, err := r.scan(ctx, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	sortOrdersNewestFirst(orders)
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, deliveredAt *time.Time) (entities.Order, error) {
	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if deliveredAt != nil {
		expr += ", #delivered_at = :delivered_at"
		vals[":delivered_at"] = &types.AttributeValueMemberS{Value: formatTime(*deliveredAt)}
		names["#delivered_at"] = "delivered_at"
	}
	return r.update(ctx, id, expr, vals, names)
}

func (r *OrderDynamoRepository) MarkPaid(ctx context.Context, id string, result entities.PaymentResult, paidAt time.Time) (entities.Order, error) {
	expr := "SET #paid_at = :paid_at, #status = :status, #payment_id = :payment_id, " +
		"#payment_status = :payment_status, #payment_update_time = :payment_update_time, " +
		"#payment_email = :payment_email, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":paid_at":             &types.AttributeValueMemberS{Value: formatTime(paidAt)},
		":status":              &types.AttributeValueMemberS{Value: string(entities.OrderStatusProcessing)},
		":payment_id":          &types.AttributeValueMemberS{Value: result.ID},
		":payment_status":      &types.AttributeValueMemberS{Value: result.Status},
		":payment_update_time": &types.AttributeValueMemberS{Value: result.UpdateTime},
		":payment_email":       &types.AttributeValueMemberS{Value: result.EmailAddress},
		":updated_at":          &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
	}
	names := map[string]string{
		"#paid_at":             "paid_at",
		"#status":              "status",
		"#payment_id":          "payment_id",
		"#payment_status":      "payment_status",
		"#payment_update_time": "payment_update_time",
		"#payment_email":       "payment_email",
		"#updated_at":          "updated_at",
	}
	return r.update(ctx, id, expr, vals, names)
}

// SumProductUnitsSince totals the units of one product across non-cancelled
// orders created at or after since. The window and status filters run
// server-side; only matching orders cross the wire.
func (r *OrderDynamoRepository) SumProductUnitsSince(ctx context.Context, productID string, since time.Time) (int, error) {
	orders, err := r.scan(ctx,
		aws.String("#created_at_unix >= :since AND #status <> :cancelled"),
		map[string]string{
			"#created_at_unix": "created_at_unix",
			"#status":          "status",
		},
		map[string]types.AttributeValue{
			":since":     &types.AttributeValueMemberN{Value: strconv.FormatInt(since.UnixNano(), 10)},
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.OrderStatusCancelled)},
		})
	if err != nil {
		return 0, err
	}

	total := 0
	for _, o := range orders {
		for _, item := range o.Items {
			if item.ProductID == productID {
				total += item.Quantity
			}
		}
	}
	return total, nil
}

func (r *OrderDynamoRepository) Count(ctx context.Context) (int, error) {
	orders, err := r.scan(ctx, nil, nil, nil)
	if err != nil {
		return 0, err
	}
	return len(orders), nil
}

func (r *OrderDynamoRepository) SumPaidRevenue(ctx context.Context) (float64, error) {
	orders, err := r.scan(ctx, nil, nil, nil)
	if err != nil {
		return 0, err
	}

	revenue := 0.0
	for _, o := range orders {
		if o.Paid() && o.Status != entities.OrderStatusCancelled {
			revenue += o.TotalPrice
		}
	}
	return revenue, nil
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Order, error) {
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
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) scan(
	ctx context.Context,
	filterExpr *string,
	names map[string]string,
	values map[string]types.AttributeValue,
) ([]entities.Order, error) {
	orders := []entities.Order{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          filterExpr,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func sortOrdersNewestFirst(orders []entities.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, orderLineItem{
			ProductID:      item.ProductID,
			Name:           item.Name,
			Image:          item.Image,
			Price:          item.Price,
			Quantity:       item.Quantity,
			VariantSize:    item.Variant.Size,
			VariantColor:   item.Variant.Color,
			VariantStorage: item.Variant.Storage,
		})
	}
	return orderItem{
		ID:            o.ID,
		UserID:        o.UserID,
		Items:         lines,
		ShipName:      o.ShippingAddress.Name,
		ShipPhone:     o.ShippingAddress.Phone,
		ShipStreet:    o.ShippingAddress.Street,
		ShipCity:      o.ShippingAddress.City,
		ShipState:     o.ShippingAddress.State,
		ShipZipCode:   o.ShippingAddress.ZipCode,
		ShipCountry:   o.ShippingAddress.Country,
		PaymentMethod: string(o.PaymentMethod),
		PaymentID:     o.PaymentResult.ID,
		PaymentStatus: o.PaymentResult.Status,
		PaymentUpdate: o.PaymentResult.UpdateTime,
		PaymentEmail:  o.PaymentResult.EmailAddress,
		ItemsPrice:    o.ItemsPrice,
		ShippingPrice: o.ShippingPrice,
		TaxPrice:      o.TaxPrice,
		DiscountPrice: o.DiscountPrice,
		CouponCode:    o.CouponCode,
		TotalPrice:    o.TotalPrice,
		Status:        string(o.Status),
		PaidAt:        formatTimePtr(o.PaidAt),
		DeliveredAt:   formatTimePtr(o.DeliveredAt),
		CreatedAt:     formatTime(o.CreatedAt),
		CreatedAtUnix: o.CreatedAt.UnixNano(),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Image:     line.Image,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Variant: entities.ItemVariant{
				Size:    line.VariantSize,
				Color:   line.VariantColor,
				Storage: line.VariantStorage,
			},
		})
	}
	return entities.Order{
		ID:     it.ID,
		UserID: it.UserID,
		Items:  items,
		ShippingAddress: entities.ShippingAddress{
			Name:    it.ShipName,
			Phone:   it.ShipPhone,
			Street:  it.ShipStreet,
			City:    it.ShipCity,
			State:   it.ShipState,
			ZipCode: it.ShipZipCode,
			Country: it.ShipCountry,
		},
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		PaymentResult: entities.PaymentResult{
			ID:           it.PaymentID,
			Status:       it.PaymentStatus,
			UpdateTime:   it.PaymentUpdate,
			EmailAddress: it.PaymentEmail,
		},
		ItemsPrice:    it.ItemsPrice,
		ShippingPrice: it.ShippingPrice,
		TaxPrice:      it.TaxPrice,
		DiscountPrice: it.DiscountPrice,
		CouponCode:    it.CouponCode,
		TotalPrice:    it.TotalPrice,
		Status:        entities.OrderStatus(it.Status),
		PaidAt:        parseTimePtr(it.PaidAt),
		DeliveredAt:   parseTimePtr(it.DeliveredAt),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
