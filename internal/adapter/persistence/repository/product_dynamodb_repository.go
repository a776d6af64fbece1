package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"shopsphere/internal/domain/entities"
	"shopsphere/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID             string   `dynamodbav:"id"`
	Name           string   `dynamodbav:"name"`
	Description    string   `dynamodbav:"description"`
	Category       string   `dynamodbav:"category"`
	Price          float64  `dynamodbav:"price"`
	CompareAtPrice float64  `dynamodbav:"compare_at_price"`
	Images         []string `dynamodbav:"images"`
	Stock          int      `dynamodbav:"stock"`
	Sizes          []string `dynamodbav:"sizes"`
	Colors         []string `dynamodbav:"colors"`
	Storage        []string `dynamodbav:"storage"`
	Brand          string   `dynamodbav:"brand"`
	SKU            string   `dynamodbav:"sku"`
	RatingAverage  float64  `dynamodbav:"rating_average"`
	RatingCount    int      `dynamodbav:"rating_count"`
	Featured       bool     `dynamodbav:"featured"`
	Active         bool     `dynamodbav:"active"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Catalog listings scan the table and apply filter/sort/pagination here;
// the catalog is small enough that a scan per listing is the simple,
// adequate access path.
type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context, f interfaces.ProductFilter) ([]entities.Product, int, error) {
	all, err := r.scanAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if f.ActiveOnly && !p.Active {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.MinPrice > 0 && p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		if f.MinRating > 0 && p.Rating.Average < f.MinRating {
			continue
		}
		if s := strings.TrimSpace(f.Search); s != "" && !matchesSearch(p, s) {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, f.Sort)

	total := len(matched)
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		return matched, total, nil
	}
	start := (f.Page - 1) * f.Limit
	if start >= total {
		return []entities.Product{}, total, nil
	}
	end := start + f.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r *ProductDynamoRepository) ListFeatured(ctx context.Context, limit int) ([]entities.Product, error) {
	all, err := r.scanAll(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]entities.Product, 0, limit)
	for _, p := range all {
		if p.Featured && p.Active {
			featured = append(featured, p)
		}
	}
	sortProducts(featured, "newest")
	if len(featured) > limit {
		featured = featured[:limit]
	}
	return featured, nil
}

func (r *ProductDynamoRepository) ListByCategory(ctx context.Context, category entities.ProductCategory) ([]entities.Product, error) {
	all, err := r.scanAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if p.Active && p.Category == category {
			matched = append(matched, p)
		}
	}
	sortProducts(matched, "newest")
	return matched, nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	return p, nil
}

// UpdateStock applies a signed delta atomically; a condition keeps the
// resulting stock non-negative so two concurrent checkouts cannot oversell.
func (r *ProductDynamoRepository) UpdateStock(ctx context.Context, id string, delta int) (entities.Product, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #stock >= :floor"),
		UpdateExpression:    aws.String("SET #stock = #stock + :delta, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#stock":      "stock",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta":      &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
			":floor":      &types.AttributeValueMemberN{Value: strconv.Itoa(-delta)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Product{}, err
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) UpdateRating(ctx context.Context, id string, average float64, count int) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #rating_average = :avg, #rating_count = :count"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#rating_average": "rating_average",
			"#rating_count":   "rating_count",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":avg":   &types.AttributeValueMemberN{Value: strconv.FormatFloat(average, 'f', -1, 64)},
			":count": &types.AttributeValueMemberN{Value: strconv.Itoa(count)},
		},
	})
	return err
}

func (r *ProductDynamoRepository) Count(ctx context.Context) (int, error) {
	all, err := r.scanAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (r *ProductDynamoRepository) CountLowStock(ctx context.Context, threshold int) (int, error) {
	all, err := r.scanAll(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range all {
		if p.Active && p.Stock < threshold {
			count++
		}
	}
	return count, nil
}

func (r *ProductDynamoRepository) scanAll(ctx context.Context) ([]entities.Product, error) {
	products := []entities.Product{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []productItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			products = append(products, fromProductItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return products, nil
}

func matchesSearch(p entities.Product, search string) bool {
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Name), s) ||
		strings.Contains(strings.ToLower(string(p.Category)), s) ||
		strings.Contains(strings.ToLower(p.Brand), s) ||
		strings.Contains(strings.ToLower(p.Description), s)
}

func sortProducts(products []entities.Product, order string) {
	switch order {
	case "price-asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price-desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "rating":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating.Average > products[j].Rating.Average })
	default: // newest
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	}
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Category:       string(p.Category),
		Price:          p.Price,
		CompareAtPrice: p.CompareAtPrice,
		Images:         p.Images,
		Stock:          p.Stock,
		Sizes:          p.Variants.Sizes,
		Colors:         p.Variants.Colors,
		Storage:        p.Variants.Storage,
		Brand:          p.Brand,
		SKU:            p.SKU,
		RatingAverage:  p.Rating.Average,
		RatingCount:    p.Rating.Count,
		Featured:       p.Featured,
		Active:         p.Active,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:             it.ID,
		Name:           it.Name,
		Description:    it.Description,
		Category:       entities.ProductCategory(it.Category),
		Price:          it.Price,
		CompareAtPrice: it.CompareAtPrice,
		Images:         it.Images,
		Stock:          it.Stock,
		Variants: entities.ProductVariants{
			Sizes:   it.Sizes,
			Colors:  it.Colors,
			Storage: it.Storage,
		},
		Brand: it.Brand,
		SKU:   it.SKU,
		Rating: entities.ProductRating{
			Average: it.RatingAverage,
			Count:   it.RatingCount,
		},
		Featured:  it.Featured,
		Active:    it.Active,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
