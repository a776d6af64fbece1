package entities

import "time"

// Review is a product review persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - one review per (product_id, user_id); the use case enforces this
//     before creating.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
