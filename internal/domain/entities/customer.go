package entities

import "time"

// Customer is a shop customer persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (uuid string, assigned by the service)
//
// first/last name and phone are denormalized into estimates when the
// customer is attached to one; deleting a customer does not touch the
// estimates that reference it.
type Customer struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
