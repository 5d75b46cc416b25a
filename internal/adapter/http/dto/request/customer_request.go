package request

import "rvroofworks/internal/domain/entities"

// CustomerRequest is the payload for creating or updating a customer.
type CustomerRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
		Address:     r.Address,
	}
}
