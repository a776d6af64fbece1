package request

import (
	"shopsphere/internal/domain/entities"
	"shopsphere/internal/usecase"
)

type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// UpdateProfileRequest carries optional profile fields; absent fields are
// left untouched.
type UpdateProfileRequest struct {
	Name    *string         `json:"name"`
	Phone   *string         `json:"phone"`
	Avatar  *string         `json:"avatar"`
	Address *AddressRequest `json:"address"`
}

func (r UpdateProfileRequest) ToUpdate() usecase.ProfileUpdate {
	update := usecase.ProfileUpdate{Name: r.Name, Phone: r.Phone, Avatar: r.Avatar}
	if r.Address != nil {
		update.Address = &entities.UserAddress{
			Street:  r.Address.Street,
			City:    r.Address.City,
			State:   r.Address.State,
			ZipCode: r.Address.ZipCode,
			Country: r.Address.Country,
		}
	}
	return update
}

type AdminUpdateUserRequest struct {
	Role   string `json:"role"`
	Active *bool  `json:"active"`
}
