package request

import (
	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase"
)

type AddressRequest struct {
	Street   string `json:"street"`
	Suburb   string `json:"suburb"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
}

func (r AddressRequest) toEntity() entities.Address {
	return entities.Address{
		Street:   r.Street,
		Suburb:   r.Suburb,
		State:    r.State,
		Postcode: r.Postcode,
	}
}

type MechanicProfileRequest struct {
	BusinessName    string         `json:"business_name" binding:"required"`
	Phone           string         `json:"phone" binding:"required"`
	Description     string         `json:"description"`
	Address         AddressRequest `json:"address"`
	ServicesOffered []string       `json:"services_offered"`
}

func (r MechanicProfileRequest) ToInput() usecase.MechanicProfileInput {
	return usecase.MechanicProfileInput{
		BusinessName:    r.BusinessName,
		Phone:           r.Phone,
		Description:     r.Description,
		Address:         r.Address.toEntity(),
		ServicesOffered: r.ServicesOffered,
	}
}

// UpdateMechanicRequest relaxes the required fields so partial updates work.
type UpdateMechanicRequest struct {
	BusinessName    string         `json:"business_name"`
	Phone           string         `json:"phone"`
	Description     string         `json:"description"`
	Address         AddressRequest `json:"address"`
	ServicesOffered []string       `json:"services_offered"`
}

func (r UpdateMechanicRequest) ToInput() usecase.MechanicProfileInput {
	return usecase.MechanicProfileInput{
		BusinessName:    r.BusinessName,
		Phone:           r.Phone,
		Description:     r.Description,
		Address:         r.Address.toEntity(),
		ServicesOffered: r.ServicesOffered,
	}
}
