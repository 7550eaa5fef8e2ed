package request

import "mechfinder/internal/usecase"

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	BasePrice   float64 `json:"base_price" binding:"required,gte=0"`
}

func (r ServiceRequest) ToInput() usecase.CreateServiceInput {
	return usecase.CreateServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		BasePrice:   r.BasePrice,
	}
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	BasePrice   *float64 `json:"base_price"`
	Active      *bool    `json:"active"`
}

func (r UpdateServiceRequest) ToInput() usecase.UpdateServiceInput {
	return usecase.UpdateServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		BasePrice:   r.BasePrice,
		Active:      r.Active,
	}
}
