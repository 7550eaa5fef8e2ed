package request

import "mechfinder/internal/usecase"

type B2BApplyRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	ContactName string `json:"contact_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
}

func (r B2BApplyRequest) ToInput() usecase.B2BApplyInput {
	return usecase.B2BApplyInput{
		CompanyName: r.CompanyName,
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone,
		Message:     r.Message,
	}
}

type B2BDecisionRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}
