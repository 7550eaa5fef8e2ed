package request

import "mechfinder/internal/usecase"

type VehicleRequest struct {
	Make         string `json:"make" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         int    `json:"year"`
	Registration string `json:"registration"`
}

func (r VehicleRequest) ToInput() usecase.VehicleInput {
	return usecase.VehicleInput{
		Make:         r.Make,
		Model:        r.Model,
		Year:         r.Year,
		Registration: r.Registration,
	}
}
