package dto

import "github.com/rf-toolkit/linkbudget/internal/entity"

// LinkBudgetRequest is the JSON API request body. Pointers distinguish a
// missing field from a legitimate zero value.
type LinkBudgetRequest struct {
	TxPower       *float64 `json:"tx_power" binding:"required,gte=-30,lte=60" example:"20"`
	TxGain        *float64 `json:"tx_gain" binding:"required,gte=-20,lte=50" example:"10"`
	FreeSpaceLoss *float64 `json:"free_space_loss" binding:"required,gte=0,lte=200" example:"90"`
	MiscLoss      *float64 `json:"misc_loss" binding:"required,gte=0,lte=50" example:"1"`
	RxGain        *float64 `json:"rx_gain" binding:"required,gte=-20,lte=50" example:"5"`
	RxLoss        *float64 `json:"rx_loss" binding:"required,gte=0,lte=50" example:"0"`
}

// ToEntity -.
func (r *LinkBudgetRequest) ToEntity() *entity.LinkBudgetInput {
	return &entity.LinkBudgetInput{
		TxPower:       *r.TxPower,
		TxGain:        *r.TxGain,
		FreeSpaceLoss: *r.FreeSpaceLoss,
		MiscLoss:      *r.MiscLoss,
		RxGain:        *r.RxGain,
		RxLoss:        *r.RxLoss,
	}
}

// LinkBudgetResponse -.
type LinkBudgetResponse struct {
	ReceivedPower string `json:"received_power" example:"-56.00"`
	Unit          string `json:"unit" example:"dBm"`
	Previous      string `json:"previous,omitempty" example:"-85.00"`
}

// LastCalculationResponse -.
type LastCalculationResponse struct {
	LastCalculation string `json:"last_calculation" example:"-56.00"`
}
