package dto

import (
	"time"

	"github.com/GlebRadaev/gigledger/internal/domain"
)

type SubmitDeliveryRequestDTO struct {
	ArtifactLocation string `json:"artifact_location" example:"s3://deliveries/A.zip"`
}

type DeliveryResponseDTO struct {
	ID               string  `json:"id"`
	OrderID          string  `json:"order_id"`
	ArtifactLocation string  `json:"artifact_location" example:"s3://deliveries/A.zip"`
	Status           string  `json:"status" example:"pending"`
	Decision         *string `json:"decision,omitempty" example:"rejected"`
	CreatedAt        string  `json:"created_at" example:"2024-12-09T16:09:57Z"`
	DecidedAt        *string `json:"decided_at,omitempty"`
}

func NewDeliveryResponse(d *domain.Delivery) DeliveryResponseDTO {
	resp := DeliveryResponseDTO{
		ID:               d.ID.String(),
		OrderID:          d.OrderID.String(),
		ArtifactLocation: d.ArtifactLocation,
		Status:           string(d.Status),
		CreatedAt:        d.CreatedAt.Format(time.RFC3339),
		DecidedAt:        formatTime(d.DecidedAt),
	}
	if d.Decision != nil {
		decision := string(*d.Decision)
		resp.Decision = &decision
	}
	return resp
}
