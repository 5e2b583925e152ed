package deliveries

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/dto"
	"github.com/GlebRadaev/gigledger/internal/handlers/apierr"
	"github.com/GlebRadaev/gigledger/pkg/auth"
	"github.com/GlebRadaev/gigledger/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Service interface {
	SubmitDelivery(ctx context.Context, caller domain.Caller, orderID uuid.UUID, artifact string) (*domain.Delivery, error)
	AcceptDelivery(ctx context.Context, caller domain.Caller, deliveryID uuid.UUID) (*domain.Delivery, error)
	RejectDelivery(ctx context.Context, caller domain.Caller, deliveryID uuid.UUID) (*domain.Delivery, error)
	ListDeliveries(ctx context.Context, caller domain.Caller, orderID uuid.UUID) ([]domain.Delivery, error)
}

type DeliveryHandler struct {
	deliveryService Service
}

func New(deliveryService Service) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryService: deliveryService,
	}
}

// SubmitDelivery godoc
//
//	@Summary		Submit work for an order
//	@Description	The seller attaches a work artifact to a paid order. An order may receive several deliveries.
//	@Tags			Deliveries
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		string							true	"Order ID"
//	@Param			request	body		dto.SubmitDeliveryRequestDTO	true	"Artifact location"
//	@Success		201		{object}	dto.DeliveryResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Caller is not the order's seller"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Order already completed"
//	@Failure		422		{object}	utils.Response	"Artifact location missing"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/deliveries [post]
func (h *DeliveryHandler) SubmitDelivery(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var req dto.SubmitDeliveryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	delivery, err := h.deliveryService.SubmitDelivery(r.Context(), caller, orderID, req.ArtifactLocation)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewDeliveryResponse(delivery))
}

// GetDeliveries godoc
//
//	@Summary		List deliveries of an order
//	@Tags			Deliveries
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		string	true	"Order ID"
//	@Success		200		{array}		dto.DeliveryResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed order id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Caller is not a party to the order"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/deliveries [get]
func (h *DeliveryHandler) GetDeliveries(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	deliveries, err := h.deliveryService.ListDeliveries(r.Context(), caller, orderID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	response := make([]dto.DeliveryResponseDTO, len(deliveries))
	for i := range deliveries {
		response[i] = dto.NewDeliveryResponse(&deliveries[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AcceptDelivery godoc
//
//	@Summary		Accept a delivery
//	@Description	Completes the order and releases the escrowed amount to the seller's balance. Other undecided deliveries of the order are rejected.
//	@Tags			Deliveries
//	@Security		BearerAuth
//	@Produce		json
//	@Param			deliveryID	path		string	true	"Delivery ID"
//	@Success		200			{object}	dto.DeliveryResponseDTO
//	@Failure		400			{object}	utils.Response	"Malformed delivery id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Caller is not the order's buyer"
//	@Failure		404			{object}	utils.Response	"Delivery not found"
//	@Failure		409			{object}	utils.Response	"Delivery already decided or order completed"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/deliveries/{deliveryID}/accept [post]
func (h *DeliveryHandler) AcceptDelivery(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.deliveryService.AcceptDelivery)
}

// RejectDelivery godoc
//
//	@Summary		Reject a delivery
//	@Description	Records the rejection. The order stays paid and the seller may submit again.
//	@Tags			Deliveries
//	@Security		BearerAuth
//	@Produce		json
//	@Param			deliveryID	path		string	true	"Delivery ID"
//	@Success		200			{object}	dto.DeliveryResponseDTO
//	@Failure		400			{object}	utils.Response	"Malformed delivery id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Caller is not the order's buyer"
//	@Failure		404			{object}	utils.Response	"Delivery not found"
//	@Failure		409			{object}	utils.Response	"Delivery already decided or order completed"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/deliveries/{deliveryID}/reject [post]
func (h *DeliveryHandler) RejectDelivery(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.deliveryService.RejectDelivery)
}

func (h *DeliveryHandler) decide(w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, caller domain.Caller, deliveryID uuid.UUID) (*domain.Delivery, error),
) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	deliveryID, err := uuid.Parse(chi.URLParam(r, "deliveryID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid delivery id")
		return
	}

	delivery, err := fn(r.Context(), caller, deliveryID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDeliveryResponse(delivery))
}
