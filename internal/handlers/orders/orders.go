package orders

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/dto"
	"github.com/GlebRadaev/gigledger/internal/handlers/apierr"
	"github.com/GlebRadaev/gigledger/internal/service/orderservice"
	"github.com/GlebRadaev/gigledger/pkg/auth"
	"github.com/GlebRadaev/gigledger/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Service interface {
	CreateOrder(ctx context.Context, caller domain.Caller, in orderservice.CreateOrderInput) (*orderservice.CreateOrderResult, error)
	GetOrder(ctx context.Context, caller domain.Caller, orderID uuid.UUID) (*domain.Order, error)
	ListOrders(ctx context.Context, caller domain.Caller) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
//
//	@Summary		Pay for a listing
//	@Description	Record the buyer's external payment and hold it in escrow until a delivery is accepted.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Payment details"
//	@Success		201		{object}	dto.CreateOrderResponseDTO	"Order paid and held in escrow"
//	@Failure		400		{object}	utils.Response				"Malformed request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Caller is not a buyer"
//	@Failure		404		{object}	utils.Response				"Listing not found"
//	@Failure		409		{object}	utils.Response				"Payment already submitted"
//	@Failure		422		{object}	utils.Response				"Missing field or amount mismatch"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid listing id")
		return
	}

	result, err := h.orderService.CreateOrder(r.Context(), caller, orderservice.CreateOrderInput{
		ListingID:     listingID,
		PaymentMethod: req.PaymentMethod,
		ExternalTxID:  req.ExternalTxID,
		Amount:        req.Amount,
		PayoutNumber:  req.PayoutNumber,
	})
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateOrderResponseDTO{
		Order:         dto.NewOrderResponse(result.Order),
		PaymentID:     result.Payment.ID.String(),
		TransactionID: result.Transaction.ID.String(),
	})
}

// GetOrders godoc
//
//	@Summary		List the caller's orders
//	@Description	Orders where the caller is the buyer or the seller, newest first.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Success		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orderService.ListOrders(r.Context(), caller)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.OrderResponseDTO, len(orders))
	for i := range orders {
		response[i] = dto.NewOrderResponse(&orders[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary		Get one order
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		string	true	"Order ID"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed order id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Caller is not a party to the order"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
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

	order, err := h.orderService.GetOrder(r.Context(), caller, orderID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}
