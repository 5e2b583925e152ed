package withdrawals

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/dto"
	"github.com/GlebRadaev/gigledger/internal/handlers/apierr"
	"github.com/GlebRadaev/gigledger/internal/service/withdrawalservice"
	"github.com/GlebRadaev/gigledger/pkg/auth"
	"github.com/GlebRadaev/gigledger/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Service interface {
	RequestWithdrawal(ctx context.Context, caller domain.Caller, in withdrawalservice.RequestInput) (*domain.Withdrawal, error)
	SettleWithdrawal(ctx context.Context, caller domain.Caller, withdrawalID uuid.UUID, decision domain.WithdrawalStatus, note *string) (*domain.Withdrawal, error)
	ListWithdrawals(ctx context.Context, caller domain.Caller) ([]domain.Withdrawal, error)
	ListPending(ctx context.Context, caller domain.Caller) ([]domain.Withdrawal, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// Withdraw godoc
//
//	@Summary		Request a payout
//	@Description	Reserves amount plus the configured fee from the seller's balance and queues the payout for an operator.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		201		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Caller is not a seller"
//	@Failure		422		{object}	utils.Response	"Below minimum, insufficient balance or invalid destination"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals [post]
func (h *WithdrawalHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	withdrawal, err := h.withdrawalService.RequestWithdrawal(r.Context(), caller, withdrawalservice.RequestInput{
		Amount:            req.Amount,
		Method:            req.Method,
		DestinationNumber: req.DestinationNumber,
	})
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewWithdrawalResponse(withdrawal))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	The seller's withdrawals, newest first.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Withdrawals history"
//	@Success		204	{object}	utils.Response				"Withdrawals not found"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.withdrawalService.ListWithdrawals)
}

// GetPending godoc
//
//	@Summary		Operator payout queue
//	@Description	Pending withdrawals of all sellers, oldest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Success		204	{object}	utils.Response	"Queue is empty"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not an operator"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/pending [get]
func (h *WithdrawalHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.withdrawalService.ListPending)
}

// Settle godoc
//
//	@Summary		Settle a withdrawal
//	@Description	completed closes the payout; rejected refunds amount plus fee to the seller.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			withdrawalID	path		string							true	"Withdrawal ID"
//	@Param			request			body		dto.SettleWithdrawalRequestDTO	true	"Decision"
//	@Success		200				{object}	dto.WithdrawalResponseDTO
//	@Failure		400				{object}	utils.Response	"Malformed request"
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		403				{object}	utils.Response	"Caller is not an operator"
//	@Failure		404				{object}	utils.Response	"Withdrawal not found"
//	@Failure		409				{object}	utils.Response	"Withdrawal already settled"
//	@Failure		422				{object}	utils.Response	"Unknown decision"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{withdrawalID}/settle [post]
func (h *WithdrawalHandler) Settle(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	withdrawalID, err := uuid.Parse(chi.URLParam(r, "withdrawalID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid withdrawal id")
		return
	}
	var req dto.SettleWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	withdrawal, err := h.withdrawalService.SettleWithdrawal(r.Context(), caller, withdrawalID, domain.WithdrawalStatus(req.Decision), req.Note)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalResponse(withdrawal))
}

func (h *WithdrawalHandler) list(w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, caller domain.Caller) ([]domain.Withdrawal, error),
) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	withdrawals, err := fn(r.Context(), caller)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalsResponse(withdrawals))
}
