package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/gigledger/docs"
	"github.com/GlebRadaev/gigledger/internal/domain"
	deliveryhandlers "github.com/GlebRadaev/gigledger/internal/handlers/deliveries"
	ordershandlers "github.com/GlebRadaev/gigledger/internal/handlers/orders"
	wallethandlers "github.com/GlebRadaev/gigledger/internal/handlers/wallet"
	withdrawalhandlers "github.com/GlebRadaev/gigledger/internal/handlers/withdrawals"
	"github.com/GlebRadaev/gigledger/internal/service"
	"github.com/GlebRadaev/gigledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
}

type DeliveryHandler interface {
	SubmitDelivery(w http.ResponseWriter, r *http.Request)
	GetDeliveries(w http.ResponseWriter, r *http.Request)
	AcceptDelivery(w http.ResponseWriter, r *http.Request)
	RejectDelivery(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	GetPending(w http.ResponseWriter, r *http.Request)
	Settle(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OrderHandler      OrderHandler
	DeliveryHandler   DeliveryHandler
	WithdrawalHandler WithdrawalHandler
	WalletHandler     WalletHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		OrderHandler:      ordershandlers.New(s.OrderService),
		DeliveryHandler:   deliveryhandlers.New(s.DeliveryService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		WalletHandler:     wallethandlers.New(s.WalletService),
		jwtService:        jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	buyer := auth.RequireRole(domain.RoleBuyer)
	seller := auth.RequireRole(domain.RoleSeller)
	operator := auth.RequireRole(domain.RoleOperator)

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwtService))

		r.Route("/orders", func(r chi.Router) {
			r.With(buyer).Post("/", h.OrderHandler.CreateOrder)
			r.Get("/", h.OrderHandler.GetOrders)
			r.Route("/{orderID}", func(r chi.Router) {
				r.Get("/", h.OrderHandler.GetOrder)
				r.With(seller).Post("/deliveries", h.DeliveryHandler.SubmitDelivery)
				r.Get("/deliveries", h.DeliveryHandler.GetDeliveries)
			})
		})
		r.Route("/deliveries/{deliveryID}", func(r chi.Router) {
			r.Use(buyer)
			r.Post("/accept", h.DeliveryHandler.AcceptDelivery)
			r.Post("/reject", h.DeliveryHandler.RejectDelivery)
		})
		r.Route("/withdrawals", func(r chi.Router) {
			r.Use(seller)
			r.Post("/", h.WithdrawalHandler.Withdraw)
			r.Get("/", h.WithdrawalHandler.GetWithdrawals)
		})
		r.With(seller).Get("/wallet", h.WalletHandler.GetWallet)
		r.Route("/admin/withdrawals", func(r chi.Router) {
			r.Use(operator)
			r.Get("/pending", h.WithdrawalHandler.GetPending)
			r.Post("/{withdrawalID}/settle", h.WithdrawalHandler.Settle)
		})
	})

	return r
}
