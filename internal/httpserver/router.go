package httpserver

import (
	"context"
	"errors"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/Godson026/sic-agent-app/internal/domain"
)

// ClientService is the slice of the client service the routes need.
type ClientService interface {
	Register(ctx context.Context, in domain.ClientInput) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	ByPolicyNumber(ctx context.Context, policyNumber string) (*domain.Client, error)
}

// PaymentService is the slice of the payment service the routes need.
type PaymentService interface {
	Record(ctx context.Context, in domain.PaymentInput) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	ByDate(ctx context.Context, date string) ([]domain.Payment, error)
}

// Deps carries the services the router depends on.
type Deps struct {
	ClientSvc  ClientService
	PaymentSvc PaymentService
}

// buildRouter wires routes for the office API. The agent web UI runs on
// a different origin, so CORS stays wide open.
func buildRouter(log *logrus.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.ClientSvc == nil {
		return nil, errors.New("httpserver: client service is required")
	}
	if deps.PaymentSvc == nil {
		return nil, errors.New("httpserver: payment service is required")
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(log.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/clients", listClientsHandler(deps.ClientSvc))
		api.POST("/clients", registerClientHandler(deps.ClientSvc))
		api.GET("/clients/:policyNumber", getClientHandler(deps.ClientSvc))

		api.GET("/payments", listPaymentsHandler(deps.PaymentSvc))
		api.POST("/payments", recordPaymentHandler(deps.PaymentSvc))
		api.GET("/payments/date/:date", paymentsByDateHandler(deps.PaymentSvc))

		api.POST("/sync", syncHandler(log, deps.ClientSvc, deps.PaymentSvc))
	}

	return router, nil
}
