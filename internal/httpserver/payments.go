package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Godson026/sic-agent-app/internal/domain"
)

func listPaymentsHandler(svc PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		payments, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load payments"})
			return
		}
		if payments == nil {
			payments = []domain.Payment{}
		}
		c.JSON(http.StatusOK, payments)
	}
}

func recordPaymentHandler(svc PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.PaymentInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		payment, err := svc.Record(c.Request.Context(), in)
		if domain.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record payment"})
			return
		}
		c.JSON(http.StatusCreated, payment)
	}
}

func paymentsByDateHandler(svc PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		payments, err := svc.ByDate(c.Request.Context(), c.Param("date"))
		if domain.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load payments"})
			return
		}
		if payments == nil {
			payments = []domain.Payment{}
		}
		c.JSON(http.StatusOK, payments)
	}
}
