package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Godson026/sic-agent-app/internal/domain"
)

type syncRequest struct {
	BatchID  string           `json:"batchId"`
	Clients  []domain.Client  `json:"clients"`
	Payments []domain.Payment `json:"payments"`
}

// syncHandler ingests an agent batch. Each record is created through
// the same services the direct routes use; resubmitted payments create
// new rows, and client resubmissions upsert by policy number. A failed
// record aborts the batch with a non-2xx status so the agent retries
// the whole thing.
func syncHandler(log *logrus.Logger, clients ClientService, payments PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req syncRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		entry := log.WithFields(logrus.Fields{
			"batch":    req.BatchID,
			"clients":  len(req.Clients),
			"payments": len(req.Payments),
		})
		entry.Info("sync batch received")

		for _, client := range req.Clients {
			in := domain.ClientInput{
				FullName:         client.FullName,
				Age:              client.Age,
				Gender:           client.Gender,
				Occupation:       client.Occupation,
				ContactNumber:    client.ContactNumber,
				PaymentFrequency: client.PaymentFrequency,
				PremiumAmount:    client.PremiumAmount,
				PolicyNumber:     client.PolicyNumber,
				IsTemporary:      client.IsTemporary,
			}
			if _, err := clients.Register(c.Request.Context(), in); err != nil {
				if domain.IsValidation(err) {
					c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
					return
				}
				entry.WithError(err).Error("sync batch client failed")
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to sync clients"})
				return
			}
		}

		for _, payment := range req.Payments {
			in := domain.PaymentInput{
				PolicyNumber: payment.PolicyNumber,
				ClientName:   payment.ClientName,
				Amount:       payment.Amount,
				PaymentMode:  payment.PaymentMode,
				Timestamp:    payment.Timestamp,
			}
			if _, err := payments.Record(c.Request.Context(), in); err != nil {
				if domain.IsValidation(err) {
					c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
					return
				}
				entry.WithError(err).Error("sync batch payment failed")
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to sync payments"})
				return
			}
		}

		entry.Info("sync batch stored")
		c.JSON(http.StatusOK, gin.H{
			"message":  "Sync complete",
			"clients":  len(req.Clients),
			"payments": len(req.Payments),
		})
	}
}
