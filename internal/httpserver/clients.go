package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Godson026/sic-agent-app/internal/domain"
)

func listClientsHandler(svc ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		clients, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load clients"})
			return
		}
		if clients == nil {
			clients = []domain.Client{}
		}
		c.JSON(http.StatusOK, clients)
	}
}

func getClientHandler(svc ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, err := svc.ByPolicyNumber(c.Request.Context(), c.Param("policyNumber"))
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Client not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load client"})
			return
		}
		c.JSON(http.StatusOK, client)
	}
}

func registerClientHandler(svc ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.ClientInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		client, err := svc.Register(c.Request.Context(), in)
		if domain.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register client"})
			return
		}
		c.JSON(http.StatusCreated, client)
	}
}
