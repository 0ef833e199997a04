package httpserver

import (
	"errors"
	"net/http"

	"tillmate/internal/domain"

	"github.com/gin-gonic/gin"
)

func receiptsHandler(svc salesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			receipts []domain.Receipt
			err      error
		)
		if day := c.Query("day"); day != "" {
			receipts, err = svc.Receipts(c.Request.Context(), day)
		} else {
			receipts, err = svc.History(c.Request.Context())
		}
		if err != nil {
			if domain.IsValidation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list receipts"})
			return
		}
		c.JSON(http.StatusOK, receipts)
	}
}

func receiptLinesHandler(svc salesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := svc.ReceiptLines(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "receipt not found"})
				return
			}
			if domain.IsValidation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list receipt lines"})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}
