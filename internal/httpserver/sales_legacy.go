package httpserver

import (
	"errors"
	"net/http"
	"time"

	"tillmate/internal/domain"
	salerepo "tillmate/internal/repository/sale"

	"github.com/gin-gonic/gin"
)

// Legacy sales routes. The collection predates the receipt ledger and stays
// readable for data written by store version 1.

func listLegacySalesHandler(repo salerepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			sales []domain.Sale
			err   error
		)
		from, to := c.Query("from"), c.Query("to")
		switch {
		case c.Query("today") == "true":
			sales, err = repo.ListToday(c.Request.Context())
		case from != "" && to != "":
			start, perr := time.Parse(time.RFC3339, from)
			if perr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "from must be RFC3339"})
				return
			}
			end, perr := time.Parse(time.RFC3339, to)
			if perr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "to must be RFC3339"})
				return
			}
			sales, err = repo.ListByRange(c.Request.Context(), start, end)
		default:
			sales, err = repo.ListAll(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sales"})
			return
		}
		c.JSON(http.StatusOK, sales)
	}
}

func getLegacySaleHandler(repo salerepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sale, err := repo.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get sale"})
			return
		}
		c.JSON(http.StatusOK, sale)
	}
}

func deleteLegacySaleHandler(repo salerepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete sale"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
