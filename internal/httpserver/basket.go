package httpserver

import (
	"errors"
	"net/http"

	"tillmate/internal/domain"
	"tillmate/internal/money"
	"tillmate/internal/service/basket"
	"tillmate/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

type basketState struct {
	Lines        []domain.Product `json:"lines"`
	TotalCents   int64            `json:"totalCents"`
	Total        string           `json:"total"`
	CustomerName *string          `json:"customerName,omitempty"`
}

func stateOf(svc basketService) basketState {
	total := svc.RunningTotalCents()
	return basketState{
		Lines:        svc.Lines(),
		TotalCents:   total,
		Total:        money.Format(total),
		CustomerName: svc.CustomerName(),
	}
}

func basketStateHandler(svc basketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, stateOf(svc))
	}
}

func addBasketItemHandler(svc basketService, cat *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			ProductID string `json:"productId"`
		}
		if err := c.ShouldBindJSON(&in); err != nil || in.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		product, err := cat.Get(c.Request.Context(), in.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
			return
		}
		svc.AddItem(*product)
		c.JSON(http.StatusOK, stateOf(svc))
	}
}

func clearEntryHandler(svc basketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.ClearEntry()
		c.JSON(http.StatusOK, stateOf(svc))
	}
}

func cancelAllHandler(svc basketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.CancelAll()
		c.JSON(http.StatusOK, stateOf(svc))
	}
}

func setCustomerHandler(svc basketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Name string `json:"name"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		svc.SetCustomerName(in.Name)
		c.JSON(http.StatusOK, stateOf(svc))
	}
}

func checkoutHandler(svc basketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		receipt, err := svc.Checkout(c.Request.Context())
		if err != nil {
			switch {
			case errors.Is(err, basket.ErrEmptyBasket):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case domain.IsValidation(err):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, receipt)
	}
}

func dailySalesHandler(svc basketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sales, err := svc.LoadDailySales(c.Request.Context(), c.Query("day"))
		if err != nil {
			if domain.IsValidation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load daily sales"})
			return
		}
		c.JSON(http.StatusOK, sales)
	}
}
