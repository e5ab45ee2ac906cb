package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kitchpad/kitchpad/models"
	"github.com/kitchpad/kitchpad/utils"
)

type SalesController struct {
	DB *gorm.DB
}

func NewSalesController(db *gorm.DB) *SalesController {
	return &SalesController{DB: db}
}

// GetTodaySales -> aggregate of today's completed orders. Totals are
// computed against the current catalog prices, not the prices captured
// on the items.
func (sc *SalesController) GetTodaySales(c *gin.Context) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	orders := make([]models.Order, 0)
	err := sc.DB.
		Where("created_date >= ? AND created_date < ? AND status = ?", start, end, models.StatusCompleted).
		Find(&orders).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var products []models.Product
	if err := sc.DB.Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	priceByID := make(map[uint]float64, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.UnitPrice()
	}

	var totalSales float64
	var totalItems int
	for _, order := range orders {
		for _, item := range order.Items {
			totalSales += priceByID[item.ProductID] * float64(item.Quantity)
			totalItems += item.Quantity
		}
	}

	c.JSON(http.StatusOK, models.DailySales{
		Date:       start.Format("2006-01-02"),
		TotalSales: totalSales,
		TotalItems: totalItems,
		OrderCount: len(orders),
		Orders:     orders,
	})
}
