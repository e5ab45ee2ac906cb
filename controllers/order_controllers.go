package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kitchpad/kitchpad/models"
	"github.com/kitchpad/kitchpad/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// sortColumns whitelists what ?sort= may order by.
var sortColumns = map[string]bool{
	"created_date": true,
	"updated_at":   true,
	"order_number": true,
	"status":       true,
	"total_amount": true,
}

// GetOrders -> list orders, newest first by default. Supports
// ?sort=-created_date&limit=100 and an optional ?date=2006-01-02 day
// filter so clients don't have to post-process a bounded batch.
func (oc *OrderController) GetOrders(c *gin.Context) {
	sort := c.DefaultQuery("sort", "-created_date")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}

	column := sort
	direction := "asc"
	if len(sort) > 0 && sort[0] == '-' {
		column = sort[1:]
		direction = "desc"
	}
	if !sortColumns[column] {
		column = "created_date"
		direction = "desc"
	}

	query := oc.DB.Order(fmt.Sprintf("%s %s", column, direction)).Limit(limit)

	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date, want YYYY-MM-DD"))
			return
		}
		query = query.Where("created_date >= ? AND created_date < ?", day, day.AddDate(0, 0, 1))
	}

	orders := make([]models.Order, 0)
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder -> create an order with a daily sequential number. The
// number the client guessed is kept when present; otherwise the per-day
// counter assigns the next one. Either way the counter advances inside
// the same transaction, so server-assigned numbers never collide with
// client guesses it has already seen.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type reqBody struct {
		Items       models.OrderItems  `json:"items"`
		Notes       string             `json:"notes"`
		OrderNumber string             `json:"order_number"`
		Status      models.OrderStatus `json:"status"`
		TotalAmount *float64           `json:"total_amount"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(body.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("items is required"))
		return
	}

	status := body.Status
	if status == "" {
		status = models.StatusPending
	}
	if !status.Valid() {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid status %q", body.Status))
		return
	}

	now := time.Now().UTC()
	order := models.Order{
		Items:       body.Items,
		Status:      status,
		Notes:       body.Notes,
		TotalAmount: body.TotalAmount,
		CreatedDate: now,
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		number, err := nextOrderNumber(tx, now, body.OrderNumber)
		if err != nil {
			return err
		}
		order.OrderNumber = number
		return tx.Create(&order).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// nextOrderNumber advances the day's counter and returns the number to
// use. A client-provided number wins, but still fast-forwards the
// counter when it is ahead. Runs inside the caller's transaction;
// sqlite serializes writers and mysql holds the row until commit.
func nextOrderNumber(tx *gorm.DB, now time.Time, requested string) (string, error) {
	day := now.Format("2006-01-02")

	var counter models.OrderCounter
	if err := tx.Where("day = ?", day).First(&counter).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
		counter = models.OrderCounter{Day: day}
		if err := tx.Create(&counter).Error; err != nil {
			return "", err
		}
	}

	next := counter.Count + 1
	if requested != "" {
		if n, err := strconv.Atoi(requested); err == nil && n > next {
			next = n
		}
	}
	counter.Count = next
	if err := tx.Save(&counter).Error; err != nil {
		return "", err
	}

	if requested != "" {
		return requested, nil
	}
	return fmt.Sprintf("%03d", next), nil
}

// UpdateOrder -> partial update. Status changes must follow the
// transition map; the original backend applied them blindly.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	type updateReq struct {
		Status      *models.OrderStatus `json:"status"`
		Notes       *string             `json:"notes"`
		Items       models.OrderItems   `json:"items"`
		TotalAmount *float64            `json:"total_amount"`
	}
	var body updateReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Status != nil {
		if !body.Status.Valid() {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid status %q", *body.Status))
			return
		}
		if !order.Status.CanTransition(*body.Status) {
			utils.RespondError(c, http.StatusConflict,
				fmt.Errorf("cannot move order from %s to %s", order.Status, *body.Status))
			return
		}
		order.Status = *body.Status
	}
	if body.Notes != nil {
		order.Notes = *body.Notes
	}
	if body.Items != nil {
		order.Items = body.Items
	}
	if body.TotalAmount != nil {
		order.TotalAmount = body.TotalAmount
	}

	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder -> remove an order for good.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	if err := oc.DB.Delete(&models.Order{}, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}
