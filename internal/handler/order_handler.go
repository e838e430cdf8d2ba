package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"print4me/internal/domain"
	"print4me/internal/service"
)

// OrderHandler handles print request endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Submit handles POST /api/print-request. The response is sent once the
// order is accepted; the admin email follows in the background.
func (h *OrderHandler) Submit(c *gin.Context) {
	files, err := formFiles(c, "files")
	if err != nil {
		handleFormError(c, err)
		return
	}

	input := service.SubmitInput{
		Order: domain.RawOrder{
			Name:      c.PostForm("name"),
			Mobile:    c.PostForm("mobile"),
			Address:   c.PostForm("address"),
			Notes:     c.PostForm("notes"),
			ColorMode: c.PostForm("colorMode"),
			PaperSize: c.PostForm("paperSize"),
			Sides:     c.PostForm("sides"),
			Copies:    c.PostForm("copies"),
			Pages:     c.PostForm("pages"),
			FilesMeta: c.PostForm("filesMeta"),
		},
		Files: files,
	}

	receipt, err := h.orderService.Submit(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"queued":         true,
		"pages":          receipt.Pages,
		"estimatedTotal": receipt.EstimatedTotal,
		"orderId":        receipt.OrderID,
		"quote":          receipt.Quote,
	})
}

// Quote handles POST /api/quote.
func (h *OrderHandler) Quote(c *gin.Context) {
	var input service.QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	quote, err := h.orderService.Quote(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"quote": quote})
}
