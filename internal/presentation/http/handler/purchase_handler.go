package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lotuspos/counter/internal/application/service"
	"github.com/lotuspos/counter/internal/domain/entity"
	"github.com/lotuspos/counter/internal/domain/enum"
	"github.com/lotuspos/counter/internal/presentation/http/dto/request"
	"github.com/lotuspos/counter/internal/presentation/http/dto/response"
)

// PurchaseHandler exposes purchase-bill entry: the staged bill, line
// operations, stock lookups, the overlay union and the save.
type PurchaseHandler struct {
	purchases *service.PurchaseService
}

func NewPurchaseHandler(purchases *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

// View returns the purchase screen state.
func (h *PurchaseHandler) View(c *gin.Context) {
	response.OK(c, "Purchase view", h.purchases.View())
}

// SetHeader replaces the bill header.
func (h *PurchaseHandler) SetHeader(c *gin.Context) {
	var header entity.PurchaseHeader
	if err := c.ShouldBindJSON(&header); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	response.OK(c, "Header updated", h.purchases.SetHeader(header))
}

// AddLine stages a purchase line.
func (h *PurchaseHandler) AddLine(c *gin.Context) {
	var line entity.PurchaseLine
	if err := c.ShouldBindJSON(&line); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.purchases.AddLine(line)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line added", view)
}

func lineIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid line index")
		return 0, false
	}
	return index, true
}

// BeginEdit pulls a line back into the entry form.
func (h *PurchaseHandler) BeginEdit(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}

	line, err := h.purchases.BeginEdit(index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Editing line", gin.H{"line": line, "view": h.purchases.View()})
}

// CancelEdit restores the line under edit.
func (h *PurchaseHandler) CancelEdit(c *gin.Context) {
	response.OK(c, "Edit cancelled", h.purchases.CancelEdit())
}

// MarkDelete stages a line for confirmed deletion.
func (h *PurchaseHandler) MarkDelete(c *gin.Context) {
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	if err := h.purchases.MarkDelete(index); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line marked for deletion", h.purchases.View())
}

// ConfirmDelete removes the marked line.
func (h *PurchaseHandler) ConfirmDelete(c *gin.Context) {
	view, err := h.purchases.ConfirmDelete()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line deleted", view)
}

// CancelDelete clears the pending deletion.
func (h *PurchaseHandler) CancelDelete(c *gin.Context) {
	response.OK(c, "Deletion cancelled", h.purchases.CancelDelete())
}

// SetDiscount updates the bill discount.
func (h *PurchaseHandler) SetDiscount(c *gin.Context) {
	var req request.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	response.OK(c, "Discount updated", h.purchases.SetDiscount(req.Discount))
}

// SetPaidAmount updates the amount paid to the vendor.
func (h *PurchaseHandler) SetPaidAmount(c *gin.Context) {
	var req request.PaidAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	response.OK(c, "Paid amount updated", h.purchases.SetPaidAmount(req.PaidAmount))
}

// StockQty looks up stock for the item name in the query string.
func (h *PurchaseHandler) StockQty(c *gin.Context) {
	itemName := c.Query("itemName")
	if itemName == "" {
		response.BadRequest(c, "itemName is required")
		return
	}

	qty, err := h.purchases.StockQty(c.Request.Context(), itemName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock quantity", gin.H{"itemName": itemName, "stockQty": qty})
}

// OpenOverlay opens one master-data modal, closing any other.
func (h *PurchaseHandler) OpenOverlay(c *gin.Context) {
	var req request.OverlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var overlay enum.Overlay
	switch req.Overlay {
	case "item":
		overlay = enum.OverlayItem
	case "unit":
		overlay = enum.OverlayUnit
	case "gst":
		overlay = enum.OverlayGst
	case "vendor":
		overlay = enum.OverlayVendor
	default:
		response.BadRequest(c, "Unknown overlay "+req.Overlay)
		return
	}
	response.OK(c, "Overlay opened", gin.H{"overlay": h.purchases.OpenOverlay(overlay)})
}

// CloseOverlay dismisses the open modal.
func (h *PurchaseHandler) CloseOverlay(c *gin.Context) {
	h.purchases.CloseOverlay()
	response.NoContent(c)
}

// Save commits the staged bill to the backend.
func (h *PurchaseHandler) Save(c *gin.Context) {
	result, err := h.purchases.Save(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Purchase saved", result)
}
