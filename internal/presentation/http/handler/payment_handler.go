package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lotuspos/counter/internal/application/service"
	"github.com/lotuspos/counter/internal/presentation/http/dto/request"
	"github.com/lotuspos/counter/internal/presentation/http/dto/response"
	"github.com/lotuspos/counter/pkg/apperror"
)

// PaymentHandler drives the settlement panel. Opening resolves the
// table's bill through the board so the panel always starts from the
// board's view of the table.
type PaymentHandler struct {
	payments *service.PaymentService
	board    *service.BoardService
}

func NewPaymentHandler(payments *service.PaymentService, board *service.BoardService) *PaymentHandler {
	return &PaymentHandler{payments: payments, board: board}
}

// Open starts the payment for a table's printed temporary bill.
func (h *PaymentHandler) Open(c *gin.Context) {
	var req request.PaymentOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	activation, err := h.board.ActivateTable(req.TableID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !activation.OpenPayment {
		response.Error(c, apperror.NewAppError(409, "Table has no printed bill to settle"))
		return
	}

	panel, err := h.payments.Open(activation.Bill)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment opened", panel)
}

// Panel returns the current payment state.
func (h *PaymentHandler) Panel(c *gin.Context) {
	response.OK(c, "Payment panel", h.payments.Panel())
}

// SetAmounts updates the split; the online amount is derived.
func (h *PaymentHandler) SetAmounts(c *gin.Context) {
	var req request.PaymentAmountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	panel, err := h.payments.SetAmounts(req.Cash, req.Due, req.Complimentary, req.Discount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Amounts updated", panel)
}

// SetCustomer records the optional customer details.
func (h *PaymentHandler) SetCustomer(c *gin.Context) {
	var req request.PaymentCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	panel, err := h.payments.SetCustomer(req.CustomerName, req.MobileNumber)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer updated", panel)
}

// Submit settles the bill and triggers coupon and bill printing.
func (h *PaymentHandler) Submit(c *gin.Context) {
	result, err := h.payments.Submit(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment submitted", result)
}

// Close abandons the payment.
func (h *PaymentHandler) Close(c *gin.Context) {
	h.payments.Close()
	response.NoContent(c)
}
