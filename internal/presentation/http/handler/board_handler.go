package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lotuspos/counter/internal/application/service"
	"github.com/lotuspos/counter/internal/presentation/http/dto/request"
	"github.com/lotuspos/counter/internal/presentation/http/dto/response"
)

// BoardHandler exposes the table board: snapshot, section selection,
// table activation and keyboard-wedge input.
type BoardHandler struct {
	board *service.BoardService
}

func NewBoardHandler(board *service.BoardService) *BoardHandler {
	return &BoardHandler{board: board}
}

// Snapshot returns the board as currently known.
func (h *BoardHandler) Snapshot(c *gin.Context) {
	response.OK(c, "Board snapshot", h.board.Snapshot())
}

// Refresh forces an immediate backend refresh and returns the new board.
func (h *BoardHandler) Refresh(c *gin.Context) {
	if err := h.board.Refresh(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Board refreshed", h.board.Snapshot())
}

// SelectSection selects a section, toggling it off when re-selected.
func (h *BoardHandler) SelectSection(c *gin.Context) {
	var req request.SelectSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	response.OK(c, "Section selected", h.board.SelectSection(req.Section))
}

// Activate resolves a table tap into a payment or an order route.
func (h *BoardHandler) Activate(c *gin.Context) {
	activation, err := h.board.ActivateTable(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table activated", activation)
}

// KeyInput feeds wedge characters to the board. A resolved Enter returns
// the activation; otherwise the current buffer comes back.
func (h *BoardHandler) KeyInput(c *gin.Context) {
	var req request.KeyInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	activation, err := h.board.KeyInput(req.Input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if activation != nil {
		response.OK(c, "Table activated", activation)
		return
	}
	response.OK(c, "Input buffered", gin.H{"buffer": h.board.KeyBuffer()})
}
