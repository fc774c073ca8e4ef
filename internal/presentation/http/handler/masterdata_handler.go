package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lotuspos/counter/internal/application/service"
	"github.com/lotuspos/counter/internal/domain/entity"
	"github.com/lotuspos/counter/internal/presentation/http/dto/response"
)

// MasterDataHandler backs the item, unit, GST and vendor modals. Mutation
// responses carry a transient banner for the UI.
type MasterDataHandler struct {
	masterdata *service.MasterDataService
	bannerTTL  time.Duration
}

func NewMasterDataHandler(masterdata *service.MasterDataService, bannerTTL time.Duration) *MasterDataHandler {
	return &MasterDataHandler{masterdata: masterdata, bannerTTL: bannerTTL}
}

func (h *MasterDataHandler) banner(message string) *service.Banner {
	return service.NewBanner(service.BannerSuccess, message, h.bannerTTL)
}

// --- Items ---

func (h *MasterDataHandler) ListItems(c *gin.Context) {
	items, err := h.masterdata.ListItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Items", items)
}

func (h *MasterDataHandler) CreateItem(c *gin.Context) {
	var item entity.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.masterdata.CreateItem(c.Request.Context(), item)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Item created", gin.H{"item": created, "banner": h.banner("Item added")})
}

func (h *MasterDataHandler) UpdateItem(c *gin.Context) {
	var item entity.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.masterdata.UpdateItem(c.Request.Context(), c.Param("id"), item); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item updated", gin.H{"banner": h.banner("Item updated")})
}

// ResolveUnit returns the unit picked in the item modal.
func (h *MasterDataHandler) ResolveUnit(c *gin.Context) {
	unit, err := h.masterdata.ResolveUnit(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Unit", unit)
}

// --- Units ---

func (h *MasterDataHandler) ListUnits(c *gin.Context) {
	units, err := h.masterdata.ListUnits(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Units", units)
}

func (h *MasterDataHandler) CreateUnit(c *gin.Context) {
	var unit entity.Unit
	if err := c.ShouldBindJSON(&unit); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.masterdata.CreateUnit(c.Request.Context(), unit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Unit created", gin.H{"unit": created, "banner": h.banner("Unit added")})
}

func (h *MasterDataHandler) UpdateUnit(c *gin.Context) {
	var unit entity.Unit
	if err := c.ShouldBindJSON(&unit); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.masterdata.UpdateUnit(c.Request.Context(), c.Param("id"), unit); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Unit updated", gin.H{"banner": h.banner("Unit updated")})
}

func (h *MasterDataHandler) DeleteUnit(c *gin.Context) {
	if err := h.masterdata.DeleteUnit(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Unit deleted", gin.H{"banner": h.banner("Unit deleted")})
}

// --- GST rates ---

func (h *MasterDataHandler) ListGstRates(c *gin.Context) {
	rates, err := h.masterdata.ListGstRates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "GST rates", rates)
}

// CreateGstRate surfaces the backend's own message on a 400 so the modal
// can show it verbatim.
func (h *MasterDataHandler) CreateGstRate(c *gin.Context) {
	var rate entity.GstRate
	if err := c.ShouldBindJSON(&rate); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.masterdata.CreateGstRate(c.Request.Context(), rate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "GST rate created", gin.H{"rate": created, "banner": h.banner("GST rate added")})
}

func (h *MasterDataHandler) DeleteGstRate(c *gin.Context) {
	if err := h.masterdata.DeleteGstRate(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "GST rate deleted", gin.H{"banner": h.banner("GST rate deleted")})
}

// --- Vendors ---

func (h *MasterDataHandler) ListVendors(c *gin.Context) {
	vendors, err := h.masterdata.ListVendors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vendors", vendors)
}

func (h *MasterDataHandler) CreateVendor(c *gin.Context) {
	var vendor entity.Vendor
	if err := c.ShouldBindJSON(&vendor); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.masterdata.CreateVendor(c.Request.Context(), vendor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Vendor created", gin.H{"vendor": created, "banner": h.banner("Vendor added")})
}

func (h *MasterDataHandler) UpdateVendor(c *gin.Context) {
	var vendor entity.Vendor
	if err := c.ShouldBindJSON(&vendor); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.masterdata.UpdateVendor(c.Request.Context(), c.Param("id"), vendor); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vendor updated", gin.H{"banner": h.banner("Vendor updated")})
}

func (h *MasterDataHandler) DeleteVendor(c *gin.Context) {
	if err := h.masterdata.DeleteVendor(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vendor deleted", gin.H{"banner": h.banner("Vendor deleted")})
}
