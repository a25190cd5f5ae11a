package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stockledger/internal/domain"
	"stockledger/internal/service"
)

// PartyHandler handles counterparty endpoints.
type PartyHandler struct {
	partyService service.PartyService
}

// NewPartyHandler creates a new PartyHandler.
func NewPartyHandler(partyService service.PartyService) *PartyHandler {
	return &PartyHandler{partyService: partyService}
}

type partyInput struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	Contact   string `json:"contact"`
	Email     string `json:"email"`
	GSTNumber string `json:"gstNumber"`
	Type      string `json:"type" binding:"required,oneof=purchase sales"`
}

func (in *partyInput) apply(p *domain.Party) {
	p.Name = in.Name
	p.Address = in.Address
	p.Contact = in.Contact
	p.Email = in.Email
	p.GSTNumber = in.GSTNumber
	p.Type = domain.PartyType(in.Type)
}

// Create handles POST /api/v1/parties
// @Summary      Create a party
// @Tags         parties
// @Accept       json
// @Produce      json
// @Param        body body partyInput true "Party payload"
// @Success      201 {object} APIResponse{data=domain.Party}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /parties [post]
func (h *PartyHandler) Create(c *gin.Context) {
	var input partyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	party := &domain.Party{}
	input.apply(party)
	if err := h.partyService.Create(c.Request.Context(), party); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, party)
}

// List handles GET /api/v1/parties?type=
// @Summary      List parties
// @Tags         parties
// @Produce      json
// @Param        type query string false "Filter by party type" Enums(purchase, sales)
// @Success      200 {object} APIResponse{data=[]domain.Party}
// @Security     BearerAuth
// @Router       /parties [get]
func (h *PartyHandler) List(c *gin.Context) {
	partyType := domain.PartyType(c.Query("type"))
	if partyType != "" && partyType != domain.PartyTypePurchase && partyType != domain.PartyTypeSales {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "type must be purchase or sales")
		return
	}

	parties, err := h.partyService.List(c.Request.Context(), partyType)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, parties)
}

// GetByID handles GET /api/v1/parties/:id
// @Summary      Get a party
// @Tags         parties
// @Produce      json
// @Param        id path string true "Party UUID"
// @Success      200 {object} APIResponse{data=domain.Party}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /parties/{id} [get]
func (h *PartyHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid party id")
		return
	}

	party, err := h.partyService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, party)
}

// Update handles PUT /api/v1/parties/:id
// @Summary      Update a party
// @Tags         parties
// @Accept       json
// @Produce      json
// @Param        id path string true "Party UUID"
// @Param        body body partyInput true "Party payload"
// @Success      200 {object} APIResponse{data=domain.Party}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /parties/{id} [put]
func (h *PartyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid party id")
		return
	}

	var input partyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	party := &domain.Party{ID: id}
	input.apply(party)
	if err := h.partyService.Update(c.Request.Context(), party); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, party)
}

// Delete handles DELETE /api/v1/parties/:id
// @Summary      Delete a party
// @Tags         parties
// @Produce      json
// @Param        id path string true "Party UUID"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /parties/{id} [delete]
func (h *PartyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid party id")
		return
	}

	if err := h.partyService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "party deleted"})
}
