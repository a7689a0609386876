package handlers

import (
	"errors"

	"references-archive/helper"
	"references-archive/models"
	"references-archive/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type CollectionHandler struct {
	collectionService services.CollectionService
	Helper            *helper.HTTPHelper
}

func NewCollectionHandler(collectionService services.CollectionService) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
		Helper:            helper.NewHTTPHelper(),
	}
}

func (h *CollectionHandler) GetCollections(c *gin.Context) {
	h.Helper.SendSuccess(c, "Collections loaded", h.collectionService.GetCollections())
}

func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	var req models.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		h.Helper.SendValidationError(c, err.(validator.ValidationErrors))
		return
	}

	collection, err := h.collectionService.CreateCollection(req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Collection created", collection)
}

func (h *CollectionHandler) DeleteCollection(c *gin.Context) {
	scope, err := h.collectionService.DeleteCollection(c.Param("id"))
	if err != nil {
		var (
			conflict models.ErrorConflict
			state    models.ErrorState
		)
		switch {
		case errors.As(err, &conflict):
			h.Helper.SendConflictError(c, err.Error(), h.Helper.EmptyJsonMap())
		case errors.As(err, &state):
			h.Helper.SendInternalServerError(c, err.Error(), h.Helper.EmptyJsonMap())
		default:
			h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		}
		return
	}

	h.Helper.SendSuccess(c, "Collection deleted", gin.H{"scope": scope})
}

func (h *CollectionHandler) GetScope(c *gin.Context) {
	h.Helper.SendSuccess(c, "Scope loaded", gin.H{"scope": h.collectionService.Scope()})
}

func (h *CollectionHandler) SetScope(c *gin.Context) {
	var req models.SetScopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.collectionService.SetScope(req.CollectionID); err != nil {
		h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Scope updated", gin.H{"scope": req.CollectionID})
}
