package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/secondchance/internal/common"
	"github.com/dmitrijs2005/secondchance/internal/server/services"
	"github.com/gin-gonic/gin"
)

// itemRequest is bound from JSON or from a form (urlencoded or multipart)
// according to Content-Type. age_days may be a number or a numeric string.
// A multipart "file" part is not read.
type itemRequest struct {
	Name        string      `json:"name" form:"name"`
	Category    string      `json:"category" form:"category"`
	Condition   string      `json:"condition" form:"condition"`
	PostedBy    string      `json:"posted_by" form:"posted_by"`
	Zipcode     string      `json:"zipcode" form:"zipcode"`
	Description string      `json:"description" form:"description"`
	Image       string      `json:"image" form:"image"`
	AgeDays     json.Number `json:"age_days" form:"age_days"`
}

func (r *itemRequest) ageDays() (float64, error) {
	if r.AgeDays == "" {
		return 0, nil
	}
	return r.AgeDays.Float64()
}

func (h *Handler) listItems(c *gin.Context) {
	list, err := h.items.List(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getItem(c *gin.Context) {
	id := c.Param("id")
	item, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		h.itemError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) createItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBind(&req); err != nil {
		badBody(c)
		return
	}
	days, err := req.ageDays()
	if err != nil {
		badBody(c)
		return
	}

	ctx := c.Request.Context()
	item, err := h.items.Create(ctx, services.ItemInput{
		Name:        req.Name,
		Category:    req.Category,
		Condition:   req.Condition,
		PostedBy:    req.PostedBy,
		Zipcode:     req.Zipcode,
		Description: req.Description,
		Image:       req.Image,
		AgeDays:     days,
	})
	if err != nil {
		h.internalError(c, err)
		return
	}

	h.logger.Info(ctx, "New item added", "id", item.ID)
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) updateItem(c *gin.Context) {
	id := c.Param("id")

	var req itemRequest
	if err := c.ShouldBind(&req); err != nil {
		badBody(c)
		return
	}
	days, err := req.ageDays()
	if err != nil {
		badBody(c)
		return
	}

	item, err := h.items.Update(c.Request.Context(), id, services.ItemUpdate{
		Category:    req.Category,
		Condition:   req.Condition,
		Description: req.Description,
		AgeDays:     days,
	})
	if err != nil {
		h.itemError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) deleteItem(c *gin.Context) {
	id := c.Param("id")
	if err := h.items.Delete(c.Request.Context(), id); err != nil {
		h.itemError(c, id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) itemError(c *gin.Context, id string, err error) {
	if errors.Is(err, common.ErrorNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Error: fmt.Sprintf(itemNotFoundFmt, id)})
		return
	}
	h.internalError(c, err)
}
