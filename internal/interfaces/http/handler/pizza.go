package handler

import (
	"github.com/gin-gonic/gin"
	appcatalog "github.com/pizzeria/backend/internal/application/catalog"
)

// PizzaHandler handles the menu endpoints
type PizzaHandler struct {
	BaseHandler
	pizzaService *appcatalog.PizzaService
}

// NewPizzaHandler creates a new PizzaHandler
func NewPizzaHandler(pizzaService *appcatalog.PizzaService) *PizzaHandler {
	return &PizzaHandler{pizzaService: pizzaService}
}

// Create handles POST /pizzas
func (h *PizzaHandler) Create(c *gin.Context) {
	var req appcatalog.PizzaRequest
	if !h.BindJSON(c, &req) {
		return
	}

	pizza, err := h.pizzaService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, pizza)
}

// List handles GET /pizzas
func (h *PizzaHandler) List(c *gin.Context) {
	pizzas, err := h.pizzaService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pizzas)
}

// GetByID handles GET /pizzas/:id
func (h *PizzaHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	pizza, err := h.pizzaService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pizza)
}

// Update handles PUT /pizzas/:id
func (h *PizzaHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req appcatalog.PizzaRequest
	if !h.BindJSON(c, &req) {
		return
	}

	pizza, err := h.pizzaService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pizza)
}

// Delete handles DELETE /pizzas/:id. Pizzas that orders still reference are refused with 409.
func (h *PizzaHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.pizzaService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "pizza deleted")
}
