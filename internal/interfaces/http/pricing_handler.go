package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Multicanal-api/internal/application/dto"
	"github.com/jhoicas/Multicanal-api/internal/application/usecase"
	"github.com/jhoicas/Multicanal-api/internal/domain"
	"github.com/jhoicas/Multicanal-api/internal/domain/pricing"
)

// PricingHandler expone el motor de rentabilidad multicanal (protegido).
type PricingHandler struct {
	uc *usecase.PricingUseCase
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *usecase.PricingUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// ProductPricing godoc
// @Summary      Rentabilidad de un producto en todos sus canales habilitados
// @Tags         pricing
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductPricingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/pricing [get]
func (h *PricingHandler) ProductPricing(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ProductPricing(id)
	if err != nil {
		return pricingError(c, err)
	}
	return c.JSON(out)
}

// Simulate godoc
// @Summary      Simular la rentabilidad de un canal sin persistir
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SimulatePricingRequest  true  "Base de costo y canal a simular"
// @Success      200   {object}  dto.ChannelPricingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pricing/simulate [post]
func (h *PricingHandler) Simulate(c *fiber.Ctx) error {
	var in dto.SimulatePricingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Simulate(in)
	if err != nil {
		return pricingError(c, err)
	}
	return c.JSON(out)
}

// ClassifyMargin godoc
// @Summary      Clasificar un margen suelto en su categoría de salud
// @Tags         pricing
// @Security     Bearer
// @Produce      json
// @Param        margin  query  string  true  "Margen en porcentaje, con signo"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pricing/health [get]
func (h *PricingHandler) ClassifyMargin(c *fiber.Ctx) error {
	margin := c.Query("margin")
	if margin == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "margin es requerido"})
	}
	health, err := h.uc.ClassifyMargin(margin)
	if err != nil {
		return pricingError(c, err)
	}
	return c.JSON(fiber.Map{"margin": margin, "health": health})
}

// pricingError mapea errores del motor a códigos HTTP. Un tipo de canal
// desconocido persistido es un error de configuración: 422, "no se puede
// calcular" — nunca un resumen parcial. Las pérdidas no pasan por aquí: un
// margen negativo es dato, no error.
func pricingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, pricing.ErrUnknownChannelType):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNKNOWN_CHANNEL_TYPE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
