package handlers

import (
	"github.com/gofiber/fiber/v2"

	"lojabase/internal/domain"
	"lojabase/internal/log"
	"lojabase/internal/services"
)

type CustomerHandler struct {
	Customers *services.CustomerService
}

// GET /clientes
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	cs, err := h.Customers.List(c.UserContext())
	if err != nil {
		return fail(c, "customers.list", err, messages{fault: "Erro ao buscar clientes."})
	}
	return c.JSON(cs)
}

// PUT /clientes/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in domain.CustomerUpdate
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, msgBadBody)
	}
	sum, err := h.Customers.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, "customers.update", err, messages{
			notFound: msgClientNotFound,
			fault:    "Erro ao atualizar o cliente.",
		})
	}
	log.Audit(c, "customers.update", map[string]any{
		"target_id":        sum.ID,
		"password_changed": in.Password != nil && *in.Password != "",
	})
	return c.JSON(fiber.Map{"mensagem": "Cliente atualizado com sucesso!", "cliente": sum})
}

// DELETE /clientes/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Customers.Delete(c.UserContext(), id); err != nil {
		return fail(c, "customers.delete", err, messages{
			notFound: msgClientNotFound,
			fault:    "Erro ao excluir o cliente.",
		})
	}
	log.Audit(c, "customers.delete", map[string]any{"target_id": id})
	return c.JSON(fiber.Map{"mensagem": "Cliente excluido com sucesso."})
}
