package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lojabase/internal/domain"
	"lojabase/internal/log"
	"lojabase/internal/services"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /produtos[?q=termo]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if q := c.Query("q"); strings.TrimSpace(q) != "" {
		ps, err := h.Catalog.SearchProducts(c.UserContext(), q)
		if err != nil {
			return fail(c, "products.search", err, messages{
				invalid: "Termo de busca inválido.",
				fault:   "Erro ao buscar produtos.",
			})
		}
		return c.JSON(ps)
	}
	ps, err := h.Catalog.ListProducts(c.UserContext())
	if err != nil {
		return fail(c, "products.list", err, messages{fault: "Erro ao buscar produtos."})
	}
	return c.JSON(ps)
}

// POST /produtos
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in domain.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, msgBadBody)
	}
	p, err := h.Catalog.CreateProduct(c.UserContext(), in)
	if err != nil {
		return fail(c, "products.create", err, messages{
			invalid: "Todos os campos são obrigatorios.",
			fault:   "Erro ao criar produto.",
		})
	}
	log.Audit(c, "products.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /produtos/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in domain.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, msgBadBody)
	}
	p, err := h.Catalog.UpdateProduct(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, "products.update", err, messages{
			notFound: msgProductNotFound,
			fault:    "Erro ao atualizar o produto.",
		})
	}
	log.Audit(c, "products.update", map[string]any{"product_id": p.ID})
	return c.JSON(p)
}

// DELETE /produtos/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Catalog.DeleteProduct(c.UserContext(), id); err != nil {
		return fail(c, "products.delete", err, messages{
			notFound: msgProductNotFound,
			fault:    "Erro ao deletar o produto.",
		})
	}
	log.Audit(c, "products.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"mensagem": "Produto excluido com sucesso."})
}
