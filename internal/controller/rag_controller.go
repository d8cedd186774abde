package controller

import (
	"errors"

	"github.com/ekaya/pdfasistan/internal/dto"
	"github.com/ekaya/pdfasistan/internal/pkg/serverutils"
	"github.com/ekaya/pdfasistan/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRagController interface {
	RegisterRoutes(r fiber.Router)
	Status(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
	Questions(ctx *fiber.Ctx) error
}

type ragController struct {
	ragService service.IRagService
}

func NewRagController(ragService service.IRagService) IRagController {
	return &ragController{ragService: ragService}
}

func (c *ragController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/rag/v1")
	h.Get("status", c.Status)
	h.Post("index", c.Index)
	h.Post("ask", c.Ask)
	h.Get("questions", c.Questions)
}

func (c *ragController) Status(ctx *fiber.Ctx) error {
	res, err := c.ragService.Status(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Durum alındı", res))
}

func (c *ragController) Index(ctx *fiber.Ctx) error {
	res, err := c.ragService.Index(ctx.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoDocuments) {
			return fiber.NewError(fiber.StatusNotFound,
				"data/ klasöründe PDF bulunamadı. PDF'leri data/ içine ekleyin.")
		}
		return fiber.NewError(fiber.StatusBadGateway, "İndeks hatası: "+err.Error())
	}
	return ctx.JSON(serverutils.SuccessResponse("İndeks tamamlandı. Durum: "+res.Status, res))
}

func (c *ragController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ragService.Ask(ctx.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotIndexed):
			return fiber.NewError(fiber.StatusConflict,
				"Henüz indeks yapılmadı. Önce PDF'leri indeksleyin.")
		case errors.Is(err, service.ErrModelNotAllowed):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		default:
			return fiber.NewError(fiber.StatusBadGateway, "Hata: "+err.Error())
		}
	}
	return ctx.JSON(serverutils.SuccessResponse("Yanıt hazır", res))
}

func (c *ragController) Questions(ctx *fiber.Ctx) error {
	res := &dto.QuestionsResponse{Questions: c.ragService.Questions()}
	return ctx.JSON(serverutils.SuccessResponse("Hazır sorular", res))
}
