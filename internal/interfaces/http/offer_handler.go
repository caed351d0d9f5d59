package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caseritos/caseritos-api/internal/application/dto"
	"github.com/caseritos/caseritos-api/internal/application/lifecycle"
	"github.com/caseritos/caseritos-api/internal/application/listing"
	"github.com/caseritos/caseritos-api/internal/application/usecase"
	"github.com/caseritos/caseritos-api/pkg/logger"
)

// OfferHandler maneja el CRUD de ofertas, el listado público y las operaciones
// del ciclo de vida (pujar, comprar, aceptar puja).
type OfferHandler struct {
	offerUC   *usecase.OfferUseCase
	listingUC *listing.ListingUseCase
	lifecycle *lifecycle.OfferLifecycleUseCase
	log       *logger.Logger
}

// NewOfferHandler construye el handler.
func NewOfferHandler(
	offerUC *usecase.OfferUseCase,
	listingUC *listing.ListingUseCase,
	lifecycleUC *lifecycle.OfferLifecycleUseCase,
	log *logger.Logger,
) *OfferHandler {
	return &OfferHandler{offerUC: offerUC, listingUC: listingUC, lifecycle: lifecycleUC, log: log}
}

// List godoc
// @Summary      Listar ofertas activas
// @Tags         offers
// @Produce      json
// @Param        q       query  string  false  "Substring en description (case-insensitive)"
// @Param        loc     query  string  false  "Substring en location (case-insensitive)"
// @Param        limit   query  int     false  "Límite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.OfferResponse
// @Router       /api/offers [get]
func (h *OfferHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.listingUC.Search(c.Query("q"), c.Query("loc"), limit, offset)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Publicar oferta
// @Tags         offers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOfferRequest  true  "title, description, price, qty?, location?"
// @Success      201   {object}  dto.OfferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/offers [post]
func (h *OfferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Title == "" || in.Description == "" || in.Price == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "title, description y price son requeridos"})
	}
	out, err := h.offerUC.Create(GetIdentity(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Detail godoc
// @Summary      Detalle de oferta con vendedor y pujas
// @Tags         offers
// @Produce      json
// @Param        id  path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.OfferDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/offers/{id} [get]
func (h *OfferHandler) Detail(c *fiber.Ctx) error {
	out, err := h.listingUC.Detail(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// SubmitBid godoc
// @Summary      Pujar contra una oferta
// @Tags         offers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "ID de la oferta"
// @Param        body  body  dto.BidRequest  true  "price"
// @Success      201   {object}  dto.BidResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/offers/{id}/bids [post]
func (h *OfferHandler) SubmitBid(c *fiber.Ctx) error {
	var in dto.BidRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Price == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "price es requerido"})
	}
	bid, err := h.lifecycle.SubmitBid(c.Context(), c.Params("id"), GetIdentity(c), *in.Price)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.BidResponseFrom(bid))
}

// BuyNow godoc
// @Summary      Compra directa de una unidad
// @Tags         offers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.BuyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/offers/{id}/buy [post]
func (h *OfferHandler) BuyNow(c *fiber.Ctx) error {
	offer, err := h.lifecycle.BuyNow(c.Context(), c.Params("id"), GetIdentity(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.BuyResponse{Ok: true, Offer: dto.OfferResponseFrom(offer)})
}

// AcceptBid godoc
// @Summary      Aceptar una puja (solo el vendedor)
// @Tags         offers
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "ID de la oferta"
// @Param        bidId  path  string  true  "ID de la puja"
// @Success      200  {object}  dto.OkResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/offers/{id}/bids/{bidId}/accept [post]
func (h *OfferHandler) AcceptBid(c *fiber.Ctx) error {
	err := h.lifecycle.AcceptBid(c.Context(), c.Params("id"), c.Params("bidId"), GetIdentity(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// Update godoc
// @Summary      Editar oferta (solo el dueño)
// @Tags         offers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la oferta"
// @Param        body  body  dto.UpdateOfferRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.OfferResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/offers/{id} [put]
func (h *OfferHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.offerUC.Update(GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar oferta (dueño o admin)
// @Tags         offers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.OkResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/offers/{id} [delete]
func (h *OfferHandler) Delete(c *fiber.Ctx) error {
	if err := h.offerUC.Delete(GetIdentity(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}
