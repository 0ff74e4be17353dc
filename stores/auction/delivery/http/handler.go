package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campus-auction/goapi/base/ctx"
	"github.com/campus-auction/goapi/base/delivery"
	"github.com/campus-auction/goapi/domain"
	"github.com/campus-auction/goapi/domain/auction"
)

type auctionHandler struct {
	auction auction.UseCase
}

// New registers the auction and bid routes. Listing and reading are
// public, anything that mutates an auction requires a token. The bidder
// and the cancel requester are always taken from the token, never from
// the payload.
func New(e *echo.Echo, authMiddleware echo.MiddlewareFunc, auctionUC auction.UseCase) {
	h := &auctionHandler{auction: auctionUC}

	g := e.Group("/api/auctions")
	g.POST("", h.create, authMiddleware)
	g.GET("", h.findAll)
	g.GET("/active", h.findActive)
	g.GET("/search", h.search)
	g.GET("/category/:category", h.findByCategory)
	g.GET("/seller/:sellerId", h.findBySeller)
	g.GET("/seller/email/:email", h.findBySellerEmail)
	g.GET("/:id", h.get)
	g.GET("/:id/stats", h.getStats)
	g.GET("/:id/bids", h.getBids)
	g.GET("/:id/bids/count", h.getBidCount)
	g.GET("/:id/bids/winning", h.getWinningBid)
	g.POST("/:id/bids", h.placeBid, authMiddleware)
	g.POST("/:id/cancel", h.cancel, authMiddleware)
	g.DELETE("/:id", h.remove, authMiddleware)

	b := e.Group("/api/bids")
	b.GET("/user/:userId", h.getBidsByBidder)
	b.GET("/user/:userId/won", h.getWonAuctions)
}

func (h *auctionHandler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &auction.CreateParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	// sellers list under their own identity
	p.SellerEmail = c.Get("email").(domain.Email)

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	a, err := h.auction.Create(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, a)
}

func (h *auctionHandler) makeFindAllOptions(c echo.Context) []auction.FindAllOptionsFunc {
	opts := []auction.FindAllOptionsFunc{}

	if status := c.QueryParam("status"); status != "" {
		if s, ok := auction.ToStatus(status); ok {
			opts = append(opts, auction.WithStatus(s))
		}
	}
	if category := c.QueryParam("category"); category != "" {
		opts = append(opts, auction.WithCategory(category))
	}
	if offsetStr, limitStr := c.QueryParam("offset"), c.QueryParam("limit"); limitStr != "" {
		offset, _ := strconv.Atoi(offsetStr)
		if limit, err := strconv.Atoi(limitStr); err == nil {
			opts = append(opts, auction.WithPagination(offset, limit))
		}
	}

	return opts
}

func (h *auctionHandler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.FindAll(ctx, h.makeFindAllOptions(c)...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *auctionHandler) findActive(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	opts := append(h.makeFindAllOptions(c), auction.WithStatus(auction.StatusActive))
	res, err := h.auction.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *auctionHandler) search(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	keyword := c.QueryParam("keyword")
	if keyword == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	opts := append(h.makeFindAllOptions(c), auction.WithKeyword(keyword))
	res, err := h.auction.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *auctionHandler) findByCategory(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.FindAll(ctx, auction.WithCategory(c.Param("category")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *auctionHandler) findBySeller(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.FindAll(ctx, auction.WithSellerId(domain.UserId(c.Param("sellerId"))))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *auctionHandler) findBySellerEmail(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.FindAll(ctx, auction.WithSellerEmail(domain.Email(c.Param("email"))))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *auctionHandler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	a, err := h.auction.Get(ctx, domain.AuctionId(c.Param("id")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

func (h *auctionHandler) getStats(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	stats, err := h.auction.GetStats(ctx, domain.AuctionId(c.Param("id")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, stats)
}

func (h *auctionHandler) getBids(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	bids, err := h.auction.GetBids(ctx, domain.AuctionId(c.Param("id")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, bids)
}

func (h *auctionHandler) getBidCount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	stats, err := h.auction.GetStats(ctx, domain.AuctionId(c.Param("id")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, stats.TotalBids)
}

func (h *auctionHandler) getWinningBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	bid, err := h.auction.GetWinningBid(ctx, domain.AuctionId(c.Param("id")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, bid)
}

func (h *auctionHandler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	bidderId := c.Get("userId").(domain.UserId)
	bid, err := h.auction.PlaceBid(ctx, domain.AuctionId(c.Param("id")), bidderId, p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, bid)
}

func (h *auctionHandler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	requesterId := c.Get("userId").(domain.UserId)
	a, err := h.auction.Cancel(ctx, domain.AuctionId(c.Param("id")), requesterId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

func (h *auctionHandler) remove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := domain.AuctionId(c.Param("id"))
	a, err := h.auction.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if requesterId := c.Get("userId").(domain.UserId); !a.SellerId.Equals(requesterId) {
		return delivery.MakeJsonResp(c, http.StatusForbidden, domain.ErrNotAuthorized)
	}

	if err := h.auction.Delete(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "auction deleted")
}

func (h *auctionHandler) getBidsByBidder(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	bids, err := h.auction.GetBidsByBidder(ctx, domain.UserId(c.Param("userId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, bids)
}

func (h *auctionHandler) getWonAuctions(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.GetWonAuctions(ctx, domain.UserId(c.Param("userId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
