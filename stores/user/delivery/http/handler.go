package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campus-auction/goapi/base/ctx"
	"github.com/campus-auction/goapi/base/delivery"
	"github.com/campus-auction/goapi/domain"
	"github.com/campus-auction/goapi/domain/user"
)

type userHandler struct {
	user user.Usecase
	auth domain.AuthUsecase
}

// New registers the user routes. Registration and login are public, the
// profile mutations require a token and only allow self-service.
func New(e *echo.Echo, authMiddleware echo.MiddlewareFunc, userUC user.Usecase, authUC domain.AuthUsecase) {
	h := &userHandler{user: userUC, auth: authUC}

	g := e.Group("/api/users")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.GET("", h.findAll)
	g.GET("/:id", h.get)
	g.GET("/email/:email", h.getByEmail)
	g.PUT("/:id", h.update, authMiddleware)
	g.PUT("/:id/password", h.changePassword, authMiddleware)
}

func (h *userHandler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &user.RegisterParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	u, err := h.user.Register(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, u)
}

func (h *userHandler) login(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Email    domain.Email `json:"email"`
		Password string       `json:"password"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	u, err := h.user.Login(ctx, p.Email, p.Password)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	token, err := h.auth.SignToken(ctx, u.Id, u.Email)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Token string     `json:"token"`
		User  *user.User `json:"user"`
	}{token, u}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *userHandler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	opts := []user.FindAllOptionsFunc{}
	if hostel := c.QueryParam("hostel"); hostel != "" {
		opts = append(opts, user.WithHostel(hostel))
	}

	users, err := h.user.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, users)
}

func (h *userHandler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	u, err := h.user.Get(ctx, domain.UserId(c.Param("id")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, u)
}

func (h *userHandler) getByEmail(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	u, err := h.user.GetByEmail(ctx, domain.Email(c.Param("email")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, u)
}

func (h *userHandler) update(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := domain.UserId(c.Param("id"))
	if requester := c.Get("userId").(domain.UserId); !requester.Equals(id) {
		return delivery.MakeJsonResp(c, http.StatusForbidden, domain.ErrNotAuthorized)
	}

	p := &user.Updater{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	u, err := h.user.Update(ctx, id, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, u)
}

func (h *userHandler) changePassword(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := domain.UserId(c.Param("id"))
	if requester := c.Get("userId").(domain.UserId); !requester.Equals(id) {
		return delivery.MakeJsonResp(c, http.StatusForbidden, domain.ErrNotAuthorized)
	}

	type params struct {
		OldPassword string `json:"oldPassword" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required,min=6"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.user.ChangePassword(ctx, id, p.OldPassword, p.NewPassword); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "password updated")
}
