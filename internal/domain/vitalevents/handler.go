package vitalevents

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lifeville/hms/internal/platform/auth"
	"github.com/lifeville/hms/internal/platform/respond"
	"github.com/lifeville/hms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole("admin", "doctor", "nurse", "registrar"))
	read.GET("/births", h.ListBirths)
	read.GET("/births/:id", h.GetBirth)
	read.GET("/deaths", h.ListDeaths)
	read.GET("/deaths/:id", h.GetDeath)

	write := api.Group("", auth.RequireRole("admin", "doctor", "nurse"))
	write.POST("/births", h.RegisterBirth)
	write.DELETE("/births/:id", h.DeleteBirth)
	write.POST("/deaths", h.RegisterDeath)
	write.DELETE("/deaths/:id", h.DeleteDeath)
}

// -- Births --

func (h *Handler) RegisterBirth(c echo.Context) error {
	var b BirthRecord
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.RegisterBirth(c.Request().Context(), &b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return respond.Created(c, "Birth registered successfully", b)
}

func (h *Handler) GetBirth(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	b, err := h.svc.GetBirth(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "birth record not found")
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) ListBirths(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListBirths(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) DeleteBirth(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteBirth(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond.Deleted(c, "Birth record deleted successfully")
}

// -- Deaths --

func (h *Handler) RegisterDeath(c echo.Context) error {
	var d DeathRecord
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.RegisterDeath(c.Request().Context(), &d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return respond.Created(c, "Death registered successfully", d)
}

func (h *Handler) GetDeath(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	d, err := h.svc.GetDeath(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "death record not found")
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ListDeaths(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListDeaths(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) DeleteDeath(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteDeath(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond.Deleted(c, "Death record deleted successfully")
}
