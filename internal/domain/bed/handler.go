package bed

import (
	"net/http"
	"strconv"

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
	read.GET("/bed-types", h.ListTypes)
	read.GET("/bed-groups", h.ListGroups)
	read.GET("/beds", h.List)
	read.GET("/beds/:id", h.Get)

	write := api.Group("", auth.RequireRole("admin", "nurse"))
	write.POST("/bed-types", h.CreateType)
	write.DELETE("/bed-types/:id", h.DeleteType)
	write.POST("/bed-groups", h.CreateGroup)
	write.DELETE("/bed-groups/:id", h.DeleteGroup)
	write.POST("/beds", h.Create)
	write.PUT("/beds/:id", h.Update)
	write.DELETE("/beds/:id", h.Delete)
}

// -- Bed types --

func (h *Handler) CreateType(c echo.Context) error {
	var t BedType
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateType(c.Request().Context(), &t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return respond.Created(c, "Bed type added successfully", t)
}

func (h *Handler) ListTypes(c echo.Context) error {
	items, err := h.svc.ListTypes(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) DeleteType(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteType(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond.Deleted(c, "Bed type deleted successfully")
}

// -- Bed groups --

func (h *Handler) CreateGroup(c echo.Context) error {
	var g BedGroup
	if err := c.Bind(&g); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateGroup(c.Request().Context(), &g); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return respond.Created(c, "Bed group added successfully", g)
}

func (h *Handler) ListGroups(c echo.Context) error {
	items, err := h.svc.ListGroups(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) DeleteGroup(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteGroup(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond.Deleted(c, "Bed group deleted successfully")
}

// -- Beds --

func (h *Handler) Create(c echo.Context) error {
	var b Bed
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return respond.Created(c, "Bed added successfully", b)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	b, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "bed not found")
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	if groupID := c.QueryParam("bed_group_id"); groupID != "" {
		gid, err := strconv.ParseInt(groupID, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid bed_group_id")
		}
		items, total, err := h.svc.ListByGroup(c.Request().Context(), gid, pg.Limit, pg.Offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
	}
	items, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var b Bed
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b.ID = id
	if err := h.svc.Update(c.Request().Context(), &b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return respond.OK(c, "Bed updated successfully", b)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return respond.Deleted(c, "Bed deleted successfully")
}
