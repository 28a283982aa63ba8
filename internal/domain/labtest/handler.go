package labtest

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
	read := api.Group("", auth.RequireRole("admin", "doctor", "nurse", "lab"))
	read.GET("/lab-tests", h.List)
	read.GET("/lab-tests/:id", h.Get)
	read.GET("/patients/:patientId/lab-tests", h.ListByPatient)

	write := api.Group("", auth.RequireRole("admin", "doctor", "lab"))
	write.POST("/lab-tests", h.Create)
	write.PUT("/lab-tests/:id", h.Update)
	write.POST("/lab-tests/:id/complete", h.Complete)
	write.DELETE("/lab-tests/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var lt LabTest
	if err := c.Bind(&lt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &lt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return respond.Created(c, "Lab test requested successfully", lt)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	lt, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "lab test not found")
	}
	return c.JSON(http.StatusOK, lt)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	status := c.QueryParam("status")
	items, total, err := h.svc.List(c.Request().Context(), status, pg)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListByPatient(c.Request().Context(), patientID, pg.Limit, pg.Offset)
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
	var lt LabTest
	if err := c.Bind(&lt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	lt.ID = id
	if err := h.svc.Update(c.Request().Context(), &lt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return respond.OK(c, "Lab test updated successfully", lt)
}

func (h *Handler) Complete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var body struct {
		Result string `json:"result"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	lt, err := h.svc.Complete(c.Request().Context(), id, body.Result)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return respond.OK(c, "Lab test completed successfully", lt)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return respond.Deleted(c, "Lab test deleted successfully")
}
