package api

import (
	"errors"
	"net/http"
	"time"

	resdto "padelbook/internal/handler/dto/response"
	"padelbook/internal/handler/middleware"
	"padelbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyQueries queries.CompanyQueries
}

func NewCompanyHandler(companyQueries queries.CompanyQueries) *CompanyHandler {
	return &CompanyHandler{companyQueries: companyQueries}
}

// @Summary List companies
// @Description List all venues
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CompanyResponse
// @Router /companies [get]
func (h *CompanyHandler) GetCompanies(c *gin.Context) {
	views, err := h.companyQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	out := make([]*resdto.CompanyResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromCompanyView(v)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get company by name
// @Description One venue with courts, optionally with blocked slots for a date
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param name path string true "Company name"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.CompanyDetailResponse
// @Failure 404 {object} map[string]string
// @Router /companies/{name} [get]
func (h *CompanyHandler) GetCompanyByName(c *gin.Context) {
	name := c.Param("name")

	var onDate *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		onDate = &parsed
	}

	detail, err := h.companyQueries.GetByName(c.Request.Context(), name, onDate)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Company not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCompanyDetailView(detail))
}

// @Summary List nearby companies
// @Description Venues ordered by postal-code distance from the user
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CompanyResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /companies/nearby [get]
func (h *CompanyHandler) GetNearbyCompanies(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.companyQueries.ListNearby(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, queries.ErrNoPostalCode):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "User has no postal code configured",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	out := make([]*resdto.CompanyResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromCompanyView(v)
	}
	c.JSON(http.StatusOK, out)
}
