package api

import (
	"net/http"

	"building-management/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ApartmentHandler struct {
	q queries.ApartmentQueries
}

func NewApartmentHandler(q queries.ApartmentQueries) *ApartmentHandler {
	return &ApartmentHandler{q: q}
}

// @Summary List apartments
// @Description List apartments with their availability
// @Tags apartments
// @Produce json
// @Success 200 {array} queries.ApartmentView
// @Router /apartments [get]
func (h *ApartmentHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Count apartments
// @Tags apartments
// @Produce json
// @Success 200 {integer} int
// @Router /apartments/count [get]
func (h *ApartmentHandler) Count(c *gin.Context) {
	n, err := h.q.Count(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}
