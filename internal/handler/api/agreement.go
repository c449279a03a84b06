package api

import (
	"net/http"

	"building-management/internal/domain/agreement"
	reqdto "building-management/internal/handler/dto/request"
	resdto "building-management/internal/handler/dto/response"
	"building-management/internal/usecase/commands"
	"building-management/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AgreementHandler struct {
	cmds commands.AgreementCommands
	q    queries.AgreementQueries
}

func NewAgreementHandler(cmds commands.AgreementCommands, q queries.AgreementQueries) *AgreementHandler {
	return &AgreementHandler{cmds: cmds, q: q}
}

// @Summary Save agreement
// @Description Request an apartment; the agreement starts pending
// @Tags agreements
// @Accept json
// @Produce json
// @Param request body reqdto.SaveAgreementRequest true "Agreement"
// @Success 201 {object} resdto.SaveAgreementResponse
// @Failure 400 {object} httperr.Response
// @Router /saveAgreement [post]
func (h *AgreementHandler) Create(c *gin.Context) {
	var req reqdto.SaveAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.SaveAgreementResponse{Success: true, InsertedID: id})
}

// @Summary List agreements
// @Tags agreements
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.AgreementView
// @Failure 401 {object} httperr.Response
// @Router /agreements [get]
func (h *AgreementHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Count rented rooms
// @Description Number of accepted agreements
// @Tags agreements
// @Produce json
// @Security BearerAuth
// @Success 200 {integer} int
// @Router /agreements/totalUnavailableRooms [get]
func (h *AgreementHandler) CountUnavailable(c *gin.Context) {
	n, err := h.q.CountUnavailable(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// @Summary Decide agreement
// @Description Accept or reject an agreement and update the tenant role
// @Tags agreements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agreement ID"
// @Param request body reqdto.UpdateAgreementStatusRequest true "Decision"
// @Success 200 {object} queries.AgreementView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /updateAgreementStatus/{id} [put]
func (h *AgreementHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateAgreementStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.cmds.Transition(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Restamp accepted date
// @Tags agreements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agreement ID"
// @Success 200 {object} resdto.UpdateResultResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /updateAcceptedDate/{id} [put]
func (h *AgreementHandler) UpdateAcceptedDate(c *gin.Context) {
	h.recordDecisionDate(c, agreement.StatusAccepted)
}

// @Summary Restamp rejected date
// @Tags agreements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agreement ID"
// @Success 200 {object} resdto.UpdateResultResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /updateRejectedDate/{id} [put]
func (h *AgreementHandler) UpdateRejectedDate(c *gin.Context) {
	h.recordDecisionDate(c, agreement.StatusRejected)
}

func (h *AgreementHandler) recordDecisionDate(c *gin.Context, status agreement.Status) {
	counts, err := h.cmds.RecordDecisionDate(c.Request.Context(), c.Param("id"), status.String())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUpdateCounts(counts))
}
