package api

import (
	"net/http"

	reqdto "building-management/internal/handler/dto/request"
	resdto "building-management/internal/handler/dto/response"
	"building-management/internal/handler/middleware"
	"building-management/internal/usecase/commands"
	"building-management/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	cmds commands.AnnouncementCommands
	q    queries.AnnouncementQueries
}

func NewAnnouncementHandler(cmds commands.AnnouncementCommands, q queries.AnnouncementQueries) *AnnouncementHandler {
	return &AnnouncementHandler{cmds: cmds, q: q}
}

// @Summary Make announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} resdto.CreateAnnouncementResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /make-announcement [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req reqdto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	caller, _ := middleware.GetEmail(c)
	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand(caller))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateAnnouncementResponse{
		Message:    "Announcement submitted successfully",
		InsertedID: id,
	})
}

// @Summary List announcements
// @Description Announcements, newest first
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.AnnouncementView
// @Router /fetchAllAnnouncements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
