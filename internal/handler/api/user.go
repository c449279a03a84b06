package api

import (
	"net/http"

	reqdto "building-management/internal/handler/dto/request"
	"building-management/internal/pkg/errs"
	"building-management/internal/usecase/commands"
	"building-management/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Register user
// @Description Create the user on first sign-in; an existing user is returned unchanged
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param request body reqdto.UpsertUserRequest true "Profile"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /users/{email} [put]
func (h *UserHandler) Upsert(c *gin.Context) {
	var req reqdto.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.cmds.Upsert(c.Request.Context(), req.ToCommand(c.Param("email")))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get user
// @Description Get a user by email; null when absent
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} queries.UserView
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /user/{email} [get]
func (h *UserHandler) Get(c *gin.Context) {
	view, err := h.q.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errs.Is(err, errs.ErrUserNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get user profile
// @Description Get a user by the email query parameter
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email query string true "User email"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fetchUserProfile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	view, err := h.q.GetByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List users by role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string true "Role"
// @Success 200 {array} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /fetchMembers [get]
func (h *UserHandler) ListByRole(c *gin.Context) {
	views, err := h.q.ListByRole(c.Request.Context(), c.Query("role"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Update user role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Param request body reqdto.UpdateUserRoleRequest true "Role"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /updateUserRole/{email} [put]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req reqdto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.cmds.UpdateRole(c.Request.Context(), c.Param("email"), req.Role)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
