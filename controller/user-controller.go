package controller

import (
	"strconv"
	"time"

	"predictions/app_error"
	"predictions/repository"
	"predictions/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		userService: service.NewUserService(db),
	}
}

func setupUserController(db *gorm.DB) []RouteInfo {
	e := NewUserController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "/users/self", HandlerFunc: e.getUserHandler(), Authenticated: true},
		{Method: "GET", Path: "/users/:user_id", HandlerFunc: e.getUserByIdHandler()},
	}
	return routes
}

// @id GetSelf
// @Description Fetches the authenticated user
// @Tags user
// @Produce json
// @Success 200 {object} UserResponse
// @Security BearerAuth
// @Router /users/self [get]
func (e *UserController) getUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthHeader(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		c.JSON(200, gin.H{"success": true, "user": toUserResponse(user)})
	}
}

// @id GetUserById
// @Description Fetches a user by id
// @Tags user
// @Produce json
// @Param user_id path int true "User Id"
// @Success 200 {object} UserResponse
// @Router /users/{user_id} [get]
func (e *UserController) getUserByIdHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.GetUserById(userId)
		if err != nil {
			app_error.Respond(c, app_error.NotFound("user not found"))
			return
		}
		c.JSON(200, gin.H{"success": true, "user": toUserResponse(user)})
	}
}

type UserResponse struct {
	Id          int       `json:"id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func toUserResponse(user *repository.User) *UserResponse {
	return &UserResponse{
		Id:          user.Id,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}
}
