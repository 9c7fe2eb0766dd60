package controller

import (
	"strconv"
	"time"

	"predictions/app_error"
	"predictions/repository"
	"predictions/service"
	"predictions/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PoolController struct {
	poolService *service.PoolService
	userService *service.UserService
}

func NewPoolController(db *gorm.DB) *PoolController {
	return &PoolController{
		poolService: service.NewPoolService(db),
		userService: service.NewUserService(db),
	}
}

func setupPoolController(db *gorm.DB) []RouteInfo {
	e := NewPoolController(db)
	basePath := "/pools"
	routes := []RouteInfo{
		{Method: "POST", Path: "", HandlerFunc: e.createPoolHandler(), Authenticated: true},
		{Method: "GET", Path: "", HandlerFunc: e.listUserPoolsHandler(), Authenticated: true},
		{Method: "POST", Path: "/join", HandlerFunc: e.joinPoolHandler(), Authenticated: true},
		{Method: "GET", Path: "/:pool_id", HandlerFunc: e.getPoolHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:pool_id", HandlerFunc: e.deletePoolHandler(), Authenticated: true},
		{Method: "POST", Path: "/:pool_id/lock", HandlerFunc: e.lockPoolHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id CreatePool
// @Description Creates a prediction pool hosted by the authenticated user
// @Tags pool
// @Accept json
// @Produce json
// @Param pool body PoolCreate true "Pool"
// @Success 201 {object} PoolResponse
// @Security BearerAuth
// @Router /pools [post]
func (e *PoolController) createPoolHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthHeader(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		var create PoolCreate
		if err := c.BindJSON(&create); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		pool, err := e.poolService.CreatePool(user, create.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, gin.H{"success": true, "pool": toPoolResponse(pool)})
	}
}

// @id ListUserPools
// @Description Lists every pool the authenticated user belongs to, with derived counts
// @Tags pool
// @Produce json
// @Success 200 {array} UserPoolResponse
// @Security BearerAuth
// @Router /pools [get]
func (e *PoolController) listUserPoolsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthHeader(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		userPools, err := e.poolService.ListUserPools(user.Id)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, gin.H{"success": true, "pools": utils.Map(userPools, toUserPoolResponse)})
	}
}

// @id GetPool
// @Description Fetches a pool with its prompts and members
// @Tags pool
// @Produce json
// @Param pool_id path int true "Pool Id"
// @Success 200 {object} PoolResponse
// @Security BearerAuth
// @Router /pools/{pool_id} [get]
func (e *PoolController) getPoolHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthHeader(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		poolId, err := strconv.Atoi(c.Param("pool_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		pool, err := e.poolService.GetPoolForUser(user.Id, poolId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, gin.H{"success": true, "pool": toPoolResponse(pool)})
	}
}

// @id DeletePool
// @Description Deletes a pool and all its prompts, answers and memberships. Host only.
// @Tags pool
// @Produce json
// @Param pool_id path int true "Pool Id"
// @Success 200
// @Security BearerAuth
// @Router /pools/{pool_id} [delete]
func (e *PoolController) deletePoolHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthHeader(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		poolId, err := strconv.Atoi(c.Param("pool_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.poolService.DeletePool(user.Id, poolId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, gin.H{"success": true})
	}
}

// @id JoinPool
// @Description Joins a pool via its invite code
// @Tags pool
// @Accept json
// @Produce json
// @Param body body PoolJoin true "Invite code"
// @Success 200 {object} PoolResponse
// @Security BearerAuth
// @Router /pools/join [post]
func (e *PoolController) joinPoolHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthHeader(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		var join PoolJoin
		if err := c.BindJSON(&join); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		pool, err := e.poolService.JoinPool(user, join.InviteCode)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, gin.H{"success": true, "pool": toPoolResponse(pool)})
	}
}

// @id LockPool
// @Description Locks a pool against new answers and members. Host only.
// @Tags pool
// @Produce json
// @Param pool_id path int true "Pool Id"
// @Success 200 {object} PoolResponse
// @Security BearerAuth
// @Router /pools/{pool_id}/lock [post]
func (e *PoolController) lockPoolHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthHeader(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		poolId, err := strconv.Atoi(c.Param("pool_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		pool, err := e.poolService.LockPool(user.Id, poolId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, gin.H{"success": true, "pool": toPoolResponse(pool)})
	}
}

type PoolCreate struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Public      bool       `json:"public"`
	Deadline    *time.Time `json:"deadline"`
}

type PoolJoin struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

type PoolResponse struct {
	Id          int               `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	HostId      int               `json:"host_id"`
	InviteCode  string            `json:"invite_code"`
	Status      string            `json:"status"`
	Deadline    *time.Time        `json:"deadline,omitempty"`
	Category    string            `json:"category"`
	Public      bool              `json:"public"`
	CreatedAt   time.Time         `json:"created_at"`
	Prompts     []*PromptResponse `json:"prompts,omitempty"`
	Members     []*MemberResponse `json:"members,omitempty"`
}

type MemberResponse struct {
	UserId      int       `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	TotalPoints int       `json:"total_points"`
	JoinedAt    time.Time `json:"joined_at"`
}

type UserPoolResponse struct {
	Pool                *PoolResponse `json:"pool"`
	MemberCount         int           `json:"member_count"`
	PromptCount         int           `json:"prompt_count"`
	ResolvedPromptCount int           `json:"resolved_prompt_count"`
	IsHost              bool          `json:"is_host"`
	TotalPoints         int           `json:"total_points"`
}

func (e *PoolCreate) toModel() *repository.Pool {
	return &repository.Pool{
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		Public:      e.Public,
		Deadline:    e.Deadline,
	}
}

func toPoolResponse(pool *repository.Pool) *PoolResponse {
	response := &PoolResponse{
		Id:          pool.Id,
		Name:        pool.Name,
		Description: pool.Description,
		HostId:      pool.HostId,
		InviteCode:  pool.InviteCode,
		Status:      string(pool.Status),
		Deadline:    pool.Deadline,
		Category:    pool.Category,
		Public:      pool.Public,
		CreatedAt:   pool.CreatedAt,
	}
	if pool.Prompts != nil {
		response.Prompts = utils.Map(pool.Prompts, toPromptResponse)
	}
	if pool.Members != nil {
		response.Members = utils.Map(pool.Members, toMemberResponse)
	}
	return response
}

func toMemberResponse(member *repository.PoolMember) *MemberResponse {
	response := &MemberResponse{
		UserId:      member.UserId,
		Role:        string(member.Role),
		TotalPoints: member.TotalPoints,
		JoinedAt:    member.JoinedAt,
	}
	if member.User != nil {
		response.DisplayName = member.User.DisplayName
	}
	return response
}

func toUserPoolResponse(userPool *service.UserPool) *UserPoolResponse {
	return &UserPoolResponse{
		Pool:                toPoolResponse(userPool.Pool),
		MemberCount:         userPool.MemberCount,
		PromptCount:         userPool.PromptCount,
		ResolvedPromptCount: userPool.ResolvedPromptCount,
		IsHost:              userPool.IsHost,
		TotalPoints:         userPool.TotalPoints,
	}
}
