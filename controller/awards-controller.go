package controller

import (
	"strconv"
	"time"

	"predictions/app_error"
	"predictions/repository"
	"predictions/service"
	"predictions/utils"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AwardsController struct {
	awardsService *service.AwardsService
	userService   *service.UserService
}

func NewAwardsController(db *gorm.DB) *AwardsController {
	return &AwardsController{
		awardsService: service.NewAwardsService(db),
		userService:   service.NewUserService(db),
	}
}

func setupAwardsController(db *gorm.DB, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewAwardsController(db)
	basePath := "/awards"
	admin := []repository.Permission{repository.PermissionAdmin}
	routes := []RouteInfo{
		{Method: "GET", Path: "/events", HandlerFunc: cache.CachePage(cacheStore, time.Minute, e.listEventsHandler())},
		{Method: "POST", Path: "/events", HandlerFunc: e.createEventHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "POST", Path: "/events/:event_id/close", HandlerFunc: e.closeEventHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "POST", Path: "/events/:event_id/categories", HandlerFunc: e.createCategoryHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "GET", Path: "/events/:event_id/picks", HandlerFunc: e.getUserPicksHandler(), Authenticated: true},
		{Method: "POST", Path: "/categories/:category_id/nominees", HandlerFunc: e.createNomineeHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "PUT", Path: "/categories/:category_id/pick", HandlerFunc: e.pickHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id ListAwardsEvents
// @Description Lists all awards events with their categories and nominees
// @Tags awards
// @Produce json
// @Success 200 {array} AwardsEventResponse
// @Router /awards/events [get]
func (e *AwardsController) listEventsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := e.awardsService.GetAllEvents()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, gin.H{"success": true, "events": utils.Map(events, toAwardsEventResponse)})
	}
}

// @id CreateAwardsEvent
// @Description Creates an awards event. Admin only.
// @Tags awards
// @Accept json
// @Produce json
// @Param event body AwardsEventCreate true "Event"
// @Success 201 {object} AwardsEventResponse
// @Security BearerAuth
// @Router /awards/events [post]
func (e *AwardsController) createEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var create AwardsEventCreate
		if err := c.BindJSON(&create); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.awardsService.CreateEvent(&repository.AwardsEvent{
			Name:     create.Name,
			Deadline: create.Deadline,
		})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, gin.H{"success": true, "event": toAwardsEventResponse(event)})
	}
}

// @id CloseAwardsEvent
// @Description Closes an awards event to further picks. Admin only.
// @Tags awards
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {object} AwardsEventResponse
// @Security BearerAuth
// @Router /awards/events/{event_id}/close [post]
func (e *AwardsController) closeEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.awardsService.CloseEvent(eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, gin.H{"success": true, "event": toAwardsEventResponse(event)})
	}
}

// @id CreateAwardsCategory
// @Description Adds a category to an awards event. Admin only.
// @Tags awards
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param category body AwardsCategoryCreate true "Category"
// @Success 201 {object} AwardsCategoryResponse
// @Security BearerAuth
// @Router /awards/events/{event_id}/categories [post]
func (e *AwardsController) createCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var create AwardsCategoryCreate
		if err := c.BindJSON(&create); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		category, err := e.awardsService.CreateCategory(eventId, create.Name)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, gin.H{"success": true, "category": toAwardsCategoryResponse(category)})
	}
}

// @id CreateAwardsNominee
// @Description Adds a nominee to a category. Admin only.
// @Tags awards
// @Accept json
// @Produce json
// @Param category_id path int true "Category Id"
// @Param nominee body AwardsNomineeCreate true "Nominee"
// @Success 201 {object} AwardsNomineeResponse
// @Security BearerAuth
// @Router /awards/categories/{category_id}/nominees [post]
func (e *AwardsController) createNomineeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryId, err := strconv.Atoi(c.Param("category_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var create AwardsNomineeCreate
		if err := c.BindJSON(&create); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		nominee, err := e.awardsService.CreateNominee(categoryId, create.Name)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, gin.H{"success": true, "nominee": toAwardsNomineeResponse(nominee)})
	}
}

// @id PickNominee
// @Description Upserts the authenticated user's pick for a category. Re-picking before the deadline replaces the previous pick.
// @Tags awards
// @Accept json
// @Produce json
// @Param category_id path int true "Category Id"
// @Param pick body AwardsPickCreate true "Pick"
// @Success 200 {object} AwardsPickResponse
// @Security BearerAuth
// @Router /awards/categories/{category_id}/pick [put]
func (e *AwardsController) pickHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthHeader(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		categoryId, err := strconv.Atoi(c.Param("category_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var create AwardsPickCreate
		if err := c.BindJSON(&create); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		pick, err := e.awardsService.Pick(user.Id, categoryId, create.NomineeId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, gin.H{"success": true, "pick": toAwardsPickResponse(pick)})
	}
}

// @id GetUserPicks
// @Description Returns the authenticated user's current picks for an event
// @Tags awards
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {array} AwardsPickResponse
// @Security BearerAuth
// @Router /awards/events/{event_id}/picks [get]
func (e *AwardsController) getUserPicksHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthHeader(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		picks, err := e.awardsService.GetUserPicks(user.Id, eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, gin.H{"success": true, "picks": utils.Map(picks, toAwardsPickResponse)})
	}
}

type AwardsEventCreate struct {
	Name     string     `json:"name" binding:"required"`
	Deadline *time.Time `json:"deadline"`
}

type AwardsCategoryCreate struct {
	Name string `json:"name" binding:"required"`
}

type AwardsNomineeCreate struct {
	Name string `json:"name" binding:"required"`
}

type AwardsPickCreate struct {
	NomineeId int `json:"nominee_id" binding:"required"`
}

type AwardsEventResponse struct {
	Id         int                       `json:"id"`
	Name       string                    `json:"name"`
	Status     string                    `json:"status"`
	Deadline   *time.Time                `json:"deadline,omitempty"`
	Categories []*AwardsCategoryResponse `json:"categories,omitempty"`
}

type AwardsCategoryResponse struct {
	Id       int                      `json:"id"`
	EventId  int                      `json:"event_id"`
	Name     string                   `json:"name"`
	Nominees []*AwardsNomineeResponse `json:"nominees,omitempty"`
}

type AwardsNomineeResponse struct {
	Id         int    `json:"id"`
	CategoryId int    `json:"category_id"`
	Name       string `json:"name"`
}

type AwardsPickResponse struct {
	UserId     int       `json:"user_id"`
	CategoryId int       `json:"category_id"`
	NomineeId  int       `json:"nominee_id"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toAwardsEventResponse(event *repository.AwardsEvent) *AwardsEventResponse {
	response := &AwardsEventResponse{
		Id:       event.Id,
		Name:     event.Name,
		Status:   string(event.Status),
		Deadline: event.Deadline,
	}
	if event.Categories != nil {
		response.Categories = utils.Map(event.Categories, toAwardsCategoryResponse)
	}
	return response
}

func toAwardsCategoryResponse(category *repository.AwardsCategory) *AwardsCategoryResponse {
	response := &AwardsCategoryResponse{
		Id:      category.Id,
		EventId: category.EventId,
		Name:    category.Name,
	}
	if category.Nominees != nil {
		response.Nominees = utils.Map(category.Nominees, toAwardsNomineeResponse)
	}
	return response
}

func toAwardsNomineeResponse(nominee *repository.AwardsNominee) *AwardsNomineeResponse {
	return &AwardsNomineeResponse{
		Id:         nominee.Id,
		CategoryId: nominee.CategoryId,
		Name:       nominee.Name,
	}
}

func toAwardsPickResponse(pick *repository.AwardsPick) *AwardsPickResponse {
	return &AwardsPickResponse{
		UserId:     pick.UserId,
		CategoryId: pick.CategoryId,
		NomineeId:  pick.NomineeId,
		UpdatedAt:  pick.UpdatedAt,
	}
}
