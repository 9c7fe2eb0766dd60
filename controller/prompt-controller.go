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

type PromptController struct {
	promptService *service.PromptService
	userService   *service.UserService
}

func NewPromptController(db *gorm.DB) *PromptController {
	return &PromptController{
		promptService: service.NewPromptService(db),
		userService:   service.NewUserService(db),
	}
}

func setupPromptController(db *gorm.DB) []RouteInfo {
	e := NewPromptController(db)
	routes := []RouteInfo{
		{Method: "POST", Path: "/pools/:pool_id/prompts", HandlerFunc: e.createPromptHandler(), Authenticated: true},
		{Method: "POST", Path: "/prompts/:prompt_id/answers", HandlerFunc: e.submitAnswerHandler(), Authenticated: true},
		{Method: "POST", Path: "/prompts/:prompt_id/resolve", HandlerFunc: e.resolvePromptHandler(), Authenticated: true},
	}
	return routes
}

// @id CreatePrompt
// @Description Adds a multiple-choice prompt to a pool. Host only.
// @Tags prompt
// @Accept json
// @Produce json
// @Param pool_id path int true "Pool Id"
// @Param prompt body PromptCreate true "Prompt"
// @Success 201 {object} PromptResponse
// @Security BearerAuth
// @Router /pools/{pool_id}/prompts [post]
func (e *PromptController) createPromptHandler() gin.HandlerFunc {
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
		var create PromptCreate
		if err := c.BindJSON(&create); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		prompt, err := e.promptService.CreatePrompt(user.Id, poolId, create.Text, create.Options)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, gin.H{"success": true, "prompt": toPromptResponse(prompt)})
	}
}

// @id SubmitAnswer
// @Description Submits the authenticated member's prediction for a prompt. One answer per member per prompt.
// @Tags prompt
// @Accept json
// @Produce json
// @Param prompt_id path int true "Prompt Id"
// @Param answer body AnswerCreate true "Answer"
// @Success 201 {object} AnswerResponse
// @Security BearerAuth
// @Router /prompts/{prompt_id}/answers [post]
func (e *PromptController) submitAnswerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthHeader(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		promptId, err := strconv.Atoi(c.Param("prompt_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var create AnswerCreate
		if err := c.BindJSON(&create); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		answer, err := e.promptService.SubmitAnswer(user, promptId, create.ChosenOption)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, gin.H{"success": true, "answer": toAnswerResponse(answer)})
	}
}

// @id ResolvePrompt
// @Description Sets the correct option and scores all answers. Host only.
// @Tags prompt
// @Accept json
// @Produce json
// @Param prompt_id path int true "Prompt Id"
// @Param resolution body PromptResolve true "Resolution"
// @Success 200 {object} PromptResponse
// @Security BearerAuth
// @Router /prompts/{prompt_id}/resolve [post]
func (e *PromptController) resolvePromptHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthHeader(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		promptId, err := strconv.Atoi(c.Param("prompt_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var resolve PromptResolve
		if err := c.BindJSON(&resolve); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		prompt, err := e.promptService.ResolvePrompt(user.Id, promptId, resolve.CorrectOption)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, gin.H{"success": true, "prompt": toPromptResponse(prompt)})
	}
}

type PromptCreate struct {
	Text    string   `json:"text" binding:"required"`
	Options []string `json:"options" binding:"required,min=2"`
}

type AnswerCreate struct {
	ChosenOption string `json:"chosen_option" binding:"required"`
}

type PromptResolve struct {
	CorrectOption string `json:"correct_option" binding:"required"`
}

type PromptResponse struct {
	Id            int       `json:"id"`
	PoolId        int       `json:"pool_id"`
	Text          string    `json:"text"`
	Options       []string  `json:"options"`
	CorrectOption *string   `json:"correct_option,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type AnswerResponse struct {
	Id            int       `json:"id"`
	PromptId      int       `json:"prompt_id"`
	UserId        int       `json:"user_id"`
	ChosenOption  string    `json:"chosen_option"`
	PointsAwarded *int      `json:"points_awarded,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toPromptResponse(prompt *repository.PoolPrompt) *PromptResponse {
	return &PromptResponse{
		Id:            prompt.Id,
		PoolId:        prompt.PoolId,
		Text:          prompt.Text,
		Options:       prompt.Options,
		CorrectOption: prompt.CorrectOption,
		Status:        string(prompt.Status),
		CreatedAt:     prompt.CreatedAt,
	}
}

func toAnswerResponse(answer *repository.PoolAnswer) *AnswerResponse {
	return &AnswerResponse{
		Id:            answer.Id,
		PromptId:      answer.PromptId,
		UserId:        answer.UserId,
		ChosenOption:  answer.ChosenOption,
		PointsAwarded: answer.PointsAwarded,
		CreatedAt:     answer.CreatedAt,
	}
}
