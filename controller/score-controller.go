package controller

import (
	"net/http"
	"strconv"

	"predictions/app_error"
	"predictions/service"
	"predictions/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

type ScoreController struct {
	scoringService *service.ScoringService
	poolService    *service.PoolService
	userService    *service.UserService
}

func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{
		scoringService: service.NewScoringService(db),
		poolService:    service.NewPoolService(db),
		userService:    service.NewUserService(db),
	}
}

func setupScoreController(db *gorm.DB) []RouteInfo {
	e := NewScoreController(db)
	basePath := "/pools/:pool_id/leaderboard"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getLeaderboardHandler(), Authenticated: true},
		{Method: "GET", Path: "/ws", HandlerFunc: e.leaderboardWebSocketHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// allow any host origin to connect to the websocket
		return true
	},
}

// @id GetLeaderboard
// @Description Returns the pool's members ranked by points, earlier joiners first on ties
// @Tags score
// @Produce json
// @Param pool_id path int true "Pool Id"
// @Success 200 {array} service.LeaderboardEntry
// @Security BearerAuth
// @Router /pools/{pool_id}/leaderboard [get]
func (e *ScoreController) getLeaderboardHandler() gin.HandlerFunc {
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
		// visibility follows the pool itself
		if _, err := e.poolService.GetPoolForUser(user.Id, poolId); err != nil {
			app_error.Respond(c, err)
			return
		}
		entries, err := e.scoringService.GetLeaderboard(poolId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, gin.H{"success": true, "leaderboard": entries})
	}
}

// @id LeaderboardWebSocket
// @Description Streams the leaderboard after every resolution. The token is passed as a query parameter.
// @Tags score
// @Param pool_id path int true "Pool Id"
// @Param token query string true "Auth token"
// @Router /pools/{pool_id}/leaderboard/ws [get]
func (e *ScoreController) leaderboardWebSocketHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromToken(c.Query("token"))
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		poolId, err := strconv.Atoi(c.Param("pool_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if _, err := e.poolService.GetPoolForUser(user.Id, poolId); err != nil {
			app_error.Respond(c, err)
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.JSON(500, gin.H{"error": "could not upgrade connection"})
			return
		}
		defer utils.Closer(conn)()

		updates, unsubscribe := e.scoringService.SubscribeLeaderboard(poolId)
		defer unsubscribe()

		// initial snapshot so the client does not wait for the next resolution
		if entries, err := e.scoringService.GetLeaderboard(poolId); err == nil {
			if err := conn.WriteJSON(entries); err != nil {
				return
			}
		}
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
		for {
			select {
			case entries := <-updates:
				if err := conn.WriteJSON(entries); err != nil {
					return
				}
			case <-closed:
				return
			}
		}
	}
}
