package controller

import (
	"predictions/auth"
	"predictions/repository"
	"predictions/utils"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RequiredRoles []repository.Permission
}

func SetRoutes(r *gin.Engine, db *gorm.DB, cacheStore persistence.CacheStore) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupPoolController(db)...)
	routes = append(routes, setupPromptController(db)...)
	routes = append(routes, setupScoreController(db)...)
	routes = append(routes, setupAwardsController(db, cacheStore)...)
	routes = append(routes, setupUserController(db)...)
	api := r.Group("/api")
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(route.RequiredRoles))
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		api.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

func tokenFromRequest(c *gin.Context) string {
	authHeader := c.Request.Header.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	authCookie, err := c.Cookie("auth")
	if err != nil {
		return ""
	}
	return authCookie
}

func AuthMiddleware(roles []repository.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		token, err := auth.ParseToken(tokenString)
		if err != nil || !token.Valid {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		claims := &auth.Claims{}
		claims.FromJWTClaims(token.Claims)
		if err := claims.Valid(); err != nil {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		if len(roles) == 0 {
			c.Next()
			return
		}
		for _, requiredRole := range roles {
			if utils.Contains(claims.Permissions, string(requiredRole)) {
				c.Next()
				return
			}
		}
		c.JSON(403, gin.H{"error": "Unauthorized"})
		c.Abort()
	}
}
