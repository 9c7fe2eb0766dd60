package service

import (
	"predictions/auth"
	"predictions/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type UserService struct {
	userRepository *repository.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		userRepository: repository.NewUserRepository(db),
	}
}

func (s *UserService) GetUserById(id int) (*repository.User, error) {
	return s.userRepository.GetUserById(id)
}

func (s *UserService) SaveUser(user *repository.User) (*repository.User, error) {
	return s.userRepository.SaveUser(user)
}

func (s *UserService) GetUserFromAuthHeader(c *gin.Context) (*repository.User, error) {
	authHeader := c.Request.Header.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return s.GetUserFromAuthCookie(c)
	}
	return s.GetUserFromToken(authHeader[7:])
}

func (s *UserService) GetUserFromAuthCookie(c *gin.Context) (*repository.User, error) {
	authCookie, err := c.Cookie("auth")
	if err != nil {
		return nil, err
	}
	return s.GetUserFromToken(authCookie)
}

func (s *UserService) GetUserFromToken(tokenString string) (*repository.User, error) {
	token, err := auth.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims := &auth.Claims{}
	if token.Valid {
		claims.FromJWTClaims(token.Claims)
		if err := claims.Valid(); err != nil {
			return nil, err
		}
		return s.GetUserById(claims.UserId)
	}
	return nil, jwt.ErrInvalidKey
}
