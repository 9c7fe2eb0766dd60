package repository

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Permission string

const (
	PermissionAdmin Permission = "admin"
)

type User struct {
	Id          int            `gorm:"primaryKey"`
	Email       string         `gorm:"null"`
	DisplayName string         `gorm:"not null"`
	Permissions pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime"`
}

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetUserById(userId int) (*User, error) {
	var user User
	result := r.DB.First(&user, userId)
	if result.Error != nil {
		return nil, fmt.Errorf("user with id %d not found", userId)
	}
	return &user, nil
}

func (r *UserRepository) GetUsersByIds(userIds []int) ([]*User, error) {
	users := make([]*User, 0)
	result := r.DB.Find(&users, "id in ?", userIds)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *UserRepository) SaveUser(user *User) (*User, error) {
	result := r.DB.Save(user)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save user: %v", result.Error)
	}
	return user, nil
}
