package config

import (
	"fmt"
	"strings"

	model "predictions/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var enumQueries = []string{
	`CREATE TYPE predictions.pool_status AS ENUM ('OPEN', 'LOCKED', 'COMPLETED')`,
	`CREATE TYPE predictions.prompt_status AS ENUM ('OPEN', 'RESOLVED')`,
	`CREATE TYPE predictions.awards_event_status AS ENUM ('OPEN', 'CLOSED')`,
	`CREATE TYPE predictions.pool_role AS ENUM ('host', 'member')`,
}

func InitDB(host string, port string, user string, password string, dbName string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "predictions.",
			SingularTable: false,
		},
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return db, Migrate(db)
}

func Migrate(db *gorm.DB) error {
	x := db.Exec(`CREATE SCHEMA IF NOT EXISTS predictions`)
	if x.Error != nil {
		return x.Error
	}
	for _, query := range enumQueries {
		x := db.Exec(query)
		if x.Error != nil {
			if strings.Contains(x.Error.Error(), "already exists") {
				continue
			}
			return x.Error
		}
	}
	return db.AutoMigrate(
		&model.User{},
		&model.Pool{},
		&model.PoolMember{},
		&model.PoolPrompt{},
		&model.PoolAnswer{},
		&model.AwardsEvent{},
		&model.AwardsCategory{},
		&model.AwardsNominee{},
		&model.AwardsPick{},
	)
}
