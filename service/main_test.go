package service

import (
	"fmt"
	"log"
	"testing"
	"time"

	"predictions/config"
	"predictions/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/ory/dockertest/v3"
)

var db *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	// uses pool to try to connect to Docker
	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	// pulls an image, creates a container based on it and runs it
	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // Tell docker to hard kill the container in 10 minutes
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable search_path=predictions",
		resource.GetPort("5432/tcp"))

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				TablePrefix:   "predictions.",
				SingularTable: false,
			},
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		if err != nil {
			return err
		}
		return config.Migrate(db)
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}()
	m.Run()
}

func TearDown() {
	db.Exec("DELETE FROM predictions.pool_answers")
	db.Exec("DELETE FROM predictions.pool_prompts")
	db.Exec("DELETE FROM predictions.pool_members")
	db.Exec("DELETE FROM predictions.pools")
	db.Exec("DELETE FROM predictions.awards_picks")
	db.Exec("DELETE FROM predictions.awards_nominees")
	db.Exec("DELETE FROM predictions.awards_categories")
	db.Exec("DELETE FROM predictions.awards_events")
	db.Exec("DELETE FROM predictions.users")
}

func createUser(name string) *repository.User {
	user := &repository.User{DisplayName: name}
	if err := db.Create(user).Error; err != nil {
		log.Fatalf("Error creating user: %v", err)
	}
	return user
}

// SetUp creates a host, a member and an open pool both belong to.
func SetUp() (*repository.User, *repository.User, *repository.Pool) {
	host := createUser("host")
	member := createUser("member")
	pool, err := NewPoolService(db).CreatePool(host, &repository.Pool{
		Name:     "Oscars watch party",
		Category: "movies",
	})
	if err != nil {
		log.Fatalf("Error creating pool: %v", err)
	}
	if _, err := NewPoolService(db).JoinPool(member, pool.InviteCode); err != nil {
		log.Fatalf("Error joining pool: %v", err)
	}
	return host, member, pool
}

func createPrompt(t *testing.T, hostId int, poolId int) *repository.PoolPrompt {
	t.Helper()
	prompt, err := NewPromptService(db).CreatePrompt(hostId, poolId, "Best Picture?", []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("Error creating prompt: %v", err)
	}
	return prompt
}

func awardsSetUp(t *testing.T, deadline *time.Time) (*repository.AwardsEvent, *repository.AwardsCategory, *repository.AwardsNominee, *repository.AwardsNominee) {
	t.Helper()
	awardsService := NewAwardsService(db)
	event, err := awardsService.CreateEvent(&repository.AwardsEvent{Name: "Academy Awards", Deadline: deadline})
	if err != nil {
		t.Fatalf("Error creating event: %v", err)
	}
	category, err := awardsService.CreateCategory(event.Id, "Best Picture")
	if err != nil {
		t.Fatalf("Error creating category: %v", err)
	}
	first, err := awardsService.CreateNominee(category.Id, "Movie One")
	if err != nil {
		t.Fatalf("Error creating nominee: %v", err)
	}
	second, err := awardsService.CreateNominee(category.Id, "Movie Two")
	if err != nil {
		t.Fatalf("Error creating nominee: %v", err)
	}
	return event, category, first, second
}
