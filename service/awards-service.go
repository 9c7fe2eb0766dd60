package service

import (
	"errors"
	"time"

	"predictions/app_error"
	"predictions/metrics"
	"predictions/repository"
	"predictions/utils"

	"gorm.io/gorm"
)

type AwardsService struct {
	awardsRepository *repository.AwardsRepository
}

func NewAwardsService(db *gorm.DB) *AwardsService {
	return &AwardsService{
		awardsRepository: repository.NewAwardsRepository(db),
	}
}

func (s *AwardsService) GetAllEvents() ([]*repository.AwardsEvent, error) {
	return s.awardsRepository.GetAllEvents("Categories.Nominees")
}

func (s *AwardsService) GetEventById(eventId int, preloads ...string) (*repository.AwardsEvent, error) {
	event, err := s.awardsRepository.GetEventById(eventId, preloads...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("event not found")
		}
		return nil, err
	}
	return event, nil
}

// Pick upserts the user's single selection for a category. Re-picking before
// the deadline replaces the previous nominee; the last write wins.
func (s *AwardsService) Pick(userId int, categoryId int, nomineeId int) (*repository.AwardsPick, error) {
	category, err := s.awardsRepository.GetCategoryById(categoryId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("category not found")
		}
		return nil, err
	}
	if category.Event.Deadline != nil && time.Now().After(*category.Event.Deadline) {
		return nil, app_error.State("deadline passed")
	}
	if category.Event.Status != repository.AwardsOpen {
		return nil, app_error.State("predictions locked")
	}
	nomineeIds := utils.Map(category.Nominees, func(nominee *repository.AwardsNominee) int {
		return nominee.Id
	})
	if !utils.Contains(nomineeIds, nomineeId) {
		return nil, app_error.NotFound("nominee does not belong to this category")
	}
	pick, err := s.awardsRepository.UpsertPick(&repository.AwardsPick{
		UserId:     userId,
		CategoryId: categoryId,
		NomineeId:  nomineeId,
	})
	if err != nil {
		return nil, err
	}
	metrics.PicksUpsertedCounter.Inc()
	return pick, nil
}

func (s *AwardsService) GetUserPicks(userId int, eventId int) ([]*repository.AwardsPick, error) {
	event, err := s.GetEventById(eventId, "Categories")
	if err != nil {
		return nil, err
	}
	categoryIds := utils.Map(event.Categories, func(category *repository.AwardsCategory) int {
		return category.Id
	})
	if len(categoryIds) == 0 {
		return []*repository.AwardsPick{}, nil
	}
	return s.awardsRepository.GetPicksForUser(userId, categoryIds)
}

func (s *AwardsService) CreateEvent(event *repository.AwardsEvent) (*repository.AwardsEvent, error) {
	if event.Name == "" {
		return nil, app_error.Validation("name is required")
	}
	event.Status = repository.AwardsOpen
	return s.awardsRepository.SaveEvent(event)
}

func (s *AwardsService) CreateCategory(eventId int, name string) (*repository.AwardsCategory, error) {
	if name == "" {
		return nil, app_error.Validation("name is required")
	}
	if _, err := s.GetEventById(eventId); err != nil {
		return nil, err
	}
	return s.awardsRepository.SaveCategory(&repository.AwardsCategory{
		EventId: eventId,
		Name:    name,
	})
}

func (s *AwardsService) CreateNominee(categoryId int, name string) (*repository.AwardsNominee, error) {
	if name == "" {
		return nil, app_error.Validation("name is required")
	}
	if _, err := s.awardsRepository.GetCategoryById(categoryId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("category not found")
		}
		return nil, err
	}
	return s.awardsRepository.SaveNominee(&repository.AwardsNominee{
		CategoryId: categoryId,
		Name:       name,
	})
}

// CloseEvent is terminal for picks; the event stays readable.
func (s *AwardsService) CloseEvent(eventId int) (*repository.AwardsEvent, error) {
	event, err := s.GetEventById(eventId)
	if err != nil {
		return nil, err
	}
	event.Status = repository.AwardsClosed
	return s.awardsRepository.SaveEvent(event)
}
