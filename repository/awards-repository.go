package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AwardsEventStatus string

const (
	AwardsOpen   AwardsEventStatus = "OPEN"
	AwardsClosed AwardsEventStatus = "CLOSED"
)

type AwardsEvent struct {
	Id         int               `gorm:"primaryKey"`
	Name       string            `gorm:"not null"`
	Status     AwardsEventStatus `gorm:"type:predictions.awards_event_status;not null;default:'OPEN'"`
	Deadline   *time.Time        `gorm:"null"`
	CreatedAt  time.Time         `gorm:"not null;autoCreateTime"`
	Categories []*AwardsCategory `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
}

type AwardsCategory struct {
	Id       int              `gorm:"primaryKey"`
	EventId  int              `gorm:"not null;index"`
	Name     string           `gorm:"not null"`
	Event    *AwardsEvent     `gorm:"foreignKey:EventId"`
	Nominees []*AwardsNominee `gorm:"foreignKey:CategoryId;constraint:OnDelete:CASCADE"`
}

type AwardsNominee struct {
	Id         int    `gorm:"primaryKey"`
	CategoryId int    `gorm:"not null;index"`
	Name       string `gorm:"not null"`
}

type AwardsPick struct {
	UserId     int       `gorm:"primaryKey"`
	CategoryId int       `gorm:"primaryKey"`
	NomineeId  int       `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime"`
}

type AwardsRepository struct {
	DB *gorm.DB
}

func NewAwardsRepository(db *gorm.DB) *AwardsRepository {
	return &AwardsRepository{DB: db}
}

func (r *AwardsRepository) GetEventById(eventId int, preloads ...string) (*AwardsEvent, error) {
	var event AwardsEvent
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&event, eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &event, nil
}

func (r *AwardsRepository) GetAllEvents(preloads ...string) ([]*AwardsEvent, error) {
	events := make([]*AwardsEvent, 0)
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.Order("created_at DESC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *AwardsRepository) GetCategoryById(categoryId int) (*AwardsCategory, error) {
	var category AwardsCategory
	result := r.DB.Preload("Event").Preload("Nominees").First(&category, categoryId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (r *AwardsRepository) SaveEvent(event *AwardsEvent) (*AwardsEvent, error) {
	result := r.DB.Save(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *AwardsRepository) SaveCategory(category *AwardsCategory) (*AwardsCategory, error) {
	result := r.DB.Save(category)
	if result.Error != nil {
		return nil, result.Error
	}
	return category, nil
}

func (r *AwardsRepository) SaveNominee(nominee *AwardsNominee) (*AwardsNominee, error) {
	result := r.DB.Save(nominee)
	if result.Error != nil {
		return nil, result.Error
	}
	return nominee, nil
}

// UpsertPick keeps at most one pick per (user, category); a re-pick replaces
// the nominee instead of inserting a second row.
func (r *AwardsRepository) UpsertPick(pick *AwardsPick) (*AwardsPick, error) {
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"nominee_id", "updated_at"}),
	}).Create(pick)
	if result.Error != nil {
		return nil, result.Error
	}
	return pick, nil
}

func (r *AwardsRepository) GetPicksForUser(userId int, categoryIds []int) ([]*AwardsPick, error) {
	picks := make([]*AwardsPick, 0)
	result := r.DB.Find(&picks, "user_id = ? AND category_id in ?", userId, categoryIds)
	if result.Error != nil {
		return nil, result.Error
	}
	return picks, nil
}

func (r *AwardsRepository) GetPick(userId int, categoryId int) (*AwardsPick, error) {
	var pick AwardsPick
	result := r.DB.First(&pick, "user_id = ? AND category_id = ?", userId, categoryId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &pick, nil
}
