package repository

import (
	"time"

	"gorm.io/gorm"
)

type PoolAnswer struct {
	Id            int       `gorm:"primaryKey"`
	PromptId      int       `gorm:"not null;uniqueIndex:idx_answers_prompt_user"`
	UserId        int       `gorm:"not null;uniqueIndex:idx_answers_prompt_user"`
	ChosenOption  string    `gorm:"not null"`
	PointsAwarded *int      `gorm:"null"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime"`
}

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

// Create relies on the unique (prompt_id, user_id) index; a duplicate insert
// surfaces as gorm.ErrDuplicatedKey for the caller to map.
func (r *AnswerRepository) Create(answer *PoolAnswer) (*PoolAnswer, error) {
	result := r.DB.Create(answer)
	if result.Error != nil {
		return nil, result.Error
	}
	return answer, nil
}

func (r *AnswerRepository) GetAnswer(promptId int, userId int) (*PoolAnswer, error) {
	var answer PoolAnswer
	result := r.DB.First(&answer, "prompt_id = ? AND user_id = ?", promptId, userId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &answer, nil
}

func (r *AnswerRepository) GetAnswersForPrompt(promptId int) ([]*PoolAnswer, error) {
	answers := make([]*PoolAnswer, 0)
	result := r.DB.Find(&answers, "prompt_id = ?", promptId)
	if result.Error != nil {
		return nil, result.Error
	}
	return answers, nil
}

func (r *AnswerRepository) GetAnswersForUser(promptIds []int, userId int) ([]*PoolAnswer, error) {
	answers := make([]*PoolAnswer, 0)
	result := r.DB.Find(&answers, "prompt_id in ? AND user_id = ?", promptIds, userId)
	if result.Error != nil {
		return nil, result.Error
	}
	return answers, nil
}
