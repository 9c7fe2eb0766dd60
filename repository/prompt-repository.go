package repository

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PromptStatus string

const (
	PromptOpen     PromptStatus = "OPEN"
	PromptResolved PromptStatus = "RESOLVED"
)

type PoolPrompt struct {
	Id            int            `gorm:"primaryKey"`
	PoolId        int            `gorm:"not null;index"`
	Text          string         `gorm:"not null"`
	Options       pq.StringArray `gorm:"type:text[];not null"`
	CorrectOption *string        `gorm:"null"`
	Status        PromptStatus   `gorm:"type:predictions.prompt_status;not null;default:'OPEN'"`
	CreatedAt     time.Time      `gorm:"not null;autoCreateTime"`
	Pool          *Pool          `gorm:"foreignKey:PoolId"`
	Answers       []*PoolAnswer  `gorm:"foreignKey:PromptId;constraint:OnDelete:CASCADE"`
}

type PromptRepository struct {
	DB *gorm.DB
}

func NewPromptRepository(db *gorm.DB) *PromptRepository {
	return &PromptRepository{DB: db}
}

func (r *PromptRepository) GetPromptById(promptId int, preloads ...string) (*PoolPrompt, error) {
	var prompt PoolPrompt
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&prompt, promptId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &prompt, nil
}

// GetPromptForUpdate locks the prompt row for the duration of tx so that
// answer submissions racing a resolution serialize on the status check.
func (r *PromptRepository) GetPromptForUpdate(tx *gorm.DB, promptId int) (*PoolPrompt, error) {
	var prompt PoolPrompt
	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&prompt, promptId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &prompt, nil
}

func (r *PromptRepository) Save(prompt *PoolPrompt) (*PoolPrompt, error) {
	result := r.DB.Save(prompt)
	if result.Error != nil {
		return nil, result.Error
	}
	return prompt, nil
}

func (r *PromptRepository) GetPromptsForPool(poolId int) ([]*PoolPrompt, error) {
	prompts := make([]*PoolPrompt, 0)
	result := r.DB.Where("pool_id = ?", poolId).Order("created_at ASC").Find(&prompts)
	if result.Error != nil {
		return nil, result.Error
	}
	return prompts, nil
}

func (r *PromptRepository) CountForPools(poolIds []int) (map[int]int, map[int]int, error) {
	type promptCount struct {
		PoolId   int
		Total    int
		Resolved int
	}
	counts := make([]promptCount, 0)
	result := r.DB.Model(&PoolPrompt{}).
		Select("pool_id, count(*) as total, count(*) FILTER (WHERE status = 'RESOLVED') as resolved").
		Where("pool_id in ?", poolIds).
		Group("pool_id").
		Find(&counts)
	if result.Error != nil {
		return nil, nil, result.Error
	}
	totals := make(map[int]int)
	resolved := make(map[int]int)
	for _, count := range counts {
		totals[count.PoolId] = count.Total
		resolved[count.PoolId] = count.Resolved
	}
	return totals, resolved, nil
}
