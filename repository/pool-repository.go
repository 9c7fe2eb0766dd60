package repository

import (
	"time"

	"gorm.io/gorm"
)

type PoolStatus string

const (
	PoolOpen      PoolStatus = "OPEN"
	PoolLocked    PoolStatus = "LOCKED"
	PoolCompleted PoolStatus = "COMPLETED"
)

type Pool struct {
	Id          int           `gorm:"primaryKey"`
	Name        string        `gorm:"not null"`
	Description string        `gorm:"null"`
	HostId      int           `gorm:"not null"`
	InviteCode  string        `gorm:"not null;uniqueIndex"`
	Status      PoolStatus    `gorm:"type:predictions.pool_status;not null;default:'OPEN'"`
	Deadline    *time.Time    `gorm:"null"`
	Category    string        `gorm:"null"`
	Public      bool          `gorm:"not null"`
	CreatedAt   time.Time     `gorm:"not null;autoCreateTime"`
	Prompts     []*PoolPrompt `gorm:"foreignKey:PoolId;constraint:OnDelete:CASCADE"`
	Members     []*PoolMember `gorm:"foreignKey:PoolId;constraint:OnDelete:CASCADE"`
}

type PoolRepository struct {
	DB *gorm.DB
}

func NewPoolRepository(db *gorm.DB) *PoolRepository {
	return &PoolRepository{DB: db}
}

func (r *PoolRepository) GetPoolById(poolId int, preloads ...string) (*Pool, error) {
	var pool Pool
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&pool, poolId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &pool, nil
}

func (r *PoolRepository) GetPoolByInviteCode(inviteCode string) (*Pool, error) {
	var pool Pool
	result := r.DB.First(&pool, "invite_code = ?", inviteCode)
	if result.Error != nil {
		return nil, result.Error
	}
	return &pool, nil
}

func (r *PoolRepository) GetPoolsByIds(poolIds []int) ([]*Pool, error) {
	pools := make([]*Pool, 0)
	result := r.DB.Find(&pools, "id in ?", poolIds)
	if result.Error != nil {
		return nil, result.Error
	}
	return pools, nil
}

func (r *PoolRepository) Save(pool *Pool) (*Pool, error) {
	result := r.DB.Save(pool)
	if result.Error != nil {
		return nil, result.Error
	}
	return pool, nil
}

// DeleteCascade removes a pool and everything hanging off it in dependency
// order: answers, prompts, members, then the pool row itself. The ordering is
// applied explicitly instead of relying on the database cascade so that a
// partially failed delete never leaves answers without their prompt. Deleting
// already-absent children is a no-op, which keeps retries idempotent.
func (r *PoolRepository) DeleteCascade(poolId int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		promptIds := tx.Model(&PoolPrompt{}).Select("id").Where("pool_id = ?", poolId)
		if err := tx.Where("prompt_id IN (?)", promptIds).Delete(&PoolAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pool_id = ?", poolId).Delete(&PoolPrompt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pool_id = ?", poolId).Delete(&PoolMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Pool{}, poolId).Error
	})
}
