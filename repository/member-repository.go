package repository

import (
	"time"

	"gorm.io/gorm"
)

type PoolRole string

const (
	RoleHost   PoolRole = "host"
	RoleMember PoolRole = "member"
)

type PoolMember struct {
	PoolId      int       `gorm:"primaryKey"`
	UserId      int       `gorm:"primaryKey"`
	Role        PoolRole  `gorm:"type:predictions.pool_role;not null;default:'member'"`
	TotalPoints int       `gorm:"not null;default:0"`
	JoinedAt    time.Time `gorm:"not null"`
	User        *User     `gorm:"foreignKey:UserId"`
}

type MemberRepository struct {
	DB *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{DB: db}
}

func (r *MemberRepository) GetMember(poolId int, userId int) (*PoolMember, error) {
	var member PoolMember
	result := r.DB.First(&member, "pool_id = ? AND user_id = ?", poolId, userId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &member, nil
}

// GetMembersForPool returns members in leaderboard order: points descending,
// earlier joiners first on a tie.
func (r *MemberRepository) GetMembersForPool(poolId int) ([]*PoolMember, error) {
	members := make([]*PoolMember, 0)
	result := r.DB.Preload("User").
		Where("pool_id = ?", poolId).
		Order("total_points DESC, joined_at ASC").
		Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}

func (r *MemberRepository) GetMembershipsForUser(userId int) ([]*PoolMember, error) {
	members := make([]*PoolMember, 0)
	result := r.DB.Find(&members, "user_id = ?", userId)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}

func (r *MemberRepository) Save(member *PoolMember) (*PoolMember, error) {
	result := r.DB.Create(member)
	if result.Error != nil {
		return nil, result.Error
	}
	return member, nil
}

func (r *MemberRepository) CountForPools(poolIds []int) (map[int]int, error) {
	type memberCount struct {
		PoolId int
		Total  int
	}
	counts := make([]memberCount, 0)
	result := r.DB.Model(&PoolMember{}).
		Select("pool_id, count(*) as total").
		Where("pool_id in ?", poolIds).
		Group("pool_id").
		Find(&counts)
	if result.Error != nil {
		return nil, result.Error
	}
	totals := make(map[int]int)
	for _, count := range counts {
		totals[count.PoolId] = count.Total
	}
	return totals, nil
}
