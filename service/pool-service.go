package service

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"predictions/app_error"
	"predictions/metrics"
	"predictions/repository"
	"predictions/utils"

	"gorm.io/gorm"
)

const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const inviteCodeLength = 8

type PoolService struct {
	db                  *gorm.DB
	poolRepository      *repository.PoolRepository
	memberRepository    *repository.MemberRepository
	promptRepository    *repository.PromptRepository
	notificationService *NotificationService
}

func NewPoolService(db *gorm.DB) *PoolService {
	return &PoolService{
		db:                  db,
		poolRepository:      repository.NewPoolRepository(db),
		memberRepository:    repository.NewMemberRepository(db),
		promptRepository:    repository.NewPromptRepository(db),
		notificationService: NewNotificationService(),
	}
}

func newInviteCode() string {
	code := make([]byte, inviteCodeLength)
	for i := range code {
		code[i] = inviteCodeAlphabet[rand.IntN(len(inviteCodeAlphabet))]
	}
	return string(code)
}

// CreatePool creates an open pool and its host membership in one transaction.
func (s *PoolService) CreatePool(host *repository.User, pool *repository.Pool) (*repository.Pool, error) {
	if pool.Name == "" {
		return nil, app_error.Validation("name is required")
	}
	pool.HostId = host.Id
	pool.Status = repository.PoolOpen
	pool.InviteCode = newInviteCode()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pool).Error; err != nil {
			return err
		}
		member := &repository.PoolMember{
			PoolId:   pool.Id,
			UserId:   host.Id,
			Role:     repository.RoleHost,
			JoinedAt: time.Now(),
		}
		return tx.Create(member).Error
	})
	if err != nil {
		return nil, err
	}
	metrics.PoolsCreatedCounter.Inc()
	return pool, nil
}

func (s *PoolService) GetPoolById(poolId int, preloads ...string) (*repository.Pool, error) {
	pool, err := s.poolRepository.GetPoolById(poolId, preloads...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("pool not found")
		}
		return nil, err
	}
	return pool, nil
}

// GetPoolForUser returns the pool with its prompts and members; private pools
// are visible to members only.
func (s *PoolService) GetPoolForUser(requesterId int, poolId int) (*repository.Pool, error) {
	pool, err := s.GetPoolById(poolId, "Prompts", "Members", "Members.User")
	if err != nil {
		return nil, err
	}
	if !pool.Public {
		if _, err := s.memberRepository.GetMember(poolId, requesterId); err != nil {
			return nil, app_error.Permission("pool is private")
		}
	}
	return pool, nil
}

// DeletePool removes the pool and all dependent rows in dependency order.
// Earlier deletions are not rolled back by a later failure at the store level;
// the call is idempotent and can be retried.
func (s *PoolService) DeletePool(requesterId int, poolId int) error {
	pool, err := s.GetPoolById(poolId)
	if err != nil {
		return err
	}
	if pool.HostId != requesterId {
		return app_error.Permission("only the host can delete a pool")
	}
	members, err := s.memberRepository.GetMembersForPool(poolId)
	if err != nil {
		return err
	}
	if err := s.poolRepository.DeleteCascade(poolId); err != nil {
		return err
	}
	metrics.PoolsDeletedCounter.Inc()
	memberIds := utils.Map(members, func(member *repository.PoolMember) int {
		return member.UserId
	})
	s.notificationService.NotifyAll(memberIds, NotificationPoolDeleted, requesterId,
		fmt.Sprintf("The pool %q was deleted by its host", pool.Name))
	return nil
}

func (s *PoolService) JoinPool(user *repository.User, inviteCode string) (*repository.Pool, error) {
	pool, err := s.poolRepository.GetPoolByInviteCode(inviteCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("invite code not found")
		}
		return nil, err
	}
	if pool.Status != repository.PoolOpen {
		return nil, app_error.State("pool is not open")
	}
	member := &repository.PoolMember{
		PoolId:   pool.Id,
		UserId:   user.Id,
		Role:     repository.RoleMember,
		JoinedAt: time.Now(),
	}
	if _, err := s.memberRepository.Save(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, app_error.Conflict("already a member")
		}
		return nil, err
	}
	s.notificationService.Notify(Notification{
		UserId:            pool.HostId,
		Type:              NotificationPoolJoined,
		TriggeredByUserId: user.Id,
		Message:           fmt.Sprintf("%s joined your pool %q", user.DisplayName, pool.Name),
	})
	return pool, nil
}

// LockPool stops a pool from accepting new answers or members.
func (s *PoolService) LockPool(requesterId int, poolId int) (*repository.Pool, error) {
	pool, err := s.GetPoolById(poolId)
	if err != nil {
		return nil, err
	}
	if pool.HostId != requesterId {
		return nil, app_error.Permission("only the host can lock a pool")
	}
	if pool.Status != repository.PoolOpen {
		return nil, app_error.State("pool is not open")
	}
	pool.Status = repository.PoolLocked
	return s.poolRepository.Save(pool)
}

type UserPool struct {
	Pool                *repository.Pool
	MemberCount         int
	PromptCount         int
	ResolvedPromptCount int
	IsHost              bool
	TotalPoints         int
	JoinedAt            time.Time
}

// ListUserPools returns every pool the user belongs to, enriched with derived
// counts. Read-only.
func (s *PoolService) ListUserPools(userId int) ([]*UserPool, error) {
	memberships, err := s.memberRepository.GetMembershipsForUser(userId)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return []*UserPool{}, nil
	}
	poolIds := utils.Map(memberships, func(member *repository.PoolMember) int {
		return member.PoolId
	})
	pools, err := s.poolRepository.GetPoolsByIds(poolIds)
	if err != nil {
		return nil, err
	}
	poolMap := make(map[int]*repository.Pool)
	for _, pool := range pools {
		poolMap[pool.Id] = pool
	}
	memberCounts, err := s.memberRepository.CountForPools(poolIds)
	if err != nil {
		return nil, err
	}
	promptCounts, resolvedCounts, err := s.promptRepository.CountForPools(poolIds)
	if err != nil {
		return nil, err
	}
	userPools := make([]*UserPool, 0, len(memberships))
	for _, membership := range memberships {
		pool, ok := poolMap[membership.PoolId]
		if !ok {
			continue
		}
		userPools = append(userPools, &UserPool{
			Pool:                pool,
			MemberCount:         memberCounts[pool.Id],
			PromptCount:         promptCounts[pool.Id],
			ResolvedPromptCount: resolvedCounts[pool.Id],
			IsHost:              membership.Role == repository.RoleHost,
			TotalPoints:         membership.TotalPoints,
			JoinedAt:            membership.JoinedAt,
		})
	}
	return userPools, nil
}
