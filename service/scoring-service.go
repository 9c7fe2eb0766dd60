package service

import (
	"sync"

	"predictions/repository"

	"gorm.io/gorm"
)

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserId      int    `json:"user_id"`
	DisplayName string `json:"display_name"`
	TotalPoints int    `json:"total_points"`
	IsHost      bool   `json:"is_host"`
}

type ScoringService struct {
	db               *gorm.DB
	memberRepository *repository.MemberRepository
}

func NewScoringService(db *gorm.DB) *ScoringService {
	return &ScoringService{
		db:               db,
		memberRepository: repository.NewMemberRepository(db),
	}
}

// RecomputeMemberTotals rewrites every member's cached total from the stored
// answers. It is a pure function of the answers table and safe to call at any
// time; resolutions invoke it eagerly inside their own transaction.
func (s *ScoringService) RecomputeMemberTotals(poolId int) error {
	return s.RecomputeMemberTotalsTx(s.db, poolId)
}

func (s *ScoringService) RecomputeMemberTotalsTx(tx *gorm.DB, poolId int) error {
	return tx.Exec(`
		UPDATE predictions.pool_members m
		SET total_points = COALESCE((
			SELECT SUM(a.points_awarded)
			FROM predictions.pool_answers a
			JOIN predictions.pool_prompts p ON p.id = a.prompt_id
			WHERE p.pool_id = m.pool_id AND a.user_id = m.user_id
		), 0)
		WHERE m.pool_id = ?`, poolId).Error
}

// GetLeaderboard ranks members by total points descending, with earlier
// joiners ahead on ties. The ordering is done by the store so it is identical
// for every reader.
func (s *ScoringService) GetLeaderboard(poolId int) ([]*LeaderboardEntry, error) {
	members, err := s.memberRepository.GetMembersForPool(poolId)
	if err != nil {
		return nil, err
	}
	entries := make([]*LeaderboardEntry, 0, len(members))
	for i, member := range members {
		entry := &LeaderboardEntry{
			Rank:        i + 1,
			UserId:      member.UserId,
			TotalPoints: member.TotalPoints,
			IsHost:      member.Role == repository.RoleHost,
		}
		if member.User != nil {
			entry.DisplayName = member.User.DisplayName
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Leaderboard subscriptions are shared across all service instances so a
// resolution triggered through one controller reaches sockets registered by
// another.
var leaderboardStreams = struct {
	sync.Mutex
	subscribers map[int]map[chan []*LeaderboardEntry]bool
}{subscribers: make(map[int]map[chan []*LeaderboardEntry]bool)}

func (s *ScoringService) SubscribeLeaderboard(poolId int) (chan []*LeaderboardEntry, func()) {
	ch := make(chan []*LeaderboardEntry, 1)
	leaderboardStreams.Lock()
	defer leaderboardStreams.Unlock()
	if leaderboardStreams.subscribers[poolId] == nil {
		leaderboardStreams.subscribers[poolId] = make(map[chan []*LeaderboardEntry]bool)
	}
	leaderboardStreams.subscribers[poolId][ch] = true
	return ch, func() {
		leaderboardStreams.Lock()
		defer leaderboardStreams.Unlock()
		delete(leaderboardStreams.subscribers[poolId], ch)
	}
}

// BroadcastLeaderboard pushes fresh standings to every subscriber of the pool.
// Slow consumers are skipped rather than blocking the resolver.
func (s *ScoringService) BroadcastLeaderboard(poolId int) {
	leaderboardStreams.Lock()
	subscribers := leaderboardStreams.subscribers[poolId]
	if len(subscribers) == 0 {
		leaderboardStreams.Unlock()
		return
	}
	channels := make([]chan []*LeaderboardEntry, 0, len(subscribers))
	for ch := range subscribers {
		channels = append(channels, ch)
	}
	leaderboardStreams.Unlock()

	entries, err := s.GetLeaderboard(poolId)
	if err != nil {
		return
	}
	for _, ch := range channels {
		select {
		case ch <- entries:
		default:
		}
	}
}
