package service

import (
	"testing"
	"time"

	"predictions/repository"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeMemberTotals(t *testing.T) {
	defer TearDown()
	host, member, pool := SetUp()
	promptService := NewPromptService(db)
	first := createPrompt(t, host.Id, pool.Id)
	second := createPrompt(t, host.Id, pool.Id)

	_, err := promptService.SubmitAnswer(member, first.Id, "A")
	assert.NoError(t, err)
	_, err = promptService.SubmitAnswer(member, second.Id, "B")
	assert.NoError(t, err)
	_, err = promptService.ResolvePrompt(host.Id, first.Id, "A")
	assert.NoError(t, err)
	_, err = promptService.ResolvePrompt(host.Id, second.Id, "C")
	assert.NoError(t, err)

	// hand-break the cache, then recompute from answers
	assert.NoError(t, db.Model(&repository.PoolMember{}).
		Where("pool_id = ? AND user_id = ?", pool.Id, member.Id).
		Update("total_points", 999).Error)
	assert.NoError(t, NewScoringService(db).RecomputeMemberTotals(pool.Id))

	memberRow := &repository.PoolMember{}
	assert.NoError(t, db.First(memberRow, "pool_id = ? AND user_id = ?", pool.Id, member.Id).Error)
	assert.Equal(t, 10, memberRow.TotalPoints)
}

func TestLeaderboardOrdering(t *testing.T) {
	defer TearDown()
	host, member, pool := SetUp()
	late := createUser("latecomer")
	_, err := NewPoolService(db).JoinPool(late, pool.InviteCode)
	assert.NoError(t, err)

	promptService := NewPromptService(db)
	prompt := createPrompt(t, host.Id, pool.Id)
	_, err = promptService.SubmitAnswer(member, prompt.Id, "A")
	assert.NoError(t, err)
	_, err = promptService.SubmitAnswer(late, prompt.Id, "A")
	assert.NoError(t, err)
	_, err = promptService.ResolvePrompt(host.Id, prompt.Id, "A")
	assert.NoError(t, err)

	entries, err := NewScoringService(db).GetLeaderboard(pool.Id)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)

	// both answered correctly; the earlier joiner ranks above the later one
	assert.Equal(t, member.Id, entries[0].UserId)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 10, entries[0].TotalPoints)
	assert.Equal(t, late.Id, entries[1].UserId)
	assert.Equal(t, 10, entries[1].TotalPoints)
	assert.Equal(t, host.Id, entries[2].UserId)
	assert.Equal(t, 0, entries[2].TotalPoints)
	assert.True(t, entries[2].IsHost)
}

func TestLeaderboardBroadcast(t *testing.T) {
	defer TearDown()
	host, member, pool := SetUp()
	prompt := createPrompt(t, host.Id, pool.Id)
	promptService := NewPromptService(db)
	scoringService := NewScoringService(db)

	updates, unsubscribe := scoringService.SubscribeLeaderboard(pool.Id)
	defer unsubscribe()

	_, err := promptService.SubmitAnswer(member, prompt.Id, "A")
	assert.NoError(t, err)
	_, err = promptService.ResolvePrompt(host.Id, prompt.Id, "A")
	assert.NoError(t, err)

	select {
	case entries := <-updates:
		assert.Equal(t, member.Id, entries[0].UserId)
		assert.Equal(t, 10, entries[0].TotalPoints)
	case <-time.After(time.Second):
		t.Fatal("no leaderboard update received")
	}
}
