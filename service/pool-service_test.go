package service

import (
	"testing"

	"predictions/app_error"
	"predictions/repository"

	"github.com/stretchr/testify/assert"
)

func TestCreatePoolRequiresName(t *testing.T) {
	defer TearDown()
	host := createUser("host")
	_, err := NewPoolService(db).CreatePool(host, &repository.Pool{})
	assert.Error(t, err)
	assert.Equal(t, 400, app_error.HTTPStatus(err))
}

func TestCreatePoolMakesHostMember(t *testing.T) {
	defer TearDown()
	host := createUser("host")
	poolService := NewPoolService(db)
	pool, err := poolService.CreatePool(host, &repository.Pool{Name: "pool"})
	assert.NoError(t, err)
	assert.Equal(t, repository.PoolOpen, pool.Status)
	assert.Len(t, pool.InviteCode, 8)

	member := &repository.PoolMember{}
	err = db.First(member, "pool_id = ? AND user_id = ?", pool.Id, host.Id).Error
	assert.NoError(t, err)
	assert.Equal(t, repository.RoleHost, member.Role)
}

func TestJoinPool(t *testing.T) {
	defer TearDown()
	_, member, pool := SetUp()
	poolService := NewPoolService(db)

	// joining twice is a conflict
	_, err := poolService.JoinPool(member, pool.InviteCode)
	assert.Error(t, err)
	assert.Equal(t, 409, app_error.HTTPStatus(err))

	// unknown code
	stranger := createUser("stranger")
	_, err = poolService.JoinPool(stranger, "NOSUCHCD")
	assert.Equal(t, 404, app_error.HTTPStatus(err))

	// locked pools accept no members
	_, err = poolService.LockPool(pool.HostId, pool.Id)
	assert.NoError(t, err)
	_, err = poolService.JoinPool(stranger, pool.InviteCode)
	assert.Equal(t, 403, app_error.HTTPStatus(err))
}

func TestDeletePoolRequiresHost(t *testing.T) {
	defer TearDown()
	_, member, pool := SetUp()
	poolService := NewPoolService(db)

	err := poolService.DeletePool(member.Id, pool.Id)
	assert.Error(t, err)
	assert.Equal(t, 403, app_error.HTTPStatus(err))

	// nothing was deleted
	_, err = poolService.GetPoolById(pool.Id)
	assert.NoError(t, err)
}

func TestDeletePoolCascades(t *testing.T) {
	defer TearDown()
	host, member, pool := SetUp()
	prompt := createPrompt(t, host.Id, pool.Id)
	_, err := NewPromptService(db).SubmitAnswer(member, prompt.Id, "A")
	assert.NoError(t, err)

	poolService := NewPoolService(db)
	err = poolService.DeletePool(host.Id, pool.Id)
	assert.NoError(t, err)

	var answers, prompts, members int64
	db.Model(&repository.PoolAnswer{}).Where("prompt_id = ?", prompt.Id).Count(&answers)
	db.Model(&repository.PoolPrompt{}).Where("pool_id = ?", pool.Id).Count(&prompts)
	db.Model(&repository.PoolMember{}).Where("pool_id = ?", pool.Id).Count(&members)
	assert.Zero(t, answers)
	assert.Zero(t, prompts)
	assert.Zero(t, members)

	_, err = poolService.GetPoolById(pool.Id)
	assert.Equal(t, 404, app_error.HTTPStatus(err))

	userPools, err := poolService.ListUserPools(host.Id)
	assert.NoError(t, err)
	assert.Empty(t, userPools)

	// retrying the delete reports not found, not a partial failure
	err = poolService.DeletePool(host.Id, pool.Id)
	assert.Equal(t, 404, app_error.HTTPStatus(err))
}

func TestListUserPools(t *testing.T) {
	defer TearDown()
	host, member, pool := SetUp()
	promptService := NewPromptService(db)
	prompt := createPrompt(t, host.Id, pool.Id)
	createPrompt(t, host.Id, pool.Id)
	_, err := promptService.SubmitAnswer(member, prompt.Id, "A")
	assert.NoError(t, err)
	_, err = promptService.ResolvePrompt(host.Id, prompt.Id, "A")
	assert.NoError(t, err)

	poolService := NewPoolService(db)
	hostPools, err := poolService.ListUserPools(host.Id)
	assert.NoError(t, err)
	assert.Len(t, hostPools, 1)
	assert.True(t, hostPools[0].IsHost)
	assert.Equal(t, 2, hostPools[0].MemberCount)
	assert.Equal(t, 2, hostPools[0].PromptCount)
	assert.Equal(t, 1, hostPools[0].ResolvedPromptCount)

	memberPools, err := poolService.ListUserPools(member.Id)
	assert.NoError(t, err)
	assert.Len(t, memberPools, 1)
	assert.False(t, memberPools[0].IsHost)
	assert.Equal(t, 10, memberPools[0].TotalPoints)
}

func TestPrivatePoolVisibility(t *testing.T) {
	defer TearDown()
	_, _, pool := SetUp()
	stranger := createUser("stranger")
	_, err := NewPoolService(db).GetPoolForUser(stranger.Id, pool.Id)
	assert.Equal(t, 403, app_error.HTTPStatus(err))
}
