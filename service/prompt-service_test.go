package service

import (
	"testing"
	"time"

	"predictions/app_error"
	"predictions/repository"

	"github.com/stretchr/testify/assert"
)

func TestCreatePromptValidation(t *testing.T) {
	defer TearDown()
	host, member, pool := SetUp()
	promptService := NewPromptService(db)

	_, err := promptService.CreatePrompt(host.Id, pool.Id, "", []string{"A", "B"})
	assert.Equal(t, 400, app_error.HTTPStatus(err))

	_, err = promptService.CreatePrompt(host.Id, pool.Id, "q", []string{"A"})
	assert.Equal(t, 400, app_error.HTTPStatus(err))

	_, err = promptService.CreatePrompt(host.Id, pool.Id, "q", []string{"A", "A"})
	assert.Equal(t, 400, app_error.HTTPStatus(err))

	_, err = promptService.CreatePrompt(member.Id, pool.Id, "q", []string{"A", "B"})
	assert.Equal(t, 403, app_error.HTTPStatus(err))

	_, err = promptService.CreatePrompt(host.Id, pool.Id+1, "q", []string{"A", "B"})
	assert.Equal(t, 404, app_error.HTTPStatus(err))
}

func TestSubmitAnswerOncePerMember(t *testing.T) {
	defer TearDown()
	host, member, pool := SetUp()
	prompt := createPrompt(t, host.Id, pool.Id)
	promptService := NewPromptService(db)

	answer, err := promptService.SubmitAnswer(member, prompt.Id, "A")
	assert.NoError(t, err)
	assert.Nil(t, answer.PointsAwarded)

	// second submission is rejected, even with a different option
	_, err = promptService.SubmitAnswer(member, prompt.Id, "B")
	assert.Error(t, err)
	assert.Equal(t, 409, app_error.HTTPStatus(err))
	assert.Equal(t, "already answered", err.Error())

	var count int64
	db.Model(&repository.PoolAnswer{}).Where("prompt_id = ? AND user_id = ?", prompt.Id, member.Id).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitAnswerGuards(t *testing.T) {
	defer TearDown()
	host, member, pool := SetUp()
	prompt := createPrompt(t, host.Id, pool.Id)
	promptService := NewPromptService(db)

	_, err := promptService.SubmitAnswer(member, prompt.Id+1, "A")
	assert.Equal(t, 404, app_error.HTTPStatus(err))

	stranger := createUser("stranger")
	_, err = promptService.SubmitAnswer(stranger, prompt.Id, "A")
	assert.Equal(t, 403, app_error.HTTPStatus(err))

	_, err = promptService.SubmitAnswer(member, prompt.Id, "Z")
	assert.Equal(t, 400, app_error.HTTPStatus(err))

	// pool deadline gates answers
	past := time.Now().Add(-time.Hour)
	pool.Deadline = &past
	assert.NoError(t, db.Save(pool).Error)
	_, err = promptService.SubmitAnswer(member, prompt.Id, "A")
	assert.Equal(t, 403, app_error.HTTPStatus(err))
	assert.Equal(t, "deadline passed", err.Error())
}

func TestResolvePromptScoresAllAnswers(t *testing.T) {
	defer TearDown()
	host, member, pool := SetUp()
	_, err := NewPoolService(db).JoinPool(createUser("other"), pool.InviteCode)
	assert.NoError(t, err)
	prompt := createPrompt(t, host.Id, pool.Id)
	promptService := NewPromptService(db)

	_, err = promptService.SubmitAnswer(member, prompt.Id, "A")
	assert.NoError(t, err)
	hostAnswer, err := promptService.SubmitAnswer(host, prompt.Id, "B")
	assert.NoError(t, err)
	assert.Nil(t, hostAnswer.PointsAwarded)

	resolved, err := promptService.ResolvePrompt(host.Id, prompt.Id, "A")
	assert.NoError(t, err)
	assert.Equal(t, repository.PromptResolved, resolved.Status)
	assert.Equal(t, "A", *resolved.CorrectOption)

	// every persisted answer is scored, none stays null
	answers := make([]*repository.PoolAnswer, 0)
	assert.NoError(t, db.Find(&answers, "prompt_id = ?", prompt.Id).Error)
	assert.Len(t, answers, 2)
	for _, answer := range answers {
		assert.NotNil(t, answer.PointsAwarded)
		if answer.ChosenOption == "A" {
			assert.Equal(t, 10, *answer.PointsAwarded)
		} else {
			assert.Equal(t, 0, *answer.PointsAwarded)
		}
	}

	// member totals were recomputed eagerly
	memberRow := &repository.PoolMember{}
	assert.NoError(t, db.First(memberRow, "pool_id = ? AND user_id = ?", pool.Id, member.Id).Error)
	assert.Equal(t, 10, memberRow.TotalPoints)
	hostRow := &repository.PoolMember{}
	assert.NoError(t, db.First(hostRow, "pool_id = ? AND user_id = ?", pool.Id, host.Id).Error)
	assert.Equal(t, 0, hostRow.TotalPoints)
}

func TestResolvePromptGuards(t *testing.T) {
	defer TearDown()
	host, member, pool := SetUp()
	prompt := createPrompt(t, host.Id, pool.Id)
	promptService := NewPromptService(db)

	_, err := promptService.ResolvePrompt(member.Id, prompt.Id, "A")
	assert.Equal(t, 403, app_error.HTTPStatus(err))

	// the failed attempt changed nothing
	unchanged, err := promptService.GetPromptById(prompt.Id)
	assert.NoError(t, err)
	assert.Equal(t, repository.PromptOpen, unchanged.Status)

	_, err = promptService.ResolvePrompt(host.Id, prompt.Id, "Z")
	assert.Equal(t, 400, app_error.HTTPStatus(err))

	_, err = promptService.ResolvePrompt(host.Id, prompt.Id, "A")
	assert.NoError(t, err)

	_, err = promptService.ResolvePrompt(host.Id, prompt.Id, "B")
	assert.Equal(t, 409, app_error.HTTPStatus(err))

	// answers after resolution are conflicts
	_, err = promptService.SubmitAnswer(member, prompt.Id, "A")
	assert.Equal(t, 409, app_error.HTTPStatus(err))
	assert.Equal(t, "prompt already resolved", err.Error())
}

func TestResolvingLastPromptCompletesPool(t *testing.T) {
	defer TearDown()
	host, _, pool := SetUp()
	first := createPrompt(t, host.Id, pool.Id)
	second := createPrompt(t, host.Id, pool.Id)
	promptService := NewPromptService(db)
	poolService := NewPoolService(db)

	_, err := promptService.ResolvePrompt(host.Id, first.Id, "A")
	assert.NoError(t, err)
	open, err := poolService.GetPoolById(pool.Id)
	assert.NoError(t, err)
	assert.Equal(t, repository.PoolOpen, open.Status)

	_, err = promptService.ResolvePrompt(host.Id, second.Id, "B")
	assert.NoError(t, err)
	completed, err := poolService.GetPoolById(pool.Id)
	assert.NoError(t, err)
	assert.Equal(t, repository.PoolCompleted, completed.Status)
}
