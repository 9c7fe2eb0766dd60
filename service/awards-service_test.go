package service

import (
	"testing"
	"time"

	"predictions/app_error"
	"predictions/repository"

	"github.com/stretchr/testify/assert"
)

func TestPickUpsertsSingleRow(t *testing.T) {
	defer TearDown()
	user := createUser("picker")
	_, category, first, second := awardsSetUp(t, nil)
	awardsService := NewAwardsService(db)

	pick, err := awardsService.Pick(user.Id, category.Id, first.Id)
	assert.NoError(t, err)
	assert.Equal(t, first.Id, pick.NomineeId)

	// changing your mind replaces the pick instead of adding a row
	pick, err = awardsService.Pick(user.Id, category.Id, second.Id)
	assert.NoError(t, err)
	assert.Equal(t, second.Id, pick.NomineeId)

	var count int64
	db.Model(&repository.AwardsPick{}).Where("user_id = ? AND category_id = ?", user.Id, category.Id).Count(&count)
	assert.Equal(t, int64(1), count)

	stored := &repository.AwardsPick{}
	assert.NoError(t, db.First(stored, "user_id = ? AND category_id = ?", user.Id, category.Id).Error)
	assert.Equal(t, second.Id, stored.NomineeId)
}

func TestPickGuards(t *testing.T) {
	defer TearDown()
	user := createUser("picker")
	event, category, first, _ := awardsSetUp(t, nil)
	awardsService := NewAwardsService(db)

	_, err := awardsService.Pick(user.Id, category.Id+1, first.Id)
	assert.Equal(t, 404, app_error.HTTPStatus(err))

	// nominee from another category
	otherCategory, err := awardsService.CreateCategory(event.Id, "Best Director")
	assert.NoError(t, err)
	intruder, err := awardsService.CreateNominee(otherCategory.Id, "Somebody Else")
	assert.NoError(t, err)
	_, err = awardsService.Pick(user.Id, category.Id, intruder.Id)
	assert.Equal(t, 404, app_error.HTTPStatus(err))

	_, err = awardsService.CloseEvent(event.Id)
	assert.NoError(t, err)
	_, err = awardsService.Pick(user.Id, category.Id, first.Id)
	assert.Equal(t, 403, app_error.HTTPStatus(err))
	assert.Equal(t, "predictions locked", err.Error())
}

func TestPickDeadline(t *testing.T) {
	defer TearDown()
	user := createUser("picker")
	past := time.Now().Add(-time.Hour)
	_, category, first, _ := awardsSetUp(t, &past)
	awardsService := NewAwardsService(db)

	// a past deadline rejects picks regardless of event status
	_, err := awardsService.Pick(user.Id, category.Id, first.Id)
	assert.Equal(t, 403, app_error.HTTPStatus(err))
	assert.Equal(t, "deadline passed", err.Error())
}

func TestGetUserPicks(t *testing.T) {
	defer TearDown()
	user := createUser("picker")
	event, category, first, _ := awardsSetUp(t, nil)
	awardsService := NewAwardsService(db)

	picks, err := awardsService.GetUserPicks(user.Id, event.Id)
	assert.NoError(t, err)
	assert.Empty(t, picks)

	_, err = awardsService.Pick(user.Id, category.Id, first.Id)
	assert.NoError(t, err)

	picks, err = awardsService.GetUserPicks(user.Id, event.Id)
	assert.NoError(t, err)
	assert.Len(t, picks, 1)
	assert.Equal(t, first.Id, picks[0].NomineeId)
}

func TestCreateAwardsValidation(t *testing.T) {
	defer TearDown()
	awardsService := NewAwardsService(db)

	_, err := awardsService.CreateEvent(&repository.AwardsEvent{})
	assert.Equal(t, 400, app_error.HTTPStatus(err))

	_, err = awardsService.CreateCategory(12345, "Best Picture")
	assert.Equal(t, 404, app_error.HTTPStatus(err))

	_, err = awardsService.CreateNominee(12345, "Movie One")
	assert.Equal(t, 404, app_error.HTTPStatus(err))
}
