package service

import (
	"errors"
	"fmt"
	"time"

	"predictions/app_error"
	"predictions/config"
	"predictions/metrics"
	"predictions/repository"
	"predictions/utils"

	"gorm.io/gorm"
)

type PromptService struct {
	db                  *gorm.DB
	promptRepository    *repository.PromptRepository
	answerRepository    *repository.AnswerRepository
	memberRepository    *repository.MemberRepository
	poolRepository      *repository.PoolRepository
	scoringService      *ScoringService
	notificationService *NotificationService
}

func NewPromptService(db *gorm.DB) *PromptService {
	return &PromptService{
		db:                  db,
		promptRepository:    repository.NewPromptRepository(db),
		answerRepository:    repository.NewAnswerRepository(db),
		memberRepository:    repository.NewMemberRepository(db),
		poolRepository:      repository.NewPoolRepository(db),
		scoringService:      NewScoringService(db),
		notificationService: NewNotificationService(),
	}
}

func (s *PromptService) CreatePrompt(requesterId int, poolId int, text string, options []string) (*repository.PoolPrompt, error) {
	if text == "" {
		return nil, app_error.Validation("text is required")
	}
	if len(options) < 2 {
		return nil, app_error.Validation("at least two options are required")
	}
	if len(utils.Uniques(options)) != len(options) {
		return nil, app_error.Validation("options must be unique")
	}
	pool, err := s.poolRepository.GetPoolById(poolId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("pool not found")
		}
		return nil, err
	}
	if pool.HostId != requesterId {
		return nil, app_error.Permission("only the host can create prompts")
	}
	if pool.Status != repository.PoolOpen {
		return nil, app_error.State("pool is not open")
	}
	prompt := &repository.PoolPrompt{
		PoolId:  poolId,
		Text:    text,
		Options: options,
		Status:  repository.PromptOpen,
	}
	return s.promptRepository.Save(prompt)
}

func (s *PromptService) GetPromptById(promptId int, preloads ...string) (*repository.PoolPrompt, error) {
	prompt, err := s.promptRepository.GetPromptById(promptId, preloads...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("prompt not found")
		}
		return nil, err
	}
	return prompt, nil
}

// SubmitAnswer records a member's choice. The prompt row is locked for the
// duration of the transaction so a submission racing a resolution either lands
// before the resolution's scoring snapshot or is rejected by the status check.
func (s *PromptService) SubmitAnswer(user *repository.User, promptId int, chosenOption string) (*repository.PoolAnswer, error) {
	var answer *repository.PoolAnswer
	var pool *repository.Pool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		prompt, err := s.promptRepository.GetPromptForUpdate(tx, promptId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return app_error.NotFound("prompt not found")
			}
			return err
		}
		pool, err = s.poolRepository.GetPoolById(prompt.PoolId)
		if err != nil {
			return err
		}
		if _, err := s.memberRepository.GetMember(pool.Id, user.Id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return app_error.Permission("only pool members can answer")
			}
			return err
		}
		if prompt.Status == repository.PromptResolved {
			metrics.AnswersRejectedCounter.WithLabelValues("resolved").Inc()
			return app_error.Conflict("prompt already resolved")
		}
		if pool.Status != repository.PoolOpen {
			metrics.AnswersRejectedCounter.WithLabelValues("pool_closed").Inc()
			return app_error.State("pool is not open")
		}
		if pool.Deadline != nil && time.Now().After(*pool.Deadline) {
			metrics.AnswersRejectedCounter.WithLabelValues("deadline").Inc()
			return app_error.State("deadline passed")
		}
		if !utils.Contains(prompt.Options, chosenOption) {
			return app_error.Validation("chosen option is not one of the prompt's options")
		}
		answer = &repository.PoolAnswer{
			PromptId:     promptId,
			UserId:       user.Id,
			ChosenOption: chosenOption,
		}
		if err := tx.Create(answer).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				metrics.AnswersRejectedCounter.WithLabelValues("duplicate").Inc()
				return app_error.Conflict("already answered")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.AnswersSubmittedCounter.Inc()
	if pool.HostId != user.Id {
		s.notificationService.Notify(Notification{
			UserId:            pool.HostId,
			Type:              NotificationAnswered,
			TriggeredByUserId: user.Id,
			Message:           fmt.Sprintf("%s made a prediction in %q", user.DisplayName, pool.Name),
		})
	}
	return answer, nil
}

// ResolvePrompt flips the prompt to resolved, scores every persisted answer
// and recomputes member totals, all in one transaction. Answers committed
// after the prompt row is locked are rejected by SubmitAnswer's status check,
// so no answer is ever left unscored. The pool deadline does not block
// resolution; it only gates new answers.
func (s *PromptService) ResolvePrompt(requesterId int, promptId int, correctOption string) (*repository.PoolPrompt, error) {
	start := time.Now()
	var prompt *repository.PoolPrompt
	var answers []*repository.PoolAnswer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		prompt, err = s.promptRepository.GetPromptForUpdate(tx, promptId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return app_error.NotFound("prompt not found")
			}
			return err
		}
		pool, err := s.poolRepository.GetPoolById(prompt.PoolId)
		if err != nil {
			return err
		}
		if pool.HostId != requesterId {
			return app_error.Permission("only the host can resolve prompts")
		}
		if prompt.Status == repository.PromptResolved {
			return app_error.Conflict("prompt already resolved")
		}
		if !utils.Contains(prompt.Options, correctOption) {
			return app_error.Validation("correct option is not one of the prompt's options")
		}
		prompt.Status = repository.PromptResolved
		prompt.CorrectOption = &correctOption
		if err := tx.Save(prompt).Error; err != nil {
			return err
		}
		points := config.Env().PointsPerCorrectAnswer
		err = tx.Model(&repository.PoolAnswer{}).
			Where("prompt_id = ? AND chosen_option = ?", promptId, correctOption).
			Update("points_awarded", points).Error
		if err != nil {
			return err
		}
		err = tx.Model(&repository.PoolAnswer{}).
			Where("prompt_id = ? AND chosen_option <> ?", promptId, correctOption).
			Update("points_awarded", 0).Error
		if err != nil {
			return err
		}
		if err := s.scoringService.RecomputeMemberTotalsTx(tx, pool.Id); err != nil {
			return err
		}
		if err := tx.Find(&answers, "prompt_id = ?", promptId).Error; err != nil {
			return err
		}
		return completePoolIfDone(tx, pool)
	})
	if err != nil {
		return nil, err
	}
	metrics.PromptsResolvedCounter.Inc()
	metrics.ResolutionDuration.Observe(time.Since(start).Seconds())
	answererIds := utils.Map(answers, func(answer *repository.PoolAnswer) int {
		return answer.UserId
	})
	s.notificationService.NotifyAll(answererIds, NotificationPromptResolved, requesterId,
		fmt.Sprintf("The prompt %q was resolved: %s", prompt.Text, correctOption))
	s.scoringService.BroadcastLeaderboard(prompt.PoolId)
	return prompt, nil
}

// completePoolIfDone moves an open or locked pool to completed once its last
// prompt resolves.
func completePoolIfDone(tx *gorm.DB, pool *repository.Pool) error {
	var open int64
	err := tx.Model(&repository.PoolPrompt{}).
		Where("pool_id = ? AND status = ?", pool.Id, repository.PromptOpen).
		Count(&open).Error
	if err != nil {
		return err
	}
	if open > 0 || pool.Status == repository.PoolCompleted {
		return nil
	}
	pool.Status = repository.PoolCompleted
	return tx.Save(pool).Error
}
