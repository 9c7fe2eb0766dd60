package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"predictions/config"
	"predictions/metrics"

	"github.com/segmentio/kafka-go"
)

const (
	NotificationPoolJoined     = "pool_joined"
	NotificationAnswered       = "answer_submitted"
	NotificationPromptResolved = "prompt_resolved"
	NotificationPoolDeleted    = "pool_deleted"
)

type Notification struct {
	UserId            int    `json:"user_id"`
	Type              string `json:"type"`
	TriggeredByUserId int    `json:"triggered_by_user_id"`
	Message           string `json:"message"`
}

var (
	notificationWriter *kafka.Writer
	onceWriter         sync.Once
)

// NotificationService hands user-facing events to the delivery service via
// kafka. Dispatch is fire-and-forget: a broker failure is logged and counted
// but never fails the operation that triggered it.
type NotificationService struct {
	writer *kafka.Writer
}

func NewNotificationService() *NotificationService {
	onceWriter.Do(func() {
		writer, err := config.NotificationWriter()
		if err != nil {
			log.Println("notification dispatch disabled:", err)
			return
		}
		notificationWriter = writer
	})
	return &NotificationService{writer: notificationWriter}
}

func (s *NotificationService) Notify(notification Notification) {
	if s.writer == nil {
		return
	}
	payload, err := json.Marshal(notification)
	if err != nil {
		metrics.NotificationErrorCounter.Inc()
		log.Println("failed to serialize notification:", err)
		return
	}
	go func() {
		err := s.writer.WriteMessages(context.Background(), kafka.Message{Value: payload})
		if err != nil {
			metrics.NotificationErrorCounter.Inc()
			log.Println("failed to dispatch notification:", err)
		}
	}()
}

func (s *NotificationService) NotifyAll(userIds []int, notificationType string, triggeredByUserId int, message string) {
	for _, userId := range userIds {
		if userId == triggeredByUserId {
			continue
		}
		s.Notify(Notification{
			UserId:            userId,
			Type:              notificationType,
			TriggeredByUserId: triggeredByUserId,
			Message:           message,
		})
	}
}
