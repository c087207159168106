package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"pawhaven/config"
	userRepo "pawhaven/database/repository/user"
	"pawhaven/models"
	"pawhaven/services/notification"
	"pawhaven/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitNotificationWorker runs the async notification worker in background.
func InitNotificationWorker(mailer *notification.Mailer, users userRepo.UserRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"notifications": 2,
				"default":       1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeBookingStatus, handleBookingStatusTask(mailer, users))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[NotifyWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotifyWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotifyWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleBookingStatusTask delivers a status-change message by email and, when
// the recipient has a registered device, by push. Email failure is returned so
// asynq retries the task; push failure is logged only.
func handleBookingStatusTask(mailer *notification.Mailer, users userRepo.UserRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingStatusPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotifyWorker] invalid payload: %v", err)
			return err
		}

		subject, body := notification.ComposeBookingStatusEmail(p)
		if err := mailer.Send(ctx, p.RecipientEmail, subject, body); err != nil {
			log.Printf("[NotifyWorker] failed to email booking %s: %v", p.BookingID, err)
			return err
		}

		sendPush(ctx, users, p, subject)
		return nil
	}
}

func sendPush(ctx context.Context, users userRepo.UserRepository, p models.BookingStatusPayload, title string) {
	if utils.FCMClient == nil {
		return
	}

	usr, err := users.GetByID(p.RecipientID)
	if err != nil || usr == nil || usr.FCMToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: usr.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  "Open the app for details.",
		},
		Data: map[string]string{
			"bookingId": p.BookingID,
			"status":    p.Status,
			"kind":      p.Kind,
		},
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		log.Printf("[NotifyWorker] push delivery failed for booking %s: %v", p.BookingID, err)
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[NotifyWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
