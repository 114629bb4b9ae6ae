package services

import (
	"context"
	"log"
	"time"

	"clientdesk/internal/repositories"
)

const reminderBatchSize = 50

// ReminderService periodically scans for tasks whose reminder is due and
// notifies the assignee by email and, when linked, Telegram.
type ReminderService struct {
	Tasks repositories.TaskRepository
	Users repositories.UserRepository
	Mail  EmailService
	Tg    *TelegramService
}

func NewReminderService(tasks repositories.TaskRepository, users repositories.UserRepository, mail EmailService, tg *TelegramService) *ReminderService {
	return &ReminderService{Tasks: tasks, Users: users, Mail: mail, Tg: tg}
}

func (s *ReminderService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ScanOnce(ctx)
		}
	}
}

func (s *ReminderService) ScanOnce(ctx context.Context) {
	tasks, err := s.Tasks.ListDueForReminder(ctx, reminderBatchSize)
	if err != nil {
		log.Printf("[reminder] list due: %v", err)
		return
	}
	for _, task := range tasks {
		if task.AssigneeID != nil {
			user, err := s.Users.FindByID(ctx, *task.AssigneeID)
			if err != nil {
				log.Printf("[reminder] find assignee %d: %v", *task.AssigneeID, err)
			} else if user != nil {
				if s.Mail != nil && user.Email != "" {
					if err := s.Mail.SendTaskReminder(user.Email, task); err != nil {
						log.Printf("[reminder] email %s: %v", user.Email, err)
					}
				}
				if user.TelegramChatID != nil {
					s.Tg.NotifyTaskDue(*user.TelegramChatID, task)
				}
			}
		}
		if err := s.Tasks.SetReminderFired(ctx, task.ID); err != nil {
			log.Printf("[reminder] mark fired %d: %v", task.ID, err)
		}
	}
}
