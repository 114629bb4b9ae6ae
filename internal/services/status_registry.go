package services

import "clientdesk/internal/models"

// Status values are checked for membership only. Every status is reachable
// from every other one: the board lets staff drag cards between any columns,
// so the tables stay flat on purpose. Keep the map shape so a per-status rule
// can be added later without touching callers.
var LeadStatuses = map[models.LeadStatus]bool{
	models.LeadStatusNew:       true,
	models.LeadStatusContacted: true,
	models.LeadStatusQualified: true,
	models.LeadStatusProposal:  true,
	models.LeadStatusWon:       true,
	models.LeadStatusLost:      true,
	models.LeadStatusClient:    true,
}

var DealStages = map[models.DealStage]bool{
	models.StagePlanning:     true,
	models.StageInProgress:   true,
	models.StageInstallation: true,
	models.StageReview:       true,
	models.StageCompleted:    true,
}

var TaskStatuses = map[models.TaskStatus]bool{
	models.TaskStatusTodo:       true,
	models.TaskStatusInProgress: true,
	models.TaskStatusCompleted:  true,
}

var TaskPriorities = map[models.TaskPriority]bool{
	models.PriorityLow:    true,
	models.PriorityMedium: true,
	models.PriorityHigh:   true,
	models.PriorityUrgent: true,
}

var TaskActionTypes = map[models.TaskActionType]bool{
	models.ActionCall:     true,
	models.ActionEmail:    true,
	models.ActionMeeting:  true,
	models.ActionFollowUp: true,
	models.ActionCustom:   true,
}

var PaymentStatuses = map[models.PaymentStatus]bool{
	models.PaymentPaid:     true,
	models.PaymentPending:  true,
	models.PaymentFailed:   true,
	models.PaymentRefunded: true,
}
