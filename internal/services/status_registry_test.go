package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clientdesk/internal/models"
)

func TestLeadStatuses_Membership(t *testing.T) {
	for _, s := range []models.LeadStatus{"new", "contacted", "qualified", "proposal", "won", "lost", "client"} {
		assert.True(t, LeadStatuses[s], "expected %q to be a known lead status", s)
	}
	assert.False(t, LeadStatuses["deleted"])
	assert.False(t, LeadStatuses[""])
	assert.False(t, LeadStatuses["New"], "membership is case sensitive")
}

func TestDealStages_Membership(t *testing.T) {
	for _, s := range []models.DealStage{"planning", "in_progress", "installation", "review", "completed"} {
		assert.True(t, DealStages[s], "expected %q to be a known deal stage", s)
	}
	assert.False(t, DealStages["cancelled"])
}

func TestTaskStatuses_Membership(t *testing.T) {
	for _, s := range []models.TaskStatus{"todo", "in_progress", "completed"} {
		assert.True(t, TaskStatuses[s], "expected %q to be a known task status", s)
	}
	assert.False(t, TaskStatuses["done"])
}
