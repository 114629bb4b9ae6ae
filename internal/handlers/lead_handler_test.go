package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clientdesk/internal/authz"
	"clientdesk/internal/models"
	"clientdesk/internal/services"
)

type leadRepoStub struct{ mock.Mock }

func (m *leadRepoStub) Store(ctx context.Context, lead *models.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *leadRepoStub) FindByID(ctx context.Context, id int64) (*models.Lead, error) {
	args := m.Called(ctx, id)
	lead, _ := args.Get(0).(*models.Lead)
	return lead, args.Error(1)
}

func (m *leadRepoStub) FindAll(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	args := m.Called(ctx, filter)
	leads, _ := args.Get(0).([]models.Lead)
	return leads, args.Error(1)
}

func (m *leadRepoStub) Update(ctx context.Context, lead *models.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *leadRepoStub) UpdateStatus(ctx context.Context, id int64, to models.LeadStatus) error {
	return m.Called(ctx, id, to).Error(0)
}

func (m *leadRepoStub) Archive(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type recorderNop struct{}

func (recorderNop) Record(context.Context, models.Activity) {}

func putLead(t *testing.T, repo *leadRepoStub, userID, roleID int, payload models.Lead) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := services.NewLeadService(repo, nil, nil, nil, recorderNop{})
	handler := NewLeadHandler(svc, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPut, "/leads/7", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Set("user_id", userID)
	c.Set("role_id", roleID)

	handler.Update(c)
	return w
}

func TestLeadUpdate_ElevatedOmittedOwnerKeepsCurrentOwner(t *testing.T) {
	repo := new(leadRepoStub)
	repo.On("FindByID", mock.Anything, int64(7)).Return(&models.Lead{ID: 7, Name: "Acme", Status: models.LeadStatusNew, OwnerID: 42}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(l *models.Lead) bool {
		return l.OwnerID == 42
	})).Return(nil)

	w := putLead(t, repo, 99, authz.RoleManagement, models.Lead{Name: "Acme Ltd", Status: models.LeadStatusContacted})

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestLeadUpdate_ElevatedCanReassignOwner(t *testing.T) {
	repo := new(leadRepoStub)
	repo.On("FindByID", mock.Anything, int64(7)).Return(&models.Lead{ID: 7, Name: "Acme", Status: models.LeadStatusNew, OwnerID: 42}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(l *models.Lead) bool {
		return l.OwnerID == 55
	})).Return(nil)

	w := putLead(t, repo, 99, authz.RoleManagement, models.Lead{Name: "Acme Ltd", Status: models.LeadStatusContacted, OwnerID: 55})

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestLeadUpdate_NonElevatedCannotReassignOwner(t *testing.T) {
	repo := new(leadRepoStub)
	repo.On("FindByID", mock.Anything, int64(7)).Return(&models.Lead{ID: 7, Name: "Acme", Status: models.LeadStatusNew, OwnerID: 42}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(l *models.Lead) bool {
		return l.OwnerID == 42
	})).Return(nil)

	w := putLead(t, repo, 42, authz.RoleSales, models.Lead{Name: "Acme Ltd", Status: models.LeadStatusContacted, OwnerID: 55})

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestLeadUpdate_NonOwnerForbidden(t *testing.T) {
	repo := new(leadRepoStub)
	repo.On("FindByID", mock.Anything, int64(7)).Return(&models.Lead{ID: 7, Name: "Acme", Status: models.LeadStatusNew, OwnerID: 42}, nil)

	w := putLead(t, repo, 13, authz.RoleSales, models.Lead{Name: "Acme Ltd", Status: models.LeadStatusContacted})

	assert.Equal(t, http.StatusForbidden, w.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
