package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockWaitlistUseCase struct {
	mock.Mock
}

func (m *MockWaitlistUseCase) Join(ctx context.Context, who domain.Identity, eventID int64) (bool, error) {
	args := m.Called(ctx, who, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWaitlistUseCase) Leave(ctx context.Context, who domain.Identity, eventID int64) error {
	args := m.Called(ctx, who, eventID)
	return args.Error(0)
}

func (m *MockWaitlistUseCase) OnCapacityFreed(ctx context.Context, eventID int64) int {
	args := m.Called(ctx, eventID)
	return args.Int(0)
}

func TestWaitlistHandler_join(t *testing.T) {
	tests := []struct {
		name   string
		joined bool
		status int
	}{
		{"new entry", true, http.StatusCreated},
		{"already listed", false, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockWaitlistUseCase{}
			handler := NewWaitlistHandler(mockService)

			c, w := newTestContext(http.MethodPost, "/events/5/waitlist", nil, alice)
			c.Params = gin.Params{{Key: "id", Value: "5"}}

			mockService.On("Join", mock.Anything, alice, int64(5)).Return(tt.joined, nil)

			handler.join(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.joined, decode[joinWaitlistResponse](t, w).Joined)
		})
	}
}

func TestWaitlistHandler_leave(t *testing.T) {
	mockService := &MockWaitlistUseCase{}
	handler := NewWaitlistHandler(mockService)

	c, _ := newTestContext(http.MethodDelete, "/events/5/waitlist", nil, alice)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	mockService.On("Leave", mock.Anything, alice, int64(5)).Return(nil)

	handler.leave(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	mockService.AssertExpectations(t)
}

func TestWaitlistHandler_joinBanned(t *testing.T) {
	mockService := &MockWaitlistUseCase{}
	handler := NewWaitlistHandler(mockService)

	banned := domain.Identity{UserID: "mallory", Role: domain.RoleBanned}
	c, w := newTestContext(http.MethodPost, "/events/5/waitlist", nil, banned)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	mockService.On("Join", mock.Anything, banned, int64(5)).Return(false, domain.ErrForbidden)

	handler.join(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
