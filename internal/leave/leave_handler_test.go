package leave_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/leave"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/leave/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_ApplyAndGetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockService(ctrl)
	h := leave.NewHandler(svc)

	svc.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		Return(leave.LeaveResponse{ID: 6, Status: leave.StatusPending}, nil)

	body := `{"employeeId":1,"type":"Vacation","startDate":"2024-03-01","endDate":"2024-03-05","reason":"Spring break"}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Apply(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Pending"`)

	svc.EXPECT().
		GetAll(gomock.Any()).
		Return([]leave.LeaveResponse{{ID: 1}, {ID: 2}}, nil)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/leaves", nil)
	h.GetAll(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), `"meta"`)
}

func TestHandler_ApplyRejectsUnknownType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := leave.NewHandler(mock.NewMockService(ctrl))

	body := `{"employeeId":1,"type":"Sabbatical","startDate":"2024-03-01","endDate":"2024-03-05"}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Apply(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DecidePassesIdentityAsApprover(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockService(ctrl)
	svc.EXPECT().
		Decide(gomock.Any(), 4, leave.StatusApproved, "Admin User").
		Return(leave.LeaveResponse{ID: 4, Status: leave.StatusApproved, ApprovedBy: "Admin User"}, nil)

	h := leave.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("name", "Admin User")
	c.Request = httptest.NewRequest(http.MethodPatch, "/leaves/4/status", strings.NewReader(`{"status":"Approved"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "4"}}
	h.Decide(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"approvedBy":"Admin User"`)
}

func TestHandler_DecideRejectsBadStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := leave.NewHandler(mock.NewMockService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/leaves/4/status", strings.NewReader(`{"status":"Maybe"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "4"}}
	h.Decide(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetByIdNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockService(ctrl)
	svc.EXPECT().
		GetByID(gomock.Any(), 77).
		Return(leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound)

	h := leave.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/leaves/77", nil)
	c.Params = gin.Params{{Key: "id", Value: "77"}}
	h.GetById(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
