package employee_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/employee/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_CreateAndGetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockService(ctrl)
	h := employee.NewHandler(svc)

	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(employee.EmployeeResponse{ID: 9, Name: "Alice Cooper", Status: employee.StatusActive}, nil)

	body := `{"name":"Alice Cooper","email":"alice@example.com","department":"Engineering","role":"Developer"}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":9`)

	svc.EXPECT().
		GetAll(gomock.Any()).
		Return([]employee.EmployeeResponse{{ID: 1}, {ID: 2}, {ID: 3}}, nil)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/employees?page=1&page_size=2", nil)
	h.GetAll(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), `"meta"`)
	assert.Contains(t, w2.Body.String(), `"total":3`)
}

func TestHandler_GetAllFiltersByDepartment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockService(ctrl)
	svc.EXPECT().
		GetByDepartment(gomock.Any(), "Finance").
		Return([]employee.EmployeeResponse{{ID: 7, Department: "Finance"}}, nil)

	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees?department=Finance", nil)
	h.GetAll(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
}

func TestHandler_GetByIdRejectsNonNumericID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := employee.NewHandler(mock.NewMockService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	h.GetById(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestHandler_GetByIdNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockService(ctrl)
	svc.EXPECT().
		GetByID(gomock.Any(), 42).
		Return(employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound)

	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees/42", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	h.GetById(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := employee.NewHandler(mock.NewMockService(ctrl))

	// missing required name and department
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"email":"x@example.com","role":"Dev"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
