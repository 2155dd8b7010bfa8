package faq

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/mlmplatform/internal/domain"
	"github.com/GlebRadaev/mlmplatform/internal/service/faqservice"
)

func NewMock(t *testing.T) (*FAQHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func request(method, target, id, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListPublishedHandler(t *testing.T) {
	handler, service := NewMock(t)
	createdAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	service.EXPECT().ListPublished(gomock.Any()).Return([]domain.FAQ{
		{ID: 1, Question: "What is a sponsor?", Answer: "The member who referred you.", Position: 1, IsActive: true, CreatedAt: createdAt},
	}, nil)

	w := httptest.NewRecorder()
	handler.ListPublished(w, httptest.NewRequest(http.MethodGet, "/api/faqs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"question":"What is a sponsor?","answer":"The member who referred you.","position":1,"isActive":true,"createdAt":"2024-05-01T00:00:00Z"}]`, w.Body.String())
}

func TestListAllHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("database error"))

	w := httptest.NewRecorder()
	handler.ListAll(w, httptest.NewRequest(http.MethodGet, "/api/admin/faqs", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"question":"Q?","answer":"A.","position":2,"isActive":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), faqservice.Input{Question: "Q?", Answer: "A.", Position: 2, IsActive: true}).
					Return(&domain.FAQ{ID: 4, Question: "Q?", Answer: "A.", Position: 2, IsActive: true}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Missing answer",
			body:         `{"question":"Q?"}`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Negative position",
			body:         `{"question":"Q?","answer":"A.","position":-1}`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.Create(w, httptest.NewRequest(http.MethodPost, "/api/admin/faqs", bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUpdateHandler(t *testing.T) {
	body := `{"question":"Q?","answer":"A.","position":1}`
	in := faqservice.Input{Question: "Q?", Answer: "A.", Position: 1}

	tests := []struct {
		name         string
		id           string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Updated",
			id:   "3",
			prepareMock: func(service *MockService) {
				service.EXPECT().Update(gomock.Any(), 3, in).Return(&domain.FAQ{ID: 3}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Missing",
			id:   "4",
			prepareMock: func(service *MockService) {
				service.EXPECT().Update(gomock.Any(), 4, in).Return(nil, faqservice.ErrFAQNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid id",
			id:           "x",
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.Update(w, request(http.MethodPut, "/api/admin/faqs/"+tt.id, tt.id, body))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Delete(gomock.Any(), 3).Return(nil)
	w := httptest.NewRecorder()
	handler.Delete(w, request(http.MethodDelete, "/api/admin/faqs/3", "3", ""))
	assert.Equal(t, http.StatusNoContent, w.Code)

	service.EXPECT().Delete(gomock.Any(), 4).Return(faqservice.ErrFAQNotFound)
	w = httptest.NewRecorder()
	handler.Delete(w, request(http.MethodDelete, "/api/admin/faqs/4", "4", ""))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
