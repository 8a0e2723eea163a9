package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/edurift/levelmap-server/internal/account"
	"github.com/edurift/levelmap-server/internal/domain"
	"github.com/edurift/levelmap-server/internal/identity"
)

// MockAccountService mocks account.Service
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, email, password, school, username string) (account.RegisterResult, error) {
	args := m.Called(ctx, email, password, school, username)
	return args.Get(0).(account.RegisterResult), args.Error(1)
}

func (m *MockAccountService) SignIn(ctx context.Context, email, password string) (*identity.Payload, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Payload), args.Error(1)
}

func (m *MockAccountService) CurrentUser(ctx context.Context, accessToken string) (*identity.Payload, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Payload), args.Error(1)
}

func (m *MockAccountService) LaunchGame(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockAccountService) Courses() []domain.Course {
	args := m.Called()
	return args.Get(0).([]domain.Course)
}

func TestHandleSignup(t *testing.T) {
	validBody := map[string]string{
		"email":    "kid@school.edu",
		"password": "hunter22",
		"school":   "Springfield Elementary",
		"username": "kid",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		rawBody        string
		setupMock      func(*MockAccountService)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name:        "Success - New Account",
			requestBody: validBody,
			setupMock: func(m *MockAccountService) {
				m.On("Register", mock.Anything, "kid@school.edu", "hunter22", "Springfield Elementary", "kid").
					Return(account.RegisterResult{UserID: "uid-1", Created: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"status":"success"`, `"message":"Account created successfully."`, `"userId":"created"`},
		},
		{
			name:        "Success - Duplicate Email",
			requestBody: validBody,
			setupMock: func(m *MockAccountService) {
				m.On("Register", mock.Anything, "kid@school.edu", "hunter22", "Springfield Elementary", "kid").
					Return(account.RegisterResult{UserID: "uid-1", Created: false}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"status":"success"`, `"userId":"exists"`},
		},
		{
			name:        "Provider Rejection - Envelope With Provider Message",
			requestBody: validBody,
			setupMock: func(m *MockAccountService) {
				m.On("Register", mock.Anything, "kid@school.edu", "hunter22", "Springfield Elementary", "kid").
					Return(account.RegisterResult{}, &account.ProviderError{Message: "User already registered"})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"status":"error"`, `"message":"Signup failed: User already registered"`},
		},
		{
			name:        "Store Failure - Envelope With Database Error",
			requestBody: validBody,
			setupMock: func(m *MockAccountService) {
				m.On("Register", mock.Anything, "kid@school.edu", "hunter22", "Springfield Elementary", "kid").
					Return(account.RegisterResult{}, &account.StoreError{Err: assert.AnError})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"status":"error"`, `"message":"Database error:`},
		},
		{
			name:           "Malformed Body - Empty 400",
			rawBody:        `{"email": `,
			setupMock:      func(m *MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid Email - Empty 400",
			requestBody: map[string]string{
				"email":    "not-an-email",
				"password": "hunter22",
				"username": "kid",
			},
			setupMock:      func(m *MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Short Password - Empty 400",
			requestBody: map[string]string{
				"email":    "kid@school.edu",
				"password": "abc",
				"username": "kid",
			},
			setupMock:      func(m *MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockAccountService{}
			tt.setupMock(mockSvc)

			var body []byte
			if tt.rawBody != "" {
				body = []byte(tt.rawBody)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}

			req := httptest.NewRequest("POST", "/api/auth/signup", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			HandleSignup(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, want := range tt.expectedBody {
				assert.Contains(t, w.Body.String(), want)
			}
			if tt.expectedStatus == http.StatusBadRequest {
				assert.Empty(t, w.Body.String())
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleSignin(t *testing.T) {
	t.Run("Success Returns Access Token", func(t *testing.T) {
		mockSvc := &MockAccountService{}
		mockSvc.On("SignIn", mock.Anything, "kid@school.edu", "hunter22").
			Return(&identity.Payload{
				AccessToken: "jwt-token",
				User:        &identity.User{ID: "uid-1", Email: "kid@school.edu"},
			}, nil)

		body, _ := json.Marshal(map[string]string{"email": "kid@school.edu", "password": "hunter22"})
		req := httptest.NewRequest("POST", "/api/auth/signin", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleSignin(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"success"`)
		assert.Contains(t, w.Body.String(), `"accessToken":"jwt-token"`)
		assert.Contains(t, w.Body.String(), `"userId":"uid-1"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Provider Rejection - Envelope", func(t *testing.T) {
		mockSvc := &MockAccountService{}
		mockSvc.On("SignIn", mock.Anything, "kid@school.edu", "wrong").
			Return(nil, &account.ProviderError{Message: "Invalid login credentials"})

		body, _ := json.Marshal(map[string]string{"email": "kid@school.edu", "password": "wrong"})
		req := httptest.NewRequest("POST", "/api/auth/signin", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleSignin(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"error"`)
		assert.Contains(t, w.Body.String(), `"message":"Sign in failed: Invalid login credentials"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Malformed Body - Empty 400", func(t *testing.T) {
		mockSvc := &MockAccountService{}

		req := httptest.NewRequest("POST", "/api/auth/signin", bytes.NewBufferString("not json"))
		w := httptest.NewRecorder()

		HandleSignin(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestHandleCurrentUser(t *testing.T) {
	t.Run("User Behind Token", func(t *testing.T) {
		mockSvc := &MockAccountService{}
		mockSvc.On("CurrentUser", mock.Anything, "jwt-token").
			Return(&identity.Payload{User: &identity.User{ID: "uid-1", Email: "kid@school.edu"}}, nil)

		req := httptest.NewRequest("GET", "/api/auth/user", nil)
		req.Header.Set("Authorization", "Bearer jwt-token")
		w := httptest.NewRecorder()

		HandleCurrentUser(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":"uid-1"`)
		assert.Contains(t, w.Body.String(), `"email":"kid@school.edu"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Provider Error Payload Passes Through", func(t *testing.T) {
		// The provider reports token problems in a JSON body, which the
		// client treats as success. The message rides along here.
		mockSvc := &MockAccountService{}
		mockSvc.On("CurrentUser", mock.Anything, "expired").
			Return(&identity.Payload{Message: "invalid JWT"}, nil)

		req := httptest.NewRequest("GET", "/api/auth/user", nil)
		req.Header.Set("Authorization", "Bearer expired")
		w := httptest.NewRecorder()

		HandleCurrentUser(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"invalid JWT"`)
		assert.NotContains(t, w.Body.String(), `"userId"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Network Failure - Envelope", func(t *testing.T) {
		mockSvc := &MockAccountService{}
		mockSvc.On("CurrentUser", mock.Anything, "jwt-token").
			Return(nil, &account.ProviderError{Message: "Network error getting user"})

		req := httptest.NewRequest("GET", "/api/auth/user", nil)
		req.Header.Set("Authorization", "Bearer jwt-token")
		w := httptest.NewRecorder()

		HandleCurrentUser(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"error"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing Bearer Token - Empty 400", func(t *testing.T) {
		mockSvc := &MockAccountService{}

		req := httptest.NewRequest("GET", "/api/auth/user", nil)
		w := httptest.NewRecorder()

		HandleCurrentUser(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestHandleListCourses(t *testing.T) {
	mockSvc := &MockAccountService{}
	mockSvc.On("Courses").Return([]domain.Course{
		{ID: "lvl_01", Title: "Training Zone", VideoURL: "http://mysite.com/intro.mp4"},
	})

	req := httptest.NewRequest("GET", "/api/courses", nil)
	w := httptest.NewRecorder()

	HandleListCourses(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"lvl_01"`)
	assert.Contains(t, w.Body.String(), `"videoUrl":"http://mysite.com/intro.mp4"`)
	mockSvc.AssertExpectations(t)
}

func TestHandleLaunchGame(t *testing.T) {
	t.Run("Success Returns Launch URL", func(t *testing.T) {
		mockSvc := &MockAccountService{}
		mockSvc.On("LaunchGame", mock.Anything, "uid-1").
			Return("https://game.com/build/#/play?userID=uid-1&authToken=tok", nil)

		body, _ := json.Marshal(map[string]string{"userId": "uid-1"})
		req := httptest.NewRequest("POST", "/api/play/launch", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleLaunchGame(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp LaunchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "https://game.com/build/#/play?userID=uid-1&authToken=tok", resp.GameURL)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Store Failure - Empty 500", func(t *testing.T) {
		mockSvc := &MockAccountService{}
		mockSvc.On("LaunchGame", mock.Anything, "uid-1").
			Return("", &account.StoreError{Err: assert.AnError})

		body, _ := json.Marshal(map[string]string{"userId": "uid-1"})
		req := httptest.NewRequest("POST", "/api/play/launch", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleLaunchGame(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, w.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing UserID - Empty 400", func(t *testing.T) {
		mockSvc := &MockAccountService{}

		req := httptest.NewRequest("POST", "/api/play/launch", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()

		HandleLaunchGame(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
