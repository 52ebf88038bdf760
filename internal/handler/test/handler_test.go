package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"blogpub/internal/config"
	handlers "blogpub/internal/handler"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerPort:        8080,
		SessionTTL:        24 * time.Hour,
		SessionCookieName: "blogpub_session",
		MinPasswordLength: 8,
		MaxUploadSize:     10 * 1024 * 1024,
	}
}

func createTestHandler(auth *MockAuthService, pubs *MockPublicationService, sessions *MockSessionStore) *handlers.Handlers {
	return &handlers.Handlers{
		AuthService:        auth,
		PublicationService: pubs,
		Sessions:           sessions,
		Cfg:                testConfig(),
		Validate:           validator.New(),
	}
}

// assertJSONError checks the JSON error response.
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}
