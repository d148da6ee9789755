package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flexo/backend/internal/domain/shared"
	"github.com/flexo/backend/internal/infrastructure/auth"
	"github.com/flexo/backend/internal/interfaces/http/dto"
	"github.com/flexo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := middleware.SetupValidator(); err != nil {
		panic(err)
	}
}

var testUserID = uuid.MustParse("3f2b8c1e-5d4a-4b7e-9c3f-1a2b3c4d5e6f")

// newContext builds a test context. A non-nil body is sent as JSON.
func newContext(method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, reader)
	if body != nil {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	c.Set(middleware.RequestIDKey, "req-test")
	return c, w
}

// authenticate simulates the JWT middleware
func authenticate(c *gin.Context, role string) {
	claims := &auth.Claims{
		UserID:        testUserID.String(),
		Name:          "Operador",
		Email:         "op@grafica.com.br",
		Role:          role,
		AllowedRoutes: []string{"/"},
		TokenType:     auth.TokenTypeAccess,
	}
	claims.ID = "jti-1"
	c.Set(middleware.JWTClaimsKey, claims)
	c.Set(middleware.JWTUserIDKey, claims.UserID)
	c.Set(middleware.JWTRoleKey, claims.Role)
}

func withParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBaseHandler_HandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"not found", shared.NotFound("Customer"), http.StatusNotFound, "ERR_NOT_FOUND", "Customer not found"},
		{"wrapped not found", fmt.Errorf("load: %w", shared.NotFound("Printer")), http.StatusNotFound, "ERR_NOT_FOUND", "Printer not found"},
		{"in use", shared.InUse("Transport", "customers"), http.StatusConflict, "ERR_IN_USE", ""},
		{"invalid input", shared.NewDomainError("INVALID_COLORS", "too many colors"), http.StatusBadRequest, "ERR_INVALID_COLORS", "too many colors"},
		{"business rule", shared.NewDomainError("ALREADY_INVOICED", "order already invoiced"), http.StatusUnprocessableEntity, "ERR_ALREADY_INVOICED", "order already invoiced"},
		{"plain error", assert.AnError, http.StatusInternalServerError, "ERR_INTERNAL", internalErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(http.MethodGet, "/", nil)
			h := &BaseHandler{}
			h.HandleError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, "req-test", resp.Error.RequestID)
			if tt.message != "" {
				assert.Equal(t, tt.message, resp.Error.Message)
			}
		})
	}
}

func TestBaseHandler_HandleErrorNil(t *testing.T) {
	c, w := newContext(http.MethodGet, "/", nil)
	(&BaseHandler{}).HandleError(c, nil)
	assert.Equal(t, 0, w.Body.Len())
}

func TestBaseHandler_BindError(t *testing.T) {
	type body struct {
		Name string `json:"name" binding:"required"`
	}

	t.Run("validation details", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/", map[string]string{})
		var b body
		err := c.ShouldBindJSON(&b)
		require.Error(t, err)

		(&BaseHandler{}).BindError(c, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "name", resp.Error.Details[0].Field)
	})

	t.Run("malformed json", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/", nil)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{"))
		c.Request.Header.Set("Content-Type", "application/json")
		var b body
		err := c.ShouldBindJSON(&b)
		require.Error(t, err)

		(&BaseHandler{}).BindError(c, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidJSON, decode(t, w).Error.Code)
	})
}

func TestCreatedByAndParseID(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/", nil)
	assert.Nil(t, createdBy(c))

	authenticate(c, "operator")
	require.NotNil(t, createdBy(c))
	assert.Equal(t, testUserID, *createdBy(c))

	withParam(c, "id", "not-a-uuid")
	_, ok := parseID(c, "id")
	assert.False(t, ok)

	id := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	got, ok := parseID(c, "id")
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestBaseHandler_SuccessWithMeta(t *testing.T) {
	c, w := newContext(http.MethodGet, "/", nil)
	(&BaseHandler{}).SuccessWithMeta(c, []string{"a", "b"}, 25, 2, 10)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(25), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
