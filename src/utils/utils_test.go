package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"summer-camp-server/src/models"
	"summer-camp-server/src/repositories"
	"summer-camp-server/src/services"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	tokens := NewJWTManager("secret", time.Hour)

	token, err := tokens.GenerateJWT("jane@example.com", "Jane")
	require.NoError(t, err)

	claims, err := tokens.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "Jane", claims.Name)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTRejects(t *testing.T) {
	tokens := NewJWTManager("secret", time.Hour)

	t.Run("Empty", func(t *testing.T) {
		_, err := tokens.ParseJWT("")
		assert.Error(t, err)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := NewJWTManager("other", time.Hour).GenerateJWT("jane@example.com", "")
		require.NoError(t, err)
		_, err = tokens.ParseJWT(token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := NewJWTManager("secret", -time.Minute).GenerateJWT("jane@example.com", "")
		require.NoError(t, err)
		_, err = tokens.ParseJWT(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("NoExpiry", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "jane@example.com"}).
			SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = tokens.ParseJWT(token)
		assert.Error(t, err)
	})

	t.Run("MissingEmail", func(t *testing.T) {
		token, err := tokens.GenerateJWT("", "")
		require.NoError(t, err)
		_, err = tokens.ParseJWT(token)
		assert.ErrorIs(t, err, ErrMissingEmail)
	})

	t.Run("OtherAlgorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, JWTClaims{
			Email: "jane@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = tokens.ParseJWT(token)
		assert.Error(t, err)
	})
}

func errorStatus(t *testing.T, err error) (int, models.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return HandleServiceError(c, err)
	})
	resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, testErr)
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("find class: %w", repositories.ErrNotFound), http.StatusNotFound},
		{services.ErrForbidden, http.StatusForbidden},
		{services.ErrInvalidRole, http.StatusBadRequest},
		{services.ErrDuplicateCheckout, http.StatusConflict},
		{repositories.ErrDuplicate, http.StatusConflict},
		{fiber.NewError(fiber.StatusBadGateway, "payment gateway error"), http.StatusBadGateway},
		{fmt.Errorf("find classes: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{fmt.Errorf("socket closed"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		status, body := errorStatus(t, tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.True(t, body.Error)
		assert.Equal(t, tc.status, body.Status)
	}

	_, body := errorStatus(t, context.DeadlineExceeded)
	assert.Equal(t, "request timed out", body.Message)

	_, body = errorStatus(t, fmt.Errorf("dial tcp 10.0.0.1: secret detail"))
	assert.Equal(t, "internal server error", body.Message)
}

type validated struct {
	Email string  `json:"email" validate:"required,email"`
	Price float64 `json:"price" validate:"gt=0"`
}

func parse(t *testing.T, payload string) (int, string, *validated) {
	t.Helper()
	var got *validated
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var v validated
		if ok, err := ParseBody(c, &v); !ok {
			return err
		}
		got = &v
		return c.SendStatus(fiber.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body), got
}

func TestParseBody(t *testing.T) {
	status, _, got := parse(t, `{"email":"jane@example.com","price":12.5}`)
	assert.Equal(t, http.StatusNoContent, status)
	require.NotNil(t, got)
	assert.Equal(t, 12.5, got.Price)

	status, body, got := parse(t, `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Nil(t, got)
	assert.JSONEq(t, `{"error":true,"status":400,"message":"validation failed","fields":{"email":"email","price":"gt"}}`, body)

	status, body, _ = parse(t, `{"email":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "Invalid input")
}

func TestParseObjectID(t *testing.T) {
	app := fiber.New()
	app.Get("/:id", func(c *fiber.Ctx) error {
		id, ok, err := ParseObjectID(c, "id")
		if !ok {
			return err
		}
		return c.SendString(id.Hex())
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/507f1f77bcf86cd799439011", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/42", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
