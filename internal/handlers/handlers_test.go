package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/avc/tscoins-wallet/internal/cooldown"
	"github.com/avc/tscoins-wallet/internal/domain"
	domainmocks "github.com/avc/tscoins-wallet/internal/domain/mocks"
	"github.com/avc/tscoins-wallet/internal/notifier"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func withUser(req *http.Request, userID int64) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), UserIDKey, userID))
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestAuthHandler_Register(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	handler := NewAuthHandler(mockService, zap.NewNop())

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "steve@example.com", "password123").Return("token", nil).Once()

		body := `{"email":"steve@example.com","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
		assert.JSONEq(t, `{"token":"token"}`, w.Body.String())
	})

	t.Run("User exists", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "steve@example.com", "password123").Return("", domain.ErrUserExists).Once()

		body := `{"email":"steve@example.com","password":"password123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Validation", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "steve", "1").
			Return("", domain.NewValidationError("email", "invalid email address")).Once()

		body := `{"email":"steve","password":"1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "email: invalid email address", errorBody(t, w))
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(`{"email":}`))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	handler := NewAuthHandler(mockService, zap.NewNop())

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "steve@example.com", "password123").Return("token", nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(`{"email":"steve@example.com","password":"password123"}`))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "steve@example.com", "wrong").Return("", domain.ErrInvalidCredentials).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(`{"email":"steve@example.com","password":"wrong"}`))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Session(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	handler := NewAuthHandler(mockService, zap.NewNop())

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Session(mock.Anything, int64(1)).
			Return(&domain.Session{UserID: 1, Email: "steve@example.com", Coins: 150}, nil).Once()

		w := httptest.NewRecorder()
		handler.Session(w, withUser(httptest.NewRequest(http.MethodGet, "/api/user/session", nil), 1))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"email":"steve@example.com","coins":150}`, w.Body.String())
	})

	t.Run("Anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Session(w, httptest.NewRequest(http.MethodGet, "/api/user/session", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestWalletHandler(t *testing.T) {
	mockService := domainmocks.NewWalletServiceMock(t)
	handler := NewWalletHandler(mockService, zap.NewNop())

	t.Run("Get wallet", func(t *testing.T) {
		mockService.EXPECT().GetWallet(mock.Anything, int64(1)).
			Return(&domain.Wallet{CurrentBalance: 180, TotalCoins: 300, UsedCoins: 120}, nil).Once()

		w := httptest.NewRecorder()
		handler.GetWallet(w, withUser(httptest.NewRequest(http.MethodGet, "/api/wallet", nil), 1))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"currentBalance":180,"totalCoins":300,"usedCoins":120,"bonusCoins":0,"winningCoins":0}`, w.Body.String())
	})

	t.Run("Empty history", func(t *testing.T) {
		mockService.EXPECT().History(mock.Anything, int64(1)).Return(nil, nil).Once()

		w := httptest.NewRecorder()
		handler.GetTransactions(w, withUser(httptest.NewRequest(http.MethodGet, "/api/wallet/transactions", nil), 1))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Stats", func(t *testing.T) {
		mockService.EXPECT().Stats(mock.Anything, int64(1)).
			Return(&domain.WalletStats{TotalEarned: 10, CurrentBalance: 10, TransactionCount: 1}, nil).Once()

		w := httptest.NewRecorder()
		handler.GetStats(w, withUser(httptest.NewRequest(http.MethodGet, "/api/wallet/stats", nil), 1))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Bonus already claimed", func(t *testing.T) {
		mockService.EXPECT().ClaimDailyBonus(mock.Anything, int64(1)).Return(nil, domain.ErrBonusAlreadyClaimed).Once()

		w := httptest.NewRecorder()
		handler.ClaimBonus(w, withUser(httptest.NewRequest(http.MethodPost, "/api/wallet/bonus", nil), 1))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Storage unavailable", func(t *testing.T) {
		mockService.EXPECT().GetWallet(mock.Anything, int64(2)).
			Return(nil, fmt.Errorf("wallet service: %w: %w", domain.ErrStorageUnavailable, errors.New("dial tcp"))).Once()

		w := httptest.NewRecorder()
		handler.GetWallet(w, withUser(httptest.NewRequest(http.MethodGet, "/api/wallet", nil), 2))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.NotContains(t, w.Body.String(), "dial tcp")
	})

	t.Run("Anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetWallet(w, httptest.NewRequest(http.MethodGet, "/api/wallet", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestStoreHandler(t *testing.T) {
	mockService := domainmocks.NewPurchaseServiceMock(t)
	handler := NewStoreHandler(mockService, zap.NewNop())

	t.Run("Products", func(t *testing.T) {
		mockService.EXPECT().Products().Return([]domain.Product{{Name: "VIP", Kind: domain.ProductKindRank, Price: 500}}).Once()

		w := httptest.NewRecorder()
		handler.GetProducts(w, httptest.NewRequest(http.MethodGet, "/api/store/products", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"name":"VIP","kind":"rank","price":500}]`, w.Body.String())
	})

	t.Run("Purchase", func(t *testing.T) {
		req := domain.PurchaseRequest{Product: "VIP", Price: 500, Username: "Steve"}
		mockService.EXPECT().Purchase(mock.Anything, int64(1), req).
			Return(&domain.PurchaseResult{Product: "VIP", Price: 500}, nil).Once()

		w := httptest.NewRecorder()
		body := `{"product":"VIP","price":500,"username":"Steve"}`
		handler.Purchase(w, withUser(httptest.NewRequest(http.MethodPost, "/api/store/purchase", strings.NewReader(body)), 1))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		mockService.EXPECT().Purchase(mock.Anything, int64(1), mock.Anything).
			Return(nil, fmt.Errorf("%w: need 120 more coins", domain.ErrInsufficientFunds)).Once()

		w := httptest.NewRecorder()
		body := `{"product":"VIP","price":500,"username":"Steve"}`
		handler.Purchase(w, withUser(httptest.NewRequest(http.MethodPost, "/api/store/purchase", strings.NewReader(body)), 1))

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
		assert.Equal(t, "Insufficient funds: need 120 more coins", errorBody(t, w))
	})

	t.Run("Notification failed", func(t *testing.T) {
		mockService.EXPECT().Purchase(mock.Anything, int64(1), mock.Anything).
			Return(nil, &notifier.StatusError{Channel: domain.ChannelPurchase, StatusCode: http.StatusInternalServerError}).Once()

		w := httptest.NewRecorder()
		body := `{"product":"VIP","price":500,"username":"Steve"}`
		handler.Purchase(w, withUser(httptest.NewRequest(http.MethodPost, "/api/store/purchase", strings.NewReader(body)), 1))
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

type multipartFile struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

func multipartRequest(t *testing.T, target string, fields map[string]string, file *multipartFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.field, file.filename))
		h.Set("Content-Type", file.contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.RemoteAddr = "10.0.0.1:4000"
	return req
}

func TestFormsHandler_SubmitWhitelist(t *testing.T) {
	mockService := domainmocks.NewFormServiceMock(t)
	handler := NewFormsHandler(mockService, zap.NewNop())

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().SubmitWhitelist(mock.Anything, "ip:10.0.0.1", mock.MatchedBy(func(app domain.WhitelistApplication) bool {
			return app.Edition == "java" &&
				app.MinecraftUsername == "Steve" &&
				app.Image != nil &&
				app.Image.Filename == "proof.png" &&
				app.Image.ContentType == "image/png" &&
				string(app.Image.Data) == "png-bytes"
		})).Return(&domain.SubmissionResult{ActionID: domain.ActionWhitelist, CooldownRemaining: 1800}, nil).Once()

		req := multipartRequest(t, "/api/forms/whitelist",
			map[string]string{"edition": "java", "minecraft_username": "Steve"},
			&multipartFile{field: "image", filename: "proof.png", contentType: "image/png", data: []byte("png-bytes")})
		w := httptest.NewRecorder()

		handler.SubmitWhitelist(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"action":"whitelist","cooldown_remaining_seconds":1800}`, w.Body.String())
	})

	t.Run("Missing image reaches service", func(t *testing.T) {
		mockService.EXPECT().SubmitWhitelist(mock.Anything, "ip:10.0.0.1", mock.MatchedBy(func(app domain.WhitelistApplication) bool {
			return app.Image == nil
		})).Return(nil, domain.NewValidationError("image", "Please upload an image")).Once()

		req := multipartRequest(t, "/api/forms/whitelist", map[string]string{"edition": "java", "minecraft_username": "Steve"}, nil)
		w := httptest.NewRecorder()

		handler.SubmitWhitelist(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "image: Please upload an image", errorBody(t, w))
	})

	t.Run("Cooldown active", func(t *testing.T) {
		mockService.EXPECT().SubmitWhitelist(mock.Anything, "ip:10.0.0.1", mock.Anything).
			Return(nil, &cooldown.ActiveError{ActionID: domain.ActionWhitelist, Remaining: 90*time.Second + 200*time.Millisecond}).Once()

		req := multipartRequest(t, "/api/forms/whitelist", map[string]string{"edition": "java", "minecraft_username": "Steve"},
			&multipartFile{field: "image", filename: "a.png", contentType: "image/png", data: []byte("x")})
		w := httptest.NewRecorder()

		handler.SubmitWhitelist(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "91", w.Header().Get("Retry-After"))
		assert.Equal(t, "Please wait 1:30 before submitting again", errorBody(t, w))
	})

	t.Run("Not multipart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/forms/whitelist", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.SubmitWhitelist(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFormsHandler_SubmitBugReport(t *testing.T) {
	mockService := domainmocks.NewFormServiceMock(t)
	handler := NewFormsHandler(mockService, zap.NewNop())

	mockService.EXPECT().SubmitBugReport(mock.Anything, "user:5", domain.BugReport{
		Title:       "Lag spike",
		Description: "Server freezes every ten minutes near spawn.",
	}).Return(&domain.SubmissionResult{ActionID: domain.ActionBugReport, CooldownRemaining: 1800}, nil).Once()

	req := multipartRequest(t, "/api/forms/bug-report", map[string]string{
		"title":       "Lag spike",
		"description": "Server freezes every ten minutes near spawn.",
	}, nil)
	w := httptest.NewRecorder()

	handler.SubmitBugReport(w, withUser(req, 5))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFormsHandler_JSONForms(t *testing.T) {
	mockService := domainmocks.NewFormServiceMock(t)
	handler := NewFormsHandler(mockService, zap.NewNop())

	t.Run("Password reset notification failed", func(t *testing.T) {
		mockService.EXPECT().SubmitPasswordReset(mock.Anything, "ip:10.0.0.1", domain.PasswordResetRequest{Edition: "java", MinecraftUsername: "Steve"}).
			Return(nil, fmt.Errorf("form service: %w", domain.ErrNotificationFailed)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/forms/password-reset", strings.NewReader(`{"edition":"java","minecraft_username":"Steve"}`))
		req.RemoteAddr = "10.0.0.1:4000"
		w := httptest.NewRecorder()

		handler.SubmitPasswordReset(w, req)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "Error submitting. Please try again.", errorBody(t, w))
	})

	t.Run("Webhook rate limited", func(t *testing.T) {
		mockService.EXPECT().SubmitTeamRegistration(mock.Anything, "ip:10.0.0.1", mock.Anything).
			Return(nil, &notifier.RateLimitError{Channel: domain.ChannelTournament, RetryAfter: 2500 * time.Millisecond}).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/forms/tournament", strings.NewReader(`{"team_name":"Creepers"}`))
		req.RemoteAddr = "10.0.0.1:4000"
		w := httptest.NewRecorder()

		handler.SubmitTeamRegistration(w, req)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "3", w.Header().Get("Retry-After"))
	})
}

func TestFormsHandler_GetCooldown(t *testing.T) {
	mockService := domainmocks.NewFormServiceMock(t)
	handler := NewFormsHandler(mockService, zap.NewNop())

	mockService.EXPECT().CooldownStatus(mock.Anything, "user:5", domain.ActionWhitelist).
		Return(&domain.CooldownStatus{ActionID: domain.ActionWhitelist, Active: true, RemainingSeconds: 90, Display: "1:30"}, nil).Once()

	r := chi.NewRouter()
	r.Get("/api/cooldowns/{action}", handler.GetCooldown)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/cooldowns/whitelist", nil), 5)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var status domain.CooldownStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.Active)
	assert.Equal(t, "1:30", status.Display)
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func TestHealthHandler(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		handler := NewHealthHandler(fakePinger{}, "memory", zap.NewNop())

		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","storage":"ok","backend":"memory"}`, w.Body.String())

		w = httptest.NewRecorder()
		handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Storage down", func(t *testing.T) {
		handler := NewHealthHandler(fakePinger{err: errors.New("connection refused")}, "postgres", zap.NewNop())

		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"degraded"`)

		w = httptest.NewRecorder()
		handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
