package rest_test

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/wt-exchange/internal/api/middleware"
	"github.com/feral-file/wt-exchange/internal/api/rest"
	"github.com/feral-file/wt-exchange/internal/api/shared/dto"
	apierrors "github.com/feral-file/wt-exchange/internal/api/shared/errors"
	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/gateway"
	"github.com/feral-file/wt-exchange/internal/mocks"
	"github.com/feral-file/wt-exchange/internal/tick"
)

const testAPIKey = "admin-key"

type testServer struct {
	router     *gin.Engine
	exec       *mocks.MockAPIExecutor
	privateKey *rsa.PrivateKey
	authConfig middleware.AuthConfig
}

func newTestServer(t *testing.T, rl middleware.RateLimitConfig) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubBytes, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})

	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	router := gin.New()
	authCfg := middleware.AuthConfig{JWTPublicKey: string(pubPEM), APIKeys: []string{testAPIKey}}
	rest.SetupRoutes(router, rest.NewHandler(exec), authCfg, middleware.NewRateLimiter(rl))

	return &testServer{router: router, exec: exec, privateKey: privateKey, authConfig: authCfg}
}

func (s *testServer) token(t *testing.T, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	require.NoError(t, err)
	return "Bearer " + signed
}

func (s *testServer) do(t *testing.T, method, path, auth string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func strPtr(s string) *string {
	return &s
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t, middleware.RateLimitConfig{})

	w := s.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestPublicReads(t *testing.T) {
	s := newTestServer(t, middleware.RateLimitConfig{})

	s.exec.EXPECT().GetCatalog(gomock.Any()).Return(&dto.CatalogResponse{
		BuildingTypes: []domain.BuildingType{{Key: "shop", Name: "Shop", BaseIncome: 5, BasePrice: 100}},
	}, nil)
	w := s.do(t, http.MethodGet, "/api/v1/catalog", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"key":"shop"`)

	s.exec.EXPECT().GetParcels(gomock.Any(), "alice", "s1").Return(&dto.ParcelListResponse{
		Parcels: []domain.Parcel{{ID: "p1", Owner: strPtr("alice"), Level: 1}},
		Total:   1,
	}, nil)
	w = s.do(t, http.MethodGet, "/api/v1/parcels?owner=alice&street=s1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	s.exec.EXPECT().GetBalance(gomock.Any(), "bob").Return(&dto.BalanceResponse{Owner: "bob", Balance: 5000}, nil)
	w = s.do(t, http.MethodGet, "/api/v1/balances/bob", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"owner":"bob","balance":5000}`, w.Body.String())

	s.exec.EXPECT().GetHealth(gomock.Any()).Return(&tick.Health{IntervalSec: 300}, nil)
	w = s.do(t, http.MethodGet, "/api/v1/economy/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"intervalSec":300`)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   apierrors.ErrorCode
	}{
		{"not found", apierrors.NewNotFoundError("parcel not found"), http.StatusNotFound, apierrors.ErrCodeNotFound},
		{"conflict", apierrors.NewConflictError("already owned"), http.StatusConflict, apierrors.ErrCodeConflict},
		{"insufficient funds", apierrors.NewInsufficientFundsError("insufficient funds"), http.StatusPaymentRequired, apierrors.ErrCodeInsufficientFunds},
		{"validation", apierrors.NewValidationError("unknown building type"), http.StatusBadRequest, apierrors.ErrCodeValidationFailed},
		{"expired", apierrors.NewExpiredError("offer expired"), http.StatusGone, apierrors.ErrCodeExpired},
		{"forbidden", apierrors.NewForbiddenError("not the parcel owner"), http.StatusForbidden, apierrors.ErrCodeForbidden},
		{"database", apierrors.NewDatabaseError("Failed to buy parcel", "connection refused"), http.StatusInternalServerError, apierrors.ErrCodeDatabaseError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, apierrors.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, middleware.RateLimitConfig{})
			s.exec.EXPECT().BuyParcel(gomock.Any(), "p1", "alice", "shop").Return(nil, tt.err)

			w := s.do(t, http.MethodPost, "/api/v1/parcels/p1/buy", s.token(t, "alice"), dto.BuyParcelRequest{Type: "shop"})

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}
}

func TestPlayerActionsRequireIdentity(t *testing.T) {
	s := newTestServer(t, middleware.RateLimitConfig{})

	tests := []struct {
		name string
		auth string
	}{
		{"no header", ""},
		{"malformed header", "Bearer"},
		{"garbage token", "Bearer not-a-jwt"},
		{"api key has no subject", "ApiKey " + testAPIKey},
		{"token without subject", s.token(t, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/api/v1/parcels/p1/buy", tt.auth, dto.BuyParcelRequest{Type: "shop"})
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, apierrors.ErrCodeUnauthorized, decodeError(t, w).Code)
		})
	}
}

func TestBuyParcel(t *testing.T) {
	s := newTestServer(t, middleware.RateLimitConfig{})

	t.Run("acting identity comes from the token subject", func(t *testing.T) {
		s.exec.EXPECT().BuyParcel(gomock.Any(), "p1", "alice", "shop").Return(&domain.Parcel{
			ID: "p1", Owner: strPtr("alice"), BuildingType: strPtr("shop"), Level: 1,
		}, nil)

		w := s.do(t, http.MethodPost, "/api/v1/parcels/p1/buy", s.token(t, "alice"), dto.BuyParcelRequest{Type: "shop"})

		require.Equal(t, http.StatusOK, w.Code)
		var p domain.Parcel
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		assert.Equal(t, "alice", p.OwnerID())
	})

	t.Run("missing type", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/parcels/p1/buy", s.token(t, "alice"), dto.BuyParcelRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, w).Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/parcels/p1/buy", bytes.NewBufferString("{"))
		req.Header.Set("Authorization", s.token(t, "alice"))
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOfferRoutes(t *testing.T) {
	s := newTestServer(t, middleware.RateLimitConfig{})
	pending := &domain.Offer{ID: "o1", ParcelID: "p2", FromID: "bob", ToID: "alice", Amount: 500, Status: domain.OfferStatusPending}

	s.exec.EXPECT().ProposeOffer(gomock.Any(), "bob", dto.ProposeOfferRequest{ParcelID: "p2", Amount: 500, Note: "hi"}).Return(pending, nil)
	w := s.do(t, http.MethodPost, "/api/v1/offers", s.token(t, "bob"), dto.ProposeOfferRequest{ParcelID: "p2", Amount: 500, Note: "hi"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/offers", s.token(t, "bob"), dto.ProposeOfferRequest{ParcelID: "p2", Amount: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	accepted := *pending
	accepted.Status = domain.OfferStatusAccepted
	s.exec.EXPECT().AcceptOffer(gomock.Any(), "o1", "alice").Return(&accepted, nil)
	w = s.do(t, http.MethodPost, "/api/v1/offers/o1/accept", s.token(t, "alice"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ACCEPTED"`)

	s.exec.EXPECT().RejectOffer(gomock.Any(), "o2", "alice").Return(nil, apierrors.NewExpiredError("offer expired"))
	w = s.do(t, http.MethodPost, "/api/v1/offers/o2/reject", s.token(t, "alice"), nil)
	assert.Equal(t, http.StatusGone, w.Code)

	s.exec.EXPECT().CancelOffer(gomock.Any(), "o3", "alice").Return(nil, apierrors.NewForbiddenError("only the proposer can cancel this offer"))
	w = s.do(t, http.MethodPost, "/api/v1/offers/o3/cancel", s.token(t, "alice"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	s.exec.EXPECT().GetOffers(gomock.Any(), "alice", domain.OfferStatusPending).Return(&dto.OfferListResponse{Offers: []domain.Offer{*pending}, Total: 1}, nil)
	w = s.do(t, http.MethodGet, "/api/v1/offers?owner=alice&status=pending", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/offers?status=LOST", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.exec.EXPECT().GetOffer(gomock.Any(), "o1").Return(&accepted, nil)
	w = s.do(t, http.MethodGet, "/api/v1/offers/o1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestClaimStreet(t *testing.T) {
	s := newTestServer(t, middleware.RateLimitConfig{})

	s.exec.EXPECT().ClaimStreet(gomock.Any(), "s1", "carol").Return(&dto.ClaimStreetResponse{
		Street:  domain.Street{ID: "s1", Owner: strPtr("carol"), Price: 300, Slots: 2},
		Parcels: []domain.Parcel{{ID: "s1-1", Level: 1}, {ID: "s1-2", Level: 1}},
	}, nil)

	w := s.do(t, http.MethodPost, "/api/v1/streets/s1/claim", s.token(t, "carol"), nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ClaimStreetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Parcels, 2)
	assert.True(t, resp.Street.IsClaimed())
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t, middleware.RateLimitConfig{})

	t.Run("player token is forbidden", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/economy/tick", s.token(t, "alice"), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no credentials", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/economy/tick", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong api key", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/economy/tick", "ApiKey nope", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("run tick", func(t *testing.T) {
		s.exec.EXPECT().RunTick(gomock.Any()).Return(&domain.TickSummary{Income: map[string]int64{"alice": 10}}, nil)
		w := s.do(t, http.MethodPost, "/api/v1/economy/tick", "ApiKey "+testAPIKey, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"alice":10`)
	})

	t.Run("create parcel", func(t *testing.T) {
		req := dto.CreateParcelRequest{ID: "p9", Location: domain.LatLng{Lat: 1, Lng: 2}}
		s.exec.EXPECT().CreateParcel(gomock.Any(), req).Return(&domain.Parcel{ID: "p9", Location: req.Location, Level: 1}, nil)
		w := s.do(t, http.MethodPost, "/api/v1/parcels", "ApiKey "+testAPIKey, req)
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("create parcel out of range", func(t *testing.T) {
		req := dto.CreateParcelRequest{Location: domain.LatLng{Lat: 91}}
		w := s.do(t, http.MethodPost, "/api/v1/parcels", "ApiKey "+testAPIKey, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete parcel", func(t *testing.T) {
		s.exec.EXPECT().DeleteParcel(gomock.Any(), "p9").Return(nil)
		w := s.do(t, http.MethodDelete, "/api/v1/parcels/p9", "ApiKey "+testAPIKey, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("reset parcel", func(t *testing.T) {
		s.exec.EXPECT().ResetParcel(gomock.Any(), "p2").Return(&domain.Parcel{ID: "p2", Level: 1}, nil)
		w := s.do(t, http.MethodPost, "/api/v1/parcels/p2/reset", "ApiKey "+testAPIKey, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("offer gc", func(t *testing.T) {
		s.exec.EXPECT().ExpireOffers(gomock.Any()).Return(&dto.ExpireOffersResponse{Expired: 0, Offers: []domain.Offer{}}, nil)
		w := s.do(t, http.MethodPost, "/api/v1/offers/gc", "ApiKey "+testAPIKey, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"expired":0,"offers":[]}`, w.Body.String())
	})

	t.Run("adjust balance", func(t *testing.T) {
		s.exec.EXPECT().AdjustBalance(gomock.Any(), "alice", int64(-200)).Return(&dto.BalanceResponse{Owner: "alice", Balance: 800}, nil)
		w := s.do(t, http.MethodPost, "/api/v1/balances/alice/adjust", "ApiKey "+testAPIKey, dto.AdjustBalanceRequest{Delta: -200})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("adjust balance by zero", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/balances/alice/adjust", "ApiKey "+testAPIKey, dto.AdjustBalanceRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTransferBalance(t *testing.T) {
	s := newTestServer(t, middleware.RateLimitConfig{})
	admin := "ApiKey " + testAPIKey

	t.Run("transfer", func(t *testing.T) {
		req := dto.TransferBalanceRequest{From: "alice", To: "bob", Amount: 300}
		s.exec.EXPECT().TransferBalance(gomock.Any(), req).Return(&dto.TransferResponse{
			From:   dto.BalanceResponse{Owner: "alice", Balance: 700},
			To:     dto.BalanceResponse{Owner: "bob", Balance: 1300},
			Amount: 300,
		}, nil)
		w := s.do(t, http.MethodPost, "/api/v1/economy/transfer", admin, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"from":{"owner":"alice","balance":700},"to":{"owner":"bob","balance":1300},"amount":300}`, w.Body.String())
	})

	t.Run("insufficient funds", func(t *testing.T) {
		req := dto.TransferBalanceRequest{From: "alice", To: "bob", Amount: 9000}
		s.exec.EXPECT().TransferBalance(gomock.Any(), req).Return(nil, apierrors.NewInsufficientFundsError("insufficient funds"))
		w := s.do(t, http.MethodPost, "/api/v1/economy/transfer", admin, req)
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	invalid := []dto.TransferBalanceRequest{
		{From: "alice", To: "bob"},
		{From: "alice", To: "bob", Amount: -5},
		{From: " ", To: "bob", Amount: 5},
		{From: "alice", Amount: 5},
	}
	for _, req := range invalid {
		w := s.do(t, http.MethodPost, "/api/v1/economy/transfer", admin, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestSettingsRoutes(t *testing.T) {
	s := newTestServer(t, middleware.RateLimitConfig{})
	admin := "ApiKey " + testAPIKey
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	current := &domain.SettingsVersion{
		Version:   2,
		Settings:  domain.Settings{SeasonStart: start, SeasonEnd: start.Add(24 * time.Hour), AutoTickMin: 5},
		CreatedAt: start,
		Signature: "sha256=abc",
	}

	t.Run("season", func(t *testing.T) {
		s.exec.EXPECT().GetSeason(gomock.Any()).Return(&gateway.Season{SeasonStart: start, SeasonEnd: start.Add(24 * time.Hour), Now: start, Active: true}, nil)
		w := s.do(t, http.MethodGet, "/api/v1/season", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"active":true`)
	})

	t.Run("current settings", func(t *testing.T) {
		s.exec.EXPECT().GetSettings(gomock.Any()).Return(current, nil)
		w := s.do(t, http.MethodGet, "/api/v1/settings", admin, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"autoTickMin":5`)
		assert.Contains(t, w.Body.String(), `"signature":"sha256=abc"`)
	})

	t.Run("update", func(t *testing.T) {
		tickEvery := 20
		req := dto.UpdateSettingsRequest{AutoTickMin: &tickEvery}
		s.exec.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, got dto.UpdateSettingsRequest) (*domain.SettingsVersion, error) {
				require.NotNil(t, got.AutoTickMin)
				assert.Equal(t, 20, *got.AutoTickMin)
				assert.Nil(t, got.SeasonStart)
				return &domain.SettingsVersion{Version: 3}, nil
			})
		w := s.do(t, http.MethodPut, "/api/v1/settings", admin, req)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("update out of range", func(t *testing.T) {
		tickEvery := 61
		w := s.do(t, http.MethodPut, "/api/v1/settings", admin, dto.UpdateSettingsRequest{AutoTickMin: &tickEvery})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = s.do(t, http.MethodPut, "/api/v1/settings", admin, dto.UpdateSettingsRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update without signing secret", func(t *testing.T) {
		tickEvery := 10
		s.exec.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Return(nil, apierrors.NewForbiddenError("settings signing secret not configured"))
		w := s.do(t, http.MethodPut, "/api/v1/settings", admin, dto.UpdateSettingsRequest{AutoTickMin: &tickEvery})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("versions", func(t *testing.T) {
		s.exec.EXPECT().GetSettingsVersions(gomock.Any()).Return(&dto.SettingsVersionListResponse{
			Versions: []domain.SettingsVersion{*current}, Current: 2, Total: 1,
		}, nil)
		w := s.do(t, http.MethodGet, "/api/v1/settings/versions", admin, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)
	})

	t.Run("rollback", func(t *testing.T) {
		s.exec.EXPECT().RollbackSettings(gomock.Any(), 1).Return(&domain.SettingsVersion{Version: 4}, nil)
		w := s.do(t, http.MethodPost, "/api/v1/settings/versions/1/rollback", admin, nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rollback of a malformed version", func(t *testing.T) {
		for _, v := range []string{"abc", "0", "-2"} {
			w := s.do(t, http.MethodPost, "/api/v1/settings/versions/"+v+"/rollback", admin, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	})
}

func TestListEvents(t *testing.T) {
	s := newTestServer(t, middleware.RateLimitConfig{})

	s.exec.EXPECT().GetEvents(gomock.Any(), 0, 20).Return(&dto.EventListResponse{Events: []domain.Event{}, Limit: 20}, nil)
	w := s.do(t, http.MethodGet, "/api/v1/events", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	s.exec.EXPECT().GetEvents(gomock.Any(), 10, 100).Return(&dto.EventListResponse{Events: []domain.Event{}, Offset: 10, Limit: 100}, nil)
	w = s.do(t, http.MethodGet, "/api/v1/events?offset=10&limit=500", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/events?limit=0", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/events?offset=-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateLimitedMutations(t *testing.T) {
	s := newTestServer(t, middleware.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1})

	s.exec.EXPECT().UpgradeParcel(gomock.Any(), "p2", "alice").Return(&domain.Parcel{ID: "p2", Level: 3}, nil)
	w := s.do(t, http.MethodPost, "/api/v1/parcels/p2/upgrade", s.token(t, "alice"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/parcels/p2/upgrade", s.token(t, "alice"), nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// other identities have their own bucket
	s.exec.EXPECT().UpgradeParcel(gomock.Any(), "p3", "bob").Return(&domain.Parcel{ID: "p3", Level: 2}, nil)
	w = s.do(t, http.MethodPost, "/api/v1/parcels/p3/upgrade", s.token(t, "bob"), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// reads are not limited
	s.exec.EXPECT().GetStreets(gomock.Any()).Return(&dto.StreetListResponse{Streets: []domain.Street{}}, nil).Times(3)
	for range 3 {
		w = s.do(t, http.MethodGet, "/api/v1/streets", s.token(t, "alice"), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
