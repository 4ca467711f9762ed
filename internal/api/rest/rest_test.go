package rest_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/wt-exchange/internal/api/middleware"
	"github.com/feral-file/wt-exchange/internal/api/rest"
	"github.com/feral-file/wt-exchange/internal/mocks"
)

func TestSetupRoutes_Gating(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newTestServer(t, middleware.RateLimitConfig{})
	playerToken := s.token(t, "alice")

	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	tests := []struct {
		name   string
		method string
		path   string
		auth   string
		expect func(h *mocks.MockAPIHandler)
		wantSC int
	}{
		{
			name:   "public read needs no credentials",
			method: http.MethodGet, path: "/api/v1/catalog",
			expect: func(h *mocks.MockAPIHandler) { h.EXPECT().GetCatalog(gomock.Any()).Do(ok) },
			wantSC: http.StatusNoContent,
		},
		{
			name:   "player route without credentials",
			method: http.MethodPost, path: "/api/v1/parcels/p1/buy",
			wantSC: http.StatusUnauthorized,
		},
		{
			name:   "player route with token",
			method: http.MethodPost, path: "/api/v1/parcels/p1/buy", auth: playerToken,
			expect: func(h *mocks.MockAPIHandler) { h.EXPECT().BuyParcel(gomock.Any()).Do(ok) },
			wantSC: http.StatusNoContent,
		},
		{
			name:   "admin route with player token",
			method: http.MethodPost, path: "/api/v1/economy/tick", auth: playerToken,
			wantSC: http.StatusForbidden,
		},
		{
			name:   "admin route with bad key",
			method: http.MethodDelete, path: "/api/v1/parcels/p1", auth: "ApiKey wrong",
			wantSC: http.StatusUnauthorized,
		},
		{
			name:   "admin route with api key",
			method: http.MethodPost, path: "/api/v1/offers/gc", auth: "ApiKey " + testAPIKey,
			expect: func(h *mocks.MockAPIHandler) { h.EXPECT().ExpireOffers(gomock.Any()).Do(ok) },
			wantSC: http.StatusNoContent,
		},
		{
			name:   "season is public",
			method: http.MethodGet, path: "/api/v1/season",
			expect: func(h *mocks.MockAPIHandler) { h.EXPECT().GetSeason(gomock.Any()).Do(ok) },
			wantSC: http.StatusNoContent,
		},
		{
			name:   "settings need an api key",
			method: http.MethodGet, path: "/api/v1/settings", auth: playerToken,
			wantSC: http.StatusForbidden,
		},
		{
			name:   "settings update with api key",
			method: http.MethodPut, path: "/api/v1/settings", auth: "ApiKey " + testAPIKey,
			expect: func(h *mocks.MockAPIHandler) { h.EXPECT().UpdateSettings(gomock.Any()).Do(ok) },
			wantSC: http.StatusNoContent,
		},
		{
			name:   "settings rollback with api key",
			method: http.MethodPost, path: "/api/v1/settings/versions/2/rollback", auth: "ApiKey " + testAPIKey,
			expect: func(h *mocks.MockAPIHandler) { h.EXPECT().RollbackSettings(gomock.Any()).Do(ok) },
			wantSC: http.StatusNoContent,
		},
		{
			name:   "transfer without credentials",
			method: http.MethodPost, path: "/api/v1/economy/transfer",
			wantSC: http.StatusUnauthorized,
		},
		{
			name:   "transfer with player token",
			method: http.MethodPost, path: "/api/v1/economy/transfer", auth: playerToken,
			wantSC: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			handler := mocks.NewMockAPIHandler(ctrl)
			handler.EXPECT().HealthCheck(gomock.Any()).Times(0)
			if tt.expect != nil {
				tt.expect(handler)
			}

			router := gin.New()
			rest.SetupRoutes(router, handler, s.authConfig, middleware.NewRateLimiter(middleware.RateLimitConfig{}))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantSC, w.Code)
		})
	}
}
