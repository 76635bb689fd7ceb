package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/contracts-data-backend/internal/data/repos/testutil"
)

func TestWiredRouterServesHealthAndContracts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := testutil.Logger(t)
	db := testutil.DB(t)

	cfg := DefaultConfig()
	reposet := wireRepos(db, log)
	serviceset := wireServices(db, log, reposet)
	server := wireServer(log, cfg, wireHandlers(log, db, serviceset))

	rec := httptest.NewRecorder()
	server.Engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthcheck: status=%d", rec.Code)
	}

	rec = httptest.NewRecorder()
	server.Engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contracts/42", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing contract: status=%d body=%s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header")
	}
}
