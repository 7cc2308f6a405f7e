package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"gamenight/backend/internal/engine"
	"gamenight/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Game{}, &models.GameOwner{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	h := New(engine.New(db))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	games := router.Group("/api/v1/games")
	{
		games.GET("", h.ListGames)
		games.GET("/playable", h.ListPlayableGames)
		games.GET("/:id", h.GetGameByID)
		games.POST("", h.CreateGame)
		games.DELETE("/:id", h.DeleteGame)
		games.POST("/:id/owners", h.AddOwner)
		games.DELETE("/:id/owners/:name", h.RemoveOwner)
	}
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createGameViaAPI(t *testing.T, router *gin.Engine, body string) uint {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/v1/games", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /games status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp CreatedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode create response: %v", err)
	}
	return resp.ID
}

func TestCreateAndListGames(t *testing.T) {
	router := setupTestRouter(t)

	createGameViaAPI(t, router, `{"name":"Catan","players":3,"owners":["Alice","Bob"]}`)
	createGameViaAPI(t, router, `{"name":"Azul","players":2}`)

	w := doRequest(t, router, http.MethodGet, "/api/v1/games", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /games status = %d", w.Code)
	}

	var games []engine.GameSummary
	if err := json.Unmarshal(w.Body.Bytes(), &games); err != nil {
		t.Fatalf("Failed to decode list response: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}
	if games[0].Name != "Azul" || games[1].Name != "Catan" {
		t.Errorf("order = [%s, %s], want [Azul, Catan]", games[0].Name, games[1].Name)
	}
	if games[1].Owners != "Alice, Bob" {
		t.Errorf("Catan owners = %q", games[1].Owners)
	}
}

func TestCreateGameBadInput(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"players":2}`},
		{"missing players", `{"name":"Chess"}`},
		{"zero players", `{"name":"Chess","players":0}`},
		{"malformed json", `{"name":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/v1/games", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestListPlayableEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	createGameViaAPI(t, router, `{"name":"Catan","players":3,"owners":["Alice","Bob"]}`)
	createGameViaAPI(t, router, `{"name":"Chess","players":2,"owners":["Carol"]}`)

	t.Run("qualifying group", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/games/playable?players=Alice,Bob,Carol", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var games []engine.GameSummary
		if err := json.Unmarshal(w.Body.Bytes(), &games); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(games) != 2 {
			t.Fatalf("got %d games, want 2", len(games))
		}
		if games[0].OwnersInGroup != "Alice, Bob" {
			t.Errorf("Catan owners_in_group = %q", games[0].OwnersInGroup)
		}
	})

	t.Run("empty group is a bad request", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/games/playable", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("no qualifying games is an empty list", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/games/playable?players=Dave", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if body := strings.TrimSpace(w.Body.String()); body != "[]" {
			t.Errorf("body = %s, want []", body)
		}
	})
}

func TestGetGameEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	id := createGameViaAPI(t, router, `{"name":"Chess","players":2,"owners":["Carol"]}`)

	w := doRequest(t, router, http.MethodGet, "/api/v1/games/"+itoa(id), "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	if w := doRequest(t, router, http.MethodGet, "/api/v1/games/9999", ""); w.Code != http.StatusNotFound {
		t.Errorf("missing game status = %d, want 404", w.Code)
	}
	if w := doRequest(t, router, http.MethodGet, "/api/v1/games/abc", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", w.Code)
	}
}

func TestDeleteGameEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	id := createGameViaAPI(t, router, `{"name":"Catan","players":3,"owners":["Alice"]}`)

	if w := doRequest(t, router, http.MethodDelete, "/api/v1/games/"+itoa(id), ""); w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	if w := doRequest(t, router, http.MethodDelete, "/api/v1/games/"+itoa(id), ""); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestOwnerEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	id := createGameViaAPI(t, router, `{"name":"Chess","players":2}`)

	if w := doRequest(t, router, http.MethodPost, "/api/v1/games/"+itoa(id)+"/owners", `{"name":"Carol"}`); w.Code != http.StatusCreated {
		t.Fatalf("add owner status = %d", w.Code)
	}
	if w := doRequest(t, router, http.MethodPost, "/api/v1/games/"+itoa(id)+"/owners", `{"name":"Carol"}`); w.Code != http.StatusConflict {
		t.Errorf("duplicate add owner status = %d, want 409", w.Code)
	}
	if w := doRequest(t, router, http.MethodPost, "/api/v1/games/"+itoa(id)+"/owners", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing name status = %d, want 400", w.Code)
	}

	if w := doRequest(t, router, http.MethodDelete, "/api/v1/games/"+itoa(id)+"/owners/Carol", ""); w.Code != http.StatusOK {
		t.Errorf("remove owner status = %d, want 200", w.Code)
	}
	if w := doRequest(t, router, http.MethodDelete, "/api/v1/games/"+itoa(id)+"/owners/Carol", ""); w.Code != http.StatusNotFound {
		t.Errorf("second remove owner status = %d, want 404", w.Code)
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
