package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-rating-api/internal/application/auth"
	"github.com/jhoicas/store-rating-api/internal/application/dto"
	"github.com/jhoicas/store-rating-api/internal/application/usecase"
	"github.com/jhoicas/store-rating-api/internal/domain/entity"
	apphttp "github.com/jhoicas/store-rating-api/internal/interfaces/http"
	"github.com/jhoicas/store-rating-api/internal/testutil"
	"github.com/jhoicas/store-rating-api/pkg/logger"
)

const (
	adminEmail    = "admin@storerating.com"
	adminPassword = "Admin@123"
)

// newTestServer monta el router completo sobre repositorios en memoria con un admin sembrado.
func newTestServer(t *testing.T) (*fiber.App, *testutil.MemoryDB) {
	t.Helper()
	db := testutil.NewMemoryDB()
	accounts, ratings := db.Accounts(), db.Ratings()

	_, err := auth.CreateAccount(context.Background(), accounts,
		"System Administrator Account", adminEmail, adminPassword, "Admin Office, Main Street", entity.RoleAdmin)
	require.NoError(t, err)

	log := logger.Nop()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	app.Use(requestid.New())
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:  auth.NewAuthUseCase(accounts, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		AdminUC: usecase.NewAdminUseCase(accounts, ratings),
		UserUC:  usecase.NewUserUseCase(accounts, ratings),
		StoreUC: usecase.NewStoreUseCase(accounts, ratings),
		Logger:  log,
	})
	return app, db
}

// call envía la petición y decodifica la respuesta en out (si no es nil). Devuelve status y body crudo.
func call(t *testing.T, app *fiber.App, method, path, token string, in, out interface{}) (int, string) {
	t.Helper()
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out), string(raw))
	}
	return resp.StatusCode, string(raw)
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	var out dto.LoginResponse
	status, raw := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: password}, &out)
	require.Equal(t, http.StatusOK, status, raw)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestRouter_EscenarioCompleto(t *testing.T) {
	app, _ := newTestServer(t)

	// Registro público de un usuario
	var msg dto.MessageResponse
	status, raw := call(t, app, http.MethodPost, "/api/auth/signup", "", dto.SignupRequest{
		Name:     "Alice Wonderland Customer",
		Email:    "alice@example.com",
		Password: "Secret@12",
		Address:  "Rabbit Hole 42",
	}, &msg)
	require.Equal(t, http.StatusCreated, status, raw)
	assert.Equal(t, "User registered successfully", msg.Message)

	// El admin crea la tienda
	adminToken := login(t, app, adminEmail, adminPassword)
	status, raw = call(t, app, http.MethodPost, "/api/admin/users", adminToken, dto.AddUserRequest{
		Name:     "Corner Grocery Store Downtown",
		Email:    "grocery@example.com",
		Password: "Store@123",
		Address:  "Market Street 7",
		Role:     "store",
	}, &msg)
	require.Equal(t, http.StatusCreated, status, raw)
	assert.Equal(t, "User added successfully", msg.Message)

	var adminStores []dto.AdminStoreResponse
	status, _ = call(t, app, http.MethodGet, "/api/admin/stores", adminToken, nil, &adminStores)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, adminStores, 1)
	storeID := adminStores[0].ID
	assert.Zero(t, adminStores[0].Rating, "sin calificaciones el promedio es 0")

	// El usuario califica con 4
	userToken := login(t, app, "alice@example.com", "Secret@12")
	ratingPath := "/api/user/stores/" + storeID + "/rating"
	status, raw = call(t, app, http.MethodPost, ratingPath, userToken, fiber.Map{"rating": 4}, &msg)
	require.Equal(t, http.StatusCreated, status, raw)
	assert.Equal(t, "Rating submitted successfully", msg.Message)

	var stores []dto.UserStoreResponse
	call(t, app, http.MethodGet, "/api/user/stores", userToken, nil, &stores)
	require.Len(t, stores, 1)
	assert.Equal(t, 4.0, stores[0].OverallRating)
	require.NotNil(t, stores[0].UserRating)
	assert.Equal(t, 4, *stores[0].UserRating)

	// Segundo envío: conflicto que sugiere actualizar
	var errResp dto.ErrorResponse
	status, _ = call(t, app, http.MethodPost, ratingPath, userToken, fiber.Map{"rating": 5}, &errResp)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "You have already rated this store. Use update instead.", errResp.Message)

	// Actualiza a 2
	status, raw = call(t, app, http.MethodPut, ratingPath, userToken, fiber.Map{"rating": 2}, &msg)
	require.Equal(t, http.StatusOK, status, raw)
	assert.Equal(t, "Rating updated successfully", msg.Message)

	stores = nil
	call(t, app, http.MethodGet, "/api/user/stores", userToken, nil, &stores)
	require.Len(t, stores, 1)
	assert.Equal(t, 2.0, stores[0].OverallRating)
	require.NotNil(t, stores[0].UserRating)
	assert.Equal(t, 2, *stores[0].UserRating)

	// Panel de la tienda
	storeToken := login(t, app, "grocery@example.com", "Store@123")
	var dash dto.StoreDashboardResponse
	status, _ = call(t, app, http.MethodGet, "/api/store/dashboard", storeToken, nil, &dash)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), dash.TotalRatings)
	assert.Equal(t, 2.0, dash.AverageRating)
	require.Len(t, dash.Ratings, 1)
	assert.Equal(t, "alice@example.com", dash.Ratings[0].UserEmail)

	var list []dto.StoreRatingResponse
	status, _ = call(t, app, http.MethodGet, "/api/store/ratings", storeToken, nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].Rating)

	// Estadísticas
	var stats dto.DashboardStatsResponse
	status, _ = call(t, app, http.MethodGet, "/api/admin/stats", adminToken, nil, &stats)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, dto.DashboardStatsResponse{TotalUsers: 1, TotalStores: 1, TotalRatings: 1}, stats)
}

func TestRouter_GateDeRoles(t *testing.T) {
	app, db := newTestServer(t)
	_, err := auth.CreateAccount(context.Background(), db.Accounts(),
		"Bob The Regular User Person", "bob@example.com", "Secret@12", "Elm Street 1", entity.RoleUser)
	require.NoError(t, err)
	userToken := login(t, app, "bob@example.com", "Secret@12")

	status, _ := call(t, app, http.MethodGet, "/api/admin/stats", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status, "sin token → 401")

	status, _ = call(t, app, http.MethodGet, "/api/admin/stats", userToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, status, "token user en ruta admin → 403")

	status, _ = call(t, app, http.MethodGet, "/api/store/dashboard", userToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = call(t, app, http.MethodGet, "/api/user/stores", userToken, nil, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestRouter_ValidacionYNoEncontrado(t *testing.T) {
	app, db := newTestServer(t)
	ctx := context.Background()
	_, err := auth.CreateAccount(ctx, db.Accounts(),
		"Carol The Careful Rater Person", "carol@example.com", "Secret@12", "Oak Street 2", entity.RoleUser)
	require.NoError(t, err)
	store, err := auth.CreateAccount(ctx, db.Accounts(),
		"Bakery On The Corner Of Main", "bakery@example.com", "Store@123", "Main 1", entity.RoleStore)
	require.NoError(t, err)
	token := login(t, app, "carol@example.com", "Secret@12")
	adminToken := login(t, app, adminEmail, adminPassword)

	var errResp dto.ErrorResponse
	for _, value := range []int{0, 6} {
		status, _ := call(t, app, http.MethodPost, "/api/user/stores/"+store.ID+"/rating", token, fiber.Map{"rating": value}, &errResp)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Rating must be between 1 and 5", errResp.Message)
	}

	status, _ := call(t, app, http.MethodPost, "/api/user/stores/"+store.ID+"/rating", token, fiber.Map{}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status, "rating ausente")

	status, _ = call(t, app, http.MethodPut, "/api/user/stores/"+store.ID+"/rating", token, fiber.Map{"rating": 3}, &errResp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Rating not found", errResp.Message)

	status, _ = call(t, app, http.MethodPost, "/api/user/stores/00000000-0000-0000-0000-00000000dead/rating", token, fiber.Map{"rating": 3}, &errResp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Store not found", errResp.Message)

	status, _ = call(t, app, http.MethodGet, "/api/admin/users/not-a-uuid", adminToken, nil, &errResp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", errResp.Message)

	status, _ = call(t, app, http.MethodPost, "/api/auth/signup", "", dto.SignupRequest{
		Name: "Too Short", Email: "short@example.com", Password: "Secret@12", Address: "x",
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Name must be between 20-60 characters", errResp.Message)

	status, _ = call(t, app, http.MethodPost, "/api/auth/signup", "", dto.SignupRequest{
		Name: "Carol Duplicate Account Here", Email: "carol@example.com", Password: "Secret@12", Address: "x",
	}, &errResp)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "User with this email already exists", errResp.Message)
}

func TestRouter_LoginCredencialesInvalidas(t *testing.T) {
	app, _ := newTestServer(t)

	var unknown, wrong dto.ErrorResponse
	s1, _ := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "nobody@example.com", Password: "Secret@12"}, &unknown)
	s2, _ := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: adminEmail, Password: "Wrong@123"}, &wrong)

	assert.Equal(t, http.StatusUnauthorized, s1)
	assert.Equal(t, http.StatusUnauthorized, s2)
	assert.Equal(t, unknown.Message, wrong.Message, "no se distingue email desconocido de password incorrecta")
}

func TestRouter_CambioDePassword(t *testing.T) {
	app, db := newTestServer(t)
	_, err := auth.CreateAccount(context.Background(), db.Accounts(),
		"Dave The Password Changer", "dave@example.com", "Secret@12", "Pine Street 3", entity.RoleUser)
	require.NoError(t, err)
	token := login(t, app, "dave@example.com", "Secret@12")

	var errResp dto.ErrorResponse
	status, _ := call(t, app, http.MethodPut, "/api/user/change-password", token,
		dto.ChangePasswordRequest{CurrentPassword: "Wrong@123", NewPassword: "Newpass@1"}, &errResp)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Current password is incorrect", errResp.Message)

	var msg dto.MessageResponse
	status, _ = call(t, app, http.MethodPut, "/api/user/change-password", token,
		dto.ChangePasswordRequest{CurrentPassword: "Secret@12", NewPassword: "Newpass@1"}, &msg)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Password changed successfully", msg.Message)

	login(t, app, "dave@example.com", "Newpass@1")
}

func TestRouter_ErrorInternoNoSeFiltra(t *testing.T) {
	app, db := newTestServer(t)
	adminToken := login(t, app, adminEmail, adminPassword)
	db.Err = errors.New("pq: connection refused on 10.0.0.5")

	var errResp dto.ErrorResponse
	status, raw := call(t, app, http.MethodGet, "/api/admin/stats", adminToken, nil, &errResp)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Error fetching dashboard statistics", errResp.Message)
	assert.NotContains(t, raw, "10.0.0.5")
}

func TestRouter_BodyInvalido(t *testing.T) {
	app, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INVALID_BODY")
}

// Cada calificación debe quedar asociada a la tienda del path aunque fasthttp reutilice
// el buffer de la petición en las siguientes.
func TestRouter_StoreIDDelPathSobreviveAPeticionesPosteriores(t *testing.T) {
	app, db := newTestServer(t)
	ctx := context.Background()
	_, err := auth.CreateAccount(ctx, db.Accounts(),
		"Erin The Frequent Rater Here", "erin@example.com", "Secret@12", "Birch Street 4", entity.RoleUser)
	require.NoError(t, err)
	first, err := auth.CreateAccount(ctx, db.Accounts(),
		"First Store On The High Street", "first@example.com", "Store@123", "High 1", entity.RoleStore)
	require.NoError(t, err)
	second, err := auth.CreateAccount(ctx, db.Accounts(),
		"Second Store On The High Street", "second@example.com", "Store@123", "High 2", entity.RoleStore)
	require.NoError(t, err)
	token := login(t, app, "erin@example.com", "Secret@12")

	status, raw := call(t, app, http.MethodPost, "/api/user/stores/"+first.ID+"/rating", token, fiber.Map{"rating": 5}, nil)
	require.Equal(t, http.StatusCreated, status, raw)
	status, raw = call(t, app, http.MethodPost, "/api/user/stores/"+second.ID+"/rating", token, fiber.Map{"rating": 1}, nil)
	require.Equal(t, http.StatusCreated, status, raw)
	for i := 0; i < 5; i++ {
		call(t, app, http.MethodGet, "/api/admin/users/00000000-0000-0000-0000-000000000000", "", nil, nil)
	}

	for _, tc := range []struct {
		email string
		want  float64
	}{
		{"first@example.com", 5},
		{"second@example.com", 1},
	} {
		var dash dto.StoreDashboardResponse
		status, _ := call(t, app, http.MethodGet, "/api/store/dashboard", login(t, app, tc.email, "Store@123"), nil, &dash)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, int64(1), dash.TotalRatings, tc.email)
		assert.Equal(t, tc.want, dash.AverageRating, tc.email)
		require.Len(t, dash.Ratings, 1, tc.email)
	}
}
