package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/orders-pro/internal/application/auth"
	"github.com/tu-usuario/orders-pro/internal/application/dto"
	"github.com/tu-usuario/orders-pro/internal/application/orders"
	"github.com/tu-usuario/orders-pro/internal/application/usecase"
	"github.com/tu-usuario/orders-pro/internal/domain/entity"
	apphttp "github.com/tu-usuario/orders-pro/internal/interfaces/http"
	"github.com/tu-usuario/orders-pro/pkg/logger"
)

// buildAPI levanta la API completa (router + usecases reales) sobre los fakes
// en memoria, igual que main pero sin PostgreSQL.
func buildAPI(users *fakeUserRepo, store *memStore) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(users, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		UserUC:    usecase.NewUserUseCase(users),
		ProductUC: usecase.NewProductUseCase(&memProductRepo{s: store}),
		OrderUC: orders.NewOrderUseCase(
			&memTxRunner{s: store}, &memOrderRepo{s: store}, orders.Policy{}),
		Users:     users,
		JWTSecret: testJWTSecret,
		Log:       logger.New(logger.Config{Env: "test", Level: "error"}),
	})
	return app
}

// apiRequest lanza una petición con body JSON opcional y token opcional.
func apiRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// orderNoOf devuelve el order_no de la única orden del store.
func orderNoOf(t *testing.T, store *memStore) string {
	t.Helper()
	require.Len(t, store.orders, 1)
	for no := range store.orders {
		return no
	}
	return ""
}

// ──────────────────────────────────────────────────────────────────────────────
// Colocar órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_CustomerCrea201YDescuentaStock(t *testing.T) {
	users := newFakeUserRepo()
	customer := users.seed("Caro", "caro@x.com", entity.RoleCustomer)
	store := newMemStore()
	store.addProduct(1, "Teclado", "35.50", 10)
	app := buildAPI(users, store)

	resp := apiRequest(t, app, http.MethodPost, "/api/orders", tokenFor(t, customer),
		dto.CreateOrderRequest{ProductID: 1, Quantity: 3})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Order placed successfully", bodyMessage(t, resp))

	// El catálogo público refleja el stock descontado
	listResp := apiRequest(t, app, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusOK, listResp.StatusCode)
	var products []dto.ProductResponse
	decodeJSON(t, listResp, &products)
	require.Len(t, products, 1)
	assert.Equal(t, int64(7), products[0].Quantity)
}

func TestPlaceOrder_RolNoCustomer_Retorna403(t *testing.T) {
	users := newFakeUserRepo()
	store := newMemStore()
	store.addProduct(1, "Teclado", "35.50", 10)
	app := buildAPI(users, store)

	for _, u := range []*entity.User{
		users.seed("Ana", "ana@x.com", entity.RoleAdmin),
		users.seed("Rita", "rita@x.com", entity.RoleSalesRep),
	} {
		resp := apiRequest(t, app, http.MethodPost, "/api/orders", tokenFor(t, u),
			dto.CreateOrderRequest{ProductID: 1, Quantity: 1})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, u.Role)
		assert.Equal(t, "Permission denied", bodyMessage(t, resp))
	}
	assert.Empty(t, store.orders, "ninguna orden debió crearse")
}

func TestPlaceOrder_StockInsuficiente_Retorna400(t *testing.T) {
	users := newFakeUserRepo()
	customer := users.seed("Caro", "caro@x.com", entity.RoleCustomer)
	store := newMemStore()
	store.addProduct(1, "Teclado", "35.50", 2)
	app := buildAPI(users, store)

	resp := apiRequest(t, app, http.MethodPost, "/api/orders", tokenFor(t, customer),
		dto.CreateOrderRequest{ProductID: 1, Quantity: 5})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Insufficient quantity", bodyMessage(t, resp))
	assert.Equal(t, int64(2), store.products[1].Quantity, "el stock no debe cambiar")
}

func TestPlaceOrder_ProductoInexistente_Retorna404(t *testing.T) {
	users := newFakeUserRepo()
	customer := users.seed("Caro", "caro@x.com", entity.RoleCustomer)
	app := buildAPI(users, newMemStore())

	resp := apiRequest(t, app, http.MethodPost, "/api/orders", tokenFor(t, customer),
		dto.CreateOrderRequest{ProductID: 99, Quantity: 1})

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found", bodyMessage(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestListOrders_CustomerVeSoloLasSuyas_AdminYSalesRepVenTodas(t *testing.T) {
	users := newFakeUserRepo()
	caro := users.seed("Caro", "caro@x.com", entity.RoleCustomer)
	beto := users.seed("Beto", "beto@x.com", entity.RoleCustomer)
	admin := users.seed("Ana", "ana@x.com", entity.RoleAdmin)
	rep := users.seed("Rita", "rita@x.com", entity.RoleSalesRep)

	store := newMemStore()
	store.addProduct(1, "Teclado", "35.50", 100)
	app := buildAPI(users, store)

	for _, c := range []*entity.User{caro, caro, beto} {
		resp := apiRequest(t, app, http.MethodPost, "/api/orders", tokenFor(t, c),
			dto.CreateOrderRequest{ProductID: 1, Quantity: 1})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	cases := []struct {
		user *entity.User
		want int
	}{
		{caro, 2},
		{beto, 1},
		{admin, 3},
		{rep, 3},
	}
	for _, tc := range cases {
		resp := apiRequest(t, app, http.MethodGet, "/api/orders", tokenFor(t, tc.user), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, tc.user.Role)
		var rows []dto.OrderResponse
		decodeJSON(t, resp, &rows)
		assert.Len(t, rows, tc.want, "%s (%s)", tc.user.Name, tc.user.Role)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones cancel/complete
// ──────────────────────────────────────────────────────────────────────────────

func TestCancelLuegoComplete_ReportaYaCancelada(t *testing.T) {
	users := newFakeUserRepo()
	customer := users.seed("Caro", "caro@x.com", entity.RoleCustomer)
	rep := users.seed("Rita", "rita@x.com", entity.RoleSalesRep)

	store := newMemStore()
	store.addProduct(1, "Teclado", "35.50", 10)
	app := buildAPI(users, store)

	resp := apiRequest(t, app, http.MethodPost, "/api/orders", tokenFor(t, customer),
		dto.CreateOrderRequest{ProductID: 1, Quantity: 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	orderNo := orderNoOf(t, store)

	cancelResp := apiRequest(t, app, http.MethodPut, "/api/orders/cancel/"+orderNo,
		tokenFor(t, customer), nil)
	assert.Equal(t, http.StatusOK, cancelResp.StatusCode)
	assert.Equal(t, "Order cancelled successfully", bodyMessage(t, cancelResp))

	completeResp := apiRequest(t, app, http.MethodPut, "/api/orders/complete/"+orderNo,
		tokenFor(t, rep), nil)
	assert.Equal(t, http.StatusBadRequest, completeResp.StatusCode)
	assert.Equal(t, "Order already cancelled", bodyMessage(t, completeResp))
}

func TestCompleteLuegoCancel_ReportaYaCompletada(t *testing.T) {
	users := newFakeUserRepo()
	customer := users.seed("Caro", "caro@x.com", entity.RoleCustomer)
	rep := users.seed("Rita", "rita@x.com", entity.RoleSalesRep)

	store := newMemStore()
	store.addProduct(1, "Teclado", "35.50", 10)
	app := buildAPI(users, store)

	resp := apiRequest(t, app, http.MethodPost, "/api/orders", tokenFor(t, customer),
		dto.CreateOrderRequest{ProductID: 1, Quantity: 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	orderNo := orderNoOf(t, store)

	completeResp := apiRequest(t, app, http.MethodPut, "/api/orders/complete/"+orderNo,
		tokenFor(t, rep), nil)
	assert.Equal(t, http.StatusOK, completeResp.StatusCode)
	assert.Equal(t, "Order completed successfully", bodyMessage(t, completeResp))

	cancelResp := apiRequest(t, app, http.MethodPut, "/api/orders/cancel/"+orderNo,
		tokenFor(t, customer), nil)
	assert.Equal(t, http.StatusBadRequest, cancelResp.StatusCode)
	assert.Equal(t, "Order already completed", bodyMessage(t, cancelResp))
}

func TestCancel_OrdenInexistente_Retorna404(t *testing.T) {
	users := newFakeUserRepo()
	customer := users.seed("Caro", "caro@x.com", entity.RoleCustomer)
	app := buildAPI(users, newMemStore())

	resp := apiRequest(t, app, http.MethodPut, "/api/orders/cancel/no-existe",
		tokenFor(t, customer), nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Order not found", bodyMessage(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro, login y administración
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterLoginYPerfil_RoundTrip(t *testing.T) {
	users := newFakeUserRepo()
	app := buildAPI(users, newMemStore())

	regResp := apiRequest(t, app, http.MethodPost, "/api/register", "",
		dto.RegisterRequest{Name: "Caro", Email: "caro@x.com", Password: "s3creto"})
	require.Equal(t, http.StatusCreated, regResp.StatusCode)
	var reg dto.TokenResponse
	decodeJSON(t, regResp, &reg)
	require.NotEmpty(t, reg.Token)

	loginResp := apiRequest(t, app, http.MethodPost, "/api/login", "",
		dto.LoginRequest{Email: "caro@x.com", Password: "s3creto"})
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var login dto.TokenResponse
	decodeJSON(t, loginResp, &login)
	require.NotEmpty(t, login.Token)

	meResp := apiRequest(t, app, http.MethodGet, "/api/user", "Bearer "+login.Token, nil)
	require.Equal(t, http.StatusOK, meResp.StatusCode)
	var me dto.UserResponse
	decodeJSON(t, meResp, &me)
	assert.Equal(t, "caro@x.com", me.Email)
	assert.Equal(t, entity.RoleCustomer, me.Role, "el registro público siempre crea customers")
}

func TestAdminCreaProductoYCambiaRoles(t *testing.T) {
	users := newFakeUserRepo()
	admin := users.seed("Ana", "ana@x.com", entity.RoleAdmin)
	caro := users.seed("Caro", "caro@x.com", entity.RoleCustomer)
	app := buildAPI(users, newMemStore())

	createResp := apiRequest(t, app, http.MethodPost, "/api/products", tokenFor(t, admin),
		map[string]interface{}{"product": "Monitor", "price": "199.99", "quantity": 5})
	assert.Equal(t, http.StatusCreated, createResp.StatusCode)
	assert.Equal(t, "Product created successfully", bodyMessage(t, createResp))

	roleResp := apiRequest(t, app, http.MethodPut, "/api/users", tokenFor(t, admin),
		dto.UpdateRoleRequest{UserID: caro.ID, Role: entity.RoleSalesRep})
	assert.Equal(t, http.StatusOK, roleResp.StatusCode)
	assert.Equal(t, "Role Changed successfully", bodyMessage(t, roleResp))

	after, err := users.GetByID(caro.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSalesRep, after.Role)
}

func TestCustomerNoPuedeCrearProductosNiListarUsuarios(t *testing.T) {
	users := newFakeUserRepo()
	customer := users.seed("Caro", "caro@x.com", entity.RoleCustomer)
	app := buildAPI(users, newMemStore())

	createResp := apiRequest(t, app, http.MethodPost, "/api/products", tokenFor(t, customer),
		map[string]interface{}{"product": "Monitor", "price": "199.99", "quantity": 5})
	assert.Equal(t, http.StatusForbidden, createResp.StatusCode)
	createResp.Body.Close()

	listResp := apiRequest(t, app, http.MethodGet, "/api/users", tokenFor(t, customer), nil)
	assert.Equal(t, http.StatusForbidden, listResp.StatusCode)
	assert.Equal(t, "Permission denied", bodyMessage(t, listResp))
}
