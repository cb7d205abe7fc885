package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	authClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/auth/client"
	authH "github.com/lucasbarrena/shopsphere-gateway/internal/auth/handler"
	brandClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/brand/client"
	brandH "github.com/lucasbarrena/shopsphere-gateway/internal/brand/handler"
	cartClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/cart/client"
	cartH "github.com/lucasbarrena/shopsphere-gateway/internal/cart/handler"
	cartUCPkg "github.com/lucasbarrena/shopsphere-gateway/internal/cart/usecase"
	categoryClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/category/client"
	categoryH "github.com/lucasbarrena/shopsphere-gateway/internal/category/handler"
	categoryUCPkg "github.com/lucasbarrena/shopsphere-gateway/internal/category/usecase"
	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	orderClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/order/client"
	orderH "github.com/lucasbarrena/shopsphere-gateway/internal/order/handler"
	orderUCPkg "github.com/lucasbarrena/shopsphere-gateway/internal/order/usecase"
	paymentClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/payment/client"
	productClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/product/client"
	productH "github.com/lucasbarrena/shopsphere-gateway/internal/product/handler"
	productUCPkg "github.com/lucasbarrena/shopsphere-gateway/internal/product/usecase"
	providerClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/provider/client"
	providerH "github.com/lucasbarrena/shopsphere-gateway/internal/provider/handler"
	purchaseClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/purchase/client"
	purchaseH "github.com/lucasbarrena/shopsphere-gateway/internal/purchase/handler"
	reportClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/report/client"
	reportH "github.com/lucasbarrena/shopsphere-gateway/internal/report/handler"
	"github.com/lucasbarrena/shopsphere-gateway/internal/session"
	shipmentClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/shipment/client"
	shipmentH "github.com/lucasbarrena/shopsphere-gateway/internal/shipment/handler"
	stockClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/stock/client"
	stockH "github.com/lucasbarrena/shopsphere-gateway/internal/stock/handler"
	usersClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/users/client"
	usersH "github.com/lucasbarrena/shopsphere-gateway/internal/users/handler"
)

// fakeBackends stands in for the whole microservice fleet. Only the
// endpoints the tests touch are implemented; everything else 404s.
type fakeBackends struct {
	mu           *httptest.Server
	brandsActive map[int64]bool
	lastQuery    map[string]string
	revoked      string
}

func newFakeBackends(t *testing.T) *fakeBackends {
	t.Helper()
	f := &fakeBackends{
		brandsActive: map[int64]bool{1: true, 2: false},
		lastQuery:    map[string]string{},
	}
	f.mu = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.mu.Close)
	return f
}

func (f *fakeBackends) serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	path := r.URL.Path

	switch {
	case path == "/products/active":
		w.Write([]byte(`[{"id":1,"name":"Keyboard","price":"25.00","stock":4,"active":true}]`))

	case path == "/brands/active":
		f.writeBrands(w, true)
	case path == "/brands" && r.Method == http.MethodGet:
		f.writeBrands(w, false)
	case strings.HasSuffix(path, "/reactivate") && strings.HasPrefix(path, "/brands/"):
		id, _ := strconv.ParseInt(strings.TrimSuffix(strings.TrimPrefix(path, "/brands/"), "/reactivate"), 10, 64)
		f.brandsActive[id] = true
		w.WriteHeader(http.StatusNoContent)
	case strings.HasSuffix(path, "/deactivate") && strings.HasPrefix(path, "/brands/"):
		id, _ := strconv.ParseInt(strings.TrimSuffix(strings.TrimPrefix(path, "/brands/"), "/deactivate"), 10, 64)
		f.brandsActive[id] = false
		w.WriteHeader(http.StatusNoContent)

	case path == "/orders" && r.Method == http.MethodGet:
		f.lastQuery["/orders"] = r.URL.RawQuery
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		w.Write([]byte(`{"content":[{"id":100,"status":"PENDING"}],"number":` + strconv.Itoa(page) + `,"size":10,"totalElements":1,"totalPages":1}`))
	case path == "/orders/mine":
		auth := r.Header.Get("Authorization")
		if auth == "" || (f.revoked != "" && auth == "Bearer "+f.revoked) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"token rejected"}`))
			return
		}
		w.Write([]byte(`{"content":[],"number":0,"size":10,"totalElements":0,"totalPages":0}`))

	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no such endpoint"}`))
	}
}

func (f *fakeBackends) writeBrands(w http.ResponseWriter, activeOnly bool) {
	type brandJSON struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Active bool   `json:"active"`
	}
	var out []brandJSON
	for _, id := range []int64{1, 2} {
		if activeOnly && !f.brandsActive[id] {
			continue
		}
		out = append(out, brandJSON{ID: id, Name: "Brand " + strconv.FormatInt(id, 10), Active: f.brandsActive[id]})
	}
	json.NewEncoder(w).Encode(out)
}

func setupServer(t *testing.T) (*Server, *fakeBackends) {
	t.Helper()
	f := newFakeBackends(t)
	timeout := 2 * time.Second
	base := f.mu.URL

	productClient := productClientPkg.NewRESTClient(httpx.New(base+"/products", timeout))
	brandClient := brandClientPkg.NewRESTClient(httpx.New(base+"/brands", timeout))
	categoryClient := categoryClientPkg.NewRESTClient(httpx.New(base+"/categories", timeout))
	cartClient := cartClientPkg.NewRESTClient(httpx.New(base+"/cart", timeout))
	paymentClient := paymentClientPkg.NewRESTClient(httpx.New(base+"/payment", timeout))
	orderClient := orderClientPkg.NewRESTClient(httpx.New(base+"/orders", timeout))
	authClient := authClientPkg.NewRESTClient(httpx.New(base+"/auth", timeout))
	shipmentClient := shipmentClientPkg.NewRESTClient(httpx.New(base+"/shipments", timeout))
	reportClient := reportClientPkg.NewRESTClient(httpx.New(base+"/reports", timeout))
	providerClient := providerClientPkg.NewRESTClient(httpx.New(base+"/providers", timeout))
	purchaseClient := purchaseClientPkg.NewRESTClient(httpx.New(base+"/purchase-orders", timeout))
	stockClient := stockClientPkg.NewRESTClient(httpx.New(base+"/stock", timeout))
	usersClient := usersClientPkg.NewRESTClient(httpx.New(base+"/users", timeout))

	log := zap.NewNop()
	productUC := productUCPkg.NewProductUseCase(productClient, 5*time.Millisecond, log)
	categoryUC := categoryUCPkg.NewCategoryUseCase(categoryClient, log)
	cartUC := cartUCPkg.NewCartUseCase(cartClient, paymentClient, log)
	orderUC := orderUCPkg.NewOrderUseCase(orderClient, log)

	srv := New(Handlers{
		Auth:     authH.NewAuthHandler(authClient, log),
		Product:  productH.NewProductHandler(productUC, log),
		Brand:    brandH.NewBrandHandler(brandClient),
		Category: categoryH.NewCategoryHandler(categoryUC),
		Cart:     cartH.NewCartHandler(cartUC),
		Order:    orderH.NewOrderHandler(orderUC),
		Shipment: shipmentH.NewShipmentHandler(shipmentClient),
		Report:   reportH.NewReportHandler(reportClient),
		Provider: providerH.NewProviderHandler(providerClient),
		Purchase: purchaseH.NewPurchaseHandler(purchaseClient),
		Stock:    stockH.NewStockHandler(stockClient),
		Users:    usersH.NewUserHandler(usersClient),
	}, log)
	return srv, f
}

func doReq(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func makeToken(t *testing.T, subject string, authorities []string, ttl time.Duration) string {
	t.Helper()
	claims := session.Claims{
		Authorities: authorities,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestHealth(t *testing.T) {
	s, _ := setupServer(t)
	w := doReq(t, s, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health code %v", w.Code)
	}
}

func TestStorefrontIsPublic(t *testing.T) {
	s, _ := setupServer(t)
	w := doReq(t, s, http.MethodGet, "/api/products", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("storefront code %v: %s", w.Code, w.Body.String())
	}
	var products []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 {
		t.Fatalf("products %v", products)
	}
}

func TestSessionEndpoint(t *testing.T) {
	s, _ := setupServer(t)

	w := doReq(t, s, http.MethodGet, "/api/session", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("session code %v", w.Code)
	}
	var body struct {
		Session map[string]any `json:"session"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Session["authenticated"] != false {
		t.Fatalf("anonymous session %v", body.Session)
	}

	admin := makeToken(t, "root@example.com", []string{"ROLE_ADMIN"}, time.Hour)
	w = doReq(t, s, http.MethodGet, "/api/session", admin, nil)
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Session["authenticated"] != true || body.Session["admin"] != true {
		t.Fatalf("admin session %v", body.Session)
	}
}

func TestGuards(t *testing.T) {
	s, _ := setupServer(t)
	user := makeToken(t, "ana@example.com", []string{"ROLE_USER"}, time.Hour)
	admin := makeToken(t, "root@example.com", []string{"ROLE_ADMIN"}, time.Hour)
	expired := makeToken(t, "ana@example.com", []string{"ROLE_ADMIN"}, -time.Minute)

	// account surface
	if w := doReq(t, s, http.MethodGet, "/api/orders", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token code %v", w.Code)
	}
	if w := doReq(t, s, http.MethodGet, "/api/orders", expired, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token code %v", w.Code)
	}
	if w := doReq(t, s, http.MethodGet, "/api/orders", user, nil); w.Code != http.StatusOK {
		t.Fatalf("user token code %v: %s", w.Code, w.Body.String())
	}

	// admin surface
	if w := doReq(t, s, http.MethodGet, "/api/admin/brands", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("admin no token code %v", w.Code)
	}
	if w := doReq(t, s, http.MethodGet, "/api/admin/brands", user, nil); w.Code != http.StatusForbidden {
		t.Fatalf("admin user token code %v", w.Code)
	}
	if w := doReq(t, s, http.MethodGet, "/api/admin/brands", admin, nil); w.Code != http.StatusOK {
		t.Fatalf("admin token code %v: %s", w.Code, w.Body.String())
	}
}

func TestAdminOrdersForwardsPagination(t *testing.T) {
	s, f := setupServer(t)
	admin := makeToken(t, "root@example.com", []string{"ROLE_ADMIN"}, time.Hour)

	w := doReq(t, s, http.MethodGet, "/api/admin/orders?page=1&status=DELIVERED", admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin orders code %v: %s", w.Code, w.Body.String())
	}
	var page map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatal(err)
	}
	if page["number"] != float64(1) {
		t.Fatalf("page number %v", page["number"])
	}
	q := f.lastQuery["/orders"]
	if !strings.Contains(q, "page=1") || !strings.Contains(q, "status=DELIVERED") {
		t.Fatalf("upstream query %q", q)
	}
}

func TestBrandToggleThenListReflectsServerState(t *testing.T) {
	s, _ := setupServer(t)
	admin := makeToken(t, "root@example.com", []string{"ROLE_ADMIN"}, time.Hour)

	// brand 2 starts inactive and is absent from the public list
	w := doReq(t, s, http.MethodGet, "/api/brands", "", nil)
	var brands []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &brands); err != nil {
		t.Fatal(err)
	}
	if len(brands) != 1 {
		t.Fatalf("active brands %v", brands)
	}

	if w := doReq(t, s, http.MethodPut, "/api/admin/brands/2/reactivate", admin, nil); w.Code != http.StatusNoContent {
		t.Fatalf("reactivate code %v", w.Code)
	}
	// reactivating an already-active brand is a no-op, not an error
	if w := doReq(t, s, http.MethodPut, "/api/admin/brands/2/reactivate", admin, nil); w.Code != http.StatusNoContent {
		t.Fatalf("repeat reactivate code %v", w.Code)
	}

	w = doReq(t, s, http.MethodGet, "/api/brands", "", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &brands); err != nil {
		t.Fatal(err)
	}
	if len(brands) != 2 {
		t.Fatalf("brands after reactivate %v", brands)
	}
}

func TestBackendUnauthorizedMapsToSessionExpired(t *testing.T) {
	s, f := setupServer(t)

	// Token valid at the edge but rejected by the backend; the gateway
	// reports the session as expired so the browser drops it.
	tok := makeToken(t, "ana@example.com", []string{"ROLE_USER"}, time.Hour)
	f.revoked = tok

	w := doReq(t, s, http.MethodGet, "/api/orders", tok, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("code %v: %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["code"] != "SESSION_EXPIRED" {
		t.Fatalf("body %v", body)
	}
}
