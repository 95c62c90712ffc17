package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Temucosoft-api/internal/application/dto"
	"github.com/jhoicas/Temucosoft-api/internal/application/entitlement"
	"github.com/jhoicas/Temucosoft-api/internal/application/usecase"
	"github.com/jhoicas/Temucosoft-api/internal/domain/plan"
	"github.com/jhoicas/Temucosoft-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/Temucosoft-api/internal/interfaces/http"
	"github.com/jhoicas/Temucosoft-api/pkg/logger"
)

// buildRouterApp arma el router completo. Solo PlanUC tiene implementación: los tests
// no deben llegar a handlers de otros casos de uso.
func buildRouterApp(checker *mockFeatureChecker) *fiber.App {
	resolver := entitlement.NewResolver(plan.Default(plan.Of(1)), nil, nil, logger.Nop())
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		PlanUC:    usecase.NewPlanUseCase(usecase.Deps{Resolver: resolver}),
		Features:  checker,
		Metrics:   metrics.New().Handler(),
		JWTSecret: testJWTSecret,
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, url, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, url, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRouter_CatalogoDePlanesEsPublico(t *testing.T) {
	resp := send(t, buildRouterApp(new(mockFeatureChecker)), http.MethodGet, "/api/plans", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var plans []dto.PlanResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&plans))
	require.Len(t, plans, 3)
	assert.Equal(t, "Basico", plans[0].Key)
	assert.Equal(t, "Premium", plans[2].Key)
	require.NotNil(t, plans[1].BranchLimit)
	assert.Equal(t, 3, *plans[1].BranchLimit)
	assert.Nil(t, plans[2].BranchLimit)
}

func TestRouter_RutasProtegidas(t *testing.T) {
	app := buildRouterApp(new(mockFeatureChecker))

	cases := []struct {
		name   string
		method string
		url    string
		role   string
		status int
	}{
		{"sucursales sin token", http.MethodGet, "/api/branches", "", http.StatusUnauthorized},
		{"sucursales con vendedor", http.MethodGet, "/api/branches", "vendedor", http.StatusForbidden},
		{"empresas con admin_cliente", http.MethodGet, "/api/companies", "admin_cliente", http.StatusForbidden},
		{"suscripciones con gerente", http.MethodPost, "/api/subscriptions", "gerente", http.StatusForbidden},
		{"compras con cliente_final", http.MethodGet, "/api/purchases", "cliente_final", http.StatusForbidden},
		{"crear usuario con vendedor", http.MethodPost, "/api/users", "vendedor", http.StatusForbidden},
		{"seleccionar plan con gerente", http.MethodPost, "/api/plans/select", "gerente", http.StatusForbidden},
		{"mi plan sin token", http.MethodGet, "/api/plans/mine", "", http.StatusUnauthorized},
		{"crear producto sin token", http.MethodPost, "/api/products", "", http.StatusUnauthorized},
		{"crear orden sin token", http.MethodPost, "/api/orders", "", http.StatusUnauthorized},
		{"reportes con vendedor", http.MethodGet, "/api/reports/sales-summary", "vendedor", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := ""
			if tc.role != "" {
				auth = tokenForRole(t, tc.role)
			}
			resp := send(t, app, tc.method, tc.url, auth)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestRouter_ReportesSegunPlan(t *testing.T) {
	checker := new(mockFeatureChecker)
	checker.On("HasFeature", mock.Anything, testCompanyID, plan.AdvancedReports).Return(false, nil)
	app := buildRouterApp(checker)

	resp := send(t, app, http.MethodGet, "/api/reports/top-products", tokenForRole(t, "gerente"))

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "PLAN_FEATURE_REQUIRED", body.Code)
	checker.AssertExpectations(t)
}

func TestRouter_RutaInexistente(t *testing.T) {
	resp := send(t, buildRouterApp(new(mockFeatureChecker)), http.MethodGet, "/api/no-existe", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestRouter_ExponeMetricas(t *testing.T) {
	resp := send(t, buildRouterApp(new(mockFeatureChecker)), http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "go_goroutines")
}
