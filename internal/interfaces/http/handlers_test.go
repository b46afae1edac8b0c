package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/registros-api/internal/application/dto"
)

func doJSON(t *testing.T, app interface {
	Test(*http.Request, ...int) (*http.Response, error)
}, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err, "la petición no debe fallar a nivel de transporte")
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios: CRUD y mapeo de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestUserRoutes_CreateAndGet(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/users", dto.UserRequest{
		Name: "Ana García", Email: "ana@mail.com", Age: intPtr(28), Gender: "female",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[dto.UserResponse](t, resp)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Ana García", created.Name)

	resp = doJSON(t, app, http.MethodGet, "/api/users/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[dto.UserResponse](t, resp)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "ana@mail.com", got.Email)
}

func TestUserRoutes_CreateInvalidEmail(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/users", dto.UserRequest{
		Name: "Ana", Email: "sin-arroba",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", errBody.Code)
}

func TestUserRoutes_CreateDuplicateEmail(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/users", dto.UserRequest{Name: "Ana", Email: "ana@mail.com"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/users", dto.UserRequest{Name: "Otra Ana", Email: "ana@mail.com"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "DUPLICATE", errBody.Code)
}

func TestUserRoutes_GetNotFound(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/users/99", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", errBody.Code)
}

func TestUserRoutes_InvalidID(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/users/abc", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_ID", errBody.Code)
}

func TestUserRoutes_InvalidBody(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_BODY", errBody.Code)
}

func TestUserRoutes_UpdateReplacesAll(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/users", dto.UserRequest{
		Name: "Ana", Email: "ana@mail.com", Phone: "300-555-0101", Age: intPtr(28), Gender: "female",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Update sin phone ni age: el reemplazo total los deja vacíos.
	resp = doJSON(t, app, http.MethodPut, "/api/users/1", dto.UserRequest{
		Name: "Ana María", Email: "ana@mail.com", Gender: "female",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[dto.UserResponse](t, resp)
	assert.Equal(t, "Ana María", got.Name)
	assert.Empty(t, got.Phone, "el reemplazo total debe limpiar el teléfono")
	assert.Nil(t, got.Age, "el reemplazo total debe limpiar la edad")
}

func TestUserRoutes_DeleteThenNotFound(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/users", dto.UserRequest{Name: "Ana", Email: "ana@mail.com"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/users/1", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/users/1", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios: búsqueda, filtro y estadísticas
// ──────────────────────────────────────────────────────────────────────────────

func seedTestUsers(t *testing.T, app interface {
	Test(*http.Request, ...int) (*http.Response, error)
}) {
	t.Helper()
	for _, u := range []dto.UserRequest{
		{Name: "Ana García", Email: "ana@mail.com", Age: intPtr(25), Gender: "female"},
		{Name: "Bruno Díaz", Email: "bruno@mail.com", Age: intPtr(41), Gender: "male"},
		{Name: "Carla Ruiz", Email: "carla@mail.com", Gender: "female"},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/users", u)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}
}

func TestUserRoutes_SearchNotShadowedByID(t *testing.T) {
	app := buildTestApp()
	seedTestUsers(t, app)

	// /search debe resolver como ruta propia, no como /:id.
	resp := doJSON(t, app, http.MethodGet, "/api/users/search?name=ana", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.UserResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana García", list[0].Name)
}

func TestUserRoutes_GetByEmail(t *testing.T) {
	app := buildTestApp()
	seedTestUsers(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/users/email/ana@mail.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[dto.UserResponse](t, resp)
	assert.Equal(t, "Ana García", got.Name)

	resp = doJSON(t, app, http.MethodGet, "/api/users/email/nadie@mail.com", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", errBody.Code)
}

func TestUserRoutes_FilterCombined(t *testing.T) {
	app := buildTestApp()
	seedTestUsers(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/users/filter?gender=female&minAge=20", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.UserResponse](t, resp)
	require.Len(t, list, 1, "Carla no tiene edad y queda fuera del rango")
	assert.Equal(t, "Ana García", list[0].Name)
}

func TestUserRoutes_FilterMalformedAge(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/users/filter?minAge=veinte", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", errBody.Code)
}

func TestUserRoutes_AgeRangeUsesDocumentedParams(t *testing.T) {
	app := buildTestApp()
	seedTestUsers(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/users/age-range?minAge=30&maxAge=50", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.UserResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Bruno Díaz", list[0].Name)
}

func TestUserRoutes_RecentDefaultLimit(t *testing.T) {
	app := buildTestApp()
	seedTestUsers(t, app)

	// Sin limit explícito aplica el default de 10, mayor que la colección.
	resp := doJSON(t, app, http.MethodGet, "/api/users/recent", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.UserResponse](t, resp)
	assert.Len(t, list, 3)
}

func TestUserRoutes_Statistics(t *testing.T) {
	app := buildTestApp()
	seedTestUsers(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/users/statistics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decodeBody[dto.UserStatistics](t, resp)
	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, 1, stats.MaleCount)
	assert.Equal(t, 2, stats.FemaleCount)
	assert.Equal(t, "33", stats.AverageAge.String(), "promedio de 25 y 41; Carla no aporta edad")
}

func TestUserRoutes_GenderCounts(t *testing.T) {
	app := buildTestApp()
	seedTestUsers(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/users/statistics/gender", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	groups := decodeBody[[]dto.GroupCountDTO](t, resp)
	require.Len(t, groups, 2)
	assert.Equal(t, dto.GroupCountDTO{Key: "female", Count: 2}, groups[0])
	assert.Equal(t, dto.GroupCountDTO{Key: "male", Count: 1}, groups[1])
}

func TestUserRoutes_StatisticsReportIsPDF(t *testing.T) {
	app := buildTestApp()
	seedTestUsers(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/users/statistics/report", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "el cuerpo debe ser un PDF")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas: total derivado y agregados
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesRoutes_CreateComputesTotal(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/sales", dto.SalesRequest{
		ProductName: "Laptop Pro", Category: "electronics", Price: 1_500_000, Quantity: 2,
		SalesDate: "2026-01-15", Salesperson: "Ana", Region: "norte", Status: "completed",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[dto.SalesResponse](t, resp)
	assert.Equal(t, int64(3_000_000), created.Total, "total = precio × cantidad")
	assert.Equal(t, "2026-01-15", created.SalesDate)
}

func TestSalesRoutes_FutureDateRejected(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/sales", dto.SalesRequest{
		ProductName: "Laptop", Category: "electronics", Price: 1, Quantity: 1,
		SalesDate: "2027-01-01", Salesperson: "Ana", Region: "norte", Status: "completed",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", errBody.Code)
}

func TestSalesRoutes_DateRangeRequiresBounds(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/sales/date-range?startDate=2026-01-01", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", errBody.Code)
}

func TestSalesRoutes_DateRangeFiltersBySalesDate(t *testing.T) {
	app := buildTestApp()
	for _, s := range []dto.SalesRequest{
		{ProductName: "Laptop", Category: "electronics", Price: 1_500_000, Quantity: 2, SalesDate: "2026-01-15", Salesperson: "Ana", Region: "norte", Status: "completed"},
		{ProductName: "Silla", Category: "furniture", Price: 320_000, Quantity: 3, SalesDate: "2026-03-01", Salesperson: "Bruno", Region: "sur", Status: "completed"},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/sales", s)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/sales/date-range?startDate=2026-01-01&endDate=2026-01-31", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.SalesResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Laptop", list[0].ProductName)
}

func TestSalesRoutes_PriceRangeFiltersByUnitPrice(t *testing.T) {
	app := buildTestApp()
	for _, s := range []dto.SalesRequest{
		{ProductName: "Cable HDMI", Category: "electronics", Price: 5_000, Quantity: 1, SalesDate: "2026-01-10", Salesperson: "Ana", Region: "norte", Status: "completed"},
		{ProductName: "Teclado", Category: "electronics", Price: 15_000, Quantity: 1, SalesDate: "2026-01-12", Salesperson: "Ana", Region: "norte", Status: "completed"},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/sales", s)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/sales/price-range?minPrice=10000&maxPrice=20000", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.SalesResponse](t, resp)
	require.Len(t, list, 1, "solo el precio dentro de [minPrice, maxPrice] debe pasar")
	assert.Equal(t, "Teclado", list[0].ProductName)
}

func TestSalesRoutes_RevenueByCategory(t *testing.T) {
	app := buildTestApp()
	for _, s := range []dto.SalesRequest{
		{ProductName: "Laptop", Category: "electronics", Price: 1_500_000, Quantity: 2, SalesDate: "2026-01-15", Salesperson: "Ana", Region: "norte", Status: "completed"},
		{ProductName: "Silla", Category: "furniture", Price: 320_000, Quantity: 3, SalesDate: "2026-02-01", Salesperson: "Bruno", Region: "sur", Status: "completed"},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/sales", s)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/sales/statistics/category", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	groups := decodeBody[[]dto.GroupTotalDTO](t, resp)
	require.Len(t, groups, 2)
	assert.Equal(t, dto.GroupTotalDTO{Key: "electronics", Total: 3_000_000}, groups[0])
	assert.Equal(t, dto.GroupTotalDTO{Key: "furniture", Total: 960_000}, groups[1])
}

// ──────────────────────────────────────────────────────────────────────────────
// Empleados: ciclo renuncia / recontratación
// ──────────────────────────────────────────────────────────────────────────────

func createTestEmployee(t *testing.T, app interface {
	Test(*http.Request, ...int) (*http.Response, error)
}, number string) dto.EmployeeResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/employees", dto.EmployeeRequest{
		EmployeeNumber: number, Name: "Ana García", SSN: "900101-0000001",
		Department: "ventas", Position: "ejecutiva", HireDate: "2020-03-01",
		Salary: 30_000_000, Status: "active",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[dto.EmployeeResponse](t, resp)
}

func TestEmployeeRoutes_ResignWithDate(t *testing.T) {
	app := buildTestApp()
	createTestEmployee(t, app, "EMP-001")

	resp := doJSON(t, app, http.MethodPost, "/api/employees/1/resign", map[string]string{
		"resignationDate": "2026-05-31",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[dto.EmployeeResponse](t, resp)
	assert.Equal(t, "resigned", got.Status)
	require.NotNil(t, got.ResignationDate)
	assert.Equal(t, "2026-05-31", *got.ResignationDate)
}

func TestEmployeeRoutes_ResignFutureDateRejected(t *testing.T) {
	app := buildTestApp()
	createTestEmployee(t, app, "EMP-001")

	// El reloj del caso de uso está fijo en 2026-06-15.
	resp := doJSON(t, app, http.MethodPost, "/api/employees/1/resign", map[string]string{
		"resignationDate": "2026-07-01",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", errBody.Code)
}

func TestEmployeeRoutes_ResignMalformedDate(t *testing.T) {
	app := buildTestApp()
	createTestEmployee(t, app, "EMP-001")

	resp := doJSON(t, app, http.MethodPost, "/api/employees/1/resign", map[string]string{
		"resignationDate": "31/05/2026",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", errBody.Code)
}

func TestEmployeeRoutes_RehireClearsResignation(t *testing.T) {
	app := buildTestApp()
	createTestEmployee(t, app, "EMP-001")

	resp := doJSON(t, app, http.MethodPost, "/api/employees/1/resign", map[string]string{
		"resignationDate": "2026-05-31",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/employees/1/rehire", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[dto.EmployeeResponse](t, resp)
	assert.Equal(t, "active", got.Status)
	assert.Nil(t, got.ResignationDate, "la recontratación debe limpiar la fecha de renuncia")
}

func TestEmployeeRoutes_ResignWithoutBodyUsesClock(t *testing.T) {
	app := buildTestApp()
	createTestEmployee(t, app, "EMP-001")

	// Sin cuerpo, la fecha de renuncia es el día del reloj inyectado.
	resp := doJSON(t, app, http.MethodPost, "/api/employees/1/resign", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[dto.EmployeeResponse](t, resp)
	assert.Equal(t, "resigned", got.Status)
	require.NotNil(t, got.ResignationDate)
	assert.Equal(t, "2026-06-15", *got.ResignationDate)
}

func TestEmployeeRoutes_SalaryRangeUsesDocumentedParams(t *testing.T) {
	app := buildTestApp()
	createTestEmployee(t, app, "EMP-001")

	resp := doJSON(t, app, http.MethodPost, "/api/employees", dto.EmployeeRequest{
		EmployeeNumber: "EMP-002", Name: "Bruno Díaz", SSN: "880215-0000002",
		Department: "ti", Position: "desarrollador", HireDate: "2023-07-15",
		Salary: 50_000_000, Status: "active",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/employees/salary-range?minSalary=40000000&maxSalary=60000000", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.EmployeeResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "EMP-002", list[0].EmployeeNumber)
}

func TestEmployeeRoutes_HireDateRangeUsesDocumentedParams(t *testing.T) {
	app := buildTestApp()
	createTestEmployee(t, app, "EMP-001") // contratada 2020-03-01

	resp := doJSON(t, app, http.MethodGet, "/api/employees/hire-date-range?startDate=2020-01-01&endDate=2020-12-31", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.EmployeeResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "EMP-001", list[0].EmployeeNumber)
}

func TestEmployeeRoutes_DuplicateNumber(t *testing.T) {
	app := buildTestApp()
	createTestEmployee(t, app, "EMP-001")

	resp := doJSON(t, app, http.MethodPost, "/api/employees", dto.EmployeeRequest{
		EmployeeNumber: "EMP-001", Name: "Bruno Díaz", SSN: "880215-0000002",
		Department: "ti", Position: "desarrollador", HireDate: "2023-07-15",
		Salary: 50_000_000, Status: "active",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	errBody := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "DUPLICATE", errBody.Code)
}

func TestEmployeeRoutes_GetByNumberNotShadowedByID(t *testing.T) {
	app := buildTestApp()
	created := createTestEmployee(t, app, "EMP-001")

	resp := doJSON(t, app, http.MethodGet, "/api/employees/number/EMP-001", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[dto.EmployeeResponse](t, resp)
	assert.Equal(t, created.ID, got.ID)
}

func TestEmployeeRoutes_StatisticsCollapsesOnLeave(t *testing.T) {
	app := buildTestApp()
	createTestEmployee(t, app, "EMP-001")

	resp := doJSON(t, app, http.MethodPost, "/api/employees", dto.EmployeeRequest{
		EmployeeNumber: "EMP-002", Name: "Diego Anaya", SSN: "850820-0000004",
		Department: "ventas", Position: "ejecutivo", HireDate: "2021-01-10",
		Salary: 90_000_000, Status: "on-leave",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/employees/statistics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decodeBody[dto.EmployeeStatistics](t, resp)
	assert.Equal(t, 2, stats.TotalCount)
	assert.Equal(t, 1, stats.ActiveCount)
	assert.Equal(t, 1, stats.ResignedCount, "on-leave cuenta como resigned en el resumen")
	assert.Equal(t, int64(30_000_000), stats.MaxSalary, "las cifras de salario solo miran a los activos")
}
