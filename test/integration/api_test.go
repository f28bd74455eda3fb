// Package integration provides end-to-end tests for the HR vault API.
// Tests run the full stack (router, use cases, crypto, repositories) against
// a real PostgreSQL database and are skipped when none is available.
package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/hrvault/internal/app"
	"github.com/allisson/hrvault/internal/config"
	employeeDTO "github.com/allisson/hrvault/internal/employee/http/dto"
	onboardingDTO "github.com/allisson/hrvault/internal/onboarding/http/dto"
	"github.com/allisson/hrvault/internal/testutil"
)

// gatewayIdentity holds the trusted gateway headers attached to a request.
type gatewayIdentity struct {
	Identity    string
	Role        string
	Scope       string
	Department  string
	Employee    string
	Sensitive   bool
	Permissions string
}

func hrAdmin() gatewayIdentity {
	return gatewayIdentity{
		Identity:  "user:hr-admin",
		Role:      "hr_admin",
		Scope:     "all",
		Sensitive: true,
	}
}

func departmentManager(departmentID string) gatewayIdentity {
	return gatewayIdentity{
		Identity:   "user:dept-manager",
		Role:       "department_manager",
		Scope:      "department",
		Department: departmentID,
	}
}

func selfEmployee(employeeNumber string) gatewayIdentity {
	return gatewayIdentity{
		Identity: "user:" + employeeNumber,
		Role:     "employee",
		Scope:    "self",
		Employee: employeeNumber,
	}
}

// testContext holds the running stack for one integration test run.
type testContext struct {
	container *app.Container
	db        *sql.DB
	server    *httptest.Server
}

func setup(t *testing.T) *testContext {
	t.Helper()
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)

	fieldKey := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x5a}, 32))
	cfg := &config.Config{
		DBDriver:                  "postgres",
		DBConnectionString:        testutil.GetPostgresTestDSN(),
		DBMaxOpenConnections:      5,
		DBMaxIdleConnections:      2,
		DBConnMaxLifetime:         time.Minute,
		LogLevel:                  "error",
		FieldKey:                  fieldKey,
		OnboardingTokenExpiration: time.Hour,
		RateLimitEnabled:          false,
		MetricsEnabled:            false,
	}

	container := app.NewContainer(cfg)
	server, err := container.HTTPServer()
	require.NoError(t, err, "failed to initialize HTTP server")

	ts := httptest.NewServer(server.GetHandler())

	t.Cleanup(func() {
		ts.Close()
		_ = container.Shutdown(context.Background())
		testutil.CleanupPostgresDB(t, db)
		testutil.TeardownDB(t, db)
	})

	return &testContext{container: container, db: db, server: ts}
}

// request performs an HTTP request with the given gateway identity, returning
// the status code and decoded JSON body.
func (tc *testContext) request(
	t *testing.T,
	method, path string,
	body any,
	identity *gatewayIdentity,
) (int, map[string]any) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, tc.server.URL+path, bodyReader)
	require.NoError(t, err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if identity != nil {
		req.Header.Set("X-Auth-Identity", identity.Identity)
		req.Header.Set("X-Auth-Role", identity.Role)
		req.Header.Set("X-Auth-Scope", identity.Scope)
		if identity.Department != "" {
			req.Header.Set("X-Auth-Department", identity.Department)
		}
		if identity.Employee != "" {
			req.Header.Set("X-Auth-Employee", identity.Employee)
		}
		if identity.Sensitive {
			req.Header.Set("X-Auth-Sensitive", "true")
		}
		if identity.Permissions != "" {
			req.Header.Set("X-Auth-Permissions", identity.Permissions)
		}
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "response is not JSON: %s", raw)
	}
	return resp.StatusCode, decoded
}

func createEmployeeRequest(employeeNumber, departmentID string) employeeDTO.CreateEmployeeRequest {
	return employeeDTO.CreateEmployeeRequest{
		EmployeeNumber: employeeNumber,
		DepartmentID:   departmentID,
		Position:       "Backend Engineer",
		Email:          employeeNumber + "@example.com",
		Gender:         "female",
		HireDate:       time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
		Fields: map[string]string{
			"name":       "张伟",
			"phone":      "13812345678",
			"id_card":    "110101199003074258",
			"bank_card":  "6222021234567890123",
			"birth_date": "1990-03-07",
		},
	}
}

func TestEmployeeLifecycle(t *testing.T) {
	tc := setup(t)
	admin := hrAdmin()

	t.Run("create employee", func(t *testing.T) {
		status, body := tc.request(t, http.MethodPost, "/v1/employees", createEmployeeRequest("EMP0001", "dept-eng"), &admin)
		require.Equal(t, http.StatusCreated, status, "body: %v", body)
		assert.Equal(t, "EMP0001", body["employee_number"])
	})

	t.Run("duplicate employee number conflicts", func(t *testing.T) {
		status, _ := tc.request(t, http.MethodPost, "/v1/employees", createEmployeeRequest("EMP0001", "dept-eng"), &admin)
		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("database stores no plaintext PII", func(t *testing.T) {
		var nameEnc, phoneEnc string
		err := tc.db.QueryRow(
			`SELECT name_enc, phone_enc FROM employees WHERE employee_number = $1`, "EMP0001",
		).Scan(&nameEnc, &phoneEnc)
		require.NoError(t, err)
		assert.NotContains(t, nameEnc, "张伟")
		assert.NotContains(t, phoneEnc, "13812345678")
	})

	t.Run("hr admin with sensitive grant sees full values", func(t *testing.T) {
		status, body := tc.request(t, http.MethodGet, "/v1/employees/EMP0001", nil, &admin)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["sensitive_revealed"])

		fields := body["fields"].(map[string]any)
		assert.Equal(t, "13812345678", fields["phone"])
		assert.Equal(t, "110101199003074258", fields["id_card"])
	})

	t.Run("department manager sees masked values", func(t *testing.T) {
		manager := departmentManager("dept-eng")
		status, body := tc.request(t, http.MethodGet, "/v1/employees/EMP0001", nil, &manager)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, false, body["sensitive_revealed"])

		fields := body["fields"].(map[string]any)
		assert.Equal(t, "138****5678", fields["phone"])
		assert.NotContains(t, fields, "birth_date")
	})

	t.Run("foreign department manager cannot see the record", func(t *testing.T) {
		foreign := departmentManager("dept-sales")
		status, _ := tc.request(t, http.MethodGet, "/v1/employees/EMP0001", nil, &foreign)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("employee role is limited to own record", func(t *testing.T) {
		self := selfEmployee("EMP0001")
		status, body := tc.request(t, http.MethodGet, "/v1/employees/EMP0001", nil, &self)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "EMP0001", body["employee_number"])

		status, _ = tc.request(t, http.MethodPost, "/v1/employees", createEmployeeRequest("EMP0002", "dept-eng"), &self)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("missing identity headers are rejected", func(t *testing.T) {
		status, _ := tc.request(t, http.MethodGet, "/v1/employees/EMP0001", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestEmployeeSearchAndUpdate(t *testing.T) {
	tc := setup(t)
	admin := hrAdmin()

	status, _ := tc.request(t, http.MethodPost, "/v1/employees", createEmployeeRequest("EMP0100", "dept-eng"), &admin)
	require.Equal(t, http.StatusCreated, status)

	t.Run("search by phone hash", func(t *testing.T) {
		status, body := tc.request(
			t, http.MethodGet, "/v1/employees/search?field=phone&value=13812345678", nil, &admin,
		)
		require.Equal(t, http.StatusOK, status)

		employees := body["employees"].([]any)
		require.Len(t, employees, 1)
		first := employees[0].(map[string]any)
		assert.Equal(t, "EMP0100", first["employee_number"])
	})

	t.Run("search on unsearchable field is rejected", func(t *testing.T) {
		status, _ := tc.request(
			t, http.MethodGet, "/v1/employees/search?field=bank_card&value=6222021234567890123", nil, &admin,
		)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
	})

	t.Run("self update with partial rejection", func(t *testing.T) {
		self := selfEmployee("EMP0100")
		update := employeeDTO.UpdateEmployeeRequest{
			Fields: map[string]string{
				"phone":   "13900001111",
				"id_card": "110101199003070000",
			},
		}
		status, body := tc.request(t, http.MethodPatch, "/v1/employees/EMP0100", update, &self)
		require.Equal(t, http.StatusOK, status)

		rejected := body["rejected_fields"].([]any)
		assert.Contains(t, rejected, "id_card")
	})

	t.Run("updated phone is searchable under new value", func(t *testing.T) {
		status, body := tc.request(
			t, http.MethodGet, "/v1/employees/search?field=phone&value=13900001111", nil, &admin,
		)
		require.Equal(t, http.StatusOK, status)
		employees := body["employees"].([]any)
		assert.Len(t, employees, 1)
	})

	t.Run("list scoped to department", func(t *testing.T) {
		status, _ = tc.request(t, http.MethodPost, "/v1/employees", createEmployeeRequest("EMP0101", "dept-sales"), &admin)
		require.Equal(t, http.StatusCreated, status)

		manager := departmentManager("dept-eng")
		status, body := tc.request(t, http.MethodGet, "/v1/employees", nil, &manager)
		require.Equal(t, http.StatusOK, status)

		employees := body["employees"].([]any)
		require.Len(t, employees, 1)
		first := employees[0].(map[string]any)
		assert.Equal(t, "EMP0100", first["employee_number"])
	})
}

func TestOnboardingFlow(t *testing.T) {
	tc := setup(t)
	admin := hrAdmin()

	status, _ := tc.request(t, http.MethodPost, "/v1/employees", createEmployeeRequest("EMP0200", "dept-eng"), &admin)
	require.Equal(t, http.StatusCreated, status)

	var plainToken string

	t.Run("hr admin issues a token", func(t *testing.T) {
		issueReq := onboardingDTO.IssueTokenRequest{EmployeeNumber: "EMP0200"}
		status, body := tc.request(t, http.MethodPost, "/v1/onboarding/tokens", issueReq, &admin)
		require.Equal(t, http.StatusCreated, status, "body: %v", body)

		plainToken = body["token"].(string)
		assert.NotEmpty(t, plainToken)
		assert.Equal(t, "EMP0200", body["employee_number"])
	})

	t.Run("department manager cannot issue tokens", func(t *testing.T) {
		manager := departmentManager("dept-eng")
		issueReq := onboardingDTO.IssueTokenRequest{EmployeeNumber: "EMP0200"}
		status, _ := tc.request(t, http.MethodPost, "/v1/onboarding/tokens", issueReq, &manager)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("redeem without identity headers succeeds", func(t *testing.T) {
		redeemReq := onboardingDTO.RedeemTokenRequest{Token: plainToken}
		status, body := tc.request(t, http.MethodPost, "/v1/onboarding/redeem", redeemReq, nil)
		require.Equal(t, http.StatusOK, status, "body: %v", body)

		assert.Equal(t, "onboarding:EMP0200", body["identity"])
		assert.Equal(t, "employee", body["role"])
		assert.Equal(t, "self", body["data_scope"])

		employee := body["employee"].(map[string]any)
		assert.Equal(t, "EMP0200", employee["employee_number"])
	})

	t.Run("token is single use", func(t *testing.T) {
		redeemReq := onboardingDTO.RedeemTokenRequest{Token: plainToken}
		status, _ := tc.request(t, http.MethodPost, "/v1/onboarding/redeem", redeemReq, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("garbage token is rejected without detail", func(t *testing.T) {
		redeemReq := onboardingDTO.RedeemTokenRequest{
			Token: fmt.Sprintf("%s.%s", "00000000-0000-0000-0000-000000000000", "bm90LWEtc2VjcmV0"),
		}
		status, body := tc.request(t, http.MethodPost, "/v1/onboarding/redeem", redeemReq, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.NotContains(t, fmt.Sprint(body), "expired")
		assert.NotContains(t, fmt.Sprint(body), "used")
	})
}

func TestHealthEndpoints(t *testing.T) {
	tc := setup(t)

	t.Run("health", func(t *testing.T) {
		status, body := tc.request(t, http.MethodGet, "/health", nil, nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("ready", func(t *testing.T) {
		status, body := tc.request(t, http.MethodGet, "/ready", nil, nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "ready", body["status"])
	})
}
