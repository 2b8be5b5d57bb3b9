package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sahasrayogam-be/internal/constant"
	"sahasrayogam-be/internal/dto"
	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/pkg/logger"
	"sahasrayogam-be/internal/pkg/serverutils"
	"sahasrayogam-be/internal/repository/memory"
	"sahasrayogam-be/internal/service"
	"sahasrayogam-be/pkg/fuzzy"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []*entity.Formulation {
	return []*entity.Formulation{
		{Id: 1, Category: entity.CategoryKashaya, Name: "Amritottaram", EntryNumber: 1, Ingredients: "Guduchi: 1 part\nShunthi: 1 part", Procedure: "Boil\nStrain", Indications: "Fever, Cough"},
		{Id: 2, Category: entity.CategoryGhrita, Name: "Indukanta Ghritam", EntryNumber: 1, Ingredients: "Putika: 1 part", Procedure: "Cook", Indications: "Abdominal pain"},
	}
}

func newTestApp(t *testing.T, loaded bool) *fiber.App {
	t.Helper()
	source := func() ([]*entity.Formulation, error) { return testRecords(), nil }
	catalog := service.NewCatalogService(nil, source, nil, logger.NewNopLogger())
	if loaded {
		catalog.Load(context.Background())
	}
	search := service.NewSearchService(fuzzy.NewApproximate(fuzzy.DefaultThreshold))
	formulations := service.NewFormulationService(catalog, search, entity.CategoryKashaya)
	viewers := service.NewViewerService(memory.NewSessionRepository(time.Hour), catalog, search, entity.CategoryKashaya)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewFormulationController(formulations).RegisterRoutes(app.Group("/api"))
	NewPageController(viewers, time.Hour).RegisterRoutes(app)
	return app
}

func getJSON[T any](t *testing.T, app *fiber.App, target string) (int, serverutils.Response[T]) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body serverutils.Response[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestFormulationControllerSearch(t *testing.T) {
	app := newTestApp(t, true)

	code, body := getJSON[dto.SearchResponse](t, app, "/api/formulation/v1?q=fever")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, body.Success)
	assert.Equal(t, "Kashaya", body.Data.Category)
	require.Equal(t, 1, body.Data.Count)
	assert.Equal(t, "Amritottaram", body.Data.Results[0].Name)

	code, body = getJSON[dto.SearchResponse](t, app, "/api/formulation/v1?category=Ghrita&q=fever")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, body.Data.Count)

	code, body = getJSON[dto.SearchResponse](t, app, "/api/formulation/v1?field=bogus")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "all", body.Data.Field)
}

func TestFormulationControllerSearchInvalidCategory(t *testing.T) {
	app := newTestApp(t, true)

	code, body := getJSON[any](t, app, "/api/formulation/v1?category=Churna")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, body.Success)
}

func TestFormulationControllerSearchWhileLoading(t *testing.T) {
	app := newTestApp(t, false)

	code, body := getJSON[dto.SearchResponse](t, app, "/api/formulation/v1")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, body.Data.Loading)
	assert.Empty(t, body.Data.Results)
}

func TestFormulationControllerShow(t *testing.T) {
	app := newTestApp(t, true)

	code, body := getJSON[dto.CardResponse](t, app, "/api/formulation/v1/1")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Amritottaram", body.Data.Name)
	require.Len(t, body.Data.Ingredients, 2)
	assert.Equal(t, "Guduchi", body.Data.Ingredients[0].Label)
	assert.Equal(t, []string{"Boil", "Strain"}, body.Data.Procedure)

	code, _ = getJSON[any](t, app, "/api/formulation/v1/404")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = getJSON[any](t, app, "/api/formulation/v1/abc")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestFormulationControllerMetadata(t *testing.T) {
	app := newTestApp(t, true)

	code, categories := getJSON[[]dto.CategoryResponse](t, app, "/api/formulation/v1/categories")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, categories.Data, 2)

	code, fields := getJSON[[]dto.FieldScopeResponse](t, app, "/api/formulation/v1/fields")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, fields.Data, 6)

	code, status := getJSON[dto.StatusResponse](t, app, "/api/formulation/v1/status")
	require.Equal(t, http.StatusOK, code)
	assert.False(t, status.Data.Loading)
	assert.Equal(t, 2, status.Data.Total)
}

func getPage(t *testing.T, app *fiber.App, target, cookie string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: constant.SessionCookieName, Value: cookie})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func sessionCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == constant.SessionCookieName {
			return c.Value
		}
	}
	return ""
}

func TestPageControllerRendersViewer(t *testing.T) {
	app := newTestApp(t, true)

	resp, body := getPage(t, app, "/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "Kashaya Prakarana")
	assert.Contains(t, body, "Showing 1 formulations")
	assert.Contains(t, body, "Amritottaram")
	assert.Contains(t, body, `placeholder="Search in All Fields..."`)
	assert.NotEmpty(t, sessionCookie(resp))
}

func TestPageControllerKeepsSessionState(t *testing.T) {
	app := newTestApp(t, true)

	resp, body := getPage(t, app, "/?category=Ghrita&q=fever", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No recipes found matching &#34;fever&#34;")
	session := sessionCookie(resp)
	require.NotEmpty(t, session)

	resp, body = getPage(t, app, "/", session)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Ghrita Prakarana")
	assert.Contains(t, body, `value="fever"`)
	assert.Equal(t, session, sessionCookie(resp))
}

func TestPageControllerEscapesQuery(t *testing.T) {
	app := newTestApp(t, true)

	_, body := getPage(t, app, "/?q=%3Cb%3Ex%3C%2Fb%3E", "")
	assert.NotContains(t, body, "<b>x</b>")
	assert.Contains(t, body, "&lt;b&gt;x&lt;/b&gt;")
}

func TestPageControllerInvalidCategory(t *testing.T) {
	app := newTestApp(t, true)

	resp, _ := getPage(t, app, "/?category=Churna", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPageControllerWhileLoading(t *testing.T) {
	app := newTestApp(t, false)

	resp, body := getPage(t, app, "/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Loading formulations...")
	assert.NotContains(t, body, "No recipes found")
}
