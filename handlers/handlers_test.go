package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchkit/site/config"
	"github.com/launchkit/site/local"
)

func newTestApp(renderTime time.Time) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		local.SetRenderTime(c, renderTime)
		return c.Next()
	})
	app.Get("/", HandleHome)
	app.Post("/navbar/toggle", HandleNavbarToggle)
	app.Get("/health", HandleHealth)
	app.Get("/sitemap.xml", HandleSitemap)
	app.Get("/robots.txt", HandleRobots)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fmt.Errorf("exploded")
	})
	app.Get("/half-render", func(c *fiber.Ctx) error {
		if _, err := c.WriteString(`<nav id="half-written">`); err != nil {
			return err
		}
		return fmt.Errorf("writer failed mid render")
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func postToggle(t *testing.T, app *fiber.App, state string) (*http.Response, string) {
	t.Helper()
	form := url.Values{"menu": {state}}
	req := httptest.NewRequest(http.MethodPost, "/navbar/toggle", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doRequest(t, app, req)
}

func TestHandleHome(t *testing.T) {
	app := newTestApp(time.Now())

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "Start Building")
	assert.Contains(t, body, "View Documentation")
	assert.NotContains(t, body, `id="mobile-menu"`)
	assert.Contains(t, body, fmt.Sprintf("© %d ", time.Now().Year()))
}

func TestHandleHomeCachedPerYear(t *testing.T) {
	require.NoError(t, InitPageCache())
	t.Cleanup(func() {
		pageCache.Close()
		pageCache = nil
	})

	first := newTestApp(time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC))
	_, body := doRequest(t, first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, body, "© 2030 ")
	pageCache.Wait()

	_, cached := doRequest(t, first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, body, cached)
	assert.Equal(t, uint64(1), pageCache.Stats().Hits)

	next := newTestApp(time.Date(2031, time.January, 1, 0, 0, 0, 0, time.UTC))
	_, body = doRequest(t, next, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, body, "© 2031 ")
}

func TestHandleNavbarToggle(t *testing.T) {
	app := newTestApp(time.Now())

	resp, body := postToggle(t, app, "closed")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(body, `<nav id="navbar"`), "expected a navbar fragment")
	assert.Contains(t, body, `id="mobile-menu"`)
	assert.Contains(t, body, `aria-expanded="true"`)

	_, body = postToggle(t, app, "open")
	assert.NotContains(t, body, `id="mobile-menu"`)
	assert.Contains(t, body, `aria-expanded="false"`)
}

func TestHandleNavbarToggleMissingState(t *testing.T) {
	app := newTestApp(time.Now())

	_, body := doRequest(t, app, httptest.NewRequest(http.MethodPost, "/navbar/toggle", nil))
	assert.Contains(t, body, `id="mobile-menu"`, "missing state is treated as closed")
}

func TestHandleHealth(t *testing.T) {
	app := newTestApp(time.Now())

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "ok", health["status"])
}

func TestHandleSitemap(t *testing.T) {
	app := newTestApp(time.Date(2030, time.March, 4, 0, 0, 0, 0, time.UTC))

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<urlset")
	assert.Contains(t, body, "<lastmod>2030-03-04</lastmod>")
}

func TestCustomErrorHandler(t *testing.T) {
	app := newTestApp(time.Now())

	tests := []struct {
		name     string
		path     string
		expected int
		message  string
	}{
		{name: "unknown route", path: "/missing", expected: http.StatusNotFound, message: "Error 404"},
		{name: "plain error", path: "/boom", expected: http.StatusInternalServerError, message: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.expected, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
			assert.Contains(t, body, tt.message)
		})
	}
}

func TestCustomErrorHandlerHidesInternalErrors(t *testing.T) {
	app := newTestApp(time.Now())

	_, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.NotContains(t, body, "exploded")
}

func TestCustomErrorHandlerDiscardsPartialBody(t *testing.T) {
	app := newTestApp(time.Now())

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/half-render", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, body, "half-written")
	assert.NotContains(t, body, "writer failed")
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"), "expected only the error page")
}

func TestHandleHealthWithPageCache(t *testing.T) {
	require.NoError(t, InitPageCache())
	t.Cleanup(func() {
		pageCache.Close()
		pageCache = nil
	})

	app := newTestApp(time.Now())
	doRequest(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	pageCache.Wait()
	_, page := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/", nil))

	_, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))

	var health struct {
		Status    string `json:"status"`
		PageCache *struct {
			Hits     uint64 `json:"hits"`
			Misses   uint64 `json:"misses"`
			CostUsed int64  `json:"cost_used"`
		} `json:"page_cache"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "ok", health.Status)
	require.NotNil(t, health.PageCache)
	assert.Equal(t, uint64(1), health.PageCache.Hits)
	assert.Equal(t, uint64(1), health.PageCache.Misses)
	assert.Equal(t, int64(len(page)), health.PageCache.CostUsed)
}

func TestHandleHealthWithoutPageCache(t *testing.T) {
	app := newTestApp(time.Now())

	_, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotContains(t, body, "page_cache")
}

func TestHandleRobots(t *testing.T) {
	oldBaseURL := config.BaseURL
	t.Cleanup(func() { config.BaseURL = oldBaseURL })
	config.BaseURL = "https://launchkit.example"

	app := newTestApp(time.Now())
	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	assert.Contains(t, body, "User-agent: *")
	assert.Contains(t, body, "Sitemap: https://launchkit.example/sitemap.xml")
}

func TestGetQueryParam(t *testing.T) {
	app := fiber.New()
	app.All("/echo", func(c *fiber.Ctx) error {
		return c.SendString(getQueryParam(c, "menu"))
	})

	_, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/echo?menu=open", nil))
	assert.Equal(t, "open", body)

	form := url.Values{"menu": {"closed"}}
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	_, body = doRequest(t, app, req)
	assert.Equal(t, "closed", body)
}
