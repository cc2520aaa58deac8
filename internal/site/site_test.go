package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteforge-io/siteforge/internal/config"
	"github.com/siteforge-io/siteforge/internal/logger"
	"github.com/siteforge-io/siteforge/internal/render"
	"github.com/siteforge-io/siteforge/internal/siteconfig"
)

const testBaseConfig = `{
	"theme": {"primary": "#101828", "background": "#ffffff", "text": "#1d2939"},
	"site": {
		"title": {"en": "Acme", "ar": "أكمي"},
		"lang": "en",
		"sectionsOrder": ["hero"]
	},
	"sections": {
		"hero": {"heading": {"en": "Build more", "ar": "ابنِ المزيد"}}
	}
}`

func newTestHolder(t *testing.T) *Holder {
	t.Helper()

	base := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(base, []byte(testBaseConfig), 0o600))

	loader := siteconfig.NewLoader(siteconfig.LoaderConfig{BaseSource: base}, nil, logger.Nop())
	holder := NewHolder(loader, logger.Nop())
	require.NoError(t, holder.Refresh(context.Background()))
	return holder
}

func newTestRouter(t *testing.T, lang string) http.Handler {
	t.Helper()

	holder := newTestHolder(t)
	h := NewHandler(holder, render.New(logger.Nop()), config.Site{Lang: lang}, logger.Nop())
	return h.Init()
}

func TestHolder_RefreshSwapsDocument(t *testing.T) {
	holder := newTestHolder(t)

	cfg := holder.Config()
	assert.Equal(t, "Acme", cfg.Site.Title.Resolve("en"))
}

func TestHolder_StartsEmptyBeforeRefresh(t *testing.T) {
	loader := siteconfig.NewLoader(siteconfig.LoaderConfig{}, nil, logger.Nop())
	holder := NewHolder(loader, logger.Nop())

	assert.JSONEq(t, `{}`, string(holder.Document()))
}

func TestPage_RendersEnglishByDefault(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `lang="en"`)
	assert.Contains(t, body, `dir="ltr"`)
	assert.Contains(t, body, "Build more")
}

func TestPage_ArabicQueryFlipsDirection(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/?lang=ar", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `lang="ar"`)
	assert.Contains(t, body, `dir="rtl"`)
	assert.Contains(t, body, "ابنِ المزيد")
}

func TestPage_UnsupportedLocale(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConfigJSON_ServesEffectiveDocument(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/config.json", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.True(t, strings.Contains(rec.Body.String(), "Acme"))
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
