// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/siteforge-io/siteforge/internal/logger"
	"github.com/siteforge-io/siteforge/internal/siteconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSlot struct {
	WriteFunc func(data []byte) error
}

func (m *mockSlot) Write(data []byte) error {
	return m.WriteFunc(data)
}

func testDoc(t *testing.T) siteconfig.Document {
	t.Helper()

	doc, err := siteconfig.NewDocument([]byte(`{"site":{"title":"Acme"}}`))
	require.NoError(t, err)
	return doc
}

func TestGatewaySaveLocal(t *testing.T) {
	t.Run("writes document to slot", func(t *testing.T) {
		var written []byte
		slot := &mockSlot{WriteFunc: func(data []byte) error {
			written = data
			return nil
		}}
		gw := New(slot, RemoteConfig{}, logger.Nop())

		require.NoError(t, gw.SaveLocal(testDoc(t)))
		assert.JSONEq(t, `{"site":{"title":"Acme"}}`, string(written))
	})

	t.Run("slot error wrapped", func(t *testing.T) {
		slotErr := errors.New("disk full")
		slot := &mockSlot{WriteFunc: func(data []byte) error { return slotErr }}
		gw := New(slot, RemoteConfig{}, logger.Nop())

		err := gw.SaveLocal(testDoc(t))

		assert.ErrorIs(t, err, slotErr)
	})

	t.Run("nil slot", func(t *testing.T) {
		gw := New(nil, RemoteConfig{}, logger.Nop())

		assert.Error(t, gw.SaveLocal(testDoc(t)))
	})
}

func TestGatewaySaveRemote(t *testing.T) {
	t.Run("puts document with bearer token", func(t *testing.T) {
		var gotMethod, gotAuth, gotBody string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotAuth = r.Header.Get("Authorization")
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.Write([]byte(`ok`))
		}))
		defer srv.Close()

		gw := New(nil, RemoteConfig{Endpoint: srv.URL, Token: "s3cret"}, logger.Nop())

		require.NoError(t, gw.SaveRemote(context.Background(), testDoc(t)))
		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "Bearer s3cret", gotAuth)
		assert.JSONEq(t, `{"site":{"title":"Acme"}}`, gotBody)
	})

	t.Run("no auth header without token", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
		}))
		defer srv.Close()

		gw := New(nil, RemoteConfig{Endpoint: srv.URL}, logger.Nop())

		require.NoError(t, gw.SaveRemote(context.Background(), testDoc(t)))
		assert.Empty(t, gotAuth)
	})

	t.Run("not configured", func(t *testing.T) {
		gw := New(nil, RemoteConfig{}, logger.Nop())

		err := gw.SaveRemote(context.Background(), testDoc(t))

		assert.ErrorIs(t, err, ErrRemoteNotConfigured)
		assert.False(t, gw.RemoteConfigured())
	})

	t.Run("non-2xx carries status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		gw := New(nil, RemoteConfig{Endpoint: srv.URL}, logger.Nop())

		err := gw.SaveRemote(context.Background(), testDoc(t))

		var saveErr *RemoteSaveError
		require.ErrorAs(t, err, &saveErr)
		assert.Equal(t, http.StatusUnauthorized, saveErr.Status)
	})

	t.Run("transport error", func(t *testing.T) {
		gw := New(nil, RemoteConfig{Endpoint: "http://127.0.0.1:1"}, logger.Nop())

		err := gw.SaveRemote(context.Background(), testDoc(t))

		var saveErr *RemoteSaveError
		assert.ErrorAs(t, err, &saveErr)
	})
}

func TestGatewayExportImport(t *testing.T) {
	gw := New(nil, RemoteConfig{}, logger.Nop())

	t.Run("round trip", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "export.json")

		require.NoError(t, gw.ExportToFile(testDoc(t), filename))

		raw, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.JSONEq(t, `{"site":{"title":"Acme"}}`, string(raw))

		doc, err := gw.ImportFromFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "Acme", doc.GetString("site.title"))
	})

	t.Run("import missing file", func(t *testing.T) {
		_, err := gw.ImportFromFile(filepath.Join(t.TempDir(), "nope.json"))

		assert.Error(t, err)
	})

	t.Run("import invalid JSON", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(filename, []byte(`{"broken`), 0o644))

		_, err := gw.ImportFromFile(filename)

		assert.ErrorIs(t, err, ErrInvalidJSON)
	})
}
