package payments

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestQRCodeImageResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("base64 passthrough keeps existing data uri", func(t *testing.T) {
		r := NewQRCodeImageResolver()
		got := r.Resolve(ctx, "data:image/png;base64,AAAA", "", "")
		if got != "data:image/png;base64,AAAA" {
			t.Fatalf("data uri altered: %q", got)
		}
	})

	t.Run("bare base64 gets the data uri header", func(t *testing.T) {
		r := NewQRCodeImageResolver()
		got := r.Resolve(ctx, "AAAA", "", "")
		if got != "data:image/png;base64,AAAA" {
			t.Fatalf("header not prepended: %q", got)
		}
	})

	t.Run("fetches the provider image url", func(t *testing.T) {
		png := []byte{0x89, 'P', 'N', 'G'}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(png)
		}))
		defer srv.Close()

		r := NewQRCodeImageResolver()
		got := r.Resolve(ctx, "", srv.URL+"/qr.png", "ignored-code")
		want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
		if got != want {
			t.Fatalf("expected fetched image, got %q", got)
		}
	})

	t.Run("renders the code when no image is provided", func(t *testing.T) {
		png := []byte{0x89, 'P', 'N', 'G'}
		var query string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			query = req.URL.RawQuery
			_, _ = w.Write(png)
		}))
		defer srv.Close()

		r := NewQRCodeImageResolver()
		r.renderEndpoint = srv.URL
		got := r.Resolve(ctx, "", "", "000201 brcode")
		if !strings.HasPrefix(got, "data:image/png;base64,") {
			t.Fatalf("expected data uri, got %q", got)
		}
		if !strings.Contains(query, "size=1024x1024") || !strings.Contains(query, "data=000201+brcode") {
			t.Fatalf("render query missing parameters: %q", query)
		}
	})

	t.Run("fetch failure degrades to empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		r := NewQRCodeImageResolver()
		if got := r.Resolve(ctx, "", srv.URL, "code"); got != "" {
			t.Fatalf("expected empty on failure, got %q", got)
		}
	})

	t.Run("nothing to resolve yields empty", func(t *testing.T) {
		r := NewQRCodeImageResolver()
		if got := r.Resolve(ctx, "", "", ""); got != "" {
			t.Fatalf("expected empty, got %q", got)
		}
	})
}
