package cookiestore_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/keerthivardhanm/cms-V2/internal/app/system/cookiestore"
	"go.uber.org/zap"
)

func TestNew_EmptyKey(t *testing.T) {
	if _, err := cookiestore.New("", false, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestNew_Options(t *testing.T) {
	key := strings.Repeat("k", 32)

	store, err := cookiestore.New(key, true, zap.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !store.Options.Secure {
		t.Error("expected Secure cookies")
	}
	if !store.Options.HttpOnly {
		t.Error("expected HttpOnly cookies")
	}
	if store.Options.SameSite != http.SameSiteLaxMode {
		t.Errorf("SameSite = %v, want Lax", store.Options.SameSite)
	}
}

func TestNew_ShortKeyStillWorks(t *testing.T) {
	if _, err := cookiestore.New("short", false, zap.NewNop()); err != nil {
		t.Fatalf("New() error = %v", err)
	}
}
