package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGroqProvider_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"hello from groq"}}]}`))
	}))
	defer server.Close()

	p := NewGroqProviderWithBaseURL(server.URL)
	result, err := p.Generate(context.Background(), "test-key", "llama-3.3-70b-versatile", "system", "user", 256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Text != "hello from groq" {
		t.Errorf("text = %q", result.Text)
	}
	if result.Provider != "groq" {
		t.Errorf("provider = %q", result.Provider)
	}
}
