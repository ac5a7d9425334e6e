package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vclog/vclog/commit"
	"github.com/vclog/vclog/config"
)

func testPair() *commit.VersionPair {
	return &commit.VersionPair{
		Older: &commit.Version{Raw: "1.0.0+68"},
		Newer: &commit.Version{Raw: "1.0.1+71"},
	}
}

func TestBaseURL(t *testing.T) {
	tcs := []struct {
		name   string
		url    string
		expect string
	}{
		{
			name:   "full-path",
			url:    "https://api.openai.com/v1/chat/completions",
			expect: "https://api.openai.com/v1",
		},
		{
			name:   "base-only",
			url:    "https://api.example.com/v1",
			expect: "https://api.example.com/v1",
		},
		{
			name:   "trailing-slash",
			url:    "https://api.example.com/v1/chat/completions/",
			expect: "https://api.example.com/v1",
		},
		{
			name:   "whitespace",
			url:    "  https://api.example.com/v1 ",
			expect: "https://api.example.com/v1",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := BaseURL(tc.url); got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	subjects := []string{
		"feat(sync): exclude post-ad videos",
		"fix(ad): fix missing ads",
	}

	zh := BuildPrompt("zh", testPair(), subjects)
	for _, expect := range []string{"1.0.0+68", "1.0.1+71", subjects[0], subjects[1], "changelog"} {
		if !strings.Contains(zh, expect) {
			t.Errorf("expected %q in zh prompt:\n%s", expect, zh)
		}
	}

	en := BuildPrompt("en", testPair(), subjects)
	if !strings.Contains(en, "Summarize the following git commits") {
		t.Errorf("expected english prompt, got:\n%s", en)
	}
	if !strings.Contains(en, "from version 1.0.0+68 to 1.0.1+71") {
		t.Errorf("expected boundaries in prompt, got:\n%s", en)
	}
}

func TestNewNotConfigured(t *testing.T) {
	_, err := New(config.New(nil))
	aiErr := Error{}
	if !errors.As(err, &aiErr) {
		t.Fatalf("expected ai.Error, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	var gotPath string
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"model": "gpt-3.5-turbo",
			"choices": [
				{
					"index": 0,
					"message": {"role": "assistant", "content": "✨ one big feature"},
					"finish_reason": "stop"
				}
			]
		}`))
	}))
	defer srv.Close()

	cfg := config.New(&config.Config{
		URL: srv.URL + "/chat/completions",
		Key: "sk-test",
	})
	client, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	out, err := client.Summarize(context.Background(), testPair(), []string{"feat: thing"})
	if err != nil {
		t.Fatal(err)
	}
	if out != "✨ one big feature" {
		t.Fatalf("unexpected summary: %q", out)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("expected request to /chat/completions, got %q", gotPath)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
}

func TestSummarizeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "nope"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := config.New(&config.Config{
		URL: srv.URL + "/chat/completions",
		Key: "sk-test",
	})
	client, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.Summarize(context.Background(), testPair(), []string{"feat: thing"})
	aiErr := Error{}
	if !errors.As(err, &aiErr) {
		t.Fatalf("expected ai.Error, got %v", err)
	}
}
