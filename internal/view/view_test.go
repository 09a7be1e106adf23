package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xgumball/fwitter3clone/internal/model"
)

func TestListRendersTweets(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	var buf bytes.Buffer
	err = r.List(&buf, []model.Tweet{
		{ID: 1, Username: "alice", Status: "hello world"},
		{ID: 2, Username: "bob", Status: "second"},
	})
	if err != nil {
		t.Fatalf("render list: %v", err)
	}

	body := buf.String()
	for _, want := range []string{"alice", "hello world", "bob", "second"} {
		if !strings.Contains(body, want) {
			t.Fatalf("list page missing %q:\n%s", want, body)
		}
	}
	if got := strings.Count(body, `class="tweet"`); got != 2 {
		t.Fatalf("expected 2 tweet entries, got %d", got)
	}
}

func TestListEmpty(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	var buf bytes.Buffer
	if err := r.List(&buf, nil); err != nil {
		t.Fatalf("render list: %v", err)
	}
	if strings.Contains(buf.String(), `class="tweet"`) {
		t.Fatalf("empty store rendered tweet entries:\n%s", buf.String())
	}
}

func TestListEscapesHTML(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	var buf bytes.Buffer
	err = r.List(&buf, []model.Tweet{{ID: 1, Username: "mallory", Status: "<script>alert(1)</script>"}})
	if err != nil {
		t.Fatalf("render list: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Fatalf("status not escaped:\n%s", buf.String())
	}
}

func TestFormTargetsCreateRoute(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Form(&buf); err != nil {
		t.Fatalf("render form: %v", err)
	}

	body := buf.String()
	for _, want := range []string{`action="/tweet"`, `method="POST"`, `name="username"`, `name="status"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("form page missing %q:\n%s", want, body)
		}
	}
}
