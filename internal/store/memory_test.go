package store

import (
	"context"
	"testing"

	"github.com/xgumball/fwitter3clone/internal/model"
)

func TestMemoryCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	inputs := []model.Tweet{
		{Username: "alice", Status: "hello"},
		{Username: "", Status: ""},
		{Username: "bob", Status: "second"},
	}

	for i, in := range inputs {
		created, err := s.Create(ctx, in)
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if created.Username != in.Username || created.Status != in.Status {
			t.Fatalf("create %d: fields changed: got %+v want %+v", i, created, in)
		}
		if created.ID != int64(i+1) {
			t.Fatalf("create %d: id = %d, want %d", i, created.ID, i+1)
		}
		if created.CreatedAt.IsZero() {
			t.Fatalf("create %d: zero CreatedAt", i)
		}
	}

	tweets, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tweets) != len(inputs) {
		t.Fatalf("list returned %d tweets, want %d", len(tweets), len(inputs))
	}
	for i, tw := range tweets {
		if tw.Username != inputs[i].Username || tw.Status != inputs[i].Status {
			t.Fatalf("list[%d] = %+v, want fields of %+v", i, tw, inputs[i])
		}
	}
}

func TestMemoryListAllEmpty(t *testing.T) {
	tweets, err := NewMemory().ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tweets) != 0 {
		t.Fatalf("expected empty store, got %d tweets", len(tweets))
	}
}

func TestMemoryListAllIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	if _, err := s.Create(ctx, model.Tweet{Username: "alice", Status: "hi"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	second, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("element %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
