package knowledge

import (
	"context"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRepo(t *testing.T) *RedisRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo, err := NewRedisRepository(context.Background(), client, nil)
	if err != nil {
		t.Fatalf("NewRedisRepository failed: %v", err)
	}
	return repo
}

func TestRedisRepository_SeedsWhenEmpty(t *testing.T) {
	repo := newTestRepo(t)

	all, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("expected 6 seeded categories, got %d", len(all))
	}
	if !strings.Contains(all["services"], "GUTTER CLEARING") {
		t.Error("services document missing gutter clearing guidance")
	}
}

func TestRedisRepository_GetAndPut(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	entry, err := repo.Get(ctx, "pricing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if entry.Version != 1 {
		t.Errorf("expected seeded version 1, got %d", entry.Version)
	}

	updated, err := repo.Put(ctx, "pricing", "New pricing guidance")
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if updated.Version != 2 {
		t.Errorf("expected version bump to 2, got %d", updated.Version)
	}

	got, err := repo.Get(ctx, "pricing")
	if err != nil {
		t.Fatalf("Get after Put failed: %v", err)
	}
	if got.Content != "New pricing guidance" {
		t.Errorf("unexpected content %q", got.Content)
	}
}

func TestRedisRepository_GetUnknownCategory(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.Get(context.Background(), "nonsense"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRedisRepository_PutNewCategory(t *testing.T) {
	repo := newTestRepo(t)

	entry, err := repo.Put(context.Background(), "seasonal", "Winter schedules may shift with daylight")
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if entry.Version != 1 {
		t.Errorf("expected version 1 for new category, got %d", entry.Version)
	}
}

func TestStaticRepository(t *testing.T) {
	repo := NewStaticRepository()
	ctx := context.Background()

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("expected 6 builtin categories, got %d", len(all))
	}

	if _, err := repo.Put(ctx, "policies", "updated"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	entry, err := repo.Get(ctx, "policies")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if entry.Content != "updated" || entry.Version != 2 {
		t.Errorf("unexpected entry after Put: %+v", entry)
	}
}

func TestRelevant_SelectsSectionsByKeyword(t *testing.T) {
	kb := Fallback()

	got := Relevant("How much does a window clean cost in Bath?", kb)

	for _, want := range []string{
		"SERVICE INFORMATION:",
		"PRICING INFORMATION:",
		"SERVICE AREA INFORMATION:",
		"GENERAL BUSINESS INFORMATION:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing section %q", want)
		}
	}
	if strings.Contains(got, "POLICY INFORMATION:") {
		t.Error("policy section should not be selected for a pricing question")
	}
}

func TestRelevant_EmptyKnowledgeUsesFallback(t *testing.T) {
	got := Relevant("quote please", nil)
	if !strings.Contains(got, "SERVICE INFORMATION:") {
		t.Error("expected fallback knowledge to be used")
	}
}

func TestAllForPrompt(t *testing.T) {
	repo := NewStaticRepository()
	kb, _ := repo.All(context.Background())

	got := AllForPrompt(kb)

	if !strings.HasPrefix(got, "\n=== COMPREHENSIVE BUSINESS KNOWLEDGE ===\n") {
		t.Error("missing opening banner")
	}
	if !strings.Contains(got, "--- CUSTOMER SERVICE ---") {
		t.Error("missing customer-service section with dehyphenated heading")
	}
	// Fixed ordering: services before pricing before general.
	services := strings.Index(got, "--- SERVICES ---")
	pricing := strings.Index(got, "--- PRICING ---")
	general := strings.Index(got, "--- GENERAL ---")
	if !(services < pricing && pricing < general) {
		t.Errorf("sections out of order: services=%d pricing=%d general=%d", services, pricing, general)
	}

	if AllForPrompt(nil) != "" {
		t.Error("expected empty prompt for empty knowledge")
	}
}
