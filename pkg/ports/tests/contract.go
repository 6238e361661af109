package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/fasim/pkg/domain"
	"github.com/aretw0/fasim/pkg/ports"
)

// DescriptionLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.DescriptionLoader.
// setupData must already be readable through loader.
func DescriptionLoaderContractTest(t *testing.T, loader ports.DescriptionLoader, setupData map[string][]string) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_Success", func(t *testing.T) {
		for name, want := range setupData {
			got, err := loader.Load(ctx, name)
			if err != nil {
				t.Fatalf("unexpected error loading %s: %v", name, err)
			}
			if len(got) != len(want) {
				t.Fatalf("line count mismatch for %s. got %d, want %d", name, len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("line %d mismatch for %s. got %q, want %q", i+1, name, got[i], want[i])
				}
			}
		}
	})

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := loader.Load(ctx, "non-existent-description")
		if err == nil {
			t.Fatal("expected error for non-existent description, got nil")
		}
		if !errors.Is(err, domain.ErrFileOpen) {
			t.Errorf("expected error matching domain.ErrFileOpen, got %v", err)
		}
	})

	if lister, ok := loader.(ports.DescriptionLister); ok {
		t.Run("List", func(t *testing.T) {
			names, err := lister.List(ctx)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			seen := make(map[string]bool, len(names))
			for _, n := range names {
				seen[n] = true
			}
			for name := range setupData {
				if !seen[name] {
					t.Errorf("List() missing %q, got %v", name, names)
				}
			}
		})
	}
}

// DescriptionPublisherContractTest verifies that published descriptions can be read back and replaced.
func DescriptionPublisherContractTest(t *testing.T, store interface {
	ports.DescriptionLoader
	ports.DescriptionPublisher
}) {
	t.Helper()
	ctx := context.Background()

	if err := store.Publish(ctx, "contract", []string{"S1;a;S2", "S2;a;S1"}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if err := store.Publish(ctx, "contract", []string{"S1;b;S1"}); err != nil {
		t.Fatalf("Publish (replace) failed: %v", err)
	}

	got, err := store.Load(ctx, "contract")
	if err != nil {
		t.Fatalf("Load after publish failed: %v", err)
	}
	if len(got) != 1 || got[0] != "S1;b;S1" {
		t.Errorf("expected replaced content, got %q", got)
	}
}
