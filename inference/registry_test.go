package inference

import (
	"context"
	"testing"

	"github.com/kynalabs/inferkit/provider"
)

func TestRegistryCreateAndGet(t *testing.T) {
	registry := NewRegistry()
	registry.RegisterFactory("fake", func(cfg map[string]any) (Service, error) {
		return &fakeService{name: "fake"}, nil
	})

	svc, err := registry.Create("fake", nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if svc.Name() != "fake" {
		t.Errorf("Name() = %q, want %q", svc.Name(), "fake")
	}

	registry.Set("fake", svc)
	got, ok := registry.Get("fake")
	if !ok {
		t.Fatal("Get(fake) not found")
	}
	if got != svc {
		t.Error("Get returned a different instance than Set")
	}

	if _, err := registry.Create("missing", nil); err == nil {
		t.Error("Create(missing) error = nil, want error")
	}
}

func TestManagerSelectsAvailable(t *testing.T) {
	manager := NewManager()
	manager.Register("a", func(cfg map[string]any) (Service, error) {
		return &fakeService{name: "a"}, nil
	})

	if err := manager.Initialize("a", nil); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}

	svc, err := manager.Get(context.Background())
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if svc.Name() != "a" {
		t.Errorf("Name() = %q, want %q", svc.Name(), "a")
	}

	byName, err := manager.GetByName("a")
	if err != nil {
		t.Fatalf("GetByName error: %v", err)
	}
	if byName.Name() != "a" {
		t.Errorf("GetByName Name() = %q, want %q", byName.Name(), "a")
	}
}

func TestManagerWithSelector(t *testing.T) {
	manager := NewManager(WithSelector(&provider.RoundRobinSelector[Service]{}))
	for _, name := range []string{"a", "b"} {
		name := name
		manager.Register(name, func(cfg map[string]any) (Service, error) {
			return &fakeService{name: name}, nil
		})
		if err := manager.Initialize(name, nil); err != nil {
			t.Fatalf("Initialize(%q) error: %v", name, err)
		}
	}

	seen := map[string]bool{}
	for i := 0; i < 4; i++ {
		svc, err := manager.Get(context.Background())
		if err != nil {
			t.Fatalf("Get error: %v", err)
		}
		seen[svc.Name()] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("round robin saw %v, want both a and b", seen)
	}
}
