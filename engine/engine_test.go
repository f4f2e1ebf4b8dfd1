package engine_test

import (
	"testing"
	"time"

	"github.com/antony0531/real-estate-tracker-sub002/engine"
	"github.com/antony0531/real-estate-tracker-sub002/expiration"
	"github.com/antony0531/real-estate-tracker-sub002/types"
)

func TestNewEngineFillsDefaults(t *testing.T) {
	eng := engine.NewEngine(nil, nil, nil, engine.TTLs{})

	ttls := eng.TTLs()
	if ttls.Default != 5*time.Minute {
		t.Fatalf("default TTL: got %v", ttls.Default)
	}
	if ttls.Projects != 10*time.Minute {
		t.Fatalf("projects TTL: got %v", ttls.Projects)
	}
	if ttls.Dashboard != 2*time.Minute {
		t.Fatalf("dashboard TTL: got %v", ttls.Dashboard)
	}
	if ttls.Expenses != 3*time.Minute {
		t.Fatalf("expenses TTL: got %v", ttls.Expenses)
	}
	if eng.Metrics == nil || eng.Expiration == nil {
		t.Fatal("metrics and expiration must never be nil")
	}
}

func TestNewEngineKeepsOverrides(t *testing.T) {
	eng := engine.NewEngine(nil, nil, nil, engine.TTLs{Projects: time.Hour})

	if got := eng.TTLs().Projects; got != time.Hour {
		t.Fatalf("override lost: got %v", got)
	}
	if got := eng.TTLs().Expenses; got != 3*time.Minute {
		t.Fatalf("unset field should fall back to stock table, got %v", got)
	}
}

func TestOnWriteStampsBaselineAndDefaultTTL(t *testing.T) {
	eng := engine.NewEngine(expiration.ExpireAfterWrite{}, nil, nil, engine.TTLs{})
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	eng.Clock = func() time.Time { return now }

	ent := types.Entry{Key: "rooms:project:1", Value: "x"}
	eng.OnWrite(&ent)

	if ent.TTL != 5*time.Minute {
		t.Fatalf("zero TTL should take the default, got %v", ent.TTL)
	}
	if !ent.StoredAt.Equal(now) {
		t.Fatalf("baseline not stamped: got %v", ent.StoredAt)
	}

	if eng.IsExpired(&ent) {
		t.Fatal("fresh entry must be live")
	}
	now = now.Add(5 * time.Minute)
	if !eng.IsExpired(&ent) {
		t.Fatal("entry must be dead once its TTL elapses")
	}
}
