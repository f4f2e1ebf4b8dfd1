package main

import (
	"context"
	"log"
	"net/http"

	cache "github.com/antony0531/real-estate-tracker-sub002"
	"github.com/antony0531/real-estate-tracker-sub002/config"
	"github.com/antony0531/real-estate-tracker-sub002/domain"
	"github.com/antony0531/real-estate-tracker-sub002/engine"
	"github.com/antony0531/real-estate-tracker-sub002/expiration"
	"github.com/antony0531/real-estate-tracker-sub002/fetch"
	"github.com/antony0531/real-estate-tracker-sub002/metrics"
	"github.com/antony0531/real-estate-tracker-sub002/mirror"
	"github.com/antony0531/real-estate-tracker-sub002/remote"
	"github.com/antony0531/real-estate-tracker-sub002/store"
)

func openStore(cfg config.Config) (store.TrackerStore, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	case config.BackendPostgres:
		return store.OpenPostgres(cfg.PostgresDSN)
	default:
		return store.OpenSQLite(cfg.SQLitePath)
	}
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("open %s store: %v", cfg.StoreBackend, err)
	}
	defer st.Close()

	recorder := metrics.New("tracker", nil)
	go func() {
		log.Printf("metrics on %s/metrics", cfg.MetricsAddr)
		if err := http.ListenAndServe(cfg.MetricsAddr, metrics.Handler()); err != nil {
			log.Printf("metrics server: %v", err)
		}
	}()

	var pol mirror.Policy
	var svcOpts []fetch.Option
	if cfg.RedisAddr != "" {
		tier, err := remote.NewRedisTier(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("redis tier: %v", err)
		}
		defer tier.Close()
		pol = mirror.NewAsync(tier, cfg.MirrorBuffer)
		svcOpts = append(svcOpts, fetch.WithTier(tier))
		log.Printf("mirroring cache writes to redis at %s", cfg.RedisAddr)
	}

	eng := engine.NewEngine(expiration.ExpireAfterWrite{}, recorder, pol, engine.TTLs{
		Default:   cfg.DefaultTTL,
		Projects:  cfg.ProjectsTTL,
		Dashboard: cfg.DashboardTTL,
		Expenses:  cfg.ExpensesTTL,
	})
	c := cache.New(eng)
	defer c.Close()

	svc := fetch.New(st, c, svcOpts...)

	if cfg.StoreBackend == config.BackendMemory {
		seed(ctx, st)
	}

	if err := svc.Warm(ctx); err != nil {
		log.Fatalf("warm cache: %v", err)
	}
	log.Printf("cache warmed: %d entries", c.Stats().Count)

	// Walk the read and write paths once so a fresh checkout shows the
	// caching behavior end to end.
	projects, err := svc.Projects(ctx)
	if err != nil {
		log.Fatalf("projects: %v", err)
	}
	log.Printf("projects (cache hit after warm): %d", len(projects))

	stats, err := svc.DashboardStats(ctx)
	if err != nil {
		log.Fatalf("dashboard stats: %v", err)
	}
	log.Printf("dashboard: %d projects, $%.0f of $%.0f spent (%.1f%%)",
		stats.TotalProjects, stats.TotalSpent, stats.TotalBudget, stats.BudgetUsedPct)

	if len(projects) > 0 {
		p := projects[0]

		rooms, err := svc.RoomsFor(ctx, p.ID)
		if err != nil {
			log.Fatalf("rooms: %v", err)
		}
		log.Printf("%s: %d rooms", p.Name, len(rooms))

		if len(rooms) > 0 {
			exp := &domain.Expense{
				ProjectID:       p.ID,
				RoomID:          rooms[0].ID,
				Category:        domain.Material,
				Cost:            1250,
				ConditionRating: 3,
				Notes:           "drywall and mud",
			}
			if err := svc.AddExpense(ctx, exp); err != nil {
				log.Fatalf("add expense: %v", err)
			}
			log.Printf("added expense #%d; expenses and dashboard entries invalidated", exp.ID)
		}

		expenses, err := svc.ExpensesFor(ctx, p.ID)
		if err != nil {
			log.Fatalf("expenses: %v", err)
		}
		log.Printf("%s: %d expenses (refetched after invalidation)", p.Name, len(expenses))
	}

	c.InvalidateExpenses()
	log.Printf("swept expenses category; resident keys: %v", c.Stats().Keys)

	recorder.SetEntries(c.Stats().Count)
}

// seed gives the memory backend something to serve.
func seed(ctx context.Context, st store.TrackerStore) {
	p := &domain.Project{
		Name:          "12 Maple Ave",
		TotalBudget:   350000,
		PropertyType:  domain.SingleFamily,
		PropertyClass: domain.SFClassC,
		Status:        domain.StatusInProgress,
		TotalSqft:     1850,
		Address:       "12 Maple Ave",
	}
	if err := st.CreateProject(ctx, p); err != nil {
		log.Fatalf("seed project: %v", err)
	}
	for i, name := range []string{"Kitchen", "Living Room"} {
		r := &domain.Room{
			ProjectID:   p.ID,
			Name:        name,
			FloorNumber: 1,
			LengthFt:    12 + float64(i)*4,
			WidthFt:     10,
		}
		if err := st.AddRoom(ctx, r); err != nil {
			log.Fatalf("seed room: %v", err)
		}
	}
	log.Printf("seeded demo project %q", p.Name)
}
