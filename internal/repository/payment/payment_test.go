package payment

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Godson026/sic-agent-app/internal/domain"
	"github.com/Godson026/sic-agent-app/internal/migrate"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE payments, clients, counters RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

func TestPostgres_CreateAndList(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)

	created, err := repo.Create(ctx, domain.Payment{
		PolicyNumber: "SKP20250411005",
		ClientName:   "Ama Serwaa",
		Amount:       1000,
		PaymentMode:  domain.ModeMoMo,
		Synced:       true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 || !created.Synced {
		t.Fatalf("unexpected payment %+v", created)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Amount != 1000 {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestPostgres_DuplicateSubmissionsDuplicate(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)
	p := domain.Payment{
		PolicyNumber: "SKP20250411005",
		ClientName:   "Ama Serwaa",
		Amount:       500,
		PaymentMode:  domain.ModeCash,
		Synced:       true,
	}
	for i := 0; i < 2; i++ {
		if _, err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 rows (no dedup), got %d", len(list))
	}
}

func TestPostgres_ListByDate(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)
	day := time.Date(2025, 4, 11, 12, 0, 0, 0, time.UTC)

	onDay := domain.Payment{
		PolicyNumber: "SKP20250411005",
		ClientName:   "Ama Serwaa",
		Amount:       1000,
		PaymentMode:  domain.ModeMoMo,
		Timestamp:    day,
		Synced:       true,
	}
	dayBefore := onDay
	dayBefore.Timestamp = day.AddDate(0, 0, -1)

	if _, err := repo.Create(ctx, onDay); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, dayBefore); err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := repo.ListByDate(ctx, day)
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 payment on the day, got %d", len(list))
	}
}
