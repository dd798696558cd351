package repository_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
	"github.com/Nik0lakt/cafeteria-project/internal/repository"
	"github.com/Nik0lakt/cafeteria-project/pkg/postgres"
	"github.com/Nik0lakt/cafeteria-project/pkg/testdb"
)

func TestRepository_EmployeeByCard(t *testing.T) {
	t.Parallel()

	repo, _, pool := newRepository(t)
	ctx := context.Background()

	emp := createEmployee(t, pool, "cook", 100_000)
	uid := bindCard(t, pool, emp.ID)

	got, err := repo.EmployeeByCard(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, emp.ID, got.ID)
	require.Equal(t, emp.FullName, got.FullName)
	require.Equal(t, entity.Money(100_000), got.MonthlyLimit)
	require.False(t, got.HasFace())
	require.Empty(t, got.TelegramChatID)

	_, err = repo.EmployeeByCard(ctx, "no-such-card")
	require.ErrorIs(t, err, entity.ErrCardNotBound)

	_, err = repo.Employee(ctx, -1)
	require.ErrorIs(t, err, entity.ErrEmployeeNotFound)
}

func TestRepository_SaveFace(t *testing.T) {
	t.Parallel()

	repo, _, pool := newRepository(t)
	ctx := context.Background()

	emp := createEmployee(t, pool, "cook", 0)

	d := entity.Descriptor{0.25, -0.5, 0.125}
	photo := []byte{0xff, 0xd8, 0xff}

	require.NoError(t, repo.SaveFace(ctx, emp.ID, d, photo))

	got, err := repo.Employee(ctx, emp.ID)
	require.NoError(t, err)
	require.Equal(t, d, got.Descriptor)
	require.Equal(t, photo, got.FacePhoto)

	replacement := entity.Descriptor{1, 2, 3}
	require.NoError(t, repo.SaveFace(ctx, emp.ID, replacement, photo))

	got, err = repo.Employee(ctx, emp.ID)
	require.NoError(t, err)
	require.Equal(t, replacement, got.Descriptor)

	require.ErrorIs(t, repo.SaveFace(ctx, -1, d, photo), entity.ErrEmployeeNotFound)
}

func TestRepository_EmployeeByChatID(t *testing.T) {
	t.Parallel()

	repo, _, pool := newRepository(t)
	ctx := context.Background()

	emp := createEmployee(t, pool, "cook", 0)
	chatID := uuid.Must(uuid.NewV4()).String()

	_, err := pool.Exec(ctx, `UPDATE employees SET telegram_chat_id = $1 WHERE id = $2`, chatID, emp.ID)
	require.NoError(t, err)

	got, err := repo.EmployeeByChatID(ctx, chatID)
	require.NoError(t, err)
	require.Equal(t, emp.ID, got.ID)
	require.Equal(t, chatID, got.TelegramChatID)

	_, err = repo.EmployeeByChatID(ctx, "unknown")
	require.ErrorIs(t, err, entity.ErrEmployeeNotFound)
}

func TestRepository_RoleSubsidyAndWorkDay(t *testing.T) {
	t.Parallel()

	repo, _, pool := newRepository(t)
	ctx := context.Background()

	role := "role-" + uuid.Must(uuid.NewV4()).String()
	setRoleSubsidy(t, pool, role, 30_000)

	subsidy, ok, err := repo.RoleSubsidy(ctx, role)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, entity.Money(30_000), subsidy)

	_, ok, err = repo.RoleSubsidy(ctx, "role-without-settings")
	require.NoError(t, err)
	require.False(t, ok)

	emp := createEmployee(t, pool, role, 0)
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	addWorkDay(t, pool, emp.ID, today)

	isWork, err := repo.IsWorkDay(ctx, emp.ID, today)
	require.NoError(t, err)
	require.True(t, isWork)

	isWork, err = repo.IsWorkDay(ctx, emp.ID, today.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.False(t, isWork)
}

func TestRepository_SubsidyUsedSince_DayBoundary(t *testing.T) {
	t.Parallel()

	repo, _, pool := newRepository(t)
	ctx := context.Background()

	emp := createEmployee(t, pool, "cook", 0)
	startOfDay := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	// Yesterday's last millisecond does not count against today.
	insertTransaction(t, repo, emp.ID, 10_000, 10_000, startOfDay.Add(-time.Millisecond))
	insertTransaction(t, repo, emp.ID, 20_000, 15_000, startOfDay)
	insertTransaction(t, repo, emp.ID, 5_000, 5_000, startOfDay.Add(13*time.Hour))

	used, err := repo.SubsidyUsedSince(ctx, emp.ID, startOfDay)
	require.NoError(t, err)
	require.Equal(t, entity.Money(20_000), used)

	used, err = repo.SubsidyUsedSince(ctx, emp.ID, startOfDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Zero(t, used)
}

func TestRepository_DebitLimit(t *testing.T) {
	t.Parallel()

	repo, _, pool := newRepository(t)
	ctx := context.Background()

	emp := createEmployee(t, pool, "cook", 10_000)

	left, err := repo.DebitLimit(ctx, emp.ID, 4_000)
	require.NoError(t, err)
	require.Equal(t, entity.Money(6_000), left)

	_, err = repo.DebitLimit(ctx, emp.ID, 6_001)
	require.ErrorIs(t, err, entity.ErrInsufficientFunds)

	left, err = repo.DebitLimit(ctx, emp.ID, 6_000)
	require.NoError(t, err)
	require.Zero(t, left)

	got, err := repo.Employee(ctx, emp.ID)
	require.NoError(t, err)
	require.Zero(t, got.MonthlyLimit)
}

func TestRepository_Transactions(t *testing.T) {
	t.Parallel()

	repo, _, pool := newRepository(t)
	ctx := context.Background()

	emp := createEmployee(t, pool, "cook", 0)
	base := time.Now().Add(-time.Hour).Truncate(time.Millisecond)

	items := []entity.LineItem{{Name: "Суп", UnitPrice: 12_000}, {Name: "Хлеб", UnitPrice: 500}}

	tx := entity.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		EmployeeID:  emp.ID,
		AmountTotal: 12_500,
		SubsidyPart: 10_000,
		LimitPart:   2_500,
		Status:      entity.TransactionStatusCompleted,
		IsManual:    true,
		Items:       items,
		CreatedAt:   base,
	}
	require.NoError(t, repo.CreateTransaction(ctx, tx))

	for i := range 4 {
		insertTransaction(t, repo, emp.ID, entity.Money(1_000*(i+1)), 0, base.Add(time.Duration(i+1)*time.Minute))
	}

	f, err := entity.TransactionFilter{Limit: 2, SortBy: entity.SortByCreatedAt, OrderBy: entity.ASC}.Normalize()
	require.NoError(t, err)

	page, total, err := repo.Transactions(ctx, emp.ID, f)
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Len(t, page, 2)

	first := page[0]
	require.Equal(t, tx.ID, first.ID)
	require.Equal(t, items, first.Items)
	require.True(t, first.IsManual)
	require.Equal(t, entity.TransactionStatusCompleted, first.Status)
	require.True(t, base.Equal(first.CreatedAt))

	from := base.Add(90 * time.Second)
	f, err = entity.TransactionFilter{CreatedFrom: &from, SortBy: entity.SortByAmountTotal}.Normalize()
	require.NoError(t, err)

	page, total, err = repo.Transactions(ctx, emp.ID, f)
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Equal(t, entity.Money(4_000), page[0].AmountTotal)
	require.Empty(t, page[0].Items)

	page, total, err = repo.Transactions(ctx, -1, f)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, page)
}

func TestRepository_InTx_RollsBackOnError(t *testing.T) {
	t.Parallel()

	repo, sessions, pool := newRepository(t)
	ctx := context.Background()

	emp := createEmployee(t, pool, "cook", 5_000)
	s := createSession(t, sessions, emp.ID, time.Minute)

	errBoom := errors.New("boom")

	err := repo.InTx(ctx, func(ctx context.Context) error {
		if _, err := repo.ConsumeSession(ctx, s.ID); err != nil {
			return err
		}

		if _, err := repo.DebitLimit(ctx, emp.ID, 5_000); err != nil {
			return err
		}

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, err = sessions.Get(ctx, s.ID)
	require.NoError(t, err)

	got, err := repo.Employee(ctx, emp.ID)
	require.NoError(t, err)
	require.Equal(t, entity.Money(5_000), got.MonthlyLimit)
}

func TestRepository_LockSession(t *testing.T) {
	t.Parallel()

	repo, sessions, pool := newRepository(t)
	ctx := context.Background()

	emp := createEmployee(t, pool, "cook", 0)
	s := createSession(t, sessions, emp.ID, time.Minute)

	err := repo.InTx(ctx, func(ctx context.Context) error {
		got, err := repo.LockSession(ctx, s.ID)
		require.NoError(t, err)
		require.Equal(t, s.EmployeeID, got.EmployeeID)
		require.False(t, got.Passed)

		_, err = repo.LockSession(ctx, uuid.Must(uuid.NewV4()))
		require.ErrorIs(t, err, entity.ErrSessionNotFound)

		return nil
	})
	require.NoError(t, err)
}

func newRepository(t *testing.T) (*repository.Repository, *repository.SessionRepository, *pgxpool.Pool) {
	t.Helper()

	dsn := testdb.PostgresDSN(t)

	require.NoError(t, postgres.UpMigrations(dsn))

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return repository.New(pool), repository.NewSessionRepository(pool), pool
}

func createEmployee(t *testing.T, pool *pgxpool.Pool, role string, limit entity.Money) entity.Employee {
	t.Helper()

	e := entity.Employee{
		FullName:     "Иванов " + uuid.Must(uuid.NewV4()).String()[:8],
		Role:         role,
		MonthlyLimit: limit,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO employees (full_name, role, monthly_limit) VALUES ($1, $2, $3) RETURNING id`,
		e.FullName, e.Role, e.MonthlyLimit,
	).Scan(&e.ID)
	require.NoError(t, err)

	return e
}

func bindCard(t *testing.T, pool *pgxpool.Pool, employeeID int64) string {
	t.Helper()

	uid := uuid.Must(uuid.NewV4()).String()

	_, err := pool.Exec(context.Background(), `INSERT INTO cards (uid, employee_id) VALUES ($1, $2)`, uid, employeeID)
	require.NoError(t, err)

	return uid
}

func setRoleSubsidy(t *testing.T, pool *pgxpool.Pool, role string, subsidy entity.Money) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO role_settings (role_name, subsidy) VALUES ($1, $2)
		ON CONFLICT (role_name) DO UPDATE SET subsidy = EXCLUDED.subsidy`,
		role, subsidy,
	)
	require.NoError(t, err)
}

func addWorkDay(t *testing.T, pool *pgxpool.Pool, employeeID int64, day time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO work_days (employee_id, day) VALUES ($1, $2::date) ON CONFLICT DO NOTHING`,
		employeeID, day.Format(time.DateOnly),
	)
	require.NoError(t, err)
}

func insertTransaction(
	t *testing.T,
	repo *repository.Repository,
	employeeID int64,
	amount, subsidy entity.Money,
	createdAt time.Time,
) {
	t.Helper()

	err := repo.CreateTransaction(context.Background(), entity.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		EmployeeID:  employeeID,
		AmountTotal: amount,
		SubsidyPart: subsidy,
		LimitPart:   amount - subsidy,
		Status:      entity.TransactionStatusCompleted,
		CreatedAt:   createdAt,
	})
	require.NoError(t, err)
}

func createSession(
	t *testing.T,
	sessions *repository.SessionRepository,
	employeeID int64,
	ttl time.Duration,
) entity.LivenessSession {
	t.Helper()

	now := time.Now().Truncate(time.Microsecond)

	s := entity.LivenessSession{
		ID:         uuid.Must(uuid.NewV4()),
		CardUID:    "card-" + uuid.Must(uuid.NewV4()).String()[:8],
		EmployeeID: employeeID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}

	require.NoError(t, sessions.Create(context.Background(), s))

	return s
}

// consumeConcurrently returns how many of n concurrent Consume calls succeeded.
func consumeConcurrently(t *testing.T, consume func(ctx context.Context) error, n int) int32 {
	t.Helper()

	var (
		wg      sync.WaitGroup
		success atomic.Int32
		start   = make(chan struct{})
	)

	for range n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			<-start

			err := consume(context.Background())
			if err == nil {
				success.Add(1)
				return
			}

			if !errors.Is(err, entity.ErrSessionNotFound) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	return success.Load()
}
