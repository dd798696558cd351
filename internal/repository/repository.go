package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// InTx runs fn in a READ COMMITTED transaction. Repository and SessionRepository
// calls made with the ctx passed to fn join that transaction.
func (r *Repository) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return inTx(ctx, r.db, fn)
}

func (r *Repository) EmployeeByCard(ctx context.Context, cardUID string) (entity.Employee, error) {
	q := selectEmployee + " JOIN cards c ON c.employee_id = e.id WHERE c.uid = $1"

	e, err := scanEmployee(conn(ctx, r.db).QueryRow(ctx, q, cardUID))
	if errors.Is(err, entity.ErrEmployeeNotFound) {
		return entity.Employee{}, entity.ErrCardNotBound
	}

	return e, err
}

func (r *Repository) Employee(ctx context.Context, id int64) (entity.Employee, error) {
	q := selectEmployee + " WHERE e.id = $1"
	return scanEmployee(conn(ctx, r.db).QueryRow(ctx, q, id))
}

func (r *Repository) EmployeeByChatID(ctx context.Context, chatID string) (entity.Employee, error) {
	q := selectEmployee + " WHERE e.telegram_chat_id = $1 ORDER BY e.id LIMIT 1"
	return scanEmployee(conn(ctx, r.db).QueryRow(ctx, q, chatID))
}

// LockEmployee reads the employee and holds its row until the transaction ends.
func (r *Repository) LockEmployee(ctx context.Context, id int64) (entity.Employee, error) {
	q := selectEmployee + " WHERE e.id = $1 FOR UPDATE"
	return scanEmployee(conn(ctx, r.db).QueryRow(ctx, q, id))
}

// SaveFace replaces the enrolled descriptor and reference photo.
func (r *Repository) SaveFace(ctx context.Context, employeeID int64, d entity.Descriptor, photo []byte) error {
	const q = `UPDATE employees SET face_descriptor = $1, face_photo = $2 WHERE id = $3`

	result, err := conn(ctx, r.db).Exec(ctx, q, pgvector.NewVector(d), photo, employeeID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrEmployeeNotFound
	}

	return nil
}

// RoleSubsidy returns the daily subsidy of a role and whether the role is configured.
func (r *Repository) RoleSubsidy(ctx context.Context, role string) (entity.Money, bool, error) {
	const q = `SELECT subsidy FROM role_settings WHERE role_name = $1`

	var subsidy entity.Money

	err := conn(ctx, r.db).QueryRow(ctx, q, role).Scan(&subsidy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}

		return 0, false, err
	}

	return subsidy, true, nil
}

// IsWorkDay reports whether day (its calendar date) is scheduled for the employee.
func (r *Repository) IsWorkDay(ctx context.Context, employeeID int64, day time.Time) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM work_days WHERE employee_id = $1 AND day = $2::date)`

	var exists bool

	err := conn(ctx, r.db).QueryRow(ctx, q, employeeID, day.Format(time.DateOnly)).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) SubsidyUsedSince(ctx context.Context, employeeID int64, since time.Time) (entity.Money, error) {
	const q = `SELECT COALESCE(SUM(subsidy_part), 0)::BIGINT FROM transactions
		WHERE employee_id = $1 AND created_at >= $2`

	var used entity.Money

	err := conn(ctx, r.db).QueryRow(ctx, q, employeeID, since).Scan(&used)
	if err != nil {
		return 0, err
	}

	return used, nil
}

// DebitLimit subtracts amount from the monthly limit and returns what is left.
// It fails with ErrInsufficientFunds instead of going below zero.
func (r *Repository) DebitLimit(ctx context.Context, employeeID int64, amount entity.Money) (entity.Money, error) {
	const q = `UPDATE employees SET monthly_limit = monthly_limit - $1
		WHERE id = $2 AND monthly_limit >= $1
		RETURNING monthly_limit`

	var left entity.Money

	err := conn(ctx, r.db).QueryRow(ctx, q, amount, employeeID).Scan(&left)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, entity.ErrInsufficientFunds
		}

		return 0, err
	}

	return left, nil
}

func (r *Repository) CreateTransaction(ctx context.Context, tx entity.Transaction) error {
	const q = `
	INSERT INTO transactions (
		id,
		employee_id,
		amount_total,
		subsidy_part,
		limit_part,
		status,
		is_manual,
		items,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	items := tx.Items
	if items == nil {
		items = []entity.LineItem{}
	}

	_, err := conn(ctx, r.db).Exec(
		ctx,
		q,
		tx.ID,
		tx.EmployeeID,
		tx.AmountTotal,
		tx.SubsidyPart,
		tx.LimitPart,
		tx.Status,
		tx.IsManual,
		items,
		tx.CreatedAt,
	)

	return err
}

func (r *Repository) Transactions(
	ctx context.Context,
	employeeID int64,
	f entity.TransactionFilter,
) ([]entity.Transaction, int, error) {
	stmt := sq.Select(
		"id",
		"employee_id",
		"amount_total",
		"subsidy_part",
		"limit_part",
		"status",
		"is_manual",
		"items",
		"created_at",
		"COUNT(*) OVER() AS total_count",
	).From("transactions").Where(sq.Eq{"employee_id": employeeID}).PlaceholderFormat(sq.Dollar)

	stmt = applyTransactionFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy), "id")

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := conn(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	transactions := make([]entity.Transaction, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var tx entity.Transaction

		err = rows.Scan(
			&tx.ID,
			&tx.EmployeeID,
			&tx.AmountTotal,
			&tx.SubsidyPart,
			&tx.LimitPart,
			&tx.Status,
			&tx.IsManual,
			&tx.Items,
			&tx.CreatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, err
		}

		transactions = append(transactions, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return transactions, totalCount, nil
}

func applyTransactionFilter(stmt sq.SelectBuilder, f entity.TransactionFilter) sq.SelectBuilder {
	if f.CreatedFrom != nil {
		stmt = stmt.Where(sq.GtOrEq{"created_at": *f.CreatedFrom})
	}

	if f.CreatedTo != nil {
		stmt = stmt.Where(sq.Lt{"created_at": *f.CreatedTo})
	}

	return stmt
}

func scanEmployee(row pgx.Row) (entity.Employee, error) {
	var (
		e          entity.Employee
		descriptor *pgvector.Vector
	)

	err := row.Scan(
		&e.ID,
		&e.FullName,
		&e.Role,
		&e.MonthlyLimit,
		&descriptor,
		&e.FacePhoto,
		(*zeronull.Text)(&e.TelegramChatID),
		(*zeronull.Text)(&e.Email),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Employee{}, entity.ErrEmployeeNotFound
		}

		return entity.Employee{}, err
	}

	if descriptor != nil {
		e.Descriptor = descriptor.Slice()
	}

	return e, nil
}
