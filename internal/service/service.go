package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
	"github.com/Nik0lakt/cafeteria-project/internal/face"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

// Repository is the employee ledger. Calls made with the ctx passed to the InTx
// callback run in one database transaction.
type Repository interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
	EmployeeByCard(ctx context.Context, cardUID string) (entity.Employee, error)
	Employee(ctx context.Context, id int64) (entity.Employee, error)
	EmployeeByChatID(ctx context.Context, chatID string) (entity.Employee, error)
	LockEmployee(ctx context.Context, id int64) (entity.Employee, error)
	SaveFace(ctx context.Context, employeeID int64, d entity.Descriptor, photo []byte) error
	RoleSubsidy(ctx context.Context, role string) (entity.Money, bool, error)
	IsWorkDay(ctx context.Context, employeeID int64, day time.Time) (bool, error)
	SubsidyUsedSince(ctx context.Context, employeeID int64, since time.Time) (entity.Money, error)
	DebitLimit(ctx context.Context, employeeID int64, amount entity.Money) (entity.Money, error)
	CreateTransaction(ctx context.Context, tx entity.Transaction) error
	Transactions(ctx context.Context, employeeID int64, f entity.TransactionFilter) ([]entity.Transaction, int, error)
	LockSession(ctx context.Context, id uuid.UUID) (entity.LivenessSession, error)
	ConsumeSession(ctx context.Context, id uuid.UUID) (entity.LivenessSession, error)
}

type SessionStore interface {
	Create(ctx context.Context, s entity.LivenessSession) error
	Get(ctx context.Context, id uuid.UUID) (entity.LivenessSession, error)
	MarkPassed(ctx context.Context, id uuid.UUID) error
	IncrementFrames(ctx context.Context, id uuid.UUID) (int, error)
	Consume(ctx context.Context, id uuid.UUID) (entity.LivenessSession, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

// Extractor finds a face in an image. It never fails: problems are reported as no face.
type Extractor interface {
	Extract(ctx context.Context, image []byte) (entity.Descriptor, bool)
}

// Notifier must not block the caller. Delivery errors stay inside the implementation.
type Notifier interface {
	SendReceipt(ctx context.Context, r entity.Receipt)
	SendManualPaymentReport(ctx context.Context, r entity.ManualPaymentReport)
}

type FrameLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Options tune the verifier. Zero values select the defaults.
type Options struct {
	Tolerance    float64
	SessionTTL   time.Duration
	MaxFrames    int
	PhotoMaxSide int
	Now          func() time.Time
}

const (
	DefaultSessionTTL   = 3 * time.Minute
	DefaultMaxFrames    = 50
	DefaultPhotoMaxSide = 640
)

func (o Options) withDefaults() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = face.DefaultTolerance
	}

	if o.SessionTTL <= 0 {
		o.SessionTTL = DefaultSessionTTL
	}

	if o.MaxFrames <= 0 {
		o.MaxFrames = DefaultMaxFrames
	}

	if o.PhotoMaxSide <= 0 {
		o.PhotoMaxSide = DefaultPhotoMaxSide
	}

	if o.Now == nil {
		o.Now = time.Now
	}

	return o
}

type Service struct {
	repo      Repository
	sessions  SessionStore
	extractor Extractor
	notifier  Notifier
	limiter   FrameLimiter
	opts      Options
}

func New(
	repo Repository,
	sessions SessionStore,
	extractor Extractor,
	notifier Notifier,
	limiter FrameLimiter,
	opts Options,
) *Service {
	return &Service{
		repo:      repo,
		sessions:  sessions,
		extractor: extractor,
		notifier:  notifier,
		limiter:   limiter,
		opts:      opts.withDefaults(),
	}
}

func (s *Service) now() time.Time {
	return s.opts.Now()
}
