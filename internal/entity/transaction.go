package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
)

func (t TransactionStatus) String() string {
	return string(t)
}

type Transaction struct {
	ID          uuid.UUID
	EmployeeID  int64
	AmountTotal Money
	SubsidyPart Money
	LimitPart   Money
	Status      TransactionStatus
	IsManual    bool
	Items       []LineItem
	CreatedAt   time.Time
}

type LineItem struct {
	Name      string `json:"name"`
	UnitPrice Money  `json:"unit_price"`
}

// ReceiptLine is a group of identical line items.
type ReceiptLine struct {
	Name      string
	Quantity  int
	UnitPrice Money
}

func (l ReceiptLine) Total() Money {
	return l.UnitPrice * Money(l.Quantity)
}

// GroupItems merges items by name in order of first appearance. The unit price of the
// first occurrence wins.
func GroupItems(items []LineItem) []ReceiptLine {
	lines := make([]ReceiptLine, 0, len(items))
	index := make(map[string]int, len(items))

	for _, it := range items {
		if i, ok := index[it.Name]; ok {
			lines[i].Quantity++
			continue
		}

		index[it.Name] = len(lines)
		lines = append(lines, ReceiptLine{Name: it.Name, Quantity: 1, UnitPrice: it.UnitPrice})
	}

	return lines
}

type SettlementRequest struct {
	SessionID uuid.UUID
	Amount    Money
	Items     []LineItem
	IsManual  bool
	LiveFrame []byte // decoded snapshot for manual payment audit, optional
}

func (r SettlementRequest) Validate() error {
	if r.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidArgument, r.Amount)
	}

	for i, it := range r.Items {
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("%w: item %d has empty name", ErrInvalidArgument, i)
		}

		if it.UnitPrice < 0 {
			return fmt.Errorf("%w: item %q has negative price", ErrInvalidArgument, it.Name)
		}
	}

	return nil
}

type SettlementResult struct {
	TransactionID  uuid.UUID
	AppliedSubsidy Money
	OwedFromLimit  Money
	RemainingLimit Money
}

type TransactionFilter struct {
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        uint64
	Limit       uint64
	SortBy      TransactionSortCol
	OrderBy     OrderByCol
}

const (
	DefaultPageLimit uint64 = 20
	MaxPageLimit     uint64 = 100
)

// Normalize fills defaults and rejects unknown sort options.
func (f TransactionFilter) Normalize() (TransactionFilter, error) {
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit == 0 {
		f.Limit = DefaultPageLimit
	}

	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}

	if f.SortBy == "" {
		f.SortBy = SortByCreatedAt
	}

	if f.OrderBy == "" {
		f.OrderBy = DESC
	}

	if !f.SortBy.IsValid() {
		return f, fmt.Errorf("%w: unknown sort column %q", ErrInvalidArgument, f.SortBy)
	}

	if !f.OrderBy.IsValid() {
		return f, fmt.Errorf("%w: unknown order %q", ErrInvalidArgument, f.OrderBy)
	}

	return f, nil
}

type TransactionSortCol string

func (t TransactionSortCol) String() string {
	return string(t)
}

const (
	SortByCreatedAt   TransactionSortCol = "created_at"
	SortByAmountTotal TransactionSortCol = "amount_total"
)

func (t TransactionSortCol) IsValid() bool {
	switch t {
	case SortByCreatedAt, SortByAmountTotal:
		return true
	}

	return false
}

type OrderByCol string

func (o OrderByCol) String() string {
	return string(o)
}

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}
