package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
)

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AvailableSubsidy is what is left of today's budget, never negative.
func AvailableSubsidy(budget, used entity.Money) entity.Money {
	if used >= budget {
		return 0
	}

	return budget - used
}

// Split covers the bill from the subsidy first and returns the rest owed from the limit.
func Split(bill, available entity.Money) (applied, owed entity.Money) {
	applied = max(0, entity.MinMoney(bill, available))
	return applied, bill - applied
}

// dailyBudget is the role subsidy when day is a scheduled work day, zero otherwise.
func (s *Service) dailyBudget(ctx context.Context, emp entity.Employee, day time.Time) (entity.Money, bool, error) {
	isWorkDay, err := s.repo.IsWorkDay(ctx, emp.ID, day)
	if err != nil {
		return 0, false, fmt.Errorf("check work day: %w", err)
	}

	if !isWorkDay {
		return 0, false, nil
	}

	subsidy, ok, err := s.repo.RoleSubsidy(ctx, emp.Role)
	if err != nil {
		return 0, true, fmt.Errorf("get role subsidy: %w", err)
	}

	if !ok {
		return 0, true, nil
	}

	return subsidy, true, nil
}

func (s *Service) balance(ctx context.Context, emp entity.Employee) (entity.Balance, error) {
	now := s.now()

	budget, isWorkDay, err := s.dailyBudget(ctx, emp, now)
	if err != nil {
		return entity.Balance{}, err
	}

	used, err := s.repo.SubsidyUsedSince(ctx, emp.ID, StartOfDay(now))
	if err != nil {
		return entity.Balance{}, fmt.Errorf("get used subsidy: %w", err)
	}

	return entity.Balance{
		Employee:         emp,
		WorkDay:          isWorkDay,
		DailySubsidy:     budget,
		SubsidyUsedToday: used,
		SubsidyAvailable: AvailableSubsidy(budget, used),
		MonthlyLimitLeft: emp.MonthlyLimit,
		CalculatedAt:     now,
	}, nil
}

// Balance reports the card holder's subsidy and limit as of now.
func (s *Service) Balance(ctx context.Context, cardUID string) (entity.Balance, error) {
	emp, err := s.repo.EmployeeByCard(ctx, strings.TrimSpace(cardUID))
	if err != nil {
		return entity.Balance{}, fmt.Errorf("get employee by card: %w", err)
	}

	return s.balance(ctx, emp)
}

// BalanceByChatID is Balance for an employee identified by a Telegram chat.
func (s *Service) BalanceByChatID(ctx context.Context, chatID string) (entity.Balance, error) {
	emp, err := s.repo.EmployeeByChatID(ctx, chatID)
	if err != nil {
		return entity.Balance{}, fmt.Errorf("get employee by chat: %w", err)
	}

	return s.balance(ctx, emp)
}
