package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
	"github.com/Nik0lakt/cafeteria-project/pkg/imaging"
	"github.com/Nik0lakt/cafeteria-project/pkg/logger"
)

// Settle charges the bill to the employee bound to a passed liveness session.
//
// The session is consumed and the employee row is locked in one transaction, so a
// session pays at most once and settlements of one employee are serialized.
// A session that has not passed is left intact. A bill the limit cannot cover
// consumes the session and changes nothing else.
func (s *Service) Settle(ctx context.Context, req entity.SettlementRequest) (entity.SettlementResult, error) {
	err := req.Validate()
	if err != nil {
		return entity.SettlementResult{}, err
	}

	now := s.now()

	var (
		emp      entity.Employee
		result   entity.SettlementResult
		rejected error
	)

	err = s.repo.InTx(ctx, func(ctx context.Context) error {
		rejected = nil

		session, err := s.repo.LockSession(ctx, req.SessionID)
		if err != nil {
			return fmt.Errorf("lock session: %w", err)
		}

		if !session.Passed {
			return entity.ErrLivenessNotConfirmed
		}

		_, err = s.repo.ConsumeSession(ctx, session.ID)
		if err != nil {
			return fmt.Errorf("consume session: %w", err)
		}

		emp, err = s.repo.LockEmployee(ctx, session.EmployeeID)
		if err != nil {
			return fmt.Errorf("lock employee: %w", err)
		}

		budget, _, err := s.dailyBudget(ctx, emp, now)
		if err != nil {
			return err
		}

		used, err := s.repo.SubsidyUsedSince(ctx, emp.ID, StartOfDay(now))
		if err != nil {
			return fmt.Errorf("get used subsidy: %w", err)
		}

		applied, owed := Split(req.Amount, AvailableSubsidy(budget, used))

		if emp.MonthlyLimit < owed {
			rejected = fmt.Errorf("%w: owed %s, monthly limit left %s",
				entity.ErrInsufficientFunds, owed, emp.MonthlyLimit)

			return nil
		}

		remaining := emp.MonthlyLimit

		if owed > 0 {
			remaining, err = s.repo.DebitLimit(ctx, emp.ID, owed)
			if err != nil {
				return fmt.Errorf("debit limit: %w", err)
			}
		}

		tx := entity.Transaction{
			ID:          uuid.Must(uuid.NewV4()),
			EmployeeID:  emp.ID,
			AmountTotal: req.Amount,
			SubsidyPart: applied,
			LimitPart:   owed,
			Status:      entity.TransactionStatusCompleted,
			IsManual:    req.IsManual,
			Items:       req.Items,
			CreatedAt:   now,
		}

		err = s.repo.CreateTransaction(ctx, tx)
		if err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}

		result = entity.SettlementResult{
			TransactionID:  tx.ID,
			AppliedSubsidy: applied,
			OwedFromLimit:  owed,
			RemainingLimit: remaining,
		}

		return nil
	})
	if err != nil {
		return entity.SettlementResult{}, err
	}

	ctx = logger.WithEmployeeID(ctx, emp.ID)

	if rejected != nil {
		slog.InfoContext(ctx, "settlement rejected", "session_id", req.SessionID, "reason", rejected.Error())
		return entity.SettlementResult{}, rejected
	}

	slog.InfoContext(ctx, "settlement completed",
		"transaction_id", result.TransactionID,
		"amount", req.Amount.String(),
		"subsidy", result.AppliedSubsidy.String(),
		"limit", result.OwedFromLimit.String(),
		"manual", req.IsManual,
	)

	s.notifySettlement(ctx, emp, req, result, now)

	return result, nil
}

func (s *Service) notifySettlement(
	ctx context.Context,
	emp entity.Employee,
	req entity.SettlementRequest,
	result entity.SettlementResult,
	paidAt time.Time,
) {
	if s.notifier == nil {
		return
	}

	lines := entity.GroupItems(req.Items)

	if emp.Notifiable() {
		s.notifier.SendReceipt(ctx, entity.Receipt{
			TransactionID: result.TransactionID,
			EmployeeName:  emp.FullName,
			Recipient: entity.Recipient{
				TelegramChatID: emp.TelegramChatID,
				Email:          emp.Email,
			},
			Lines:          lines,
			Amount:         req.Amount,
			AppliedSubsidy: result.AppliedSubsidy,
			OwedFromLimit:  result.OwedFromLimit,
			RemainingLimit: result.RemainingLimit,
			PaidAt:         paidAt,
		})
	}

	if !req.IsManual || len(req.LiveFrame) == 0 || len(emp.FacePhoto) == 0 {
		return
	}

	live, err := imaging.Normalize(req.LiveFrame, s.opts.PhotoMaxSide)
	if err != nil {
		slog.WarnContext(ctx, "manual payment report skipped: bad live frame", "error", err)
		return
	}

	s.notifier.SendManualPaymentReport(ctx, entity.ManualPaymentReport{
		TransactionID: result.TransactionID,
		EmployeeName:  emp.FullName,
		Amount:        req.Amount,
		Lines:         lines,
		EnrolledPhoto: emp.FacePhoto,
		LivePhoto:     live,
		PaidAt:        paidAt,
	})
}
