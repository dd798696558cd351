package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
	"github.com/Nik0lakt/cafeteria-project/pkg/imaging"
	"github.com/Nik0lakt/cafeteria-project/pkg/logger"
)

// EnrollFace stores the face found in image as the card holder's reference,
// replacing any previous one.
func (s *Service) EnrollFace(ctx context.Context, cardUID string, image []byte) (entity.Descriptor, error) {
	emp, err := s.repo.EmployeeByCard(ctx, strings.TrimSpace(cardUID))
	if err != nil {
		return nil, fmt.Errorf("get employee by card: %w", err)
	}

	ctx = logger.WithEmployeeID(ctx, emp.ID)

	photo, err := imaging.Normalize(image, s.opts.PhotoMaxSide)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrNoFaceFound, err)
	}

	descriptor, found := s.extractor.Extract(ctx, image)
	if !found {
		return nil, entity.ErrNoFaceFound
	}

	err = s.repo.SaveFace(ctx, emp.ID, descriptor, photo)
	if err != nil {
		return nil, fmt.Errorf("save face: %w", err)
	}

	slog.InfoContext(ctx, "face enrolled", "dim", len(descriptor), "replaced", emp.HasFace())

	return descriptor, nil
}

// EmployeeByCard returns the card holder.
func (s *Service) EmployeeByCard(ctx context.Context, cardUID string) (entity.Employee, error) {
	emp, err := s.repo.EmployeeByCard(ctx, strings.TrimSpace(cardUID))
	if err != nil {
		return entity.Employee{}, fmt.Errorf("get employee by card: %w", err)
	}

	return emp, nil
}

// Transactions lists an employee's settlements page by page.
func (s *Service) Transactions(
	ctx context.Context,
	employeeID int64,
	f entity.TransactionFilter,
) ([]entity.Transaction, int, error) {
	f, err := f.Normalize()
	if err != nil {
		return nil, 0, err
	}

	_, err = s.repo.Employee(ctx, employeeID)
	if err != nil {
		return nil, 0, fmt.Errorf("get employee: %w", err)
	}

	txs, total, err := s.repo.Transactions(ctx, employeeID, f)
	if err != nil {
		return nil, 0, fmt.Errorf("get transactions: %w", err)
	}

	return txs, total, nil
}
