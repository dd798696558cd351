package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
	"github.com/Nik0lakt/cafeteria-project/internal/face"
	"github.com/Nik0lakt/cafeteria-project/pkg/logger"
)

// StartLiveness opens a liveness session bound to the card holder.
func (s *Service) StartLiveness(ctx context.Context, cardUID string) (uuid.UUID, error) {
	cardUID = strings.TrimSpace(cardUID)
	if cardUID == "" {
		return uuid.Nil, fmt.Errorf("%w: empty card uid", entity.ErrInvalidArgument)
	}

	emp, err := s.repo.EmployeeByCard(ctx, cardUID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get employee by card: %w", err)
	}

	now := s.now()

	session := entity.LivenessSession{
		ID:         uuid.Must(uuid.NewV4()),
		CardUID:    cardUID,
		EmployeeID: emp.ID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.opts.SessionTTL),
	}

	err = s.sessions.Create(ctx, session)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create session: %w", err)
	}

	slog.InfoContext(logger.WithEmployeeID(ctx, emp.ID), "liveness session started", "session_id", session.ID)

	return session.ID, nil
}

// SubmitFrame feeds one camera frame into the session.
func (s *Service) SubmitFrame(ctx context.Context, sessionID uuid.UUID, image []byte) (entity.FrameStatus, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}

	ctx = logger.WithEmployeeID(ctx, session.EmployeeID)

	if session.Passed {
		return entity.FrameStatusFinished, nil
	}

	if session.FramesProcessed >= s.opts.MaxFrames {
		return entity.FrameStatusGivenUp, nil
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, session.ID.String())
		if err != nil {
			slog.WarnContext(ctx, "frame limiter failed", "error", err)
		} else if !allowed {
			return "", entity.ErrTooManyFrames
		}
	}

	emp, err := s.repo.Employee(ctx, session.EmployeeID)
	if err != nil {
		return "", fmt.Errorf("get employee: %w", err)
	}

	if !emp.HasFace() {
		return "", entity.ErrNoFaceEnrolled
	}

	descriptor, found := s.extractor.Extract(ctx, image)
	if !found {
		return s.countFrame(ctx, session.ID)
	}

	if face.Matches(emp.Descriptor, descriptor, s.opts.Tolerance) {
		err = s.sessions.MarkPassed(ctx, session.ID)
		if err != nil {
			return "", fmt.Errorf("mark passed: %w", err)
		}

		slog.InfoContext(ctx, "liveness confirmed",
			"session_id", session.ID,
			"frames", session.FramesProcessed+1,
		)

		return entity.FrameStatusFinished, nil
	}

	return s.countFrame(ctx, session.ID)
}

// countFrame records a frame that did not confirm the face. The session is
// given up on the frame that reaches MaxFrames.
func (s *Service) countFrame(ctx context.Context, sessionID uuid.UUID) (entity.FrameStatus, error) {
	frames, err := s.sessions.IncrementFrames(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("increment frames: %w", err)
	}

	if frames >= s.opts.MaxFrames {
		slog.InfoContext(ctx, "liveness given up", "session_id", sessionID, "frames", frames)
		return entity.FrameStatusGivenUp, nil
	}

	return entity.FrameStatusProcessing, nil
}

// CancelLiveness drops an unused session, e.g. when the customer walks away.
func (s *Service) CancelLiveness(ctx context.Context, sessionID uuid.UUID) error {
	_, err := s.sessions.Consume(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("consume session: %w", err)
	}

	return nil
}

// ExpireSessions deletes sessions past their TTL. Run periodically.
func (s *Service) ExpireSessions(ctx context.Context) error {
	n, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("delete expired sessions: %w", err)
	}

	if n > 0 {
		slog.DebugContext(ctx, "expired liveness sessions removed", "count", n)
	}

	return nil
}
