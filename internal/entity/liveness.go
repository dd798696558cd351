package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// LivenessSession binds a camera check to one employee. It is single use.
type LivenessSession struct {
	ID              uuid.UUID
	CardUID         string
	EmployeeID      int64
	Passed          bool
	FramesProcessed int
	CreatedAt       time.Time
	ExpiresAt       time.Time
}

type FrameStatus string

const (
	FrameStatusProcessing FrameStatus = "processing"
	FrameStatusFinished   FrameStatus = "finished"
	FrameStatusGivenUp    FrameStatus = "given_up"
)

func (s FrameStatus) String() string {
	return string(s)
}
