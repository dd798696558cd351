package entity

import (
	"time"
)

// Descriptor is a face embedding. Its length is fixed by the extraction model.
type Descriptor []float32

type Employee struct {
	ID             int64
	FullName       string
	Role           string
	MonthlyLimit   Money
	Descriptor     Descriptor // nil until enrolled
	FacePhoto      []byte     // normalized JPEG of the enrollment image
	TelegramChatID string
	Email          string
}

func (e Employee) HasFace() bool {
	return len(e.Descriptor) > 0
}

// Notifiable reports whether the employee has any receipt channel configured.
func (e Employee) Notifiable() bool {
	return e.TelegramChatID != "" || e.Email != ""
}

// Balance is the spending state of an employee at a moment.
type Balance struct {
	Employee         Employee
	WorkDay          bool
	DailySubsidy     Money
	SubsidyUsedToday Money
	SubsidyAvailable Money
	MonthlyLimitLeft Money
	CalculatedAt     time.Time
}
