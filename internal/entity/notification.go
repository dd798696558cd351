package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Recipient struct {
	TelegramChatID string `json:"telegramChatId,omitempty"`
	Email          string `json:"email,omitempty"`
}

// Receipt is sent to the employee after a completed settlement.
type Receipt struct {
	TransactionID  uuid.UUID     `json:"transactionId"`
	EmployeeName   string        `json:"employeeName"`
	Recipient      Recipient     `json:"recipient"`
	Lines          []ReceiptLine `json:"lines"`
	Amount         Money         `json:"amount"`
	AppliedSubsidy Money         `json:"appliedSubsidy"`
	OwedFromLimit  Money         `json:"owedFromLimit"`
	RemainingLimit Money         `json:"remainingLimit"`
	PaidAt         time.Time     `json:"paidAt"`
}

// ManualPaymentReport lets an administrator compare the enrolled photo with the
// snapshot taken at a cashier override.
type ManualPaymentReport struct {
	TransactionID uuid.UUID     `json:"transactionId"`
	EmployeeName  string        `json:"employeeName"`
	Amount        Money         `json:"amount"`
	Lines         []ReceiptLine `json:"lines"`
	EnrolledPhoto []byte        `json:"enrolledPhoto"`
	LivePhoto     []byte        `json:"livePhoto"`
	PaidAt        time.Time     `json:"paidAt"`
}

type NotificationType string

const (
	NotificationReceipt       NotificationType = "receipt"
	NotificationManualPayment NotificationType = "manual_payment"
)

// NotificationEvent is the message on the notifications topic.
type NotificationEvent struct {
	Type    NotificationType     `json:"type"`
	Receipt *Receipt             `json:"receipt,omitempty"`
	Report  *ManualPaymentReport `json:"report,omitempty"`
}
