// Package notifier finds components approaching the end of their service life
// and tells every subscribed user about them over Telegram once a day.
package notifier

import (
	"context"
	"errors"
	"time"
)

// ErrRunInProgress is returned when a pass is requested while another one is
// still running.
var ErrRunInProgress = errors.New("notification run already in progress")

// ExpiringComponent is one operational component inside the notification
// window, denormalised with its ship for display.
type ExpiringComponent struct {
	ID              uint
	Name            string
	SerialNumber    *string
	ComponentTypeID uint
	ShipName        *string
	IMONumber       *string
	ExpirationDate  time.Time
	DaysRemaining   int
}

// Subscriber is a reachable user and the component types they follow.
type Subscriber struct {
	TelegramID int64
	TypeIDs    []uint
}

// Batch is the set of components delivered to one chat in one message.
type Batch struct {
	TelegramID int64
	Components []ExpiringComponent
}

//go:generate mockgen -source=notifier.go -destination=../mocks/notifier_mocks.go -package=mocks

// Store reads the data a notification pass needs.
type Store interface {
	ExpiringComponents(ctx context.Context, today time.Time, windowDays int) ([]ExpiringComponent, error)
	Subscribers(ctx context.Context) ([]Subscriber, error)
}

// Sender delivers one formatted message to a chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}
