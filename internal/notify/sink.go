// Package notify delivers contact messages to the site owner.
package notify

import (
	"context"
	"errors"
)

// ErrInvalidMessage is returned for messages without a recipient or body.
var ErrInvalidMessage = errors.New("invalid message")

// Message is a fully formatted notification.
type Message struct {
	To      string
	From    string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

func (m Message) Validate() error {
	if m.To == "" {
		return errors.Join(ErrInvalidMessage, errors.New("missing recipient"))
	}
	if m.HTML == "" && m.Text == "" {
		return errors.Join(ErrInvalidMessage, errors.New("missing body"))
	}
	return nil
}

// Sink sends a message. A nil error means the provider accepted it.
type Sink interface {
	Send(ctx context.Context, msg Message) error
	Name() string
}
