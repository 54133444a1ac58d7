// Package notify abstracts outbound chat delivery. The dispatch and offer
// services depend only on the Sender interface; the production implementation
// talks to the Telegram Bot API and a no-op implementation backs dry runs and
// deployments without a configured token.
package notify

import "context"

// Button is one inline action attached to a message. Token is an opaque
// action payload (e.g. "offer:12:7") the chat frontend echoes back when the
// recipient taps the button.
type Button struct {
	Label string
	Token string
}

// Sender delivers a message to a chat channel, optionally with action buttons.
//
// Implementations must honor ctx and return an error when delivery could not
// be confirmed. Callers decide whether a failed delivery is fatal; broadcast
// paths typically swallow per-recipient failures.
type Sender interface {
	Send(ctx context.Context, channelID int64, text string, buttons []Button) error
}

// Noop is a Sender that discards every message.
type Noop struct{}

// Send implements Sender.
func (Noop) Send(context.Context, int64, string, []Button) error { return nil }
