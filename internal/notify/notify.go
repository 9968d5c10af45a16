// Package notify delivers booking text messages through an SMS Sender.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Ack is the gateway's acknowledgement for one message.
type Ack struct {
	MessageID string
	Status    string
}

type Sender interface {
	Send(ctx context.Context, to, body string) (Ack, error)
}

var phoneReplacer = strings.NewReplacer("-", "", " ", "", "(", "", ")", "", ".", "")

// NormalizePhone turns local numbers into +1 E.164-like form. Numbers that
// already start with + are passed through.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+1" + phoneReplacer.Replace(phone)
}

// Notifier formats booking messages and bounds every send by timeout.
type Notifier struct {
	sender  Sender
	timeout time.Duration
}

func NewNotifier(sender Sender, timeout time.Duration) *Notifier {
	return &Notifier{sender: sender, timeout: timeout}
}

func (n *Notifier) SendBookingConfirmation(
	ctx context.Context,
	customerPhone, providerName, providerPhone, providerEmail string,
) (Ack, error) {
	body := fmt.Sprintf(
		"Booking Confirmed!\n\nProvider: %s\nPhone: %s\nEmail: %s\n\nThank you for booking with us!",
		providerName, providerPhone, providerEmail,
	)
	return n.send(ctx, customerPhone, body)
}

func (n *Notifier) SendBookingNotification(
	ctx context.Context,
	providerPhone, customerName, customerAddress, serviceName string,
) (Ack, error) {
	body := fmt.Sprintf(
		"New Booking!\n\nCustomer: %s\nAddress: %s\nService: %s\n\nPlease contact the customer to confirm.",
		customerName, customerAddress, serviceName,
	)
	return n.send(ctx, providerPhone, body)
}

func (n *Notifier) send(ctx context.Context, phone, body string) (Ack, error) {
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	ack, err := n.sender.Send(ctx, NormalizePhone(phone), body)
	if err != nil {
		return Ack{}, fmt.Errorf("sms sending failed: %w", err)
	}
	return ack, nil
}
