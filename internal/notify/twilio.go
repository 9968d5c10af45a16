package notify

import (
	"context"
	"errors"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, from: from}
}

// Send posts the message to Twilio. The SDK call is not context-aware, so it
// runs in its own goroutine and is abandoned when ctx expires.
func (s *TwilioSender) Send(ctx context.Context, to, body string) (Ack, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	type result struct {
		msg *twilioApi.ApiV2010Message
		err error
	}
	done := make(chan result, 1)

	go func() {
		msg, err := s.client.Api.CreateMessage(params)
		done <- result{msg: msg, err: err}
	}()

	select {
	case <-ctx.Done():
		return Ack{}, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return Ack{}, r.err
		}
		if r.msg == nil {
			return Ack{}, errors.New("twilio returned no message")
		}
		var ack Ack
		if r.msg.Sid != nil {
			ack.MessageID = *r.msg.Sid
		}
		if r.msg.Status != nil {
			ack.Status = *r.msg.Status
		}
		return ack, nil
	}
}
