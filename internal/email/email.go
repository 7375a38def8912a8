package email

import (
	"context"
	"fmt"

	"github.com/fstagno77/travel-organizer-sub001/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ShareEvent) error {
	fmt.Printf("send email to %s about %s for trip %d (%s)\n", event.Email, event.Type, event.TripID, event.TripTitle)
	return nil
}
