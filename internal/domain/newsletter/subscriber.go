package newsletter

import (
	"time"

	"portfolio-app/internal/domain/record"
)

// Subscriber holds one newsletter signup. Email is the natural key: repeated
// signups with the same address resolve to the existing record.
type Subscriber struct {
	record.Meta

	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
