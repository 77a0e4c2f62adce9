package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeCartCleanup = "cart:cleanup"

// CartCleanupPayload identifies the cart entry left behind by a checkout.
type CartCleanupPayload struct {
	ClassID string `json:"class_id"`
	MyEmail string `json:"myemail"`
}

func NewCartCleanupTask(classID, email string) (*asynq.Task, error) {
	payload, err := json.Marshal(CartCleanupPayload{ClassID: classID, MyEmail: email})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCartCleanup, payload, asynq.MaxRetry(5)), nil
}
