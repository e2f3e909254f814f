package entity

import (
	"time"
)

// Rating is a customer's review of a worker after a service.
// Ratings are immutable once written; the ledger is append-only.
type Rating struct {
	ID             string    `json:"id"`
	WorkerID       string    `json:"worker_id"`
	CustomerID     string    `json:"customer_id"`
	ServiceID      string    `json:"service_id"`
	Stars          int       `json:"stars"` // 1-5
	Comment        string    `json:"comment"`
	Date           time.Time `json:"date"`
	CustomerName   string    `json:"customer_name"`
	CustomerAvatar string    `json:"customer_avatar,omitempty"`
}
