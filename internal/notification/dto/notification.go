package dto

import "encoding/json"

// Data is bound loosely so that a malformed payload gets its own client
// error instead of failing the whole bind as a missing-title/body.
type SendNotificationRequest struct {
	Title  string          `json:"title"`
	Body   string          `json:"body"`
	Data   json.RawMessage `json:"data"`
	Tokens []string        `json:"tokens"`
}
