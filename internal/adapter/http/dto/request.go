package dto

// SubmitTransactionRequest represents a free-text transaction submission.
type SubmitTransactionRequest struct {
	Text string `json:"text"`
}
