package models

// Word is one word-of-the-day record. CreatedAt is the UTC calendar date
// (YYYY-MM-DD) the word was posted on.
type Word struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	OwnerID   string `json:"ownerId"`
	CreatedAt string `json:"createdAt"`
}
