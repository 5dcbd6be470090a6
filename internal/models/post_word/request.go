package models

// Text is a pointer so a missing or null field can be told apart from "".
type PostWordRequest struct {
	Text *string `json:"text"`
}
