package models

type PostWordResponse struct {
	ID string `json:"id"`
}
