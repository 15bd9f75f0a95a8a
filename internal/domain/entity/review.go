package entity

import "time"

// ReviewModeration enumerates the moderation states of a testimonial.
type ReviewModeration string

const (
	ReviewPending  ReviewModeration = "pending"
	ReviewApproved ReviewModeration = "approved"
	ReviewRejected ReviewModeration = "rejected"
)

// Review is a customer testimonial submitted from the public site and
// moderated by an admin before display.
type Review struct {
	ID         int64            `json:"id"`
	ClientName string           `json:"clientName"`
	Business   string           `json:"business"`
	Rating     int              `json:"rating"` // bounded 1..5
	Text       string           `json:"text"`
	Approved   ReviewModeration `json:"approved"`
	CreatedAt  time.Time        `json:"createdAt"`
}
