package entity

import "time"

// ClientStatus enumerates the allowed states of a client record.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "Active"
	ClientStatusInactive ClientStatus = "Inactive"
)

// Client is a shop running the POS software, managed from the back office.
type Client struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Location   string       `json:"location"`
	Phone      string       `json:"phone"`
	Status     ClientStatus `json:"status"`
	LastActive time.Time    `json:"lastActive"`
	CreatedAt  time.Time    `json:"createdAt"`
}
