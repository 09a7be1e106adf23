// Package model contains the domain types shared by the store, service
// and presentation layers.
package model

import "time"

// Tweet is one row of the tweets table. ID and CreatedAt are assigned
// by the store on insert; Username and Status may both be empty.
type Tweet struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
