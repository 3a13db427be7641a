// Package domain contains the core business entities and interfaces.
package domain

import "time"

// User represents a registered author.
type User struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	JoinDate time.Time `json:"joinDate"`
}
