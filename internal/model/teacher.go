package model

import "time"

// Teacher represents a yoga teacher. Teachers are reference data.
type Teacher struct {
	ID        int64
	LastName  string
	FirstName string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TeacherResponse is the wire form of a Teacher.
type TeacherResponse struct {
	ID        int64     `json:"id"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
