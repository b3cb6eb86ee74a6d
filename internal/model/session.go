package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Session is a scheduled yoga class. Participants holds each user at most once.
type Session struct {
	ID           int64
	Name         string
	Date         time.Time
	Description  string
	Teacher      *Teacher
	Participants []User
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasParticipant reports whether a user with userID is among the participants.
func (s *Session) HasParticipant(userID int64) bool {
	for _, u := range s.Participants {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// ParticipantIDs returns the participant ids in stored order.
func (s *Session) ParticipantIDs() []int64 {
	ids := make([]int64, 0, len(s.Participants))
	for _, u := range s.Participants {
		ids = append(ids, u.ID)
	}
	return ids
}

// SessionDTO is the flat wire form of a Session: the teacher and the
// participants are referenced by id.
type SessionDTO struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Date        DateTime `json:"date"`
	TeacherID   *int64   `json:"teacher_id"`
	Description string   `json:"description"`
	Users       []int64  `json:"users"`
	CreatedAt   DateTime `json:"createdAt"`
	UpdatedAt   DateTime `json:"updatedAt"`
}

// Validate checks the session payload before it is mapped and stored.
func (d SessionDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Length(0, 50)),
		validation.Field(&d.Date, validation.Required),
		validation.Field(&d.TeacherID, validation.NotNil),
		validation.Field(&d.Description, validation.Required, validation.Length(0, 2500)),
	)
}
