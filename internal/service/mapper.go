package service

import (
	"context"
	"errors"

	"github.com/yogastudio/yoga-api/internal/logging"
	"github.com/yogastudio/yoga-api/internal/model"
	"github.com/yogastudio/yoga-api/internal/repository"
)

// SessionMapper converts between the flat SessionDTO and the Session graph.
type SessionMapper struct {
	teachers TeacherStore
	users    UserStore
}

// NewSessionMapper creates a new SessionMapper.
func NewSessionMapper(teachers TeacherStore, users UserStore) *SessionMapper {
	return &SessionMapper{teachers: teachers, users: users}
}

// ToEntity resolves teacher_id and users into references. A nil or unknown
// teacher id yields no teacher; unknown user ids are dropped.
func (m *SessionMapper) ToEntity(ctx context.Context, dto model.SessionDTO) (*model.Session, error) {
	session := &model.Session{
		ID:          dto.ID,
		Name:        dto.Name,
		Date:        dto.Date.Time,
		Description: dto.Description,
		CreatedAt:   dto.CreatedAt.Time,
		UpdatedAt:   dto.UpdatedAt.Time,
	}

	if dto.TeacherID != nil {
		teacher, err := m.teachers.GetByID(ctx, *dto.TeacherID)
		switch {
		case err == nil:
			session.Teacher = teacher
		case errors.Is(err, repository.ErrTeacherNotFound):
			logging.FromContext(ctx).Debug("session references unknown teacher", "teacher_id", *dto.TeacherID)
		default:
			return nil, err
		}
	}

	session.Participants = make([]model.User, 0, len(dto.Users))
	for _, id := range dto.Users {
		if session.HasParticipant(id) {
			continue
		}
		user, err := m.users.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		session.Participants = append(session.Participants, *user)
	}

	return session, nil
}

// ToSessionDTO flattens a session to its wire form.
func ToSessionDTO(s *model.Session) model.SessionDTO {
	dto := model.SessionDTO{
		ID:          s.ID,
		Name:        s.Name,
		Date:        model.DateTime{Time: s.Date},
		Description: s.Description,
		Users:       s.ParticipantIDs(),
		CreatedAt:   model.DateTime{Time: s.CreatedAt},
		UpdatedAt:   model.DateTime{Time: s.UpdatedAt},
	}
	if s.Teacher != nil {
		id := s.Teacher.ID
		dto.TeacherID = &id
	}
	return dto
}

// ToSessionDTOs flattens a list of sessions, never returning nil.
func ToSessionDTOs(sessions []model.Session) []model.SessionDTO {
	result := make([]model.SessionDTO, len(sessions))
	for i := range sessions {
		result[i] = ToSessionDTO(&sessions[i])
	}
	return result
}

// ToTeacherResponse maps a teacher to its wire form.
func ToTeacherResponse(t *model.Teacher) model.TeacherResponse {
	return model.TeacherResponse{
		ID:        t.ID,
		LastName:  t.LastName,
		FirstName: t.FirstName,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToTeacherResponses maps a list of teachers, never returning nil.
func ToTeacherResponses(teachers []model.Teacher) []model.TeacherResponse {
	result := make([]model.TeacherResponse, len(teachers))
	for i := range teachers {
		result[i] = ToTeacherResponse(&teachers[i])
	}
	return result
}

// ToUserResponse maps a user to its public form; the password hash is never included.
func ToUserResponse(u *model.User) model.UserResponse {
	return model.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		LastName:  u.LastName,
		FirstName: u.FirstName,
		Admin:     u.Admin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
