// Package identity supplies the simulated login used by the app.
// There is no real authentication; picking a role mints a mock user
// the way a classroom demo would.
package identity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ngthanh/engmaster/internal/store"
)

// Role distinguishes the two app experiences.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// User is the simulated identity supplied at session start.
type User struct {
	ID     string
	Name   string
	Email  string
	Avatar string
	Role   Role
}

// MockLogin mints a simulated user for the chosen role.
func MockLogin(role Role) User {
	u := User{
		ID:     uuid.NewString(),
		Avatar: fmt.Sprintf("https://picsum.photos/200?random=%d", time.Now().UnixMilli()),
		Role:   role,
	}
	if role == RoleTeacher {
		u.Name = "Ms. Hạnh (Teacher)"
		u.Email = "teacher@school.edu.vn"
	} else {
		u.Name = "Nguyễn Văn A (Student)"
		u.Email = "student@school.edu.vn"
	}
	return u
}

// FromProfile restores a user saved in a previous run.
func FromProfile(p store.ProfileData) User {
	return User{
		ID:     p.UserID,
		Name:   p.Name,
		Email:  p.Email,
		Avatar: p.Avatar,
		Role:   Role(p.Role),
	}
}

// ToProfile converts a user for persistence, carrying the last topic.
func ToProfile(u User, lastTopic string) store.ProfileData {
	return store.ProfileData{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Role:      string(u.Role),
		LastTopic: lastTopic,
	}
}
