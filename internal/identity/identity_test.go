package identity

import (
	"testing"
)

func TestMockLogin_Student(t *testing.T) {
	u := MockLogin(RoleStudent)
	if u.Name != "Nguyễn Văn A (Student)" {
		t.Errorf("name = %q", u.Name)
	}
	if u.Email != "student@school.edu.vn" {
		t.Errorf("email = %q", u.Email)
	}
	if u.Role != RoleStudent {
		t.Errorf("role = %q", u.Role)
	}
	if u.ID == "" || u.Avatar == "" {
		t.Error("expected generated ID and avatar")
	}
}

func TestMockLogin_Teacher(t *testing.T) {
	u := MockLogin(RoleTeacher)
	if u.Name != "Ms. Hạnh (Teacher)" {
		t.Errorf("name = %q", u.Name)
	}
	if u.Email != "teacher@school.edu.vn" {
		t.Errorf("email = %q", u.Email)
	}
}

func TestMockLogin_UniqueIDs(t *testing.T) {
	a := MockLogin(RoleStudent)
	b := MockLogin(RoleStudent)
	if a.ID == b.ID {
		t.Error("expected unique IDs per login")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	u := MockLogin(RoleStudent)
	p := ToProfile(u, "Greetings")
	if p.LastTopic != "Greetings" {
		t.Errorf("last topic = %q", p.LastTopic)
	}
	back := FromProfile(p)
	if back != u {
		t.Errorf("round trip mismatch: %+v != %+v", back, u)
	}
}
