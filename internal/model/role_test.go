package model

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"teacher", RoleTeacher},
		{"professor", RoleTeacher},
		{"admin", RoleAdmin},
		{"student", RoleStudent},
		{"aluno", RoleStudent},
		{"", RoleStudent},
		{"wizard", RoleStudent},
		{"TEACHER", RoleTeacher},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanManageActivities(t *testing.T) {
	if !RoleTeacher.CanManageActivities() || !RoleAdmin.CanManageActivities() {
		t.Error("teachers and admins manage activities")
	}
	if RoleStudent.CanManageActivities() {
		t.Error("students must not manage activities")
	}
}

func TestDifficultyValid(t *testing.T) {
	for _, d := range Difficulties {
		if !d.Valid() {
			t.Errorf("%q should be valid", d)
		}
	}
	if Difficulty("extreme").Valid() {
		t.Error("unknown difficulty accepted")
	}
}

func TestValidGradeLevel(t *testing.T) {
	if !ValidGradeLevel("grade_6") || !ValidGradeLevel("grade_12") {
		t.Error("expected grade_6 through grade_12 to be valid")
	}
	if ValidGradeLevel("grade_5") || ValidGradeLevel("university") {
		t.Error("out-of-range grade accepted")
	}
}
