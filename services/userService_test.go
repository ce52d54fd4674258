package services

import (
	"testing"

	"github.com/DenizAltinisik/internship-management/domain"
	"github.com/DenizAltinisik/internship-management/repositories"
)

func setupUserTest(t *testing.T) *UserService {
	t.Helper()

	store := repositories.NewInMemStore()
	users := store.Users()
	for _, u := range []domain.User{
		{Email: admin.Email, Role: domain.ADMIN, Name: "Ada", Surname: "Admin"},
		{Email: intern1.Email, Role: domain.INTERN, Name: "Ivo", Surname: "First"},
		{Email: intern2.Email, Role: domain.INTERN, Name: "Ines", Surname: "Second"},
	} {
		if _, err := users.Insert(u); err != nil {
			t.Fatalf("failed to seed user %s: %v", u.Email, err)
		}
	}
	return NewUserService(users)
}

func TestUpdateProfileKeepsIdentity(t *testing.T) {
	users := setupUserTest(t)

	updated, err := users.UpdateProfile(intern1, domain.User{
		Name:       "Ivo",
		Surname:    "Renamed",
		Phone:      "555-0101",
		School:     "Tech U",
		Department: "CS",
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.Surname != "Renamed" || updated.Phone != "555-0101" {
		t.Errorf("profile not updated: %+v", updated)
	}
	// Email and role survive a profile edit untouched.
	if updated.Email != intern1.Email || updated.Role != domain.INTERN {
		t.Errorf("identity fields changed: %+v", updated)
	}
}

func TestGetInternsAdminOnly(t *testing.T) {
	users := setupUserTest(t)

	interns, err := users.GetInterns(admin)
	if err != nil {
		t.Fatalf("GetInterns failed: %v", err)
	}
	if len(interns) != 2 {
		t.Errorf("got %d interns, want 2", len(interns))
	}
	for _, u := range interns {
		if u.Role != domain.INTERN {
			t.Errorf("non-intern %s in intern list", u.Email)
		}
	}

	if _, err := users.GetInterns(intern1); err != domain.ErrForbidden() {
		t.Errorf("intern GetInterns: err = %v, want forbidden", err)
	}
}

func TestGetUserNames(t *testing.T) {
	users := setupUserTest(t)

	names, err := users.GetUserNames()
	if err != nil {
		t.Fatalf("GetUserNames failed: %v", err)
	}
	if names[intern1.Email] != "Ivo First" {
		t.Errorf("display name = %q, want %q", names[intern1.Email], "Ivo First")
	}
	if len(names) != 3 {
		t.Errorf("got %d names, want 3", len(names))
	}
}
