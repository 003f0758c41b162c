package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/bulletin/core/academic"
	"github.com/trezcool/bulletin/core/account"
)

func CreateUser(
	t *testing.T,
	repo account.Repository,
	name, email, pwd string,
	isActive bool,
	createdAt ...time.Time,
) account.User {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := account.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		IsActive:  isActive,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

// CompleteDraft returns a draft that passes validation, every subject marked `marks`.
func CompleteDraft(marks int) academic.Draft {
	return academic.Draft{
		Info: academic.InfoDraft{
			RegisterNumber: "2024-001",
			Name:           "Jane Doe",
			Age:            null.IntFrom(15),
			FatherName:     "John Doe Sr.",
			MotherName:     "Jane Doe Sr.",
			Address:        "1 Main St",
		},
		Marks:      academic.NewMarkSheet(marks),
		Attendance: null.Float64From(92),
	}
}
