package services

import (
	"context"
	"testing"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdate_OnlyAllowListedFieldsChange(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	user := userRepo.add(&models.User{
		Email:      "ada@example.com",
		Name:       "Ada",
		ResumeJSON: "original resume document",
	})
	svc := NewUserService(userRepo)

	err := svc.Update(context.Background(), "ada@example.com", &dto.UpdateUserRequest{
		Name:     strPtr("Ada Lovelace"),
		About:    strPtr("First programmer"),
		Position: strPtr("Engineer"),
		Status:   strPtr("active"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, "First programmer", user.About)
	assert.Equal(t, "Engineer", user.Position)
	assert.Equal(t, models.UserStatusActive, user.Status)
	assert.Equal(t, "original resume document", user.ResumeJSON,
		"resume document is not client-mutable")
	assert.Equal(t, "ada@example.com", user.Email, "email is not client-mutable")
}

func TestUpdate_NilFieldsLeftUntouched(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	user := userRepo.add(&models.User{
		Email:    "ada@example.com",
		Name:     "Ada",
		Location: "London",
	})
	svc := NewUserService(userRepo)

	err := svc.Update(context.Background(), "ada@example.com", &dto.UpdateUserRequest{
		About: strPtr("updated"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "London", user.Location)
	assert.Equal(t, "updated", user.About)
}

func TestUpdate_SkillsUpserted(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	user := userRepo.add(&models.User{Email: "ada@example.com"})
	userRepo.skills[user.ID] = []models.UserSkill{{UserID: user.ID, Name: "Python", Level: 1}}
	svc := NewUserService(userRepo)

	err := svc.Update(context.Background(), "ada@example.com", &dto.UpdateUserRequest{
		Skills: map[string]int{"Python": 3, "Go": 2},
	})
	require.NoError(t, err)

	skills, err := userRepo.GetSkills(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, skills, 2)

	byName := map[string]int{}
	for _, s := range skills {
		byName[s.Name] = s.Level
	}
	assert.Equal(t, 3, byName["Python"], "existing skill level updated in place")
	assert.Equal(t, 2, byName["Go"], "new skill inserted")
}

func TestGetByEmail_Unknown404(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetByEmail(context.Background(), "ghost@example.com")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
