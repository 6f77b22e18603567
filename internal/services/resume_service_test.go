package services

import (
	"context"
	"testing"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadResume_NonPDFRejectedBeforeAnyWork(t *testing.T) {
	t.Parallel()

	model := &fakeModel{}
	svc := NewResumeService(newFakeUserRepo(), model)

	for _, filename := range []string{"resume.docx", "resume.txt", "resume"} {
		_, err := svc.UploadResume(context.Background(), "ada@example.com", filename, []byte("data"))

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok, "filename %q should be rejected", filename)
		assert.Equal(t, 400, appErr.HTTPCode)
	}
	assert.Zero(t, model.generateCalls)
}

func TestUploadResume_CaseInsensitivePDFExtension(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	userRepo.add(&models.User{Email: "ada@example.com"})
	svc := NewResumeService(userRepo, &fakeModel{})

	// Passes the extension gate, then fails on the invalid PDF body; that
	// is still a client error, not a server one.
	_, err := svc.UploadResume(context.Background(), "ada@example.com", "Resume.PDF", []byte("not a pdf"))

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "PDF")
}

func TestUploadResume_UnknownUser404(t *testing.T) {
	t.Parallel()

	svc := NewResumeService(newFakeUserRepo(), &fakeModel{})

	_, err := svc.UploadResume(context.Background(), "ghost@example.com", "resume.pdf", []byte("data"))

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
