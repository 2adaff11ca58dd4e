package services

import (
	"testing"
	"time"

	"revhire_backend/internal/dto"
	"revhire_backend/internal/models"
	"revhire_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationFixture struct {
	service     ApplicationService
	seekerRepo  *fakeJobSeekerRepo
	postingRepo *fakeJobPostingRepo
	resumeRepo  *fakeResumeRepo
	appRepo     *fakeApplicationRepo
	sender      *fakeEmailSender

	seeker  *models.JobSeeker
	posting *models.JobPosting
	resume  *models.Resume
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()

	f := &applicationFixture{
		seekerRepo:  newFakeJobSeekerRepo(),
		postingRepo: newFakeJobPostingRepo(),
		resumeRepo:  newFakeResumeRepo(),
		appRepo:     newFakeApplicationRepo(),
		sender:      newFakeEmailSender(),
	}
	f.service = NewApplicationService(f.appRepo, f.postingRepo, f.seekerRepo, f.resumeRepo, f.sender)

	f.seeker = &models.JobSeeker{FullName: "Ada Lovelace", Email: "ada@example.com"}
	require.NoError(t, f.seekerRepo.Create(f.seeker))

	f.posting = &models.JobPosting{
		EmployerID:  "employer-1",
		JobTitle:    "Backend Engineer",
		CompanyName: "Initech",
		Location:    "Austin",
	}
	require.NoError(t, f.postingRepo.Create(f.posting))

	f.resume = &models.Resume{JobSeekerID: f.seeker.ID, Headline: "Engineer"}
	require.NoError(t, f.resumeRepo.Create(f.resume))

	return f
}

func TestSubmitApplication(t *testing.T) {
	f := newApplicationFixture(t)

	resp, err := f.service.SubmitApplication(f.seeker.ID, &dto.SubmitApplicationRequest{
		JobPostingID: f.posting.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, f.posting.ID, resp.JobPostingID)
	assert.Equal(t, f.seeker.ID, resp.JobSeekerID)
	assert.Equal(t, f.resume.ID, resp.ResumeID)
	assert.Equal(t, string(models.ApplicationStatusPending), resp.Status)
	assert.False(t, resp.AppliedAt.IsZero())
}

func TestSubmitApplicationSendsConfirmationEmail(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.service.SubmitApplication(f.seeker.ID, &dto.SubmitApplicationRequest{
		JobPostingID: f.posting.ID,
	})
	require.NoError(t, err)

	require.True(t, f.sender.waitForSend(time.Second), "expected a confirmation email")
	sent := f.sender.sentEmails()
	require.Len(t, sent, 1)
	assert.Equal(t, f.seeker.Email, sent[0].To)
	assert.Contains(t, sent[0].Body, "Initech")
}

func TestSubmitApplicationDuplicate(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.service.SubmitApplication(f.seeker.ID, &dto.SubmitApplicationRequest{
		JobPostingID: f.posting.ID,
	})
	require.NoError(t, err)

	_, err = f.service.SubmitApplication(f.seeker.ID, &dto.SubmitApplicationRequest{
		JobPostingID: f.posting.ID,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestSubmitApplicationMissingPosting(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.service.SubmitApplication(f.seeker.ID, &dto.SubmitApplicationRequest{
		JobPostingID: "posting-missing",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestSubmitApplicationMissingSeeker(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.service.SubmitApplication("seeker-missing", &dto.SubmitApplicationRequest{
		JobPostingID: f.posting.ID,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestSubmitApplicationWithoutResume(t *testing.T) {
	f := newApplicationFixture(t)
	require.NoError(t, f.resumeRepo.Delete(f.seeker.ID))

	_, err := f.service.SubmitApplication(f.seeker.ID, &dto.SubmitApplicationRequest{
		JobPostingID: f.posting.ID,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestWithdrawApplication(t *testing.T) {
	f := newApplicationFixture(t)

	created, err := f.service.SubmitApplication(f.seeker.ID, &dto.SubmitApplicationRequest{
		JobPostingID: f.posting.ID,
	})
	require.NoError(t, err)

	withdrawn, err := f.service.WithdrawApplication(f.seeker.ID, created.ID)
	require.NoError(t, err)
	assert.True(t, withdrawn)

	// A second withdrawal finds nothing: false, but not an error
	withdrawn, err = f.service.WithdrawApplication(f.seeker.ID, created.ID)
	require.NoError(t, err)
	assert.False(t, withdrawn)
}

func TestWithdrawApplicationWrongSeeker(t *testing.T) {
	f := newApplicationFixture(t)

	created, err := f.service.SubmitApplication(f.seeker.ID, &dto.SubmitApplicationRequest{
		JobPostingID: f.posting.ID,
	})
	require.NoError(t, err)

	withdrawn, err := f.service.WithdrawApplication("seeker-other", created.ID)
	require.NoError(t, err)
	assert.False(t, withdrawn, "another seeker's id must not match the composite key")

	_, err = f.service.GetApplication(created.ID)
	assert.NoError(t, err, "the application must survive the failed withdrawal")
}

func TestWithdrawThenReapply(t *testing.T) {
	f := newApplicationFixture(t)

	created, err := f.service.SubmitApplication(f.seeker.ID, &dto.SubmitApplicationRequest{
		JobPostingID: f.posting.ID,
	})
	require.NoError(t, err)

	_, err = f.service.WithdrawApplication(f.seeker.ID, created.ID)
	require.NoError(t, err)

	_, err = f.service.SubmitApplication(f.seeker.ID, &dto.SubmitApplicationRequest{
		JobPostingID: f.posting.ID,
	})
	assert.NoError(t, err, "withdrawal should free the slot for a new application")
}

func TestUpdateApplicationStatusChangeNotifies(t *testing.T) {
	f := newApplicationFixture(t)

	created, err := f.service.SubmitApplication(f.seeker.ID, &dto.SubmitApplicationRequest{
		JobPostingID: f.posting.ID,
	})
	require.NoError(t, err)
	require.True(t, f.sender.waitForSend(time.Second))

	updated, err := f.service.UpdateApplication(f.posting.EmployerID, created.ID, &dto.UpdateApplicationRequest{
		JobPostingID: created.JobPostingID,
		JobSeekerID:  created.JobSeekerID,
		ResumeID:     created.ResumeID,
		Status:       string(models.ApplicationStatusShortlisted),
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.ApplicationStatusShortlisted), updated.Status)

	require.True(t, f.sender.waitForSend(time.Second), "expected a status notification")
	sent := f.sender.sentEmails()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[1].Body, "Shortlisted")
}

func TestUpdateApplicationSameStatusNoNotification(t *testing.T) {
	f := newApplicationFixture(t)

	created, err := f.service.SubmitApplication(f.seeker.ID, &dto.SubmitApplicationRequest{
		JobPostingID: f.posting.ID,
	})
	require.NoError(t, err)
	require.True(t, f.sender.waitForSend(time.Second))

	_, err = f.service.UpdateApplication(f.posting.EmployerID, created.ID, &dto.UpdateApplicationRequest{
		JobPostingID: created.JobPostingID,
		JobSeekerID:  created.JobSeekerID,
		ResumeID:     created.ResumeID,
		Status:       created.Status,
	})
	require.NoError(t, err)

	assert.False(t, f.sender.waitForSend(100*time.Millisecond))
}

func TestUpdateApplicationWrongEmployer(t *testing.T) {
	f := newApplicationFixture(t)

	created, err := f.service.SubmitApplication(f.seeker.ID, &dto.SubmitApplicationRequest{
		JobPostingID: f.posting.ID,
	})
	require.NoError(t, err)
	require.True(t, f.sender.waitForSend(time.Second))

	_, err = f.service.UpdateApplication("employer-2", created.ID, &dto.UpdateApplicationRequest{
		JobPostingID: created.JobPostingID,
		JobSeekerID:  created.JobSeekerID,
		ResumeID:     created.ResumeID,
		Status:       string(models.ApplicationStatusRejected),
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	unchanged, err := f.service.GetApplication(created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ApplicationStatusPending), unchanged.Status)
	assert.False(t, f.sender.waitForSend(100*time.Millisecond), "no notification for a refused update")
}

func TestUpdateApplicationNotFound(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.service.UpdateApplication(f.posting.EmployerID, "application-missing", &dto.UpdateApplicationRequest{
		JobPostingID: f.posting.ID,
		JobSeekerID:  f.seeker.ID,
		ResumeID:     f.resume.ID,
		Status:       string(models.ApplicationStatusRejected),
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestGetApplicationsByJobPostingOwnership(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.service.SubmitApplication(f.seeker.ID, &dto.SubmitApplicationRequest{
		JobPostingID: f.posting.ID,
	})
	require.NoError(t, err)

	apps, err := f.service.GetApplicationsByJobPosting("employer-1", f.posting.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	_, err = f.service.GetApplicationsByJobPosting("employer-2", f.posting.ID)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
}
