package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"revhire_backend/internal/models"
	"revhire_backend/internal/repositories"
)

// In-memory repository fakes. They honor the same sentinel-error contract
// as the real implementations.

type fakeJobSeekerRepo struct {
	mu      sync.Mutex
	seekers map[string]*models.JobSeeker
	nextID  int
}

func newFakeJobSeekerRepo() *fakeJobSeekerRepo {
	return &fakeJobSeekerRepo{seekers: map[string]*models.JobSeeker{}}
}

func (f *fakeJobSeekerRepo) Create(seeker *models.JobSeeker) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.seekers {
		if s.Email == seeker.Email {
			return repositories.ErrEmailTaken
		}
	}
	f.nextID++
	seeker.ID = fmt.Sprintf("seeker-%d", f.nextID)
	seeker.RegistrationTime = time.Now()
	copied := *seeker
	f.seekers[seeker.ID] = &copied
	return nil
}

func (f *fakeJobSeekerRepo) FindByID(id string) (*models.JobSeeker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seeker, ok := f.seekers[id]
	if !ok {
		return nil, repositories.ErrJobSeekerNotFound
	}
	copied := *seeker
	return &copied, nil
}

func (f *fakeJobSeekerRepo) FindByEmail(email string) (*models.JobSeeker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.seekers {
		if s.Email == email {
			copied := *s
			return &copied, nil
		}
	}
	return nil, repositories.ErrJobSeekerNotFound
}

func (f *fakeJobSeekerRepo) ExistsByEmail(email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.seekers {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeJobSeekerRepo) Update(seeker *models.JobSeeker) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.seekers[seeker.ID]
	if !ok {
		return repositories.ErrJobSeekerNotFound
	}
	existing.FullName = seeker.FullName
	existing.Phone = seeker.Phone
	existing.WorkStatus = seeker.WorkStatus
	existing.Promotions = seeker.Promotions
	return nil
}

func (f *fakeJobSeekerRepo) UpdatePassword(id, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.seekers[id]
	if !ok {
		return repositories.ErrJobSeekerNotFound
	}
	existing.PasswordHash = passwordHash
	return nil
}

type fakeEmployerRepo struct {
	mu        sync.Mutex
	employers map[string]*models.Employer
	nextID    int
}

func newFakeEmployerRepo() *fakeEmployerRepo {
	return &fakeEmployerRepo{employers: map[string]*models.Employer{}}
}

func (f *fakeEmployerRepo) Create(employer *models.Employer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.employers {
		if e.Email == employer.Email {
			return repositories.ErrEmailTaken
		}
	}
	f.nextID++
	employer.ID = fmt.Sprintf("employer-%d", f.nextID)
	employer.CreatedAt = time.Now()
	copied := *employer
	f.employers[employer.ID] = &copied
	return nil
}

func (f *fakeEmployerRepo) FindByID(id string) (*models.Employer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	employer, ok := f.employers[id]
	if !ok {
		return nil, repositories.ErrEmployerNotFound
	}
	copied := *employer
	return &copied, nil
}

func (f *fakeEmployerRepo) FindByEmail(email string) (*models.Employer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.employers {
		if e.Email == email {
			copied := *e
			return &copied, nil
		}
	}
	return nil, repositories.ErrEmployerNotFound
}

func (f *fakeEmployerRepo) ExistsByEmail(email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.employers {
		if e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployerRepo) Update(employer *models.Employer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.employers[employer.ID]
	if !ok {
		return repositories.ErrEmployerNotFound
	}
	existing.CompanyName = employer.CompanyName
	existing.WebsiteURL = employer.WebsiteURL
	existing.IndustryType = employer.IndustryType
	existing.FullName = employer.FullName
	existing.MobileNumber = employer.MobileNumber
	existing.Designation = employer.Designation
	return nil
}

func (f *fakeEmployerRepo) UpdatePassword(id, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.employers[id]
	if !ok {
		return repositories.ErrEmployerNotFound
	}
	existing.PasswordHash = passwordHash
	return nil
}

type fakeResumeRepo struct {
	mu      sync.Mutex
	resumes map[string]*models.Resume // keyed by job seeker id
	nextID  int

	// resumeID -> postingIDs, for FindByJobPostingID
	applications map[string][]string
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{
		resumes:      map[string]*models.Resume{},
		applications: map[string][]string{},
	}
}

func (f *fakeResumeRepo) Create(resume *models.Resume) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.resumes[resume.JobSeekerID]; ok {
		return repositories.ErrResumeAlreadyExists
	}
	f.nextID++
	resume.ID = fmt.Sprintf("resume-%d", f.nextID)
	copied := *resume
	f.resumes[resume.JobSeekerID] = &copied
	return nil
}

func (f *fakeResumeRepo) FindByID(id string) (*models.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.resumes {
		if r.ID == id {
			copied := *r
			return &copied, nil
		}
	}
	return nil, repositories.ErrResumeNotFound
}

func (f *fakeResumeRepo) FindByJobSeekerID(jobSeekerID string) (*models.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	resume, ok := f.resumes[jobSeekerID]
	if !ok {
		return nil, repositories.ErrResumeNotFound
	}
	copied := *resume
	return &copied, nil
}

func (f *fakeResumeRepo) ExistsForJobSeeker(jobSeekerID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.resumes[jobSeekerID]
	return ok, nil
}

func (f *fakeResumeRepo) Update(resume *models.Resume) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.resumes[resume.JobSeekerID]
	if !ok {
		return repositories.ErrResumeNotFound
	}
	id := existing.ID
	copied := *resume
	copied.ID = id
	f.resumes[resume.JobSeekerID] = &copied
	return nil
}

func (f *fakeResumeRepo) Delete(jobSeekerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.resumes[jobSeekerID]; !ok {
		return repositories.ErrResumeNotFound
	}
	delete(f.resumes, jobSeekerID)
	return nil
}

func (f *fakeResumeRepo) linkApplication(resumeID, postingID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applications[resumeID] = append(f.applications[resumeID], postingID)
}

func (f *fakeResumeRepo) FindByJobPostingID(jobPostingID string) ([]models.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Resume
	for resumeID, postings := range f.applications {
		for _, pid := range postings {
			if pid != jobPostingID {
				continue
			}
			for _, r := range f.resumes {
				if r.ID == resumeID {
					out = append(out, *r)
				}
			}
		}
	}
	return out, nil
}

type fakeJobPostingRepo struct {
	mu       sync.Mutex
	postings map[string]*models.JobPosting
	nextID   int
	deleted  []string

	// postingID -> applicant count, seeded via addApplicant
	applicants map[string]int64
}

func newFakeJobPostingRepo() *fakeJobPostingRepo {
	return &fakeJobPostingRepo{
		postings:   map[string]*models.JobPosting{},
		applicants: map[string]int64{},
	}
}

func (f *fakeJobPostingRepo) addApplicant(postingID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applicants[postingID]++
}

func (f *fakeJobPostingRepo) Create(posting *models.JobPosting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	posting.ID = fmt.Sprintf("posting-%d", f.nextID)
	posting.PostedDate = time.Now()
	copied := *posting
	f.postings[posting.ID] = &copied
	return nil
}

func (f *fakeJobPostingRepo) FindByID(id string) (*models.JobPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	posting, ok := f.postings[id]
	if !ok {
		return nil, repositories.ErrJobPostingNotFound
	}
	copied := *posting
	return &copied, nil
}

func (f *fakeJobPostingRepo) FindByEmployerID(employerID string) ([]models.JobPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.JobPosting
	for _, p := range f.postings {
		if p.EmployerID == employerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeJobPostingRepo) FindAll(page, size int) ([]models.JobPosting, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]models.JobPosting, 0, len(f.postings))
	for i := 1; i <= f.nextID; i++ {
		if p, ok := f.postings[fmt.Sprintf("posting-%d", i)]; ok {
			all = append(all, *p)
		}
	}
	total := int64(len(all))
	start := (page - 1) * size
	if start >= len(all) {
		return []models.JobPosting{}, total, nil
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeJobPostingRepo) Search(filter repositories.SearchFilter) ([]models.JobPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.JobPosting{}
	for _, p := range f.postings {
		if filter.JobTitle != "" && !strings.Contains(p.JobTitle, filter.JobTitle) {
			continue
		}
		if filter.Location != "" && !strings.Contains(p.Location, filter.Location) {
			continue
		}
		if filter.Experience != "" && !strings.Contains(p.Experience, filter.Experience) {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeJobPostingRepo) Update(posting *models.JobPosting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.postings[posting.ID]
	if !ok {
		return repositories.ErrJobPostingNotFound
	}
	employerID := existing.EmployerID
	postedDate := existing.PostedDate
	copied := *posting
	copied.EmployerID = employerID
	copied.PostedDate = postedDate
	f.postings[posting.ID] = &copied
	return nil
}

func (f *fakeJobPostingRepo) DeleteWithApplications(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.postings[id]; !ok {
		return repositories.ErrJobPostingNotFound
	}
	delete(f.postings, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeJobPostingRepo) CountApplicants(id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.applicants[id], nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*models.Application
	nextID       int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: map[string]*models.Application{}}
}

func (f *fakeApplicationRepo) Create(application *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.applications {
		if a.JobSeekerID == application.JobSeekerID && a.JobPostingID == application.JobPostingID {
			return repositories.ErrDuplicateApplication
		}
	}
	f.nextID++
	application.ID = fmt.Sprintf("application-%d", f.nextID)
	application.AppliedAt = time.Now()
	copied := *application
	f.applications[application.ID] = &copied
	return nil
}

func (f *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	application, ok := f.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *application
	return &copied, nil
}

func (f *fakeApplicationRepo) FindBySeekerAndPosting(jobSeekerID, jobPostingID string) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.applications {
		if a.JobSeekerID == jobSeekerID && a.JobPostingID == jobPostingID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (f *fakeApplicationRepo) FindByJobSeekerID(jobSeekerID string) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Application{}
	for _, a := range f.applications {
		if a.JobSeekerID == jobSeekerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) FindByJobPostingID(jobPostingID string) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Application{}
	for _, a := range f.applications {
		if a.JobPostingID == jobPostingID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) Update(application *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.applications[application.ID]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	appliedAt := existing.AppliedAt
	copied := *application
	copied.AppliedAt = appliedAt
	f.applications[application.ID] = &copied
	return nil
}

func (f *fakeApplicationRepo) Delete(jobSeekerID, applicationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.applications[applicationID]; ok && a.JobSeekerID == jobSeekerID {
		delete(f.applications, applicationID)
		return nil
	}
	return repositories.ErrApplicationNotFound
}

// fakeEmailSender records every send so tests can assert notifications.
type fakeEmailSender struct {
	mu      sync.Mutex
	sent    []sentEmail
	signals chan struct{}
}

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

func newFakeEmailSender() *fakeEmailSender {
	return &fakeEmailSender{signals: make(chan struct{}, 100)}
}

func (f *fakeEmailSender) Send(to, subject, body string) error {
	f.mu.Lock()
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, Body: body})
	f.mu.Unlock()
	f.signals <- struct{}{}
	return nil
}

// waitForSend blocks until one async send lands or the timeout fires.
func (f *fakeEmailSender) waitForSend(timeout time.Duration) bool {
	select {
	case <-f.signals:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (f *fakeEmailSender) sentEmails() []sentEmail {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]sentEmail, len(f.sent))
	copy(out, f.sent)
	return out
}
