package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
)

// In-memory fakes for the repository interfaces and the text model. They
// keep just enough state for the service tests to observe writes.

type fakeModel struct {
	generations []string
	embedding   []float32
	genErr      error
	embedErr    error

	generateCalls int
	prompts       []string
	embedCalls    int
}

func (m *fakeModel) Generate(_ context.Context, prompt string) (string, error) {
	m.generateCalls++
	m.prompts = append(m.prompts, prompt)
	if m.genErr != nil {
		return "", m.genErr
	}
	if len(m.generations) == 0 {
		return "", errors.New("fakeModel: no generation queued")
	}
	out := m.generations[0]
	m.generations = m.generations[1:]
	return out, nil
}

func (m *fakeModel) Embed(_ context.Context, _ string) ([]float32, error) {
	m.embedCalls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	if m.embedding == nil {
		return []float32{0.1, 0.2, 0.3}, nil
	}
	return m.embedding, nil
}

type fakeUserRepo struct {
	users  map[string]*models.User // keyed by email
	skills map[string][]models.UserSkill
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  map[string]*models.User{},
		skills: map[string][]models.UserSkill{},
	}
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	if user.ID == "" {
		r.nextID++
		user.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	r.users[user.Email] = user
	return user
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, exists := r.users[user.Email]; exists {
		return repositories.ErrUserAlreadyExists
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) UpdateFields(_ context.Context, userID string, fields map[string]interface{}) error {
	for _, u := range r.users {
		if u.ID != userID {
			continue
		}
		for key, value := range fields {
			str, _ := value.(string)
			switch key {
			case "name":
				u.Name = str
			case "about":
				u.About = str
			case "status":
				u.Status = models.UserStatus(str)
			case "resume_file":
				u.ResumeFile = str
			case "resume_json":
				u.ResumeJSON = str
			case "position":
				u.Position = str
			case "location":
				u.Location = str
			case "experience":
				u.Experience = str
			case "education":
				u.Education = str
			case "jobs":
				u.Jobs = str
			}
		}
		return nil
	}
	return repositories.ErrUserNotFound
}

func (r *fakeUserRepo) GetSkills(_ context.Context, userID string) ([]models.UserSkill, error) {
	return r.skills[userID], nil
}

func (r *fakeUserRepo) UpsertSkill(_ context.Context, skill *models.UserSkill) error {
	existing := r.skills[skill.UserID]
	for i := range existing {
		if strings.EqualFold(existing[i].Name, skill.Name) {
			existing[i].Level = skill.Level
			return nil
		}
	}
	r.skills[skill.UserID] = append(existing, *skill)
	return nil
}

type fakeJobRepo struct {
	jobs map[string]*models.EmployerJob
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*models.EmployerJob{}}
}

func (r *fakeJobRepo) FindAll(_ context.Context) ([]models.EmployerJob, error) {
	var out []models.EmployerJob
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (r *fakeJobRepo) FindByID(_ context.Context, id string) (*models.EmployerJob, error) {
	if j, ok := r.jobs[id]; ok {
		return j, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindByEmployer(_ context.Context, employerID string) ([]models.EmployerJob, error) {
	var out []models.EmployerJob
	for _, j := range r.jobs {
		if j.EmployerID == employerID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Search(_ context.Context, filter repositories.JobFilter) ([]models.EmployerJob, error) {
	return r.FindAll(context.Background())
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.EmployerJob) error {
	if job.ID == "" {
		job.ID = fmt.Sprintf("job-%d", len(r.jobs)+1)
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) UpdateFields(_ context.Context, jobID string, fields map[string]interface{}) error {
	if _, ok := r.jobs[jobID]; !ok {
		return repositories.ErrJobNotFound
	}
	return nil
}

func (r *fakeJobRepo) Delete(_ context.Context, jobID string) error {
	if _, ok := r.jobs[jobID]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, jobID)
	return nil
}

type fakeApplicationRepo struct {
	applications []models.UserEmployerJob
	nextID       int
}

func (r *fakeApplicationRepo) FindByUserAndJob(_ context.Context, userID, jobID string) (*models.UserEmployerJob, error) {
	for i := range r.applications {
		if r.applications[i].UserID == userID && r.applications[i].EmployerJobID == jobID {
			return &r.applications[i], nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindByUser(_ context.Context, userID string) ([]models.UserEmployerJob, error) {
	var out []models.UserEmployerJob
	for _, a := range r.applications {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) Create(_ context.Context, application *models.UserEmployerJob) error {
	r.nextID++
	application.ID = fmt.Sprintf("app-%d", r.nextID)
	r.applications = append(r.applications, *application)
	return nil
}

func (r *fakeApplicationRepo) DeleteByUserAndJob(_ context.Context, userID, jobID string) error {
	kept := r.applications[:0]
	for _, a := range r.applications {
		if a.UserID == userID && a.EmployerJobID == jobID {
			continue
		}
		kept = append(kept, a)
	}
	r.applications = kept
	return nil
}

type fakeAssessmentRepo struct {
	questions []models.UserSkillAssess
	bank      []models.SkillQuestion
	nextID    int
}

func (r *fakeAssessmentRepo) CountByUser(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, q := range r.questions {
		if q.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeAssessmentRepo) FindByUserAndVersion(_ context.Context, userID, version string) ([]models.UserSkillAssess, error) {
	var out []models.UserSkillAssess
	for _, q := range r.questions {
		if q.UserID == userID && q.Version == version {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeAssessmentRepo) CreateBatch(_ context.Context, questions []models.UserSkillAssess) error {
	for i := range questions {
		r.nextID++
		questions[i].ID = fmt.Sprintf("assess-%d", r.nextID)
		r.questions = append(r.questions, questions[i])
	}
	return nil
}

func (r *fakeAssessmentRepo) UpdateAnswer(_ context.Context, id, answerGiven string) error {
	for i := range r.questions {
		if r.questions[i].ID == id {
			r.questions[i].AnswerGiven = answerGiven
			return nil
		}
	}
	return nil
}

func (r *fakeAssessmentRepo) FindBank(_ context.Context, filters []repositories.BankFilter) ([]models.SkillQuestion, error) {
	var out []models.SkillQuestion
	for _, q := range r.bank {
		for _, f := range filters {
			if q.Topic == f.Topic && (f.Level == 0 || q.Level == f.Level) {
				out = append(out, q)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeAssessmentRepo) CreateBankBatch(_ context.Context, questions []models.SkillQuestion) error {
	r.bank = append(r.bank, questions...)
	return nil
}

type fakeGuidelineRepo struct {
	guidelines []models.Guideline
}

func (r *fakeGuidelineRepo) Create(_ context.Context, guideline *models.Guideline) error {
	r.guidelines = append(r.guidelines, *guideline)
	return nil
}

func (r *fakeGuidelineRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.guidelines)), nil
}

func (r *fakeGuidelineRepo) Nearest(_ context.Context, _ []float32, k int) ([]models.Guideline, error) {
	if k > len(r.guidelines) {
		k = len(r.guidelines)
	}
	return r.guidelines[:k], nil
}
