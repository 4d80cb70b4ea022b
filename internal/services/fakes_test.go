package services

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/datatypes"

	"github.com/magnolias-hr/magnolias-api/internal/apperrors"
	"github.com/magnolias-hr/magnolias-api/internal/clients"
	"github.com/magnolias-hr/magnolias-api/internal/models"
)

// In-memory repository fakes shared by the service tests.

type fakeCompanyRepo struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]*models.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{items: make(map[uint]*models.Company)}
}

func (r *fakeCompanyRepo) Create(ctx context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.Email == company.Email {
			return fmt.Errorf("%w: company already exists", apperrors.ErrConflict)
		}
	}
	r.seq++
	company.ID = r.seq
	clone := *company
	r.items[company.ID] = &clone
	return nil
}

func (r *fakeCompanyRepo) FindAll(ctx context.Context) ([]models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Company
	for _, c := range r.items {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCompanyRepo) FindByID(ctx context.Context, id uint) (*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: company not found", apperrors.ErrNotFound)
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCompanyRepo) FindByEmail(ctx context.Context, email string) (*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.Email == email {
			clone := *c
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("%w: company not found", apperrors.ErrNotFound)
}

func (r *fakeCompanyRepo) Update(ctx context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[company.ID]; !ok {
		return fmt.Errorf("%w: company not found", apperrors.ErrNotFound)
	}
	clone := *company
	r.items[company.ID] = &clone
	return nil
}

func (r *fakeCompanyRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return fmt.Errorf("%w: company not found", apperrors.ErrNotFound)
	}
	c.Status = status
	return nil
}

type fakeApplicantRepo struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]*models.Applicant
}

func newFakeApplicantRepo() *fakeApplicantRepo {
	return &fakeApplicantRepo{items: make(map[uint]*models.Applicant)}
}

func (r *fakeApplicantRepo) Create(ctx context.Context, applicant *models.Applicant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.Email == applicant.Email {
			return fmt.Errorf("%w: applicant already exists", apperrors.ErrConflict)
		}
	}
	r.seq++
	applicant.ID = r.seq
	clone := *applicant
	r.items[applicant.ID] = &clone
	return nil
}

func (r *fakeApplicantRepo) FindAll(ctx context.Context) ([]models.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Applicant
	for _, a := range r.items {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeApplicantRepo) FindByID(ctx context.Context, id uint) (*models.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: applicant not found", apperrors.ErrNotFound)
	}
	clone := *a
	return &clone, nil
}

func (r *fakeApplicantRepo) FindByEmail(ctx context.Context, email string) (*models.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("%w: applicant not found", apperrors.ErrNotFound)
}

func (r *fakeApplicantRepo) Update(ctx context.Context, applicant *models.Applicant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[applicant.ID]; !ok {
		return fmt.Errorf("%w: applicant not found", apperrors.ErrNotFound)
	}
	clone := *applicant
	r.items[applicant.ID] = &clone
	return nil
}

func (r *fakeApplicantRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return fmt.Errorf("%w: applicant not found", apperrors.ErrNotFound)
	}
	a.Status = status
	return nil
}

func (r *fakeApplicantRepo) UpdateCVURL(ctx context.Context, id uint, cvURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return fmt.Errorf("%w: applicant not found", apperrors.ErrNotFound)
	}
	a.CVURL = cvURL
	return nil
}

type fakePostingRepo struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]*models.Posting
}

func newFakePostingRepo() *fakePostingRepo {
	return &fakePostingRepo{items: make(map[uint]*models.Posting)}
}

func (r *fakePostingRepo) Create(ctx context.Context, posting *models.Posting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	posting.ID = r.seq
	clone := *posting
	r.items[posting.ID] = &clone
	return nil
}

func (r *fakePostingRepo) FindAll(ctx context.Context, status string) ([]models.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Posting
	for _, p := range r.items {
		if status == "" || p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePostingRepo) FindByCompany(ctx context.Context, companyID uint) ([]models.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Posting
	for _, p := range r.items {
		if p.CompanyID == companyID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePostingRepo) FindByID(ctx context.Context, id uint) (*models.Posting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: posting not found", apperrors.ErrNotFound)
	}
	clone := *p
	return &clone, nil
}

func (r *fakePostingRepo) Update(ctx context.Context, posting *models.Posting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[posting.ID]; !ok {
		return fmt.Errorf("%w: posting not found", apperrors.ErrNotFound)
	}
	clone := *posting
	r.items[posting.ID] = &clone
	return nil
}

func (r *fakePostingRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return fmt.Errorf("%w: posting not found", apperrors.ErrNotFound)
	}
	p.Status = status
	return nil
}

type fakeApplicationRepo struct {
	mu    sync.Mutex
	seq   uint
	items map[uint]*models.Application

	applicants *fakeApplicantRepo
	postings   *fakePostingRepo

	// Signaled once per UpdateEvaluation so tests can wait for the
	// detached evaluation goroutine.
	evaluated chan struct{}
}

func newFakeApplicationRepo(applicants *fakeApplicantRepo, postings *fakePostingRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		items:      make(map[uint]*models.Application),
		applicants: applicants,
		postings:   postings,
		evaluated:  make(chan struct{}, 8),
	}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.ApplicantID == app.ApplicantID && a.PostingID == app.PostingID {
			return fmt.Errorf("%w: application already exists", apperrors.ErrConflict)
		}
	}
	r.seq++
	app.ID = r.seq
	clone := *app
	r.items[app.ID] = &clone
	return nil
}

// hydrate fills associations the way the gorm repository preloads them.
func (r *fakeApplicationRepo) hydrate(app models.Application) models.Application {
	if r.applicants != nil {
		if a, err := r.applicants.FindByID(context.Background(), app.ApplicantID); err == nil {
			app.Applicant = *a
		}
	}
	if r.postings != nil {
		if p, err := r.postings.FindByID(context.Background(), app.PostingID); err == nil {
			app.Posting = *p
		}
	}
	return app
}

func (r *fakeApplicationRepo) FindByID(ctx context.Context, id uint) (*models.Application, error) {
	r.mu.Lock()
	app, ok := r.items[id]
	if !ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: application not found", apperrors.ErrNotFound)
	}
	clone := *app
	r.mu.Unlock()
	hydrated := r.hydrate(clone)
	return &hydrated, nil
}

func (r *fakeApplicationRepo) FindByApplicantAndPosting(ctx context.Context, applicantID, postingID uint) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.ApplicantID == applicantID && a.PostingID == postingID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("%w: application not found", apperrors.ErrNotFound)
}

func (r *fakeApplicationRepo) ListByPosting(ctx context.Context, postingID uint) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.items {
		if a.PostingID == postingID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantID uint) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.items {
		if a.ApplicantID == applicantID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByCompany(ctx context.Context, companyID uint) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.items {
		if r.postings == nil {
			continue
		}
		if p, err := r.postings.FindByID(context.Background(), a.PostingID); err == nil && p.CompanyID == companyID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) Patch(ctx context.Context, id uint, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.items[id]
	if !ok {
		return fmt.Errorf("%w: application not found", apperrors.ErrNotFound)
	}
	if v, ok := fields["status"]; ok {
		app.Status = v.(string)
	}
	if v, ok := fields["ai_score"]; ok {
		score := v.(float64)
		app.AIScore = &score
	}
	if v, ok := fields["ai_feedback"]; ok {
		feedback := v.(string)
		app.AIFeedback = &feedback
	}
	if v, ok := fields["answers"]; ok {
		app.Answers = v.(datatypes.JSON)
	}
	return nil
}

func (r *fakeApplicationRepo) UpdateEvaluation(ctx context.Context, id uint, score float64, feedback, status string) error {
	r.mu.Lock()
	app, ok := r.items[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: application not found", apperrors.ErrNotFound)
	}
	app.AIScore = &score
	app.AIFeedback = &feedback
	app.Status = status
	r.mu.Unlock()
	r.evaluated <- struct{}{}
	return nil
}

// Outbound-call fakes.

type fakeWorkflow struct {
	mu    sync.Mutex
	err   error
	calls []uint
	done  chan struct{}
}

func newFakeWorkflow(err error) *fakeWorkflow {
	return &fakeWorkflow{err: err, done: make(chan struct{}, 8)}
}

func (w *fakeWorkflow) TriggerAnalysis(ctx context.Context, applicationID uint) error {
	w.mu.Lock()
	w.calls = append(w.calls, applicationID)
	w.mu.Unlock()
	w.done <- struct{}{}
	return w.err
}

func (w *fakeWorkflow) callCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.calls)
}

type fakeEvaluator struct {
	mu     sync.Mutex
	result clients.EvaluationResult
	calls  []clients.EvaluationRequest
}

func (e *fakeEvaluator) Evaluate(ctx context.Context, req clients.EvaluationRequest) clients.EvaluationResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, req)
	return e.result
}

func (e *fakeEvaluator) callCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}
