package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/magnolias-hr/magnolias-api/internal/apperrors"
	"github.com/magnolias-hr/magnolias-api/internal/clients"
	"github.com/magnolias-hr/magnolias-api/internal/dtos"
	"github.com/magnolias-hr/magnolias-api/internal/models"
)

// WorkflowTrigger fires the primary n8n analysis for an application.
type WorkflowTrigger interface {
	TriggerAnalysis(ctx context.Context, applicationID uint) error
}

// Evaluator is the fallback scoring path. Its implementation substitutes a
// neutral default result instead of returning errors.
type Evaluator interface {
	Evaluate(ctx context.Context, req clients.EvaluationRequest) clients.EvaluationResult
}

type ApplicationService struct {
	apps      ApplicationRepository
	postings  PostingRepository
	workflow  WorkflowTrigger
	evaluator Evaluator
}

func NewApplicationService(apps ApplicationRepository, postings PostingRepository, workflow WorkflowTrigger, evaluator Evaluator) *ApplicationService {
	return &ApplicationService{apps: apps, postings: postings, workflow: workflow, evaluator: evaluator}
}

// Submit persists the application and returns it immediately. The
// evaluation trigger runs detached so it never delays the response; all of
// its failures are handled inside the goroutine.
func (s *ApplicationService) Submit(ctx context.Context, applicantID uint, req *dtos.CreateApplicationRequest) (*models.Application, error) {
	if _, err := s.postings.FindByID(ctx, req.PostingID); err != nil {
		return nil, err
	}

	if _, err := s.apps.FindByApplicantAndPosting(ctx, applicantID, req.PostingID); err == nil {
		return nil, fmt.Errorf("%w: already applied to this posting", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	app := &models.Application{
		ApplicantID: applicantID,
		PostingID:   req.PostingID,
		Answers:     req.Answers,
		Status:      models.ApplicationPending,
	}
	// A concurrent identical submission slips past the pre-check; the
	// composite unique index turns it into a conflict here.
	if err := s.apps.Create(ctx, app); err != nil {
		return nil, err
	}

	go s.evaluate(app.ID)

	return s.apps.FindByID(ctx, app.ID)
}

// evaluate runs the detached trigger chain: primary webhook, then the
// fallback scorer. Nothing propagates past this method; the deliberate
// policy is one fallback attempt and no retries.
func (s *ApplicationService) evaluate(applicationID uint) {
	ctx := context.Background()
	if err := s.workflow.TriggerAnalysis(ctx, applicationID); err != nil {
		log.Printf("Workflow trigger failed for application %d: %v", applicationID, err)
		if err := s.FallbackEvaluate(ctx, applicationID); err != nil {
			log.Printf("Fallback evaluation failed for application %d: %v", applicationID, err)
		}
	}
}

// FallbackEvaluate scores the application through the direct API. The
// evaluator substitutes the neutral default result on failure, so the
// application always ends up evaluated with a score and feedback.
func (s *ApplicationService) FallbackEvaluate(ctx context.Context, id uint) error {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return err
	}

	result := s.evaluator.Evaluate(ctx, clients.EvaluationRequest{
		CVURL:        app.Applicant.CVURL,
		Answers:      app.Answers,
		PostingID:    app.PostingID,
		Requirements: app.Posting.Requirements,
		Skills:       app.Applicant.Skills,
	})

	return s.apps.UpdateEvaluation(ctx, id, result.Score, result.Feedback, models.ApplicationEvaluated)
}

func (s *ApplicationService) Get(ctx context.Context, id uint) (*models.Application, error) {
	return s.apps.FindByID(ctx, id)
}

// ListByPosting returns a posting's applications, most promising first.
func (s *ApplicationService) ListByPosting(ctx context.Context, postingID uint) ([]models.Application, error) {
	apps, err := s.apps.ListByPosting(ctx, postingID)
	if err != nil {
		return nil, err
	}
	sortByScore(apps)
	return apps, nil
}

func (s *ApplicationService) ListByApplicant(ctx context.Context, applicantID uint) ([]models.Application, error) {
	apps, err := s.apps.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].SubmittedAt.After(apps[j].SubmittedAt)
	})
	return apps, nil
}

func (s *ApplicationService) ListByCompany(ctx context.Context, companyID uint) ([]models.Application, error) {
	apps, err := s.apps.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	sortByScore(apps)
	return apps, nil
}

// UpdateStatus writes a known status directly; there is no transition
// machine. Unknown values are logged and skipped, never rejected, because
// partial-update callers send fields this service does not own.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Application, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.IsKnownApplicationStatus(status) {
		log.Printf("Ignoring unknown status %q for application %d", status, id)
		return app, nil
	}
	if err := s.apps.Patch(ctx, id, map[string]any{"status": status}); err != nil {
		return nil, err
	}
	return s.apps.FindByID(ctx, id)
}

// Update is the loose partial update used by the evaluation callback. Each
// field is validated and applied independently.
func (s *ApplicationService) Update(ctx context.Context, id uint, req *dtos.UpdateApplicationRequest) (*models.Application, error) {
	if _, err := s.apps.FindByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.AIScore != nil {
		fields["ai_score"] = *req.AIScore
	}
	if req.AIFeedback != nil {
		fields["ai_feedback"] = *req.AIFeedback
	}
	if req.Status != nil {
		if models.IsKnownApplicationStatus(*req.Status) {
			fields["status"] = *req.Status
		} else {
			log.Printf("Ignoring unknown status %q for application %d", *req.Status, id)
		}
	}
	if req.Answers != nil {
		fields["answers"] = req.Answers
	}

	if len(fields) > 0 {
		if err := s.apps.Patch(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.apps.FindByID(ctx, id)
}

// sortByScore orders by descending AI score with unscored applications
// last, breaking ties by most recent submission.
func sortByScore(apps []models.Application) {
	sort.SliceStable(apps, func(i, j int) bool {
		si, sj := apps[i].AIScore, apps[j].AIScore
		switch {
		case si == nil && sj == nil:
			// fall through to recency
		case si == nil:
			return false
		case sj == nil:
			return true
		case *si != *sj:
			return *si > *sj
		}
		return apps[i].SubmittedAt.After(apps[j].SubmittedAt)
	})
}
