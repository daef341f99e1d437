// Package intake implements the validate → persist → notify workflow behind
// each form endpoint. Persistence is the source of truth; the confirmation
// email is a detached advisory action whose outcome is reported, never
// awaited for correctness.
package intake

import (
	"context"
	"fmt"

	"github.com/texasfightcollective/fight-night-api/internal/domain"
	"github.com/texasfightcollective/fight-night-api/internal/mailer"
	"github.com/texasfightcollective/fight-night-api/internal/pkg/logger"
	"github.com/texasfightcollective/fight-night-api/internal/pkg/metrics"
	"github.com/texasfightcollective/fight-night-api/internal/store"
	"github.com/texasfightcollective/fight-night-api/internal/validate"
)

// ValidationError is a client input error. Its message is shown to the
// submitter verbatim, so it always names the offending field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Service orchestrates one submission at a time. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	store   store.Store
	sender  mailer.Sender
	metrics *metrics.Metrics
}

// NewService creates an intake service with its collaborators injected.
func NewService(st store.Store, sender mailer.Sender, m *metrics.Metrics) *Service {
	return &Service{store: st, sender: sender, metrics: m}
}

// ApplicationResult reports a persisted fighter application.
type ApplicationResult struct {
	ID        string
	EmailSent bool
}

// NominationResult reports a persisted nomination and both send outcomes.
type NominationResult struct {
	ID                 string
	NominatorEmailSent bool
	NomineeEmailSent   bool
}

// SignupResult reports a persisted mailing-list entry.
type SignupResult struct {
	ID        string
	EmailSent bool
}

// SubmitApplication validates and persists a fighter application, then sends
// the applicant a confirmation. A *ValidationError return means nothing was
// written and nothing was sent; any other error is a store fault.
func (s *Service) SubmitApplication(ctx context.Context, app domain.FighterApplication) (*ApplicationResult, error) {
	for _, f := range app.RequiredFields() {
		if f.Value == "" {
			s.metrics.SubmissionsRejected.WithLabelValues("application").Inc()
			return nil, invalid("Missing required field: %s", f.Name)
		}
	}
	if !validate.Email(app.Email) {
		s.metrics.SubmissionsRejected.WithLabelValues("application").Inc()
		return nil, invalid("Invalid email format")
	}
	if !validate.Phone(app.Phone) {
		s.metrics.SubmissionsRejected.WithLabelValues("application").Inc()
		return nil, invalid("Phone number must be 10 digits")
	}

	id, err := s.store.InsertApplication(ctx, app)
	if err != nil {
		return nil, err
	}
	s.metrics.SubmissionsAccepted.WithLabelValues("application").Inc()
	logger.Info("fighter application received", "id", id, "email", app.Email)

	sent := s.notify(ctx, app.Email, mailer.SubjectApplication, mailer.ApplicationConfirmation(app))

	return &ApplicationResult{ID: id, EmailSent: sent}, nil
}

// SubmitNomination validates and persists a nomination, then notifies the
// nominator and the nominee independently.
func (s *Service) SubmitNomination(ctx context.Context, nom domain.FighterNomination) (*NominationResult, error) {
	for _, f := range nom.RequiredFields() {
		if f.Value == "" {
			s.metrics.SubmissionsRejected.WithLabelValues("nomination").Inc()
			return nil, invalid("Missing required field: %s", f.Name)
		}
	}
	if !validate.Email(nom.YourEmail) {
		s.metrics.SubmissionsRejected.WithLabelValues("nomination").Inc()
		return nil, invalid("Invalid nominator email format")
	}
	if !validate.Email(nom.NomineeEmail) {
		s.metrics.SubmissionsRejected.WithLabelValues("nomination").Inc()
		return nil, invalid("Invalid nominee email format")
	}

	id, err := s.store.InsertNomination(ctx, nom)
	if err != nil {
		return nil, err
	}
	s.metrics.SubmissionsAccepted.WithLabelValues("nomination").Inc()
	logger.Info("fighter nomination received", "id", id, "nominator_email", nom.YourEmail, "nominee_email", nom.NomineeEmail)

	nominatorSent := s.notify(ctx, nom.YourEmail, mailer.SubjectNominator, mailer.NominatorConfirmation(nom))
	nomineeSent := s.notify(ctx, nom.NomineeEmail, mailer.SubjectNominee, mailer.NomineeNotification(nom))

	return &NominationResult{
		ID:                 id,
		NominatorEmailSent: nominatorSent,
		NomineeEmailSent:   nomineeSent,
	}, nil
}

// SubmitSignup validates a mailing-list signup, rejects duplicates, persists
// the entry, and sends the welcome email.
//
// The duplicate check is a read-then-write with no store-level constraint:
// two concurrent signups for the same address can both pass the probe and
// both insert. That window is inherited behavior and is deliberately kept.
func (s *Service) SubmitSignup(ctx context.Context, sg domain.EmailSignup) (*SignupResult, error) {
	if sg.Email == "" {
		s.metrics.SubmissionsRejected.WithLabelValues("signup").Inc()
		return nil, invalid("Email is required")
	}
	if !validate.Email(sg.Email) {
		s.metrics.SubmissionsRejected.WithLabelValues("signup").Inc()
		return nil, invalid("Invalid email format")
	}

	exists, err := s.store.SignupExists(ctx, sg.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		s.metrics.SubmissionsRejected.WithLabelValues("signup").Inc()
		return nil, invalid("Email already registered")
	}

	id, err := s.store.InsertSignup(ctx, sg)
	if err != nil {
		return nil, err
	}
	s.metrics.SubmissionsAccepted.WithLabelValues("signup").Inc()
	logger.Info("mailing list signup received", "id", id, "email", sg.Email)

	sent := s.notify(ctx, sg.Email, mailer.SubjectSignup, mailer.SignupWelcome())

	return &SignupResult{ID: id, EmailSent: sent}, nil
}

func (s *Service) notify(ctx context.Context, to, subject, html string) bool {
	sent := s.sender.Send(ctx, to, subject, html)
	if sent {
		s.metrics.EmailsSent.Inc()
	} else {
		s.metrics.EmailsFailed.Inc()
	}
	return sent
}
