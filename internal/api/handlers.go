package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/texasfightcollective/fight-night-api/internal/domain"
	"github.com/texasfightcollective/fight-night-api/internal/intake"
	"github.com/texasfightcollective/fight-night-api/internal/pkg/httputil"
	"github.com/texasfightcollective/fight-night-api/internal/store"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	intake *intake.Service
	store  store.Store
}

// NewHandlers creates the handler set.
func NewHandlers(svc *intake.Service, st store.Store) *Handlers {
	return &Handlers{intake: svc, store: st}
}

// rejection is the 400 body for client input errors. The message names the
// offending field and is rendered verbatim by the form.
type rejection struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// applicationResponse is the success body for a fighter application.
type applicationResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ID        string `json:"id"`
	EmailSent bool   `json:"email_sent"`
}

// nominationResponse is the success body for a fighter nomination. Both send
// flags are always present, whatever the relay did.
type nominationResponse struct {
	Success            bool   `json:"success"`
	Message            string `json:"message"`
	ID                 string `json:"id"`
	NominatorEmailSent bool   `json:"nominator_email_sent"`
	NomineeEmailSent   bool   `json:"nominee_email_sent"`
}

// signupResponse is the success body for a mailing-list signup.
type signupResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ID        string `json:"id"`
	EmailSent bool   `json:"email_sent"`
}

// Root returns the service banner with the public endpoint list.
//
//	GET /
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]any{
		"status":  "ok",
		"message": "White Collar Fight Night API is running",
		"endpoints": []string{
			"/api/health",
			"/api/fighter-application",
			"/api/fighter-nomination",
			"/api/email-signup",
		},
	})
}

// Health reports that the API is up.
//
//	GET /api/health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]any{
		"status":    "ok",
		"message":   "API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// SubmitFighterApplication accepts a fighter application.
//
//	POST /api/fighter-application
func (h *Handlers) SubmitFighterApplication(w http.ResponseWriter, r *http.Request) {
	var app domain.FighterApplication
	if !httputil.Decode(w, r, &app) {
		return
	}

	res, err := h.intake.SubmitApplication(r.Context(), app)
	if err != nil {
		h.writeIntakeError(w, err)
		return
	}

	httputil.OK(w, applicationResponse{
		Success:   true,
		Message:   "Fighter application submitted successfully",
		ID:        res.ID,
		EmailSent: res.EmailSent,
	})
}

// SubmitFighterNomination accepts a fighter nomination.
//
//	POST /api/fighter-nomination
func (h *Handlers) SubmitFighterNomination(w http.ResponseWriter, r *http.Request) {
	var nom domain.FighterNomination
	if !httputil.Decode(w, r, &nom) {
		return
	}

	res, err := h.intake.SubmitNomination(r.Context(), nom)
	if err != nil {
		h.writeIntakeError(w, err)
		return
	}

	httputil.OK(w, nominationResponse{
		Success:            true,
		Message:            "Fighter nomination submitted successfully",
		ID:                 res.ID,
		NominatorEmailSent: res.NominatorEmailSent,
		NomineeEmailSent:   res.NomineeEmailSent,
	})
}

// SubmitEmailSignup accepts a mailing-list signup.
//
//	POST /api/email-signup
func (h *Handlers) SubmitEmailSignup(w http.ResponseWriter, r *http.Request) {
	var sg domain.EmailSignup
	if !httputil.Decode(w, r, &sg) {
		return
	}

	res, err := h.intake.SubmitSignup(r.Context(), sg)
	if err != nil {
		h.writeIntakeError(w, err)
		return
	}

	httputil.OK(w, signupResponse{
		Success:   true,
		Message:   "Email signup successful",
		ID:        res.ID,
		EmailSent: res.EmailSent,
	})
}

// writeIntakeError maps a validation failure to a field-specific 400 and
// anything else to a generic 500.
func (h *Handlers) writeIntakeError(w http.ResponseWriter, err error) {
	var verr *intake.ValidationError
	if errors.As(err, &verr) {
		httputil.BadRequest(w, rejection{Success: false, Message: verr.Message})
		return
	}
	httputil.InternalError(w, err)
}

// ListFighterApplications returns every application, newest first.
//
//	GET /api/admin/fighter-applications
func (h *Handlers) ListFighterApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.store.ListApplications(r.Context())
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	if apps == nil {
		apps = []domain.FighterApplication{}
	}
	httputil.OK(w, apps)
}

// ListFighterNominations returns every nomination, newest first.
//
//	GET /api/admin/fighter-nominations
func (h *Handlers) ListFighterNominations(w http.ResponseWriter, r *http.Request) {
	noms, err := h.store.ListNominations(r.Context())
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	if noms == nil {
		noms = []domain.FighterNomination{}
	}
	httputil.OK(w, noms)
}

// ListEmailSignups returns every mailing-list entry, newest first.
//
//	GET /api/admin/email-list
func (h *Handlers) ListEmailSignups(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListSignups(r.Context())
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	if list == nil {
		list = []domain.EmailSignup{}
	}
	httputil.OK(w, list)
}
