package intake

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texasfightcollective/fight-night-api/internal/domain"
	"github.com/texasfightcollective/fight-night-api/internal/pkg/metrics"
	"github.com/texasfightcollective/fight-night-api/internal/store"
)

// fakeSender records send attempts and answers with a scripted outcome.
type fakeSender struct {
	ok    bool
	sends []string // recipient addresses in order
}

func (f *fakeSender) Send(_ context.Context, to, _, _ string) bool {
	f.sends = append(f.sends, to)
	return f.ok
}

// failingStore errors on every operation, for store-fault paths.
type failingStore struct{ store.Store }

func (failingStore) InsertApplication(context.Context, domain.FighterApplication) (string, error) {
	return "", errors.New("connection reset")
}
func (failingStore) SignupExists(context.Context, string) (bool, error) {
	return false, errors.New("connection reset")
}

func newTestService(ok bool) (*Service, *store.Memory, *fakeSender) {
	st := store.NewMemory()
	sender := &fakeSender{ok: ok}
	return NewService(st, sender, metrics.NewForTest()), st, sender
}

func validApplication() domain.FighterApplication {
	return domain.FighterApplication{
		FirstName:  "Jordan",
		LastName:   "Reyes",
		Email:      "jordan@example.com",
		Phone:      "(512) 555-0187",
		JobCompany: "Senior Accountant at Ledger & Co",
		Weight:     "185",
		Height:     "71",
		Experience: "None",
		Why:        "Raising money for the children's hospital",
	}
}

func validNomination() domain.FighterNomination {
	return domain.FighterNomination{
		YourName:     "Sam",
		YourEmail:    "sam@example.com",
		NomineeName:  "Alex",
		NomineeEmail: "alex@example.com",
		Reason:       "Toughest person on our sales floor",
	}
}

func TestSubmitApplication_Valid(t *testing.T) {
	svc, st, sender := newTestService(true)

	res, err := svc.SubmitApplication(context.Background(), validApplication())
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.True(t, res.EmailSent)
	assert.Equal(t, []string{"jordan@example.com"}, sender.sends)

	apps, err := st.ListApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, res.ID, apps[0].ID)
}

func TestSubmitApplication_MissingFieldNamesIt(t *testing.T) {
	svc, st, sender := newTestService(true)

	app := validApplication()
	app.Why = ""
	_, err := svc.SubmitApplication(context.Background(), app)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Missing required field: why", verr.Message)

	// Rejection must not touch the store or the relay.
	apps, _ := st.ListApplications(context.Background())
	assert.Empty(t, apps)
	assert.Empty(t, sender.sends)
}

func TestSubmitApplication_FieldOrderFirstFailureWins(t *testing.T) {
	svc, _, _ := newTestService(true)

	app := validApplication()
	app.FirstName = ""
	app.Why = ""
	_, err := svc.SubmitApplication(context.Background(), app)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Missing required field: firstName", verr.Message)
}

func TestSubmitApplication_BadEmail(t *testing.T) {
	svc, _, sender := newTestService(true)

	app := validApplication()
	app.Email = "not-an-email"
	_, err := svc.SubmitApplication(context.Background(), app)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid email format", verr.Message)
	assert.Empty(t, sender.sends)
}

func TestSubmitApplication_BadPhone(t *testing.T) {
	svc, _, _ := newTestService(true)

	app := validApplication()
	app.Phone = "12345"
	_, err := svc.SubmitApplication(context.Background(), app)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Phone number must be 10 digits", verr.Message)
}

func TestSubmitApplication_FailedEmailStillSucceeds(t *testing.T) {
	svc, st, _ := newTestService(false) // relay always fails

	res, err := svc.SubmitApplication(context.Background(), validApplication())
	require.NoError(t, err, "a dead relay must never fail the request")
	assert.False(t, res.EmailSent)

	apps, _ := st.ListApplications(context.Background())
	assert.Len(t, apps, 1, "record stays committed regardless of delivery")
}

func TestSubmitApplication_StoreFaultIsNotValidationError(t *testing.T) {
	svc := NewService(failingStore{}, &fakeSender{ok: true}, metrics.NewForTest())

	_, err := svc.SubmitApplication(context.Background(), validApplication())
	require.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestSubmitNomination_Valid_TwoEmails(t *testing.T) {
	svc, st, sender := newTestService(true)

	res, err := svc.SubmitNomination(context.Background(), validNomination())
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.True(t, res.NominatorEmailSent)
	assert.True(t, res.NomineeEmailSent)
	assert.Equal(t, []string{"sam@example.com", "alex@example.com"}, sender.sends)

	noms, _ := st.ListNominations(context.Background())
	assert.Len(t, noms, 1)
}

func TestSubmitNomination_BothSendFlagsPresentWhenRelayDown(t *testing.T) {
	svc, _, _ := newTestService(false)

	res, err := svc.SubmitNomination(context.Background(), validNomination())
	require.NoError(t, err)
	assert.False(t, res.NominatorEmailSent)
	assert.False(t, res.NomineeEmailSent)
}

func TestSubmitNomination_EmailErrorsNameTheParty(t *testing.T) {
	svc, _, _ := newTestService(true)
	ctx := context.Background()

	nom := validNomination()
	nom.YourEmail = "bad"
	_, err := svc.SubmitNomination(ctx, nom)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid nominator email format", verr.Message)

	nom = validNomination()
	nom.NomineeEmail = "bad"
	_, err = svc.SubmitNomination(ctx, nom)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid nominee email format", verr.Message)
}

func TestSubmitSignup_Valid(t *testing.T) {
	svc, _, sender := newTestService(true)

	res, err := svc.SubmitSignup(context.Background(), domain.EmailSignup{Email: "fan@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.True(t, res.EmailSent)
	assert.Equal(t, []string{"fan@example.com"}, sender.sends)
}

func TestSubmitSignup_EmptyEmail(t *testing.T) {
	svc, _, _ := newTestService(true)

	_, err := svc.SubmitSignup(context.Background(), domain.EmailSignup{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Email is required", verr.Message)
}

func TestSubmitSignup_DuplicateRejectedOnce(t *testing.T) {
	svc, st, _ := newTestService(true)
	ctx := context.Background()

	_, err := svc.SubmitSignup(ctx, domain.EmailSignup{Email: "fan@example.com"})
	require.NoError(t, err)

	_, err = svc.SubmitSignup(ctx, domain.EmailSignup{Email: "fan@example.com"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Email already registered", verr.Message)

	list, _ := st.ListSignups(ctx)
	assert.Len(t, list, 1, "collection holds exactly one entry for the address")
}

func TestSubmitSignup_StoreFaultOnProbe(t *testing.T) {
	svc := NewService(failingStore{}, &fakeSender{ok: true}, metrics.NewForTest())

	_, err := svc.SubmitSignup(context.Background(), domain.EmailSignup{Email: "fan@example.com"})
	require.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}
