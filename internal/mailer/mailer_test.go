package mailer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/texasfightcollective/fight-night-api/internal/config"
	"github.com/texasfightcollective/fight-night-api/internal/domain"
)

func TestApplicationConfirmation_IncludesDetails(t *testing.T) {
	html := ApplicationConfirmation(domain.FighterApplication{
		FirstName:  "Jordan",
		LastName:   "Reyes",
		Email:      "jordan@example.com",
		Phone:      "5125550187",
		JobCompany: "Accountant / BigFour",
		Weight:     "185",
		Height:     "71",
	})

	assert.Contains(t, html, "Dear Jordan Reyes,")
	assert.Contains(t, html, "jordan@example.com")
	assert.Contains(t, html, "185 lbs")
	assert.Contains(t, html, "71 inches")
	assert.Contains(t, html, "Accountant / BigFour")
}

func TestNominationTemplates_AddressTheRightPerson(t *testing.T) {
	nom := domain.FighterNomination{
		YourName:     "Sam",
		NomineeName:  "Alex",
		YourEmail:    "sam@example.com",
		NomineeEmail: "alex@example.com",
	}

	nominator := NominatorConfirmation(nom)
	assert.Contains(t, nominator, "Dear Sam,")
	assert.Contains(t, nominator, "your nomination of Alex")

	nominee := NomineeNotification(nom)
	assert.Contains(t, nominee, "Dear Alex,")
	assert.Contains(t, nominee, "Sam has nominated you")
}

func TestTemplates_EscapeUserHTML(t *testing.T) {
	html := ApplicationConfirmation(domain.FighterApplication{
		FirstName: `<script>alert("x")</script>`,
		LastName:  "Reyes",
	})
	assert.NotContains(t, html, "<script>")
}

func TestSignupWelcome_HasUnsubscribeFooter(t *testing.T) {
	html := SignupWelcome()
	assert.True(t, strings.Contains(html, "UNSUBSCRIBE"))
}

func TestSend_UnreachableRelayReturnsFalse(t *testing.T) {
	m := New(config.EmailConfig{
		Host: "127.0.0.1",
		Port: 1, // nothing listens here
		From: "info@texasfightcollective.com",
	})
	m.dialTimeout = 200 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	sent := m.Send(ctx, "someone@example.com", SubjectSignup, SignupWelcome())
	assert.False(t, sent, "unreachable relay must report false, not error")
}
