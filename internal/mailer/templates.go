package mailer

import (
	"bytes"
	"html/template"

	"github.com/texasfightcollective/fight-night-api/internal/domain"
)

// Subjects for the four confirmation messages.
const (
	SubjectApplication = "Your White Collar Fight Night Application"
	SubjectNominator   = "Your White Collar Fight Night Nomination"
	SubjectNominee     = "You've Been Nominated for White Collar Fight Night"
	SubjectSignup      = "Welcome to the White Collar Fight Night Mailing List"
)

var applicationTmpl = template.Must(template.New("application").Parse(`
<html>
<body>
    <h2>Thank You for Your Fighter Application!</h2>
    <p>Dear {{.FirstName}} {{.LastName}},</p>
    <p>We've received your application to participate in the White Collar Fight Night.
    Our team will review your information and get back to you soon with next steps.</p>

    <h3>Your Application Details:</h3>
    <ul>
        <li><strong>Name:</strong> {{.FirstName}} {{.LastName}}</li>
        <li><strong>Email:</strong> {{.Email}}</li>
        <li><strong>Phone:</strong> {{.Phone}}</li>
        <li><strong>Job/Company:</strong> {{.JobCompany}}</li>
        <li><strong>Weight:</strong> {{.Weight}} lbs</li>
        <li><strong>Height:</strong> {{.Height}} inches</li>
    </ul>

    <p>If you have any questions, please don't hesitate to contact us at info@texasfightcollective.com.</p>

    <p>Best regards,<br>
    The Texas Fight Collective Team</p>
</body>
</html>
`))

var nominatorTmpl = template.Must(template.New("nominator").Parse(`
<html>
<body>
    <h2>Thank You for Your Fighter Nomination!</h2>
    <p>Dear {{.YourName}},</p>
    <p>We've received your nomination of {{.NomineeName}} for the White Collar Fight Night.
    Our team will review the nomination and reach out to them soon.</p>

    <p>Thank you for helping us find great participants for our event!</p>

    <p>Best regards,<br>
    The Texas Fight Collective Team</p>
</body>
</html>
`))

var nomineeTmpl = template.Must(template.New("nominee").Parse(`
<html>
<body>
    <h2>You've Been Nominated for White Collar Fight Night!</h2>
    <p>Dear {{.NomineeName}},</p>
    <p>Good news! {{.YourName}} has nominated you to participate in Austin's White Collar Fight Night boxing event.</p>

    <p>White Collar Fight Night brings together professionals from various industries to step into the ring
    for charity. Our events showcase the determination and courage of everyday people who train for months
    to compete in a safe, regulated boxing environment.</p>

    <p>If you're interested in participating, please visit our website at texasfightcollective.com to learn more and submit an application.</p>

    <p>Best regards,<br>
    The Texas Fight Collective Team</p>
</body>
</html>
`))

// The signup welcome has no user-provided content, so it is a plain constant.
const signupHTML = `
<html>
<body>
    <h2>Welcome to the White Collar Fight Night Mailing List!</h2>
    <p>Thank you for signing up to receive updates about White Collar Fight Night events in Austin, Texas.</p>

    <p>We'll keep you informed about:</p>
    <ul>
        <li>Upcoming event dates and venues</li>
        <li>Ticket availability</li>
        <li>Fighter announcements</li>
        <li>Special promotions</li>
    </ul>

    <p>Stay tuned for exciting news coming your way soon!</p>

    <p>Best regards,<br>
    The Texas Fight Collective Team</p>

    <p style="font-size: 12px; color: #666;">
        If you didn't sign up for this mailing list, please disregard this email.<br>
        To unsubscribe, please reply with "UNSUBSCRIBE" in the subject line.
    </p>
</body>
</html>
`

// ApplicationConfirmation renders the applicant's confirmation email.
func ApplicationConfirmation(app domain.FighterApplication) string {
	return render(applicationTmpl, app)
}

// NominatorConfirmation renders the thank-you email for the nominator.
func NominatorConfirmation(nom domain.FighterNomination) string {
	return render(nominatorTmpl, nom)
}

// NomineeNotification renders the heads-up email for the nominee.
func NomineeNotification(nom domain.FighterNomination) string {
	return render(nomineeTmpl, nom)
}

// SignupWelcome renders the mailing-list welcome email.
func SignupWelcome() string {
	return signupHTML
}

func render(t *template.Template, data any) string {
	var buf bytes.Buffer
	// Templates are static and data is a plain struct; execution cannot fail
	// outside of a programming error.
	if err := t.Execute(&buf, data); err != nil {
		panic(err)
	}
	return buf.String()
}
