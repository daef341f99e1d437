package domain

import "time"

// FighterApplication is a submission from someone who wants to fight.
// Field names follow the public form payload; `_id` and `created_at` are
// server-assigned. Records are immutable once created.
type FighterApplication struct {
	ID         string    `json:"_id,omitempty" bson:"-"`
	FirstName  string    `json:"firstName" bson:"firstName"`
	LastName   string    `json:"lastName" bson:"lastName"`
	Email      string    `json:"email" bson:"email"`
	Phone      string    `json:"phone" bson:"phone"`
	JobCompany string    `json:"jobCompany" bson:"jobCompany"`
	Weight     string    `json:"weight" bson:"weight"`
	Height     string    `json:"height" bson:"height"`
	Experience string    `json:"experience" bson:"experience"`
	Why        string    `json:"why" bson:"why"`
	Charity    string    `json:"charity,omitempty" bson:"charity,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// FighterNomination is a submission nominating someone else to fight.
type FighterNomination struct {
	ID           string    `json:"_id,omitempty" bson:"-"`
	YourName     string    `json:"yourName" bson:"yourName"`
	YourEmail    string    `json:"yourEmail" bson:"yourEmail"`
	NomineeName  string    `json:"nomineeName" bson:"nomineeName"`
	NomineeEmail string    `json:"nomineeEmail" bson:"nomineeEmail"`
	NomineePhone string    `json:"nomineePhone,omitempty" bson:"nomineePhone,omitempty"`
	Reason       string    `json:"reason" bson:"reason"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// EmailSignup is a mailing-list entry. The email is unique across the
// collection, enforced by a pre-insert probe rather than a store index.
type EmailSignup struct {
	ID        string    `json:"_id,omitempty" bson:"-"`
	Email     string    `json:"email" bson:"email"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// RequiredFields returns the application's required fields in validation
// order, paired with their submitted values.
func (a FighterApplication) RequiredFields() []Field {
	return []Field{
		{"firstName", a.FirstName},
		{"lastName", a.LastName},
		{"email", a.Email},
		{"phone", a.Phone},
		{"jobCompany", a.JobCompany},
		{"weight", a.Weight},
		{"height", a.Height},
		{"experience", a.Experience},
		{"why", a.Why},
	}
}

// RequiredFields returns the nomination's required fields in validation order.
func (n FighterNomination) RequiredFields() []Field {
	return []Field{
		{"yourName", n.YourName},
		{"yourEmail", n.YourEmail},
		{"nomineeName", n.NomineeName},
		{"nomineeEmail", n.NomineeEmail},
		{"reason", n.Reason},
	}
}

// Field is one named form value.
type Field struct {
	Name  string
	Value string
}
