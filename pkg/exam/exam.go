// Package exam holds the exam record and its loose row form.
package exam

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// Row field names, shared by every persistence backend.
const (
	FieldID      = "id"
	FieldSubject = "subject"
	FieldDate    = "date"
	FieldDesc    = "desc"
	FieldNote    = "note"
	FieldOwner   = "owner"
)

// Exam is one scheduled exam. Records are never edited in place; an exam is
// added and later deleted.
type Exam struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Subject string `json:"subject" yaml:"subject"`
	Date    string `json:"date" yaml:"date"`
	Desc    string `json:"desc" yaml:"desc"`
	Note    string `json:"note" yaml:"note"`
	Owner   string `json:"owner,omitempty" yaml:"owner,omitempty"`
}

func New(subject, date, desc, note string) Exam {
	return Exam{
		Subject: subject,
		Date:    date,
		Desc:    desc,
		Note:    note,
	}
}

// NewID returns a fresh surrogate key.
func NewID() string {
	return uuid.New().String()
}

// WithID returns e with an ID, generating one if it has none.
func (e Exam) WithID() Exam {
	if e.ID == "" {
		e.ID = NewID()
	}
	return e
}

// rowNamespace scopes the IDs derived for rows stored without one.
var rowNamespace = uuid.MustParse("5b0c1f4e-2d7a-4c9e-9a61-3f8e2b7d4c10")

// WithRowID returns e with an ID, deriving one from its position in storage
// and its content when it has none. The same stored row gets the same ID on
// every read, so it can be named before anything is written back.
func (e Exam) WithRowID(position int) Exam {
	if e.ID != "" {
		return e
	}
	key := strings.Join([]string{strconv.Itoa(position), e.Subject, e.Date, e.Desc, e.Note, e.Owner}, "\x00")
	e.ID = uuid.NewSHA1(rowNamespace, []byte(key)).String()
	return e
}

// SameContent reports whether the user-visible fields match, ignoring ID.
func (e Exam) SameContent(o Exam) bool {
	return e.Subject == o.Subject &&
		e.Date == o.Date &&
		e.Desc == o.Desc &&
		e.Note == o.Note &&
		e.Owner == o.Owner
}

// Matches is the identity used for deletion: the surrogate key when the
// target has one, full field equality otherwise.
func (e Exam) Matches(target Exam) bool {
	if target.ID != "" {
		return e.ID == target.ID
	}
	return e.SameContent(target)
}

func (e Exam) String() string {
	return fmt.Sprintf("%s - %s - %s", e.Subject, e.Date, e.Desc)
}

// FromRow converts a loosely typed row. Missing fields are empty text and
// non-string scalars are rendered as text.
func FromRow(row map[string]any) Exam {
	return Exam{
		ID:      field(row, FieldID),
		Subject: field(row, FieldSubject),
		Date:    field(row, FieldDate),
		Desc:    field(row, FieldDesc),
		Note:    field(row, FieldNote),
		Owner:   field(row, FieldOwner),
	}
}

// Row is the inverse of FromRow. Empty id and owner are left out.
func (e Exam) Row() map[string]any {
	row := map[string]any{
		FieldSubject: e.Subject,
		FieldDate:    e.Date,
		FieldDesc:    e.Desc,
		FieldNote:    e.Note,
	}
	if e.ID != "" {
		row[FieldID] = e.ID
	}
	if e.Owner != "" {
		row[FieldOwner] = e.Owner
	}
	return row
}

func field(row map[string]any, key string) string {
	v, ok := row[key]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
