package lauds

import (
	"context"
	"encoding/json"
	"time"
)

// Speaker identifies who recites a verse or block.
type Speaker string

// Speaker constants. SpeakerNone marks the doxology, which is rendered as
// plain text without attribution.
const (
	SpeakerNone   Speaker = ""
	SpeakerPriest Speaker = "Priest"
	SpeakerPeople Speaker = "People"
	SpeakerAll    Speaker = "All"
)

// Format describes how an antiphon is recited.
type Format string

// FormatAllResponse is the only format the breviary uses for antiphons.
const FormatAllResponse Format = "all_response"

// Antiphon is a refrain recited before and after a psalm or canticle.
// Text is empty when the antiphon could not be found.
type Antiphon struct {
	Text          string `json:"text"`
	Format        Format `json:"format"`
	PsalmTitle    string `json:"psalm_title,omitempty"`
	PsalmSubtitle string `json:"psalm_subtitle,omitempty"`
}

// Verse is one stanza of a psalm or canticle.
type Verse struct {
	Speaker Speaker `json:"speaker,omitempty"`
	Text    string  `json:"text"`
}

// IsDoxology reports whether the verse is the "Glory to the Father" stanza.
func (v Verse) IsDoxology() bool {
	return v.Speaker == SpeakerNone && IsDoxology(v.Text)
}

// Canticle is the Old Testament canticle said between the two psalms.
type Canticle struct {
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle,omitempty"`
	Verses      []Verse `json:"verses"`
	OmitGloryBe bool    `json:"omit_glory_be"`
}

// Psalmody holds the three antiphons with their psalms and canticle.
type Psalmody struct {
	Antiphon1 Antiphon `json:"antiphon_1"`
	Psalm1    []Verse  `json:"psalm_1"`
	Antiphon2 Antiphon `json:"antiphon_2"`
	Canticle  Canticle `json:"canticle"`
	Antiphon3 Antiphon `json:"antiphon_3"`
	Psalm3    []Verse  `json:"psalm_3"`
}

// ShortReading is the brief scripture reading after the psalmody.
type ShortReading struct {
	Citation string `json:"citation"`
	Text     string `json:"text"`
}

// ResponsoryBlock is one combined call-and-response slide of the responsory.
type ResponsoryBlock struct {
	Speaker      Speaker `json:"speaker"`
	Text         string  `json:"text"`
	IncludeTitle bool    `json:"include_title,omitempty"`
}

// Reading groups the short reading with its responsory.
// Responsory holds exactly three blocks or none.
type Reading struct {
	ShortReading ShortReading      `json:"short_reading"`
	Responsory   []ResponsoryBlock `json:"responsory"`
}

// GospelCanticle holds the Benedictus antiphon and the fixed canticle text.
type GospelCanticle struct {
	Antiphon Antiphon `json:"antiphon"`
	Verses   []Verse  `json:"verses"`
}

// Intention is one petition with its congregational response.
type Intention struct {
	Petition string `json:"petition"`
	Response string `json:"response"`
}

// IntercessionGroup is one block of intercessions, optionally tagged with the
// category of saint being commemorated.
type IntercessionGroup struct {
	Category     string      `json:"category,omitempty"`
	Introduction string      `json:"introduction"`
	ResponseLine string      `json:"response_line"`
	Intentions   []Intention `json:"intentions"`
}

// FirstReading is the first Mass reading, wrapped into slide-sized lines.
type FirstReading struct {
	Citation string   `json:"citation"`
	Verses   []string `json:"verses"`
}

// ResponsorialPsalm is the Mass psalm: the response followed by alternating
// stanzas and short responses.
type ResponsorialPsalm struct {
	Citation string   `json:"citation"`
	Verses   []string `json:"verses"`
}

// GospelAcclamation is the verse sung before the Gospel.
type GospelAcclamation struct {
	Citation string `json:"citation"`
	Verse    string `json:"verse"`
}

// Gospel is the Gospel of the day with its fixed opening and closing formulas.
type Gospel struct {
	Citation     string `json:"citation"`
	IntroText    string `json:"intro_text"`
	Proclamation string `json:"proclamation"`
	Text         string `json:"text"`
	Closing      string `json:"closing"`
	Response     string `json:"response"`
}

// MassReadings holds the readings of the day from the separate readings page.
type MassReadings struct {
	FirstReading      FirstReading      `json:"first_reading"`
	ResponsorialPsalm ResponsorialPsalm `json:"responsorial_psalm"`
	GospelAcclamation GospelAcclamation `json:"gospel_acclamation"`
	Gospel            Gospel            `json:"gospel"`
}

// Failure records a section that fell back to its placeholder.
type Failure struct {
	Section string `json:"section"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Record is the canonical Morning Prayer record for one date.
// It holds copies of all extracted text and no references into the source
// document.
type Record struct {
	ID               string              `json:"id,omitempty"`
	Date             time.Time           `json:"date"`
	Psalmody         Psalmody            `json:"psalmody"`
	Reading          Reading             `json:"reading"`
	GospelCanticle   GospelCanticle      `json:"gospel_canticle"`
	Intercessions    []IntercessionGroup `json:"intercessions"`
	ConcludingPrayer string              `json:"concluding_prayer"`
	MassReadings     MassReadings        `json:"mass_readings"`
	Failures         []Failure           `json:"failures,omitempty"`
	ContentHash      string              `json:"content_hash,omitempty"`
	CreatedAt        time.Time           `json:"created_at,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Date.IsZero() {
		return Errorf(EINVALID, "record date required")
	}
	return nil
}

// MarshalContent returns the JSON encoding of the extracted content of the
// record. Storage fields (ID, ContentHash, CreatedAt) are left out.
func (r *Record) MarshalContent() ([]byte, error) {
	content := *r
	content.ID = ""
	content.ContentHash = ""
	content.CreatedAt = time.Time{}
	return json.Marshal(&content)
}

// Failed reports whether the named section fell back to its placeholder.
func (r *Record) Failed(section string) bool {
	for _, f := range r.Failures {
		if f.Section == section {
			return true
		}
	}
	return false
}

// DateLayout is the layout used for record dates in storage, file names, and
// command-line arguments.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, Errorf(EINVALID, "invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// RecordService represents a service for managing extracted records.
type RecordService interface {
	// CreateRecord stores a record, replacing any record for the same date.
	CreateRecord(ctx context.Context, record *Record) error

	// FindRecordByDate retrieves the record for a date.
	// Returns ENOTFOUND if no record exists.
	FindRecordByDate(ctx context.Context, date time.Time) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord removes the record for a date.
	// Returns ENOTFOUND if no record exists.
	DeleteRecord(ctx context.Context, date time.Time) error

	// CountFailures returns, per section, the number of records matching
	// the filter whose section fell back to its placeholder.
	CountFailures(ctx context.Context, filter RecordFilter) (map[string]int, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	From *time.Time
	To   *time.Time

	Offset int
	Limit  int
}

// RecordWriter writes records to an output location.
type RecordWriter interface {
	WriteRecord(ctx context.Context, record *Record) error
}
