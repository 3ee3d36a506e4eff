// Package resume holds the canonical resume view-models and the derivation rules
// shared by every timeline section.
package resume

const presentLabel = "Present"

type ContactType string

const (
	ContactEmail    ContactType = "email"
	ContactPhone    ContactType = "phone"
	ContactLocation ContactType = "location"
)

type Contact struct {
	Type  ContactType `json:"type"`
	Value string      `json:"value"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type PersonalInfo struct {
	Name          string       `json:"name"`
	Title         string       `json:"title"`
	CurrentStatus string       `json:"currentStatus"`
	Contacts      []Contact    `json:"contacts"`
	SocialLinks   []SocialLink `json:"socialLinks"`
}

// TimelineEntry is the shape shared by education, experience and research.
type TimelineEntry struct {
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Date     string   `json:"date"`
	Details  []string `json:"details"`
	Logo     *string  `json:"logo,omitempty"`
	Website  *string  `json:"website,omitempty"`
	Location *string  `json:"location,omitempty"`
}

type RecentUpdate struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
}

// Section pairs a display title with its content.
type Section[T any] struct {
	Title   string `json:"title"`
	Content T      `json:"content"`
}

type ResumeData struct {
	Personal      Section[PersonalInfo]    `json:"personal"`
	Education     Section[[]TimelineEntry] `json:"education"`
	Experience    Section[[]TimelineEntry] `json:"experience"`
	Research      Section[[]TimelineEntry] `json:"research"`
	Publications  Section[[]string]        `json:"publications"`
	Awards        Section[[]string]        `json:"awards"`
	Skills        Section[[]string]        `json:"skills"`
	RecentUpdates Section[[]RecentUpdate]  `json:"recentUpdates"`
}

// FormatDateRange renders "{start} - Present" for ongoing entries and
// "{start} - {end}" otherwise. An empty end keeps the trailing separator.
func FormatDateRange(start, end string, ongoing bool) string {
	if ongoing {
		return start + " - " + presentLabel
	}
	return start + " - " + end
}

// AwardText prefers the description and falls back to the title.
func AwardText(description, title string) string {
	if description != "" {
		return description
	}
	return title
}

// NewContacts keeps the non-empty values, always in email, phone, location order.
func NewContacts(email, phone, location string) []Contact {
	contacts := make([]Contact, 0, 3)
	for _, c := range []Contact{
		{Type: ContactEmail, Value: email},
		{Type: ContactPhone, Value: phone},
		{Type: ContactLocation, Value: location},
	} {
		if c.Value != "" {
			contacts = append(contacts, c)
		}
	}
	return contacts
}

// TimelineSource is the normalised input every timeline section is built from.
type TimelineSource struct {
	Name     string
	Role     string
	Start    string
	End      string
	Ongoing  bool
	Details  []string
	Logo     string
	Website  string
	Location string
}

func NewTimelineEntry(src TimelineSource) TimelineEntry {
	details := make([]string, len(src.Details))
	copy(details, src.Details)
	return TimelineEntry{
		Name:     src.Name,
		Role:     src.Role,
		Date:     FormatDateRange(src.Start, src.End, src.Ongoing),
		Details:  details,
		Logo:     optional(src.Logo),
		Website:  optional(src.Website),
		Location: optional(src.Location),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
