package resume

import (
	"encoding/json"

	"github.com/khoahotran/resume-portal/internal/application/rawjson"
	"github.com/khoahotran/resume-portal/internal/domain/resume"
)

// Backend shapes. Every field is optional; lists go through rawjson.List.

type rawSocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type rawPersonalInfo struct {
	Name          string                      `json:"name"`
	Title         string                      `json:"title"`
	CurrentStatus string                      `json:"current_status"`
	Email         string                      `json:"email"`
	Phone         string                      `json:"phone"`
	Location      string                      `json:"location"`
	SocialLinks   rawjson.List[rawSocialLink] `json:"social_links"`
}

type rawEducation struct {
	Institution string               `json:"institution"`
	Degree      string               `json:"degree"`
	StartDate   rawjson.Scalar       `json:"start_date"`
	EndDate     rawjson.Scalar       `json:"end_date"`
	IsCurrent   bool                 `json:"is_current"`
	IsOngoing   bool                 `json:"is_ongoing"`
	Details     rawjson.List[string] `json:"details"`
	Logo        string               `json:"logo"`
	LogoURL     string               `json:"logo_url"`
	Website     string               `json:"website"`
	Location    string               `json:"location"`
}

type rawExperience struct {
	Company          string               `json:"company"`
	Position         string               `json:"position"`
	StartDate        rawjson.Scalar       `json:"start_date"`
	EndDate          rawjson.Scalar       `json:"end_date"`
	IsCurrent        bool                 `json:"is_current"`
	IsOngoing        bool                 `json:"is_ongoing"`
	Responsibilities rawjson.List[string] `json:"responsibilities"`
	Details          rawjson.List[string] `json:"details"`
	Logo             string               `json:"logo"`
	LogoURL          string               `json:"logo_url"`
	Website          string               `json:"website"`
	Location         string               `json:"location"`
}

type rawResearch struct {
	Title       string               `json:"title"`
	Institution string               `json:"institution"`
	Role        string               `json:"role"`
	StartDate   rawjson.Scalar       `json:"start_date"`
	EndDate     rawjson.Scalar       `json:"end_date"`
	IsOngoing   bool                 `json:"is_ongoing"`
	IsCurrent   bool                 `json:"is_current"`
	Description rawjson.List[string] `json:"description"`
	Details     rawjson.List[string] `json:"details"`
	Logo        string               `json:"logo"`
	LogoURL     string               `json:"logo_url"`
	Website     string               `json:"website"`
	Location    string               `json:"location"`
}

type rawPublication struct {
	Title string `json:"title"`
}

type rawAward struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type rawRecentUpdate struct {
	ID          rawjson.Scalar       `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Date        string               `json:"date"`
	Tags        rawjson.List[string] `json:"tags"`
	Type        string               `json:"type"`
	Status      string               `json:"status"`
	Priority    rawjson.Scalar       `json:"priority"`
}

type rawResume struct {
	PersonalInfo  rawPersonalInfo               `json:"personal_info"`
	Education     rawjson.List[rawEducation]    `json:"education"`
	Experience    rawjson.List[rawExperience]   `json:"experience"`
	Research      rawjson.List[rawResearch]     `json:"research"`
	Publications  rawjson.List[rawPublication]  `json:"publications"`
	Awards        rawjson.List[rawAward]        `json:"awards"`
	Skills        rawjson.List[string]          `json:"skills"`
	RecentUpdates rawjson.List[rawRecentUpdate] `json:"recent_updates"`
	SectionTitles map[string]string             `json:"section_titles"`
}

func (r rawPersonalInfo) toDomain() resume.PersonalInfo {
	links := make([]resume.SocialLink, 0, len(r.SocialLinks))
	for _, l := range r.SocialLinks {
		links = append(links, resume.SocialLink{Platform: l.Platform, URL: l.URL})
	}
	return resume.PersonalInfo{
		Name:          r.Name,
		Title:         r.Title,
		CurrentStatus: r.CurrentStatus,
		Contacts:      resume.NewContacts(r.Email, r.Phone, r.Location),
		SocialLinks:   links,
	}
}

func (r rawEducation) toDomain() resume.TimelineEntry {
	return resume.NewTimelineEntry(resume.TimelineSource{
		Name:     r.Institution,
		Role:     r.Degree,
		Start:    r.StartDate.String(),
		End:      r.EndDate.String(),
		Ongoing:  r.IsCurrent || r.IsOngoing,
		Details:  r.Details.Slice(),
		Logo:     rawjson.FirstNonEmpty(r.Logo, r.LogoURL),
		Website:  r.Website,
		Location: r.Location,
	})
}

func (r rawExperience) toDomain() resume.TimelineEntry {
	details := r.Responsibilities
	if len(details) == 0 {
		details = r.Details
	}
	return resume.NewTimelineEntry(resume.TimelineSource{
		Name:     r.Company,
		Role:     r.Position,
		Start:    r.StartDate.String(),
		End:      r.EndDate.String(),
		Ongoing:  r.IsCurrent || r.IsOngoing,
		Details:  details.Slice(),
		Logo:     rawjson.FirstNonEmpty(r.Logo, r.LogoURL),
		Website:  r.Website,
		Location: r.Location,
	})
}

func (r rawResearch) toDomain() resume.TimelineEntry {
	details := r.Description
	if len(details) == 0 {
		details = r.Details
	}
	return resume.NewTimelineEntry(resume.TimelineSource{
		Name:     rawjson.FirstNonEmpty(r.Title, r.Institution),
		Role:     r.Role,
		Start:    r.StartDate.String(),
		End:      r.EndDate.String(),
		Ongoing:  r.IsOngoing || r.IsCurrent,
		Details:  details.Slice(),
		Logo:     rawjson.FirstNonEmpty(r.Logo, r.LogoURL),
		Website:  r.Website,
		Location: r.Location,
	})
}

func (r rawRecentUpdate) toDomain() resume.RecentUpdate {
	return resume.RecentUpdate{
		ID:          r.ID.String(),
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Tags:        r.Tags.Slice(),
		Type:        r.Type,
		Status:      r.Status,
		Priority:    r.Priority.String(),
	}
}

// mapList applies fn to every element and never returns nil.
func mapList[R any, T any](in rawjson.List[R], fn func(R) T) []T {
	out := make([]T, 0, len(in))
	for _, item := range in {
		out = append(out, fn(item))
	}
	return out
}

func publicationTitle(p rawPublication) string { return p.Title }

func awardText(a rawAward) string { return resume.AwardText(a.Description, a.Title) }

// Older payloads list publications as bare title strings.
func (p *rawPublication) UnmarshalJSON(data []byte) error {
	var title string
	if err := json.Unmarshal(data, &title); err == nil {
		p.Title = title
		return nil
	}
	type plain rawPublication
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = rawPublication(v)
	return nil
}
