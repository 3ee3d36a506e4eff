package resume

import (
	"context"

	"github.com/khoahotran/resume-portal/internal/application/rawjson"
	"github.com/khoahotran/resume-portal/internal/application/service"
	"github.com/khoahotran/resume-portal/internal/domain/resume"
	"github.com/khoahotran/resume-portal/internal/i18n"
	"github.com/khoahotran/resume-portal/pkg/apiclient"
	"github.com/khoahotran/resume-portal/pkg/logger"
)

const (
	PathResume        = "/api/v1/resume"
	PathPersonal      = "/api/v1/resume/personal"
	PathEducation     = "/api/v1/resume/education"
	PathExperience    = "/api/v1/resume/experience"
	PathResearch      = "/api/v1/resume/research"
	PathPublications  = "/api/v1/resume/publications"
	PathAwards        = "/api/v1/resume/awards"
	PathRecentUpdates = "/api/v1/resume/recent"
)

// ResumeUseCase fetches resume resources and reshapes them. Errors from the
// backend are returned untouched.
type ResumeUseCase struct {
	backend service.Backend
	locale  *i18n.Config
	logger  logger.Logger
}

func NewResumeUseCase(backend service.Backend, locale *i18n.Config, log logger.Logger) *ResumeUseCase {
	return &ResumeUseCase{backend: backend, locale: locale, logger: log}
}

// fetch formats lang and GETs path into out.
func (uc *ResumeUseCase) fetch(ctx context.Context, path, lang string, out any) error {
	token, err := i18n.FormatLanguage(lang)
	if err != nil {
		return err
	}
	return uc.backend.Get(ctx, path, apiclient.Params{"lang": token}, out)
}

func (uc *ResumeUseCase) FetchResume(ctx context.Context, lang string) (*resume.ResumeData, error) {
	var raw rawResume
	if err := uc.fetch(ctx, PathResume, lang, &raw); err != nil {
		return nil, err
	}

	title := func(section string) string {
		if t := raw.SectionTitles[section]; t != "" {
			return t
		}
		return uc.locale.SectionTitle(lang, section)
	}

	data := &resume.ResumeData{
		Personal: resume.Section[resume.PersonalInfo]{
			Title:   title(i18n.SectionPersonal),
			Content: raw.PersonalInfo.toDomain(),
		},
		Education: resume.Section[[]resume.TimelineEntry]{
			Title:   title(i18n.SectionEducation),
			Content: mapList(raw.Education, rawEducation.toDomain),
		},
		Experience: resume.Section[[]resume.TimelineEntry]{
			Title:   title(i18n.SectionExperience),
			Content: mapList(raw.Experience, rawExperience.toDomain),
		},
		Research: resume.Section[[]resume.TimelineEntry]{
			Title:   title(i18n.SectionResearch),
			Content: mapList(raw.Research, rawResearch.toDomain),
		},
		Publications: resume.Section[[]string]{
			Title:   title(i18n.SectionPublications),
			Content: mapList(raw.Publications, publicationTitle),
		},
		Awards: resume.Section[[]string]{
			Title:   title(i18n.SectionAwards),
			Content: mapList(raw.Awards, awardText),
		},
		Skills: resume.Section[[]string]{
			Title:   title(i18n.SectionSkills),
			Content: raw.Skills.Slice(),
		},
		RecentUpdates: resume.Section[[]resume.RecentUpdate]{
			Title:   title(i18n.SectionRecentUpdates),
			Content: mapList(raw.RecentUpdates, rawRecentUpdate.toDomain),
		},
	}
	return data, nil
}

func (uc *ResumeUseCase) FetchPersonalInfo(ctx context.Context, lang string) (*resume.PersonalInfo, error) {
	var raw rawPersonalInfo
	if err := uc.fetch(ctx, PathPersonal, lang, &raw); err != nil {
		return nil, err
	}
	info := raw.toDomain()
	return &info, nil
}

func (uc *ResumeUseCase) FetchEducation(ctx context.Context, lang string) ([]resume.TimelineEntry, error) {
	var raw rawjson.List[rawEducation]
	if err := uc.fetch(ctx, PathEducation, lang, &raw); err != nil {
		return nil, err
	}
	return mapList(raw, rawEducation.toDomain), nil
}

func (uc *ResumeUseCase) FetchExperience(ctx context.Context, lang string) ([]resume.TimelineEntry, error) {
	var raw rawjson.List[rawExperience]
	if err := uc.fetch(ctx, PathExperience, lang, &raw); err != nil {
		return nil, err
	}
	return mapList(raw, rawExperience.toDomain), nil
}

func (uc *ResumeUseCase) FetchResearch(ctx context.Context, lang string) ([]resume.TimelineEntry, error) {
	var raw rawjson.List[rawResearch]
	if err := uc.fetch(ctx, PathResearch, lang, &raw); err != nil {
		return nil, err
	}
	return mapList(raw, rawResearch.toDomain), nil
}

func (uc *ResumeUseCase) FetchPublications(ctx context.Context, lang string) ([]string, error) {
	var raw rawjson.List[rawPublication]
	if err := uc.fetch(ctx, PathPublications, lang, &raw); err != nil {
		return nil, err
	}
	return mapList(raw, publicationTitle), nil
}

func (uc *ResumeUseCase) FetchAwards(ctx context.Context, lang string) ([]string, error) {
	var raw rawjson.List[rawAward]
	if err := uc.fetch(ctx, PathAwards, lang, &raw); err != nil {
		return nil, err
	}
	return mapList(raw, awardText), nil
}

func (uc *ResumeUseCase) FetchRecentUpdates(ctx context.Context, lang string) ([]resume.RecentUpdate, error) {
	var raw rawjson.List[rawRecentUpdate]
	if err := uc.fetch(ctx, PathRecentUpdates, lang, &raw); err != nil {
		return nil, err
	}
	return mapList(raw, rawRecentUpdate.toDomain), nil
}
