package i18n

const (
	SectionPersonal      = "personal"
	SectionEducation     = "education"
	SectionExperience    = "experience"
	SectionResearch      = "research"
	SectionPublications  = "publications"
	SectionAwards        = "awards"
	SectionSkills        = "skills"
	SectionRecentUpdates = "recent_updates"
)

var defaultTitles = map[string]map[string]string{
	English: {
		SectionPersonal:      "About",
		SectionEducation:     "Education",
		SectionExperience:    "Experience",
		SectionResearch:      "Research",
		SectionPublications:  "Publications",
		SectionAwards:        "Awards",
		SectionSkills:        "Skills",
		SectionRecentUpdates: "Recent Updates",
	},
	Chinese: {
		SectionPersonal:      "关于我",
		SectionEducation:     "教育经历",
		SectionExperience:    "工作经历",
		SectionResearch:      "研究经历",
		SectionPublications:  "发表论文",
		SectionAwards:        "荣誉奖项",
		SectionSkills:        "技能",
		SectionRecentUpdates: "最近动态",
	},
}

// Config is built once at start-up and shared read-only. The zero value is not
// usable; call NewConfig.
type Config struct {
	defaultLang string
	titles      map[string]map[string]string
}

// NewConfig validates defaultLang and layers overrides on top of the built-in
// section titles. overrides is keyed by backend token then section.
func NewConfig(defaultLang string, overrides map[string]map[string]string) (*Config, error) {
	token, err := FormatLanguage(defaultLang)
	if err != nil {
		return nil, err
	}

	titles := make(map[string]map[string]string, len(defaultTitles))
	for lang, sections := range defaultTitles {
		titles[lang] = make(map[string]string, len(sections))
		for k, v := range sections {
			titles[lang][k] = v
		}
	}
	for rawLang, sections := range overrides {
		lang, err := FormatLanguage(rawLang)
		if err != nil {
			return nil, err
		}
		for k, v := range sections {
			titles[lang][k] = v
		}
	}

	return &Config{defaultLang: token, titles: titles}, nil
}

func (c *Config) DefaultLanguage() string {
	return c.defaultLang
}

// Resolve turns a request's raw selector into a backend token. An empty selector
// means "not chosen" and resolves to the default; anything else must be supported.
func (c *Config) Resolve(raw string) (string, error) {
	if raw == "" {
		return c.defaultLang, nil
	}
	return FormatLanguage(raw)
}

// SectionTitle returns the display title for section in lang, falling back to the
// default language table and finally to the section key itself.
func (c *Config) SectionTitle(lang, section string) string {
	if token, err := FormatLanguage(lang); err == nil {
		if t, ok := c.titles[token][section]; ok {
			return t
		}
	}
	if t, ok := c.titles[c.defaultLang][section]; ok {
		return t
	}
	return section
}
