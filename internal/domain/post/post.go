package post

// Post is a blog entry as the blog pages render it.
type Post struct {
	ID         string   `json:"id"`
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Content    string   `json:"content"`
	CoverImage *string  `json:"coverImage,omitempty"`
	Tags       []string `json:"tags"`
	Date       string   `json:"date"`
	ReadTime   int      `json:"readTime"`
}

const wordsPerMinute = 200

// EstimateReadTime is used when the backend does not send one. Empty content is 0.
func EstimateReadTime(words int) int {
	if words <= 0 {
		return 0
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return minutes
}
