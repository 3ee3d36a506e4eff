package idea

// Idea is one card on the ideas board.
type Idea struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
}

// Statuses in board column order.
const (
	StatusDraft      = "draft"
	StatusExploring  = "exploring"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

var columnOrder = map[string]int{
	StatusDraft:      0,
	StatusExploring:  1,
	StatusInProgress: 2,
	StatusDone:       3,
}

// Column returns the board column for status; unknown statuses go to the first one.
func Column(status string) int {
	return columnOrder[status]
}
