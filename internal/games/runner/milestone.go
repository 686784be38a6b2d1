package runner

import "time"

// Milestone is the transient congratulatory banner. A newer milestone
// simply overwrites an older one.
type Milestone struct {
	Text  string
	Until time.Time
}

// Visible reports whether the banner should still be drawn at now.
func (m Milestone) Visible(now time.Time) bool {
	return m.Text != "" && now.Before(m.Until)
}

// milestoneText picks the message for a milestone score.
func milestoneText(messages []string, score, every int) string {
	if len(messages) == 0 || every <= 0 {
		return ""
	}
	return messages[(score/every)%len(messages)]
}
