package domain

import "time"

// Insight is one answered request kept in the session history.
type Insight struct {
	ID        string
	SessionID string
	DatasetID string
	Mode      Mode
	Question  string
	Answer    string
	Provider  string
	CreatedAt time.Time
}

func (i Insight) Turn() Turn {
	return Turn{Question: i.Question, Answer: i.Answer}
}
