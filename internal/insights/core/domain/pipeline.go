package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidParams = errors.New("invalid pipeline params")

type Mode string

const (
	ModeInsights Mode = "insights"
	ModeChat     Mode = "chat"
)

func (m Mode) Valid() bool {
	return m == ModeInsights || m == ModeChat
}

const (
	SearchSimilarity = "Similarity"
	SearchMMR        = "MMR"
)

// Retrieval configures the vector store the chat flow searches.
type Retrieval struct {
	CollectionName   string
	PersistDirectory string
	NumberOfResults  int
	SearchType       string
	AllowDuplicates  bool
}

// PipelineParams are the per-run overrides handed to the pipeline. Template
// may reference {context}, {question} and {History}.
type PipelineParams struct {
	FlowID        string
	InputValue    string
	Template      string
	SystemMessage string
	FilePath      string
	Model         string
	ModelURL      string
	Temperature   float64

	// nil when the flow has no retrieval step.
	Retrieval *Retrieval
}

func (p PipelineParams) Validate() error {
	if strings.TrimSpace(p.FlowID) == "" {
		return fmt.Errorf("%w: flow id is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.InputValue) == "" {
		return fmt.Errorf("%w: input value is required", ErrInvalidParams)
	}
	if p.Temperature < 0 || p.Temperature > 2 {
		return fmt.Errorf("%w: temperature %v outside [0,2]", ErrInvalidParams, p.Temperature)
	}
	if r := p.Retrieval; r != nil {
		if strings.TrimSpace(r.CollectionName) == "" {
			return fmt.Errorf("%w: retrieval collection is required", ErrInvalidParams)
		}
		if r.NumberOfResults <= 0 {
			return fmt.Errorf("%w: number of results must be positive", ErrInvalidParams)
		}
		switch r.SearchType {
		case SearchSimilarity, SearchMMR:
		default:
			return fmt.Errorf("%w: unknown search type %q", ErrInvalidParams, r.SearchType)
		}
	}
	return nil
}

// Turn is one earlier question and answer of a session.
type Turn struct {
	Question string
	Answer   string
}

// Attachment is the dataset handed to the pipeline as a CSV file.
type Attachment struct {
	FileName string
	Content  []byte
}

type PipelineRequest struct {
	Mode      Mode
	SessionID string
	Params    PipelineParams
	History   []Turn
	// nil when the request carries no dataset.
	Dataset *Attachment
}

type Outcome int

const (
	OutcomeNoMessage Outcome = iota
	OutcomeMessage
)

// PipelineResult is what a pipeline run produced. A run that finishes without
// a message is a valid result, not an error.
type PipelineResult struct {
	Outcome Outcome
	text    string
	// Reason explains a missing message.
	Reason string
}

func MessageResult(text string) PipelineResult {
	return PipelineResult{Outcome: OutcomeMessage, text: text}
}

func NoMessage(reason string) PipelineResult {
	return PipelineResult{Outcome: OutcomeNoMessage, Reason: reason}
}

func (r PipelineResult) Message() (string, bool) {
	if r.Outcome != OutcomeMessage {
		return "", false
	}
	return r.text, true
}
