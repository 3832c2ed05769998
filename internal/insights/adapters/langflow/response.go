package langflow

import "social-insights-service/internal/insights/core/domain"

type runRequest struct {
	InputValue string         `json:"input_value"`
	InputType  string         `json:"input_type"`
	OutputType string         `json:"output_type"`
	SessionID  string         `json:"session_id,omitempty"`
	Tweaks     map[string]any `json:"tweaks"`
}

type uploadResponse struct {
	FlowID   string `json:"flowId"`
	FilePath string `json:"file_path"`
}

type runResponse struct {
	SessionID string      `json:"session_id"`
	Outputs   []runOutput `json:"outputs"`
}

type runOutput struct {
	Outputs []componentOutput `json:"outputs"`
}

type componentOutput struct {
	Results struct {
		Message *messagePayload `json:"message"`
	} `json:"results"`
}

type messagePayload struct {
	Text string `json:"text"`
	Data struct {
		Text string `json:"text"`
	} `json:"data"`
}

// result reads outputs[0].outputs[0].results.message. Any missing level is a
// NoMessage result.
func (r runResponse) result() domain.PipelineResult {
	if len(r.Outputs) == 0 {
		return domain.NoMessage("run returned no outputs")
	}
	if len(r.Outputs[0].Outputs) == 0 {
		return domain.NoMessage("first output has no component results")
	}
	msg := r.Outputs[0].Outputs[0].Results.Message
	if msg == nil {
		return domain.NoMessage("component result has no message")
	}

	text := msg.Data.Text
	if text == "" {
		text = msg.Text
	}
	if text == "" {
		return domain.NoMessage("message text is empty")
	}
	return domain.MessageResult(text)
}
