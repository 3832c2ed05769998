package langflow

import "social-insights-service/internal/insights/core/domain"

type chatInputTweak struct {
	InputValue         string `json:"input_value"`
	Sender             string `json:"sender,omitempty"`
	SenderName         string `json:"sender_name,omitempty"`
	ShouldStoreMessage bool   `json:"should_store_message"`
}

type promptTweak struct {
	Template string `json:"template"`
}

type fileTweak struct {
	Path string `json:"path"`
}

type modelTweak struct {
	SystemMessage string  `json:"system_message,omitempty"`
	BaseURL       string  `json:"base_url,omitempty"`
	ModelName     string  `json:"model_name,omitempty"`
	Temperature   float64 `json:"temperature"`
}

type storeTweak struct {
	AllowDuplicates  bool   `json:"allow_duplicates"`
	CollectionName   string `json:"collection_name"`
	PersistDirectory string `json:"persist_directory,omitempty"`
	NumberOfResults  int    `json:"number_of_results"`
	SearchType       string `json:"search_type"`
}

// tweaks maps the typed params onto the component IDs of the flow. Components
// with an empty ID are left untouched.
func (p *Pipeline) tweaks(mode domain.Mode, params domain.PipelineParams) map[string]any {
	t := map[string]any{}
	set := func(id string, v any) {
		if id != "" {
			t[id] = v
		}
	}

	model := modelTweak{
		SystemMessage: params.SystemMessage,
		BaseURL:       params.ModelURL,
		ModelName:     params.Model,
		Temperature:   params.Temperature,
	}

	c := p.components
	switch mode {
	case domain.ModeInsights:
		set(c.InsightsChatInput, chatInputTweak{InputValue: params.InputValue})
		set(c.InsightsPrompt, promptTweak{Template: params.Template})
		if params.FilePath != "" {
			set(c.InsightsFile, fileTweak{Path: params.FilePath})
		}
		set(c.InsightsModel, model)
	case domain.ModeChat:
		set(c.ChatInput, chatInputTweak{
			InputValue:         params.InputValue,
			Sender:             "User",
			SenderName:         "User",
			ShouldStoreMessage: true,
		})
		set(c.ChatPrompt, promptTweak{Template: params.Template})
		set(c.ChatModel, model)
		if r := params.Retrieval; r != nil {
			set(c.ChatStore, storeTweak{
				AllowDuplicates:  r.AllowDuplicates,
				CollectionName:   r.CollectionName,
				PersistDirectory: r.PersistDirectory,
				NumberOfResults:  r.NumberOfResults,
				SearchType:       r.SearchType,
			})
		}
	}
	return t
}
