package draft

type GenerateRequest struct {
	Theme           string           `json:"theme"`
	Background      string           `json:"background"`
	UnheardContexts []UnheardContext `json:"unheard_contexts,omitempty"`
}

type GenerateResponse struct {
	Mode      Mode              `json:"mode"`
	Structure QuestionStructure `json:"structure"`
}
