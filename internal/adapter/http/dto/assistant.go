package dto

type ChatRequest struct {
	Message string `json:"message" binding:"required,max=4000"`
}

type ChatResponse struct {
	Text string `json:"text"`
}

type SummarizeRequest struct {
	NoteID string `json:"note_id" binding:"required"`
}

type TranslateRequest struct {
	Text   string `json:"text" binding:"required,max=4000"`
	Target string `json:"target" binding:"required,max=32"`
}

type SpellcheckRequest struct {
	Text string `json:"text" binding:"required,max=4000"`
}
