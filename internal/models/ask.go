package models

// Citation asserts the provenance of a figure or answer: a document, a
// page within it, and the supporting snippet.
type Citation struct {
	Document string  `json:"document" example:"Budget Book 2024-25.pdf"`
	Page     int     `json:"page" example:"87"`
	Snippet  string  `json:"snippet"`
	URL      *string `json:"url"`
}

// ChartPoint is one year of a trend series attached to an answer.
type ChartPoint struct {
	Year   string  `json:"year" example:"2023/24"`
	Amount float64 `json:"amount" example:"332747117"`
}

// AskQuestion is the payload for the Q&A service.
type AskQuestion struct {
	Question string `json:"question" binding:"required"`
}

// AskResponse is the structured answer to a free-text question.
type AskResponse struct {
	Answer     string             `json:"answer"`
	Numbers    map[string]float64 `json:"numbers"`    // named numeric key facts
	ChartData  []ChartPoint       `json:"chart_data"` // optional trend chart, chronological
	Citations  []Citation         `json:"citations"`
	Confidence float64            `json:"confidence" example:"0.92"` // in [0,1]
}
