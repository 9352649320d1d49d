package models

type ExtractionResponse struct {
	Filename      string `json:"filename"`
	TextLength    int    `json:"text_length"`
	ExtractedText string `json:"extracted_text"`
}

type AnalysisResponse struct {
	Filename       string           `json:"filename"`
	TextLength     int              `json:"text_length"`
	ExtractedText  string           `json:"extracted_text"`
	AIAnalysis     *MatchAssessment `json:"ai_analysis"`
	AnalysisSource Tier             `json:"analysis_source"`
}

type HealthResponse struct {
	Status    string          `json:"status"`
	Service   string          `json:"service"`
	Providers map[string]bool `json:"ai_providers"`
}
