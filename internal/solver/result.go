package solver

import "encoding/json"

// Result is the outcome of solving one question. Exactly one of Answer or
// Error is meaningful: a populated Error means the answer could not be
// generated and Details carries the failure description.
//
// ExtractedText and TranscribedText are provenance fields attached by the
// ingestion pipeline when the question came from an image or audio payload.
type Result struct {
	Question        string
	Answer          string
	Subject         string
	ClassLevel      string
	Language        string
	Error           string
	Details         string
	ExtractedText   string
	TranscribedText string
}

// Failed reports whether this result carries an error instead of an answer.
func (r Result) Failed() bool { return r.Error != "" }

// MarshalJSON emits one of two wire shapes. Failures serialize only the
// error fields (plus provenance when present); successes always include the
// echoed request fields even when empty. Existing API consumers rely on
// both shapes, so they are kept distinct.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(struct {
			Error           string `json:"error"`
			Details         string `json:"details,omitempty"`
			ExtractedText   string `json:"extracted_text,omitempty"`
			TranscribedText string `json:"transcribed_text,omitempty"`
		}{
			Error:           r.Error,
			Details:         r.Details,
			ExtractedText:   r.ExtractedText,
			TranscribedText: r.TranscribedText,
		})
	}

	return json.Marshal(struct {
		Question        string `json:"question"`
		Answer          string `json:"answer"`
		Subject         string `json:"subject"`
		ClassLevel      string `json:"class_level"`
		Language        string `json:"language"`
		ExtractedText   string `json:"extracted_text,omitempty"`
		TranscribedText string `json:"transcribed_text,omitempty"`
	}{
		Question:        r.Question,
		Answer:          r.Answer,
		Subject:         r.Subject,
		ClassLevel:      r.ClassLevel,
		Language:        r.Language,
		ExtractedText:   r.ExtractedText,
		TranscribedText: r.TranscribedText,
	})
}
