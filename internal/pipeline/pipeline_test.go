package pipeline

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/asifr/shikkhok/internal/solver"
)

type stubExtractor struct {
	text  string
	calls int
}

func (s *stubExtractor) Extract(_ context.Context, _ []byte) string {
	s.calls++
	return s.text
}

type stubTranscriber struct {
	text        string
	gotLanguage string
	calls       int
}

func (s *stubTranscriber) Transcribe(_ context.Context, _ []byte, language string) string {
	s.calls++
	s.gotLanguage = language
	return s.text
}

type stubSolver struct {
	result solver.Result
	inputs []solver.Input
}

func (s *stubSolver) Solve(_ context.Context, in solver.Input) solver.Result {
	s.inputs = append(s.inputs, in)
	res := s.result
	if res.Question == "" && !res.Failed() {
		res.Question = in.Text
		res.Subject = in.Subject
		res.ClassLevel = in.ClassLevel
		res.Language = in.Language
	}
	return res
}

func newTestPipeline(ext *stubExtractor, tr *stubTranscriber, sol *stubSolver) *Pipeline {
	return New(ext, tr, sol, nil)
}

func TestFromText_PassesTextThroughOnce(t *testing.T) {
	sol := &stubSolver{result: solver.Result{Answer: "Step 1... Answer: 4"}}
	p := newTestPipeline(&stubExtractor{}, &stubTranscriber{}, sol)

	res := p.FromText(context.Background(), solver.Input{
		Text:       "2+2=?",
		Subject:    "Math",
		ClassLevel: "Class 5",
		Language:   "english",
	})

	if len(sol.inputs) != 1 {
		t.Fatalf("expected exactly one solve call, got %d", len(sol.inputs))
	}
	if sol.inputs[0].Text != "2+2=?" {
		t.Fatalf("text was modified: %q", sol.inputs[0].Text)
	}
	if res.Question != "2+2=?" || res.Answer != "Step 1... Answer: 4" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Subject != "Math" || res.ClassLevel != "Class 5" || res.Language != "english" {
		t.Fatalf("request fields not echoed: %+v", res)
	}
}

func TestFromImage_EmptyExtractionShortCircuits(t *testing.T) {
	sol := &stubSolver{}
	p := newTestPipeline(&stubExtractor{text: ""}, &stubTranscriber{}, sol)

	res := p.FromImage(context.Background(), []byte("img"), "Math", "Class 5", "english")

	if len(sol.inputs) != 0 {
		t.Fatalf("solver must not be invoked, got %d calls", len(sol.inputs))
	}
	if res.Error != MsgNoTextInImage {
		t.Fatalf("unexpected error: %q", res.Error)
	}

	// The short-circuit wire shape is the error field alone.
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"error":"Could not extract any text from the image. Please try a clearer image."}`
	if string(data) != want {
		t.Fatalf("unexpected wire shape:\n got %s\nwant %s", data, want)
	}
}

func TestFromImage_AttachesExtractedText(t *testing.T) {
	ext := &stubExtractor{text: "What is 2+2?"}
	sol := &stubSolver{result: solver.Result{Answer: "4"}}
	p := newTestPipeline(ext, &stubTranscriber{}, sol)

	res := p.FromImage(context.Background(), []byte("img"), "Math", "Class 5", "english")

	if res.ExtractedText != "What is 2+2?" {
		t.Fatalf("expected provenance text, got %q", res.ExtractedText)
	}
	if res.Question != "What is 2+2?" {
		t.Fatalf("expected solved question to be the extracted text, got %q", res.Question)
	}
	if sol.inputs[0].Text != "What is 2+2?" {
		t.Fatalf("solver received %q", sol.inputs[0].Text)
	}
}

func TestFromImage_SolverFailureKeepsProvenance(t *testing.T) {
	ext := &stubExtractor{text: "2+2=?"}
	sol := &stubSolver{result: solver.Result{Error: solver.ErrAnswerFailed, Details: "boom"}}
	p := newTestPipeline(ext, &stubTranscriber{}, sol)

	res := p.FromImage(context.Background(), []byte("img"), "Math", "Class 5", "english")

	if !res.Failed() {
		t.Fatal("expected failure result")
	}
	if res.ExtractedText != "2+2=?" {
		t.Fatalf("provenance must be attached to failures too, got %q", res.ExtractedText)
	}
}

func TestFromAudio_EmptyTranscriptShortCircuits(t *testing.T) {
	sol := &stubSolver{}
	p := newTestPipeline(&stubExtractor{}, &stubTranscriber{text: ""}, sol)

	res := p.FromAudio(context.Background(), []byte("audio"), "Math", "Class 5", "english")

	if len(sol.inputs) != 0 {
		t.Fatalf("solver must not be invoked, got %d calls", len(sol.inputs))
	}
	if res.Error != MsgNoTextInAudio {
		t.Fatalf("unexpected error: %q", res.Error)
	}
}

func TestFromAudio_PassesLanguageToTranscriber(t *testing.T) {
	tr := &stubTranscriber{text: "প্রশ্ন"}
	sol := &stubSolver{result: solver.Result{Answer: "উত্তর"}}
	p := newTestPipeline(&stubExtractor{}, tr, sol)

	res := p.FromAudio(context.Background(), []byte("audio"), "Science", "Class 8", "bangla")

	if tr.gotLanguage != "bangla" {
		t.Fatalf("expected transcriber to receive 'bangla', got %q", tr.gotLanguage)
	}
	if res.TranscribedText != "প্রশ্ন" {
		t.Fatalf("expected provenance transcript, got %q", res.TranscribedText)
	}
}

func TestEntryPointsAreIndependent(t *testing.T) {
	ext := &stubExtractor{text: "from image"}
	tr := &stubTranscriber{text: "from audio"}
	sol := &stubSolver{result: solver.Result{Answer: "ok"}}
	p := newTestPipeline(ext, tr, sol)

	p.FromImage(context.Background(), []byte("img"), "s", "c", "english")
	p.FromAudio(context.Background(), []byte("aud"), "s", "c", "english")
	p.FromText(context.Background(), solver.Input{Text: "typed", Language: "english"})

	if ext.calls != 1 || tr.calls != 1 {
		t.Fatalf("cross-talk between entry points: extractor=%d transcriber=%d", ext.calls, tr.calls)
	}
	if len(sol.inputs) != 3 {
		t.Fatalf("expected 3 solve calls, got %d", len(sol.inputs))
	}
}
