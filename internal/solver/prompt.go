package solver

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a helpful AI tutor for Bangladeshi students."

// languageInstruction maps the request language to the instruction wording.
// Only "bangla" is recognized; every other value falls back to English.
func languageInstruction(language string) string {
	if language == "bangla" {
		return "in Bangla"
	}
	return "in simple English"
}

// buildPrompt constructs the user message for one question.
func buildPrompt(in Input) string {
	var b strings.Builder

	b.WriteString("You are an expert AI tutor for Bangladeshi students. ")
	b.WriteString("Your task is to provide a clear, step-by-step solution to the following question.\n\n")

	b.WriteString("Instructions:\n")
	fmt.Fprintf(&b, "- The solution must be %s.\n", languageInstruction(in.Language))
	fmt.Fprintf(&b, "- The question is for a student in %s, studying %s.\n", in.ClassLevel, in.Subject)
	b.WriteString("- Provide a detailed, step-by-step explanation.\n")
	b.WriteString("- End with a short, concise summary of the answer.\n")

	fmt.Fprintf(&b, "\nQuestion: %s\n", in.Text)

	return b.String()
}
