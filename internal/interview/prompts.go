package interview

import (
	"fmt"
	"strings"
)

// Fallback lines used when the question generator is unavailable. The
// dialogue never stops on an LLM outage.
const (
	FallbackOpeningQuestion  = "Let's begin the interview. Could you tell me about your experience with the technologies most relevant to this role?"
	FallbackNextQuestion     = "Could you tell me more about your experience with the technologies you have worked with?"
	FallbackFollowUpQuestion = "Could you elaborate more on your answer?"
)

const (
	questionMarker       = "Question:"
	expectedAnswerMarker = "Expected Answer:"
)

func interviewerSystemPrompt(role string, experienceLevel string) string {
	return fmt.Sprintf(`You are an expert interviewer conducting a technical interview for a %s position.
The candidate's experience level is %s.
Focus on asking relevant technical questions and evaluating their responses.`, role, experienceLevel)
}

func openingQuestionPrompt() string {
	return fmt.Sprintf(`Start the interview with an appropriate technical question.

Reply in exactly this format:
%s <the question>
%s <a model answer a strong candidate would give>`, questionMarker, expectedAnswerMarker)
}

func nextQuestionPrompt(previousAnswer string, contexts []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Previous interaction: %s

Based on the candidate's response, generate the next appropriate technical question that:
1. Builds upon their previous answer
2. Explores related technical concepts
3. Maintains a logical progression in the interview
4. Is specific and focused

Reply in exactly this format:
%s <the question>
%s <a model answer a strong candidate would give>`, previousAnswer, questionMarker, expectedAnswerMarker)

	appendContext(&b, contexts)
	return b.String()
}

func followUpPrompt(question string, candidateAnswer string, contexts []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Original Question: %s
Candidate's Answer: %s

Based on the candidate's answer, generate a follow-up question that:
1. Addresses gaps or misunderstandings in their response
2. Probes deeper into the topic
3. Helps clarify their understanding
4. Is specific and focused

Reply in exactly this format:
%s <the question>
%s <a model answer a strong candidate would give>`, question, candidateAnswer, questionMarker, expectedAnswerMarker)

	appendContext(&b, contexts)
	return b.String()
}

func appendContext(b *strings.Builder, contexts []string) {
	if len(contexts) == 0 {
		return
	}
	b.WriteString("\n\nRelevant Context:\n")
	b.WriteString(strings.Join(contexts, "\n"))
}

// parseGeneratedQuestion splits an LLM completion into question text and
// expected answer. A completion without the markers is treated as the
// question itself, with no expected answer.
func parseGeneratedQuestion(completion string) (questionText string, expectedAnswer string) {
	completion = strings.TrimSpace(completion)

	qIdx := strings.Index(completion, questionMarker)
	eIdx := strings.Index(completion, expectedAnswerMarker)

	if qIdx < 0 || eIdx < 0 || eIdx < qIdx {
		return completion, ""
	}

	questionText = strings.TrimSpace(completion[qIdx+len(questionMarker) : eIdx])
	expectedAnswer = strings.TrimSpace(completion[eIdx+len(expectedAnswerMarker):])
	return questionText, expectedAnswer
}
