package gemini

import (
	"github.com/amondal/halchat/domain"
)

// Classify maps a 200-status generateContent response to an outcome. The three
// cases are exhaustive: a usable first candidate yields a reply, a safety
// finish reason yields a blocked outcome, and anything structurally missing
// (no candidates, no content, no text) yields an empty outcome.
func Classify(resp *GenerateContentResponse) domain.Outcome {
	if resp == nil || len(resp.Candidates) == 0 {
		return domain.Outcome{Kind: domain.OutcomeEmpty, Text: domain.EmptyResponseMessage}
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == FinishReasonSafety {
		return domain.Outcome{Kind: domain.OutcomeBlocked, Text: domain.SafetyBlockedMessage}
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 || candidate.Content.Parts[0].Text == "" {
		return domain.Outcome{Kind: domain.OutcomeEmpty, Text: domain.EmptyResponseMessage}
	}

	return domain.Outcome{Kind: domain.OutcomeReply, Text: candidate.Content.Parts[0].Text}
}
