package gemini

import (
	"testing"

	"github.com/amondal/halchat/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		resp     *GenerateContentResponse
		wantKind domain.OutcomeKind
		wantText string
	}{
		{
			name:     "nil response",
			resp:     nil,
			wantKind: domain.OutcomeEmpty,
			wantText: domain.EmptyResponseMessage,
		},
		{
			name:     "no candidates",
			resp:     &GenerateContentResponse{},
			wantKind: domain.OutcomeEmpty,
			wantText: domain.EmptyResponseMessage,
		},
		{
			name: "safety block",
			resp: &GenerateContentResponse{Candidates: []Candidate{
				{FinishReason: FinishReasonSafety},
			}},
			wantKind: domain.OutcomeBlocked,
			wantText: domain.SafetyBlockedMessage,
		},
		{
			name: "safety block with content still blocked",
			resp: &GenerateContentResponse{Candidates: []Candidate{
				{
					FinishReason: FinishReasonSafety,
					Content:      &Content{Parts: []Part{{Text: "partial"}}},
				},
			}},
			wantKind: domain.OutcomeBlocked,
			wantText: domain.SafetyBlockedMessage,
		},
		{
			name: "missing content",
			resp: &GenerateContentResponse{Candidates: []Candidate{
				{FinishReason: "STOP"},
			}},
			wantKind: domain.OutcomeEmpty,
			wantText: domain.EmptyResponseMessage,
		},
		{
			name: "missing parts",
			resp: &GenerateContentResponse{Candidates: []Candidate{
				{Content: &Content{Role: "model"}},
			}},
			wantKind: domain.OutcomeEmpty,
			wantText: domain.EmptyResponseMessage,
		},
		{
			name: "empty text",
			resp: &GenerateContentResponse{Candidates: []Candidate{
				{Content: &Content{Parts: []Part{{Text: ""}}}},
			}},
			wantKind: domain.OutcomeEmpty,
			wantText: domain.EmptyResponseMessage,
		},
		{
			name: "normal reply",
			resp: &GenerateContentResponse{Candidates: []Candidate{
				{
					Content:      &Content{Role: "model", Parts: []Part{{Text: "Greetings."}}},
					FinishReason: "STOP",
				},
			}},
			wantKind: domain.OutcomeReply,
			wantText: "Greetings.",
		},
		{
			name: "first part of first candidate wins",
			resp: &GenerateContentResponse{Candidates: []Candidate{
				{Content: &Content{Parts: []Part{{Text: "first"}, {Text: "second"}}}},
				{Content: &Content{Parts: []Part{{Text: "other candidate"}}}},
			}},
			wantKind: domain.OutcomeReply,
			wantText: "first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.resp)
			if got.Kind != tt.wantKind {
				t.Fatalf("kind: got %q, want %q", got.Kind, tt.wantKind)
			}
			if got.Text != tt.wantText {
				t.Fatalf("text: got %q, want %q", got.Text, tt.wantText)
			}
		})
	}
}
