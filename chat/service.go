// Package chat implements the conversation service and its HTTP surface.
package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amondal/halchat/domain"
	"github.com/amondal/halchat/gemini"
	"github.com/amondal/halchat/store"
)

// Completer runs one completion attempt against the upstream, maintaining the
// session transcript around the call.
type Completer struct {
	store   store.Store
	client  *gemini.Client
	persona string
}

// NewCompleter creates a new completer. persona is the system instruction sent
// on every request; it is never stored as a transcript turn.
func NewCompleter(st store.Store, client *gemini.Client, persona string) *Completer {
	return &Completer{
		store:   st,
		client:  client,
		persona: persona,
	}
}

// Complete appends the user's message to the session transcript, sends the
// full transcript plus the persona instruction upstream, and classifies the
// result. On a reply the model turn is appended back to the transcript;
// blocked and empty outcomes append nothing. The user turn is recorded even
// when the call fails, so a retry within the session keeps the message in
// context. No retries happen here; every failure surfaces to the caller.
func (s *Completer) Complete(ctx context.Context, sessionID, userText string) (domain.Outcome, error) {
	userTurn := newTurn(sessionID, domain.RoleUser, userText)
	if err := s.store.AppendTurn(ctx, userTurn); err != nil {
		return domain.Outcome{}, err
	}

	transcript, err := s.store.Snapshot(ctx, sessionID)
	if err != nil {
		return domain.Outcome{}, err
	}

	resp, err := s.client.GenerateContent(ctx, s.buildRequest(transcript))
	if err != nil {
		return domain.Outcome{}, err
	}

	outcome := gemini.Classify(resp)
	if outcome.Kind == domain.OutcomeReply {
		modelTurn := newTurn(sessionID, domain.RoleModel, outcome.Text)
		if err := s.store.AppendTurn(ctx, modelTurn); err != nil {
			return domain.Outcome{}, err
		}
	}

	return outcome, nil
}

// Reset clears the session transcript.
func (s *Completer) Reset(ctx context.Context, sessionID string) error {
	return s.store.Reset(ctx, sessionID)
}

// History returns the full ordered session transcript.
func (s *Completer) History(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	return s.store.Snapshot(ctx, sessionID)
}

// buildRequest maps the transcript to the wire payload, with the persona as
// the system instruction and the fixed generation parameters.
func (s *Completer) buildRequest(transcript []domain.Turn) *gemini.GenerateContentRequest {
	contents := make([]gemini.Content, 0, len(transcript))
	for _, turn := range transcript {
		contents = append(contents, gemini.Content{
			Role:  string(turn.Role),
			Parts: []gemini.Part{{Text: turn.Text}},
		})
	}

	req := &gemini.GenerateContentRequest{
		Contents:         contents,
		GenerationConfig: gemini.DefaultGenerationConfig(),
	}
	if s.persona != "" {
		req.SystemInstruction = &gemini.SystemInstruction{
			Parts: []gemini.Part{{Text: s.persona}},
		}
	}

	return req
}

func newTurn(sessionID string, role domain.Role, text string) *domain.Turn {
	return &domain.Turn{
		TurnID:    "turn_" + uuid.New().String()[:8],
		SessionID: sessionID,
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
