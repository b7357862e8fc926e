package store

import (
	"context"
	"fmt"

	"github.com/mkobayashi/kanjidrill/ent"
	"github.com/mkobayashi/kanjidrill/ent/sessionevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetItemID(data.ItemID).
		SetSection(data.Section).
		SetMode(data.Mode).
		SetAnswerStyle(data.AnswerStyle).
		SetGiven(data.Given).
		SetExpected(data.Expected).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetSection(data.Section).
		SetStarredOnly(data.StarredOnly).
		SetQuestions(data.Questions).
		SetCorrect(data.Correct).
		SetBestStreak(data.BestStreak).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionEventData, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	out := make([]SessionEventData, 0, len(events))
	for _, e := range events {
		out = append(out, SessionEventData{
			SessionID:    e.SessionID,
			Action:       e.Action,
			Section:      e.Section,
			StarredOnly:  e.StarredOnly,
			Questions:    e.Questions,
			Correct:      e.Correct,
			BestStreak:   e.BestStreak,
			DurationSecs: e.DurationSecs,
			Timestamp:    e.Timestamp,
		})
	}
	return out, nil
}
