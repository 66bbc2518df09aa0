package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendBatch(ctx context.Context, data BatchEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.BatchEvent.Create().
		SetSequence(seqNum).
		SetBatchID(data.BatchID).
		SetAction(data.Action).
		SetTopic(data.Topic).
		SetQuestionsServed(data.QuestionsServed).
		SetAverageScore(data.AverageScore).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save batch event: %w", err)
	}
	return nil
}
