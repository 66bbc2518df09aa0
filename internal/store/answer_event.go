package store

import (
	"context"
	"fmt"

	"github.com/ngthanh/engmaster/ent"
	"github.com/ngthanh/engmaster/ent/answerevent"
	"github.com/ngthanh/engmaster/ent/batchevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetBatchID(data.BatchID).
		SetTopic(data.Topic).
		SetQuestionID(data.QuestionID).
		SetQuestionText(data.QuestionText).
		SetAnswer(data.Answer).
		SetScore(data.Score).
		SetCorrection(data.Correction).
		SetFeedback(data.Feedback).
		SetPraise(data.Praise).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAnswers(ctx context.Context, limit int) ([]AnswerRecord, error) {
	q := r.client.AnswerEvent.Query().
		Order(ent.Desc(answerevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent answers: %w", err)
	}

	records := make([]AnswerRecord, 0, len(rows))
	for _, e := range rows {
		records = append(records, AnswerRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AnswerEventData: AnswerEventData{
				BatchID:      e.BatchID,
				Topic:        e.Topic,
				QuestionID:   e.QuestionID,
				QuestionText: e.QuestionText,
				Answer:       e.Answer,
				Score:        e.Score,
				Correction:   e.Correction,
				Feedback:     e.Feedback,
				Praise:       e.Praise,
			},
		})
	}
	return records, nil
}

func (r *eventRepo) UsageByTopic(ctx context.Context) ([]TopicUsage, error) {
	var rows []struct {
		Topic    string  `json:"topic"`
		Answers  int     `json:"answers"`
		AvgScore float64 `json:"avg_score"`
	}
	err := r.client.AnswerEvent.Query().
		GroupBy(answerevent.FieldTopic).
		Aggregate(
			ent.As(ent.Count(), "answers"),
			ent.As(ent.Mean(answerevent.FieldScore), "avg_score"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by topic: %w", err)
	}

	stats := make([]TopicUsage, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, TopicUsage{
			Topic:        row.Topic,
			Answers:      row.Answers,
			AverageScore: row.AvgScore,
		})
	}
	return stats, nil
}

func (r *eventRepo) Totals(ctx context.Context) (AnswerTotals, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return AnswerTotals{}, fmt.Errorf("query answer totals: %w", err)
	}

	totals := AnswerTotals{Answers: len(events)}
	if len(events) > 0 {
		sum := 0
		for _, e := range events {
			sum += e.Score
		}
		totals.AverageScore = float64(sum) / float64(len(events))
	}

	batches, err := r.client.BatchEvent.Query().
		Where(batchevent.Action("completed")).
		Count(ctx)
	if err != nil {
		return AnswerTotals{}, fmt.Errorf("count completed batches: %w", err)
	}
	totals.Batches = batches

	return totals, nil
}
