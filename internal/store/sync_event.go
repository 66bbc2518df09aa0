package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSync(ctx context.Context, data SyncEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SyncEvent.Create().
		SetSequence(seqNum).
		SetQuestionID(data.QuestionID).
		SetStudentID(data.StudentID).
		SetSuccess(data.Success).
		SetSimulated(data.Simulated).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save sync event: %w", err)
	}
	return nil
}
