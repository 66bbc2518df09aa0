// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ngthanh/engmaster/ent/batchevent"
	"github.com/ngthanh/engmaster/ent/predicate"
)

// BatchEventUpdate is the builder for updating BatchEvent entities.
type BatchEventUpdate struct {
	config
	hooks    []Hook
	mutation *BatchEventMutation
}

// Where appends a list predicates to the BatchEventUpdate builder.
func (_u *BatchEventUpdate) Where(ps ...predicate.BatchEvent) *BatchEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *BatchEventUpdate) SetBatchID(v string) *BatchEventUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *BatchEventUpdate) SetNillableBatchID(v *string) *BatchEventUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *BatchEventUpdate) SetAction(v string) *BatchEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *BatchEventUpdate) SetNillableAction(v *string) *BatchEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *BatchEventUpdate) SetTopic(v string) *BatchEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *BatchEventUpdate) SetNillableTopic(v *string) *BatchEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestionsServed sets the "questions_served" field.
func (_u *BatchEventUpdate) SetQuestionsServed(v int) *BatchEventUpdate {
	_u.mutation.ResetQuestionsServed()
	_u.mutation.SetQuestionsServed(v)
	return _u
}

// SetNillableQuestionsServed sets the "questions_served" field if the given value is not nil.
func (_u *BatchEventUpdate) SetNillableQuestionsServed(v *int) *BatchEventUpdate {
	if v != nil {
		_u.SetQuestionsServed(*v)
	}
	return _u
}

// AddQuestionsServed adds value to the "questions_served" field.
func (_u *BatchEventUpdate) AddQuestionsServed(v int) *BatchEventUpdate {
	_u.mutation.AddQuestionsServed(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *BatchEventUpdate) SetAverageScore(v float64) *BatchEventUpdate {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *BatchEventUpdate) SetNillableAverageScore(v *float64) *BatchEventUpdate {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *BatchEventUpdate) AddAverageScore(v float64) *BatchEventUpdate {
	_u.mutation.AddAverageScore(v)
	return _u
}

// Mutation returns the BatchEventMutation object of the builder.
func (_u *BatchEventUpdate) Mutation() *BatchEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchEventUpdate) check() error {
	if v, ok := _u.mutation.BatchID(); ok {
		if err := batchevent.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "BatchEvent.batch_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := batchevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BatchEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := batchevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "BatchEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchevent.Table, batchevent.Columns, sqlgraph.NewFieldSpec(batchevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(batchevent.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(batchevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(batchevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsServed(); ok {
		_spec.SetField(batchevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsServed(); ok {
		_spec.AddField(batchevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(batchevent.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(batchevent.FieldAverageScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchEventUpdateOne is the builder for updating a single BatchEvent entity.
type BatchEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchEventMutation
}

// SetBatchID sets the "batch_id" field.
func (_u *BatchEventUpdateOne) SetBatchID(v string) *BatchEventUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *BatchEventUpdateOne) SetNillableBatchID(v *string) *BatchEventUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *BatchEventUpdateOne) SetAction(v string) *BatchEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *BatchEventUpdateOne) SetNillableAction(v *string) *BatchEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *BatchEventUpdateOne) SetTopic(v string) *BatchEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *BatchEventUpdateOne) SetNillableTopic(v *string) *BatchEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestionsServed sets the "questions_served" field.
func (_u *BatchEventUpdateOne) SetQuestionsServed(v int) *BatchEventUpdateOne {
	_u.mutation.ResetQuestionsServed()
	_u.mutation.SetQuestionsServed(v)
	return _u
}

// SetNillableQuestionsServed sets the "questions_served" field if the given value is not nil.
func (_u *BatchEventUpdateOne) SetNillableQuestionsServed(v *int) *BatchEventUpdateOne {
	if v != nil {
		_u.SetQuestionsServed(*v)
	}
	return _u
}

// AddQuestionsServed adds value to the "questions_served" field.
func (_u *BatchEventUpdateOne) AddQuestionsServed(v int) *BatchEventUpdateOne {
	_u.mutation.AddQuestionsServed(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *BatchEventUpdateOne) SetAverageScore(v float64) *BatchEventUpdateOne {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *BatchEventUpdateOne) SetNillableAverageScore(v *float64) *BatchEventUpdateOne {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *BatchEventUpdateOne) AddAverageScore(v float64) *BatchEventUpdateOne {
	_u.mutation.AddAverageScore(v)
	return _u
}

// Mutation returns the BatchEventMutation object of the builder.
func (_u *BatchEventUpdateOne) Mutation() *BatchEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BatchEventUpdate builder.
func (_u *BatchEventUpdateOne) Where(ps ...predicate.BatchEvent) *BatchEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchEventUpdateOne) Select(field string, fields ...string) *BatchEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BatchEvent entity.
func (_u *BatchEventUpdateOne) Save(ctx context.Context) (*BatchEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchEventUpdateOne) SaveX(ctx context.Context) *BatchEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchEventUpdateOne) check() error {
	if v, ok := _u.mutation.BatchID(); ok {
		if err := batchevent.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "BatchEvent.batch_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := batchevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BatchEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := batchevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "BatchEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchEventUpdateOne) sqlSave(ctx context.Context) (_node *BatchEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchevent.Table, batchevent.Columns, sqlgraph.NewFieldSpec(batchevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BatchEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batchevent.FieldID)
		for _, f := range fields {
			if !batchevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batchevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(batchevent.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(batchevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(batchevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsServed(); ok {
		_spec.SetField(batchevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsServed(); ok {
		_spec.AddField(batchevent.FieldQuestionsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(batchevent.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(batchevent.FieldAverageScore, field.TypeFloat64, value)
	}
	_node = &BatchEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
