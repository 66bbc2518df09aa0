// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ngthanh/engmaster/ent/batchevent"
)

// BatchEventCreate is the builder for creating a BatchEvent entity.
type BatchEventCreate struct {
	config
	mutation *BatchEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *BatchEventCreate) SetSequence(v int64) *BatchEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *BatchEventCreate) SetTimestamp(v time.Time) *BatchEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *BatchEventCreate) SetNillableTimestamp(v *time.Time) *BatchEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *BatchEventCreate) SetBatchID(v string) *BatchEventCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *BatchEventCreate) SetAction(v string) *BatchEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *BatchEventCreate) SetTopic(v string) *BatchEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetQuestionsServed sets the "questions_served" field.
func (_c *BatchEventCreate) SetQuestionsServed(v int) *BatchEventCreate {
	_c.mutation.SetQuestionsServed(v)
	return _c
}

// SetNillableQuestionsServed sets the "questions_served" field if the given value is not nil.
func (_c *BatchEventCreate) SetNillableQuestionsServed(v *int) *BatchEventCreate {
	if v != nil {
		_c.SetQuestionsServed(*v)
	}
	return _c
}

// SetAverageScore sets the "average_score" field.
func (_c *BatchEventCreate) SetAverageScore(v float64) *BatchEventCreate {
	_c.mutation.SetAverageScore(v)
	return _c
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_c *BatchEventCreate) SetNillableAverageScore(v *float64) *BatchEventCreate {
	if v != nil {
		_c.SetAverageScore(*v)
	}
	return _c
}

// Mutation returns the BatchEventMutation object of the builder.
func (_c *BatchEventCreate) Mutation() *BatchEventMutation {
	return _c.mutation
}

// Save creates the BatchEvent in the database.
func (_c *BatchEventCreate) Save(ctx context.Context) (*BatchEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchEventCreate) SaveX(ctx context.Context) *BatchEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := batchevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionsServed(); !ok {
		v := batchevent.DefaultQuestionsServed
		_c.mutation.SetQuestionsServed(v)
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		v := batchevent.DefaultAverageScore
		_c.mutation.SetAverageScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "BatchEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "BatchEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "BatchEvent.batch_id"`)}
	}
	if v, ok := _c.mutation.BatchID(); ok {
		if err := batchevent.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "BatchEvent.batch_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "BatchEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := batchevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BatchEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "BatchEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := batchevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "BatchEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionsServed(); !ok {
		return &ValidationError{Name: "questions_served", err: errors.New(`ent: missing required field "BatchEvent.questions_served"`)}
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		return &ValidationError{Name: "average_score", err: errors.New(`ent: missing required field "BatchEvent.average_score"`)}
	}
	return nil
}

func (_c *BatchEventCreate) sqlSave(ctx context.Context) (*BatchEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BatchEventCreate) createSpec() (*BatchEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BatchEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batchevent.Table, sqlgraph.NewFieldSpec(batchevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(batchevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(batchevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(batchevent.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(batchevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(batchevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.QuestionsServed(); ok {
		_spec.SetField(batchevent.FieldQuestionsServed, field.TypeInt, value)
		_node.QuestionsServed = value
	}
	if value, ok := _c.mutation.AverageScore(); ok {
		_spec.SetField(batchevent.FieldAverageScore, field.TypeFloat64, value)
		_node.AverageScore = value
	}
	return _node, _spec
}

// BatchEventCreateBulk is the builder for creating many BatchEvent entities in bulk.
type BatchEventCreateBulk struct {
	config
	err      error
	builders []*BatchEventCreate
}

// Save creates the BatchEvent entities in the database.
func (_c *BatchEventCreateBulk) Save(ctx context.Context) ([]*BatchEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BatchEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BatchEventCreateBulk) SaveX(ctx context.Context) []*BatchEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
