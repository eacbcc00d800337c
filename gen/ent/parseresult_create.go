// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent/parsejob"
	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent/parseresult"
	"github.com/google/uuid"
)

// ParseResultCreate is the builder for creating a ParseResult entity.
type ParseResultCreate struct {
	config
	mutation *ParseResultMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *ParseResultCreate) SetJobID(v uuid.UUID) *ParseResultCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetIssuer sets the "issuer" field.
func (_c *ParseResultCreate) SetIssuer(v string) *ParseResultCreate {
	_c.mutation.SetIssuer(v)
	return _c
}

// SetIssuerConfidence sets the "issuer_confidence" field.
func (_c *ParseResultCreate) SetIssuerConfidence(v float64) *ParseResultCreate {
	_c.mutation.SetIssuerConfidence(v)
	return _c
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_c *ParseResultCreate) SetOverallConfidence(v float64) *ParseResultCreate {
	_c.mutation.SetOverallConfidence(v)
	return _c
}

// SetFields sets the "fields" field.
func (_c *ParseResultCreate) SetFields(v json.RawMessage) *ParseResultCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetTransactions sets the "transactions" field.
func (_c *ParseResultCreate) SetTransactions(v json.RawMessage) *ParseResultCreate {
	_c.mutation.SetTransactions(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ParseResultCreate) SetCreatedAt(v time.Time) *ParseResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ParseResultCreate) SetNillableCreatedAt(v *time.Time) *ParseResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ParseResultCreate) SetID(v uuid.UUID) *ParseResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ParseResultCreate) SetNillableID(v *uuid.UUID) *ParseResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ParseJob entity.
func (_c *ParseResultCreate) SetJob(v *ParseJob) *ParseResultCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the ParseResultMutation object of the builder.
func (_c *ParseResultCreate) Mutation() *ParseResultMutation {
	return _c.mutation
}

// Save creates the ParseResult in the database.
func (_c *ParseResultCreate) Save(ctx context.Context) (*ParseResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParseResultCreate) SaveX(ctx context.Context) *ParseResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParseResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParseResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParseResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := parseresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := parseresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParseResultCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ParseResult.job_id"`)}
	}
	if _, ok := _c.mutation.Issuer(); !ok {
		return &ValidationError{Name: "issuer", err: errors.New(`ent: missing required field "ParseResult.issuer"`)}
	}
	if v, ok := _c.mutation.Issuer(); ok {
		if err := parseresult.IssuerValidator(v); err != nil {
			return &ValidationError{Name: "issuer", err: fmt.Errorf(`ent: validator failed for field "ParseResult.issuer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IssuerConfidence(); !ok {
		return &ValidationError{Name: "issuer_confidence", err: errors.New(`ent: missing required field "ParseResult.issuer_confidence"`)}
	}
	if _, ok := _c.mutation.OverallConfidence(); !ok {
		return &ValidationError{Name: "overall_confidence", err: errors.New(`ent: missing required field "ParseResult.overall_confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ParseResult.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "ParseResult.job"`)}
	}
	return nil
}

func (_c *ParseResultCreate) sqlSave(ctx context.Context) (*ParseResult, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ParseResultCreate) createSpec() (*ParseResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ParseResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(parseresult.Table, sqlgraph.NewFieldSpec(parseresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Issuer(); ok {
		_spec.SetField(parseresult.FieldIssuer, field.TypeString, value)
		_node.Issuer = value
	}
	if value, ok := _c.mutation.IssuerConfidence(); ok {
		_spec.SetField(parseresult.FieldIssuerConfidence, field.TypeFloat64, value)
		_node.IssuerConfidence = value
	}
	if value, ok := _c.mutation.OverallConfidence(); ok {
		_spec.SetField(parseresult.FieldOverallConfidence, field.TypeFloat64, value)
		_node.OverallConfidence = value
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(parseresult.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := _c.mutation.Transactions(); ok {
		_spec.SetField(parseresult.FieldTransactions, field.TypeJSON, value)
		_node.Transactions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(parseresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   parseresult.JobTable,
			Columns: []string{parseresult.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ParseResultCreateBulk is the builder for creating many ParseResult entities in bulk.
type ParseResultCreateBulk struct {
	config
	err      error
	builders []*ParseResultCreate
}

// Save creates the ParseResult entities in the database.
func (_c *ParseResultCreateBulk) Save(ctx context.Context) ([]*ParseResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParseResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParseResultMutation)
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
func (_c *ParseResultCreateBulk) SaveX(ctx context.Context) []*ParseResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParseResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParseResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
