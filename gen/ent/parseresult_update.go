// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent/parsejob"
	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent/parseresult"
	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent/predicate"
	"github.com/google/uuid"
)

// ParseResultUpdate is the builder for updating ParseResult entities.
type ParseResultUpdate struct {
	config
	hooks    []Hook
	mutation *ParseResultMutation
}

// Where appends a list predicates to the ParseResultUpdate builder.
func (_u *ParseResultUpdate) Where(ps ...predicate.ParseResult) *ParseResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ParseResultUpdate) SetJobID(v uuid.UUID) *ParseResultUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ParseResultUpdate) SetNillableJobID(v *uuid.UUID) *ParseResultUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetIssuer sets the "issuer" field.
func (_u *ParseResultUpdate) SetIssuer(v string) *ParseResultUpdate {
	_u.mutation.SetIssuer(v)
	return _u
}

// SetNillableIssuer sets the "issuer" field if the given value is not nil.
func (_u *ParseResultUpdate) SetNillableIssuer(v *string) *ParseResultUpdate {
	if v != nil {
		_u.SetIssuer(*v)
	}
	return _u
}

// SetIssuerConfidence sets the "issuer_confidence" field.
func (_u *ParseResultUpdate) SetIssuerConfidence(v float64) *ParseResultUpdate {
	_u.mutation.ResetIssuerConfidence()
	_u.mutation.SetIssuerConfidence(v)
	return _u
}

// SetNillableIssuerConfidence sets the "issuer_confidence" field if the given value is not nil.
func (_u *ParseResultUpdate) SetNillableIssuerConfidence(v *float64) *ParseResultUpdate {
	if v != nil {
		_u.SetIssuerConfidence(*v)
	}
	return _u
}

// AddIssuerConfidence adds value to the "issuer_confidence" field.
func (_u *ParseResultUpdate) AddIssuerConfidence(v float64) *ParseResultUpdate {
	_u.mutation.AddIssuerConfidence(v)
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *ParseResultUpdate) SetOverallConfidence(v float64) *ParseResultUpdate {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *ParseResultUpdate) SetNillableOverallConfidence(v *float64) *ParseResultUpdate {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *ParseResultUpdate) AddOverallConfidence(v float64) *ParseResultUpdate {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// SetFields sets the "fields" field.
func (_u *ParseResultUpdate) SetFields(v json.RawMessage) *ParseResultUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *ParseResultUpdate) AppendFields(v json.RawMessage) *ParseResultUpdate {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *ParseResultUpdate) ClearFields() *ParseResultUpdate {
	_u.mutation.ClearFields()
	return _u
}

// SetTransactions sets the "transactions" field.
func (_u *ParseResultUpdate) SetTransactions(v json.RawMessage) *ParseResultUpdate {
	_u.mutation.SetTransactions(v)
	return _u
}

// AppendTransactions appends value to the "transactions" field.
func (_u *ParseResultUpdate) AppendTransactions(v json.RawMessage) *ParseResultUpdate {
	_u.mutation.AppendTransactions(v)
	return _u
}

// ClearTransactions clears the value of the "transactions" field.
func (_u *ParseResultUpdate) ClearTransactions() *ParseResultUpdate {
	_u.mutation.ClearTransactions()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ParseResultUpdate) SetCreatedAt(v time.Time) *ParseResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ParseResultUpdate) SetNillableCreatedAt(v *time.Time) *ParseResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ParseJob entity.
func (_u *ParseResultUpdate) SetJob(v *ParseJob) *ParseResultUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the ParseResultMutation object of the builder.
func (_u *ParseResultUpdate) Mutation() *ParseResultMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ParseJob entity.
func (_u *ParseResultUpdate) ClearJob() *ParseResultUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParseResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParseResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseResultUpdate) check() error {
	if v, ok := _u.mutation.Issuer(); ok {
		if err := parseresult.IssuerValidator(v); err != nil {
			return &ValidationError{Name: "issuer", err: fmt.Errorf(`ent: validator failed for field "ParseResult.issuer": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseResult.job"`)
	}
	return nil
}

func (_u *ParseResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parseresult.Table, parseresult.Columns, sqlgraph.NewFieldSpec(parseresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Issuer(); ok {
		_spec.SetField(parseresult.FieldIssuer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuerConfidence(); ok {
		_spec.SetField(parseresult.FieldIssuerConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIssuerConfidence(); ok {
		_spec.AddField(parseresult.FieldIssuerConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(parseresult.FieldOverallConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(parseresult.FieldOverallConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(parseresult.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parseresult.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(parseresult.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Transactions(); ok {
		_spec.SetField(parseresult.FieldTransactions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTransactions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parseresult.FieldTransactions, value)
		})
	}
	if _u.mutation.TransactionsCleared() {
		_spec.ClearField(parseresult.FieldTransactions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(parseresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parseresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParseResultUpdateOne is the builder for updating a single ParseResult entity.
type ParseResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParseResultMutation
}

// SetJobID sets the "job_id" field.
func (_u *ParseResultUpdateOne) SetJobID(v uuid.UUID) *ParseResultUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ParseResultUpdateOne) SetNillableJobID(v *uuid.UUID) *ParseResultUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetIssuer sets the "issuer" field.
func (_u *ParseResultUpdateOne) SetIssuer(v string) *ParseResultUpdateOne {
	_u.mutation.SetIssuer(v)
	return _u
}

// SetNillableIssuer sets the "issuer" field if the given value is not nil.
func (_u *ParseResultUpdateOne) SetNillableIssuer(v *string) *ParseResultUpdateOne {
	if v != nil {
		_u.SetIssuer(*v)
	}
	return _u
}

// SetIssuerConfidence sets the "issuer_confidence" field.
func (_u *ParseResultUpdateOne) SetIssuerConfidence(v float64) *ParseResultUpdateOne {
	_u.mutation.ResetIssuerConfidence()
	_u.mutation.SetIssuerConfidence(v)
	return _u
}

// SetNillableIssuerConfidence sets the "issuer_confidence" field if the given value is not nil.
func (_u *ParseResultUpdateOne) SetNillableIssuerConfidence(v *float64) *ParseResultUpdateOne {
	if v != nil {
		_u.SetIssuerConfidence(*v)
	}
	return _u
}

// AddIssuerConfidence adds value to the "issuer_confidence" field.
func (_u *ParseResultUpdateOne) AddIssuerConfidence(v float64) *ParseResultUpdateOne {
	_u.mutation.AddIssuerConfidence(v)
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *ParseResultUpdateOne) SetOverallConfidence(v float64) *ParseResultUpdateOne {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *ParseResultUpdateOne) SetNillableOverallConfidence(v *float64) *ParseResultUpdateOne {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *ParseResultUpdateOne) AddOverallConfidence(v float64) *ParseResultUpdateOne {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// SetFields sets the "fields" field.
func (_u *ParseResultUpdateOne) SetFields(v json.RawMessage) *ParseResultUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *ParseResultUpdateOne) AppendFields(v json.RawMessage) *ParseResultUpdateOne {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *ParseResultUpdateOne) ClearFields() *ParseResultUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// SetTransactions sets the "transactions" field.
func (_u *ParseResultUpdateOne) SetTransactions(v json.RawMessage) *ParseResultUpdateOne {
	_u.mutation.SetTransactions(v)
	return _u
}

// AppendTransactions appends value to the "transactions" field.
func (_u *ParseResultUpdateOne) AppendTransactions(v json.RawMessage) *ParseResultUpdateOne {
	_u.mutation.AppendTransactions(v)
	return _u
}

// ClearTransactions clears the value of the "transactions" field.
func (_u *ParseResultUpdateOne) ClearTransactions() *ParseResultUpdateOne {
	_u.mutation.ClearTransactions()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ParseResultUpdateOne) SetCreatedAt(v time.Time) *ParseResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ParseResultUpdateOne) SetNillableCreatedAt(v *time.Time) *ParseResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ParseJob entity.
func (_u *ParseResultUpdateOne) SetJob(v *ParseJob) *ParseResultUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the ParseResultMutation object of the builder.
func (_u *ParseResultUpdateOne) Mutation() *ParseResultMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ParseJob entity.
func (_u *ParseResultUpdateOne) ClearJob() *ParseResultUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the ParseResultUpdate builder.
func (_u *ParseResultUpdateOne) Where(ps ...predicate.ParseResult) *ParseResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParseResultUpdateOne) Select(field string, fields ...string) *ParseResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParseResult entity.
func (_u *ParseResultUpdateOne) Save(ctx context.Context) (*ParseResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseResultUpdateOne) SaveX(ctx context.Context) *ParseResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParseResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseResultUpdateOne) check() error {
	if v, ok := _u.mutation.Issuer(); ok {
		if err := parseresult.IssuerValidator(v); err != nil {
			return &ValidationError{Name: "issuer", err: fmt.Errorf(`ent: validator failed for field "ParseResult.issuer": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseResult.job"`)
	}
	return nil
}

func (_u *ParseResultUpdateOne) sqlSave(ctx context.Context) (_node *ParseResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parseresult.Table, parseresult.Columns, sqlgraph.NewFieldSpec(parseresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParseResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parseresult.FieldID)
		for _, f := range fields {
			if !parseresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != parseresult.FieldID {
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
	if value, ok := _u.mutation.Issuer(); ok {
		_spec.SetField(parseresult.FieldIssuer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuerConfidence(); ok {
		_spec.SetField(parseresult.FieldIssuerConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIssuerConfidence(); ok {
		_spec.AddField(parseresult.FieldIssuerConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(parseresult.FieldOverallConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(parseresult.FieldOverallConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(parseresult.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parseresult.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(parseresult.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Transactions(); ok {
		_spec.SetField(parseresult.FieldTransactions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTransactions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parseresult.FieldTransactions, value)
		})
	}
	if _u.mutation.TransactionsCleared() {
		_spec.ClearField(parseresult.FieldTransactions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(parseresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ParseResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parseresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
