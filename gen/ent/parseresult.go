// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent/parsejob"
	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent/parseresult"
	"github.com/google/uuid"
)

// ParseResult is the model entity for the ParseResult schema.
type ParseResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// Issuer holds the value of the "issuer" field.
	Issuer string `json:"issuer,omitempty"`
	// IssuerConfidence holds the value of the "issuer_confidence" field.
	IssuerConfidence float64 `json:"issuer_confidence,omitempty"`
	// OverallConfidence holds the value of the "overall_confidence" field.
	OverallConfidence float64 `json:"overall_confidence,omitempty"`
	// Fields holds the value of the "fields" field.
	Fields json.RawMessage `json:"fields,omitempty"`
	// Transactions holds the value of the "transactions" field.
	Transactions json.RawMessage `json:"transactions,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ParseResultQuery when eager-loading is set.
	Edges        ParseResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ParseResultEdges holds the relations/edges for other nodes in the graph.
type ParseResultEdges struct {
	// Job holds the value of the job edge.
	Job *ParseJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParseResultEdges) JobOrErr() (*ParseJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: parsejob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParseResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case parseresult.FieldFields, parseresult.FieldTransactions:
			values[i] = new([]byte)
		case parseresult.FieldIssuerConfidence, parseresult.FieldOverallConfidence:
			values[i] = new(sql.NullFloat64)
		case parseresult.FieldIssuer:
			values[i] = new(sql.NullString)
		case parseresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case parseresult.FieldID, parseresult.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParseResult fields.
func (_m *ParseResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case parseresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case parseresult.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case parseresult.FieldIssuer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issuer", values[i])
			} else if value.Valid {
				_m.Issuer = value.String
			}
		case parseresult.FieldIssuerConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field issuer_confidence", values[i])
			} else if value.Valid {
				_m.IssuerConfidence = value.Float64
			}
		case parseresult.FieldOverallConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_confidence", values[i])
			} else if value.Valid {
				_m.OverallConfidence = value.Float64
			}
		case parseresult.FieldFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Fields); err != nil {
					return fmt.Errorf("unmarshal field fields: %w", err)
				}
			}
		case parseresult.FieldTransactions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field transactions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Transactions); err != nil {
					return fmt.Errorf("unmarshal field transactions: %w", err)
				}
			}
		case parseresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ParseResult.
// This includes values selected through modifiers, order, etc.
func (_m *ParseResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the ParseResult entity.
func (_m *ParseResult) QueryJob() *ParseJobQuery {
	return NewParseResultClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this ParseResult.
// Note that you need to call ParseResult.Unwrap() before calling this method if this ParseResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParseResult) Update() *ParseResultUpdateOne {
	return NewParseResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParseResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParseResult) Unwrap() *ParseResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParseResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParseResult) String() string {
	var builder strings.Builder
	builder.WriteString("ParseResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("issuer=")
	builder.WriteString(_m.Issuer)
	builder.WriteString(", ")
	builder.WriteString("issuer_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.IssuerConfidence))
	builder.WriteString(", ")
	builder.WriteString("overall_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallConfidence))
	builder.WriteString(", ")
	builder.WriteString("fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fields))
	builder.WriteString(", ")
	builder.WriteString("transactions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Transactions))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ParseResults is a parsable slice of ParseResult.
type ParseResults []*ParseResult
