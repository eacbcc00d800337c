// Code generated by ent, DO NOT EDIT.

package parseresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldEQ(FieldJobID, v))
}

// Issuer applies equality check predicate on the "issuer" field. It's identical to IssuerEQ.
func Issuer(v string) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldEQ(FieldIssuer, v))
}

// IssuerConfidence applies equality check predicate on the "issuer_confidence" field. It's identical to IssuerConfidenceEQ.
func IssuerConfidence(v float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldEQ(FieldIssuerConfidence, v))
}

// OverallConfidence applies equality check predicate on the "overall_confidence" field. It's identical to OverallConfidenceEQ.
func OverallConfidence(v float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldEQ(FieldOverallConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldNotIn(FieldJobID, vs...))
}

// IssuerEQ applies the EQ predicate on the "issuer" field.
func IssuerEQ(v string) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldEQ(FieldIssuer, v))
}

// IssuerNEQ applies the NEQ predicate on the "issuer" field.
func IssuerNEQ(v string) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldNEQ(FieldIssuer, v))
}

// IssuerIn applies the In predicate on the "issuer" field.
func IssuerIn(vs ...string) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldIn(FieldIssuer, vs...))
}

// IssuerNotIn applies the NotIn predicate on the "issuer" field.
func IssuerNotIn(vs ...string) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldNotIn(FieldIssuer, vs...))
}

// IssuerGT applies the GT predicate on the "issuer" field.
func IssuerGT(v string) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldGT(FieldIssuer, v))
}

// IssuerGTE applies the GTE predicate on the "issuer" field.
func IssuerGTE(v string) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldGTE(FieldIssuer, v))
}

// IssuerLT applies the LT predicate on the "issuer" field.
func IssuerLT(v string) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldLT(FieldIssuer, v))
}

// IssuerLTE applies the LTE predicate on the "issuer" field.
func IssuerLTE(v string) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldLTE(FieldIssuer, v))
}

// IssuerContains applies the Contains predicate on the "issuer" field.
func IssuerContains(v string) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldContains(FieldIssuer, v))
}

// IssuerHasPrefix applies the HasPrefix predicate on the "issuer" field.
func IssuerHasPrefix(v string) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldHasPrefix(FieldIssuer, v))
}

// IssuerHasSuffix applies the HasSuffix predicate on the "issuer" field.
func IssuerHasSuffix(v string) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldHasSuffix(FieldIssuer, v))
}

// IssuerEqualFold applies the EqualFold predicate on the "issuer" field.
func IssuerEqualFold(v string) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldEqualFold(FieldIssuer, v))
}

// IssuerContainsFold applies the ContainsFold predicate on the "issuer" field.
func IssuerContainsFold(v string) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldContainsFold(FieldIssuer, v))
}

// IssuerConfidenceEQ applies the EQ predicate on the "issuer_confidence" field.
func IssuerConfidenceEQ(v float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldEQ(FieldIssuerConfidence, v))
}

// IssuerConfidenceNEQ applies the NEQ predicate on the "issuer_confidence" field.
func IssuerConfidenceNEQ(v float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldNEQ(FieldIssuerConfidence, v))
}

// IssuerConfidenceIn applies the In predicate on the "issuer_confidence" field.
func IssuerConfidenceIn(vs ...float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldIn(FieldIssuerConfidence, vs...))
}

// IssuerConfidenceNotIn applies the NotIn predicate on the "issuer_confidence" field.
func IssuerConfidenceNotIn(vs ...float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldNotIn(FieldIssuerConfidence, vs...))
}

// IssuerConfidenceGT applies the GT predicate on the "issuer_confidence" field.
func IssuerConfidenceGT(v float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldGT(FieldIssuerConfidence, v))
}

// IssuerConfidenceGTE applies the GTE predicate on the "issuer_confidence" field.
func IssuerConfidenceGTE(v float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldGTE(FieldIssuerConfidence, v))
}

// IssuerConfidenceLT applies the LT predicate on the "issuer_confidence" field.
func IssuerConfidenceLT(v float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldLT(FieldIssuerConfidence, v))
}

// IssuerConfidenceLTE applies the LTE predicate on the "issuer_confidence" field.
func IssuerConfidenceLTE(v float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldLTE(FieldIssuerConfidence, v))
}

// OverallConfidenceEQ applies the EQ predicate on the "overall_confidence" field.
func OverallConfidenceEQ(v float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldEQ(FieldOverallConfidence, v))
}

// OverallConfidenceNEQ applies the NEQ predicate on the "overall_confidence" field.
func OverallConfidenceNEQ(v float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldNEQ(FieldOverallConfidence, v))
}

// OverallConfidenceIn applies the In predicate on the "overall_confidence" field.
func OverallConfidenceIn(vs ...float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceNotIn applies the NotIn predicate on the "overall_confidence" field.
func OverallConfidenceNotIn(vs ...float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldNotIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceGT applies the GT predicate on the "overall_confidence" field.
func OverallConfidenceGT(v float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldGT(FieldOverallConfidence, v))
}

// OverallConfidenceGTE applies the GTE predicate on the "overall_confidence" field.
func OverallConfidenceGTE(v float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldGTE(FieldOverallConfidence, v))
}

// OverallConfidenceLT applies the LT predicate on the "overall_confidence" field.
func OverallConfidenceLT(v float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldLT(FieldOverallConfidence, v))
}

// OverallConfidenceLTE applies the LTE predicate on the "overall_confidence" field.
func OverallConfidenceLTE(v float64) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldLTE(FieldOverallConfidence, v))
}

// FieldsIsNil applies the IsNil predicate on the "fields" field.
func FieldsIsNil() predicate.ParseResult {
	return predicate.ParseResult(sql.FieldIsNull(FieldFields))
}

// FieldsNotNil applies the NotNil predicate on the "fields" field.
func FieldsNotNil() predicate.ParseResult {
	return predicate.ParseResult(sql.FieldNotNull(FieldFields))
}

// TransactionsIsNil applies the IsNil predicate on the "transactions" field.
func TransactionsIsNil() predicate.ParseResult {
	return predicate.ParseResult(sql.FieldIsNull(FieldTransactions))
}

// TransactionsNotNil applies the NotNil predicate on the "transactions" field.
func TransactionsNotNil() predicate.ParseResult {
	return predicate.ParseResult(sql.FieldNotNull(FieldTransactions))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ParseResult {
	return predicate.ParseResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.ParseResult {
	return predicate.ParseResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ParseJob) predicate.ParseResult {
	return predicate.ParseResult(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParseResult) predicate.ParseResult {
	return predicate.ParseResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParseResult) predicate.ParseResult {
	return predicate.ParseResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParseResult) predicate.ParseResult {
	return predicate.ParseResult(sql.NotPredicates(p))
}
