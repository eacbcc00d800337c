package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubh2310-developer/cc-statement-parser/constants"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/extraction"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/template"
	"github.com/shopspring/decimal"
)

func TestResultSchema_AcceptsEngineOutput(t *testing.T) {
	res := extraction.Result{
		Fields: []extraction.Field{{
			FieldID:    constants.FieldPaymentDueDate,
			RawValue:   "05 Nov 2025",
			Value:      "2025-11-05",
			Normalized: true,
			Confidence: 0.95,
			Strategy:   template.StrategyProximity,
			Snippet:    "Payment Due Date: 05 Nov 2025",
		}},
		Transactions: []extraction.Transaction{{
			Date:        "2025-10-12",
			Description: "AMAZON RETAIL",
			Amount:      decimal.RequireFromString("1299"),
			Confidence:  0.85,
		}},
	}

	fields, err := json.Marshal(res.Fields)
	require.NoError(t, err)
	transactions, err := json.Marshal(res.Transactions)
	require.NoError(t, err)
	envelope, err := json.Marshal(map[string]json.RawMessage{
		"fields":       fields,
		"transactions": transactions,
	})
	require.NoError(t, err)

	assert.NoError(t, validateAgainst(resultSchema(), envelope))
}

func TestResultSchema_AcceptsEmptyResult(t *testing.T) {
	envelope := []byte(`{"fields":[],"transactions":[]}`)
	assert.NoError(t, validateAgainst(resultSchema(), envelope))
}

func TestResultSchema_RejectsBadShapes(t *testing.T) {
	cases := map[string]string{
		"unknown field id":   `{"fields":[{"field_id":"bogus","raw_value":"x","value":"x","confidence":0.5,"strategy":"PROXIMITY"}],"transactions":[]}`,
		"confidence > 1":     `{"fields":[{"field_id":"total_due","raw_value":"x","value":"x","confidence":1.5,"strategy":"COLUMN"}],"transactions":[]}`,
		"non-ISO tx date":    `{"fields":[],"transactions":[{"date":"12/10/2025","amount":"100"}]}`,
		"non-decimal amount": `{"fields":[],"transactions":[{"date":"2025-10-12","amount":"1,299.00"}]}`,
		"missing sections":   `{"fields":[]}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, validateAgainst(resultSchema(), []byte(payload)))
		})
	}
}

func TestOrEmptyArray(t *testing.T) {
	assert.Equal(t, json.RawMessage("[]"), orEmptyArray(json.RawMessage("null")))
	assert.Equal(t, json.RawMessage(`[1]`), orEmptyArray(json.RawMessage(`[1]`)))
}
