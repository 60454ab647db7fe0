package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseOperationKind(t *testing.T) {
	cases := map[string]OperationKind{
		"add":        OpAdd,
		" Subtract ": OpSubtract,
		"sub":        OpSubtract,
		"MUL":        OpMultiply,
		"div":        OpDivide,
		"currency":   OpFormatCurrency,
		"pct":        OpPercentage,
		"round":      OpRound,
		"in-range":   OpInRange,
		"in_range":   OpInRange,
	}
	for in, want := range cases {
		got, err := ParseOperationKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseOperationKind("modulo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation \"modulo\"")
	assert.Contains(t, err.Error(), "format_currency")
}

func TestArity(t *testing.T) {
	assert.Equal(t, 2, OpAdd.Arity())
	assert.Equal(t, 1, OpFormatCurrency.Arity())
	assert.Equal(t, 3, OpInRange.Arity())
	assert.Equal(t, -1, OperationKind("nope").Arity())
	assert.Len(t, OperationNames(), 8)
}

func TestBatchUnmarshalYAML(t *testing.T) {
	doc := "operations:\n" +
		"  - name: sum\n" +
		"    op: add\n" +
		"    args: [10, 5]\n" +
		"  - op: currency\n" +
		"    args: [99.9]\n"

	var b Batch
	require.NoError(t, yaml.Unmarshal([]byte(doc), &b))
	require.Len(t, b.Operations, 2)
	assert.Equal(t, "sum", b.Operations[0].Label())
	assert.Equal(t, []float64{10, 5}, b.Operations[0].Args)
	assert.Equal(t, OpFormatCurrency, b.Operations[1].Operation)
	assert.Equal(t, "format_currency", b.Operations[1].Label())

	err := yaml.Unmarshal([]byte("operations:\n  - op: sqrt\n"), &b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestResultFailed(t *testing.T) {
	assert.False(t, Result{Value: 1.0}.Failed())
	assert.True(t, Result{Error: "Division by zero"}.Failed())
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "10, 5", FormatArgs([]float64{10, 5}))
	assert.Equal(t, "3.14159, -2", FormatArgs([]float64{3.14159, -2}))
	assert.Equal(t, "1e+21", FormatArgs([]float64{1e21}))
	assert.Equal(t, "", FormatArgs(nil))
}

func TestResultMarshalJSON_NonFinite(t *testing.T) {
	res := Result{Name: "overflow", Operation: OpMultiply, Args: []float64{1e308, 10}, Value: math.Inf(1)}
	out, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"overflow","op":"multiply","args":[1e308,10],"value":"+Inf"}`, string(out))

	out, err = json.Marshal(Result{Operation: OpAdd, Args: []float64{math.NaN(), math.Inf(-1)}, Value: math.NaN()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"","op":"add","args":["NaN","-Inf"],"value":"NaN"}`, string(out))

	out, err = json.Marshal(Result{Operation: OpDivide, Args: []float64{1, 0}, Error: "Division by zero"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"","op":"divide","args":[1,0],"error":"Division by zero"}`, string(out))

	out, err = json.Marshal(Result{Operation: OpInRange, Args: []float64{50, 0, 100}, Value: false})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"","op":"in_range","args":[50,0,100],"value":false}`, string(out))
}
