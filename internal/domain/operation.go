package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// OperationKind names one of the library operations
type OperationKind string

const (
	OpAdd            OperationKind = "add"
	OpSubtract       OperationKind = "subtract"
	OpMultiply       OperationKind = "multiply"
	OpDivide         OperationKind = "divide"
	OpFormatCurrency OperationKind = "format_currency"
	OpPercentage     OperationKind = "percentage"
	OpRound          OperationKind = "round"
	OpInRange        OperationKind = "in_range"
)

// arity is the number of float arguments each operation takes
var arity = map[OperationKind]int{
	OpAdd:            2,
	OpSubtract:       2,
	OpMultiply:       2,
	OpDivide:         2,
	OpFormatCurrency: 1,
	OpPercentage:     2,
	OpRound:          2,
	OpInRange:        3,
}

// operationAliases provides user-friendly synonyms for operation names.
var operationAliases = map[string]OperationKind{
	"sub":             OpSubtract,
	"mul":             OpMultiply,
	"div":             OpDivide,
	"currency":        OpFormatCurrency,
	"format-currency": OpFormatCurrency,
	"pct":             OpPercentage,
	"percent":         OpPercentage,
	"round_to":        OpRound,
	"in-range":        OpInRange,
	"range":           OpInRange,
}

// ParseOperationKind lowers the name and resolves aliases.
func ParseOperationKind(name string) (OperationKind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := operationAliases[n]; ok {
		return k, nil
	}
	if _, ok := arity[OperationKind(n)]; ok {
		return OperationKind(n), nil
	}
	return "", fmt.Errorf("unknown operation %q (available: %s)", name, strings.Join(OperationNames(), ", "))
}

// Arity returns the number of arguments the operation expects, or -1 for an unknown kind.
func (k OperationKind) Arity() int {
	if n, ok := arity[k]; ok {
		return n
	}
	return -1
}

// OperationNames returns the canonical operation names, sorted.
func OperationNames() []string {
	names := make([]string, 0, len(arity))
	for k := range arity {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return names
}

// UnmarshalYAML accepts canonical names and aliases.
func (k *OperationKind) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	kind, err := ParseOperationKind(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = kind
	return nil
}

// Request is a single operation to evaluate
type Request struct {
	Name      string        `yaml:"name" json:"name"`
	Operation OperationKind `yaml:"op" json:"op"`
	Args      []float64     `yaml:"args" json:"args"`
}

// Label returns the request name, falling back to the operation
func (r Request) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return string(r.Operation)
}

// Batch is an ordered list of requests, as loaded from a batch file
type Batch struct {
	Operations []Request `yaml:"operations" json:"operations"`
}

// Result holds the outcome of one request. Value is a float64, a string
// (format_currency) or a bool (in_range); Error is set instead when the
// operation failed.
type Result struct {
	Name      string        `yaml:"name" json:"name"`
	Operation OperationKind `yaml:"op" json:"op"`
	Args      []float64     `yaml:"args" json:"args"`
	Value     any           `yaml:"value,omitempty" json:"value,omitempty"`
	Error     string        `yaml:"error,omitempty" json:"error,omitempty"`
}

// MarshalJSON writes NaN and infinite args and values as strings ("NaN",
// "+Inf", "-Inf"), which JSON numbers cannot represent.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	args := make([]any, len(r.Args))
	for i, a := range r.Args {
		args[i] = jsonFloat(a)
	}
	value := r.Value
	if f, ok := value.(float64); ok {
		value = jsonFloat(f)
	}
	return json.Marshal(struct {
		plain
		Args  []any `json:"args"`
		Value any   `json:"value,omitempty"`
	}{plain: plain(r), Args: args, Value: value})
}

func jsonFloat(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return formatFloat(f)
	}
	return f
}

// Failed reports whether the operation returned an error
func (r Result) Failed() bool {
	return r.Error != ""
}

// BatchResult collects results in request order
type BatchResult struct {
	Results  []Result `yaml:"results" json:"results"`
	Failures int      `yaml:"failures" json:"failures"`
}

// FormatArgs renders arguments as a comma separated list using the shortest
// representation of each value.
func FormatArgs(args []float64) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = formatFloat(a)
	}
	return strings.Join(parts, ", ")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
