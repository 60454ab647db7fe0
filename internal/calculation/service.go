package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/rpgo/numutil/internal/domain"
	"github.com/rpgo/numutil/pkg/decimal"
	"github.com/rpgo/numutil/pkg/numeric"
)

// ErrInvalidArguments is wrapped by every argument validation failure.
var ErrInvalidArguments = errors.New("invalid arguments")

// Service evaluates single operation requests
type Service interface {
	Evaluate(req domain.Request) (domain.Result, error)
}

// Option configures the engine built by NewService
type Option func(*engine)

// WithExactArithmetic evaluates finite arguments in decimal arithmetic
// instead of float64, so 0.1 + 0.2 yields 0.3.
func WithExactArithmetic() Option {
	return func(e *engine) { e.exact = true }
}

type engine struct {
	exact bool
}

// NewService returns the default Service backed by pkg/numeric
func NewService(opts ...Option) Service {
	e := &engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs req. A failed operation returns both a Result with Error set
// and the error itself.
func (e *engine) Evaluate(req domain.Request) (domain.Result, error) {
	res := domain.Result{Name: req.Label(), Operation: req.Operation, Args: req.Args}
	v, err := e.evaluate(req)
	if err != nil {
		res.Error = err.Error()
		return res, err
	}
	res.Value = v
	return res, nil
}

func (e *engine) evaluate(req domain.Request) (any, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	a := req.Args
	if e.exact && allFinite(a) {
		return evaluateExact(req.Operation, a)
	}

	switch req.Operation {
	case domain.OpAdd:
		return numeric.Add(a[0], a[1]), nil
	case domain.OpSubtract:
		return numeric.Subtract(a[0], a[1]), nil
	case domain.OpMultiply:
		return numeric.Multiply(a[0], a[1]), nil
	case domain.OpDivide:
		return numeric.Divide(a[0], a[1])
	case domain.OpFormatCurrency:
		return numeric.FormatCurrency(a[0]), nil
	case domain.OpPercentage:
		return numeric.CalculatePercentage(a[0], a[1]), nil
	case domain.OpRound:
		return numeric.RoundTo(a[0], int(a[1])), nil
	case domain.OpInRange:
		return numeric.IsInRange(a[0], a[1], a[2]), nil
	}
	return nil, fmt.Errorf("unsupported operation %q", req.Operation)
}

func evaluateExact(op domain.OperationKind, a []float64) (any, error) {
	m := make([]decimal.Money, len(a))
	for i, f := range a {
		m[i] = decimal.NewMoney(f)
	}

	switch op {
	case domain.OpAdd:
		return m[0].Add(m[1]).Float64(), nil
	case domain.OpSubtract:
		return m[0].Sub(m[1]).Float64(), nil
	case domain.OpMultiply:
		return m[0].Mul(m[1]).Float64(), nil
	case domain.OpDivide:
		q, err := m[0].Div(m[1])
		if err != nil {
			return nil, err
		}
		return q.Float64(), nil
	case domain.OpFormatCurrency:
		return m[0].Format(), nil
	case domain.OpPercentage:
		return m[0].Percentage(m[1]).Float64(), nil
	case domain.OpRound:
		return m[0].RoundTo(int(a[1])).Float64(), nil
	case domain.OpInRange:
		return m[0].InRange(m[1], m[2]), nil
	}
	return nil, fmt.Errorf("unsupported operation %q", op)
}

// ValidateRequest checks the operation is known and the arguments fit it.
func ValidateRequest(req domain.Request) error {
	want := req.Operation.Arity()
	if want < 0 {
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidArguments, req.Operation)
	}
	if len(req.Args) != want {
		return fmt.Errorf("%w: %s expects %d arguments, got %d", ErrInvalidArguments, req.Operation, want, len(req.Args))
	}
	if req.Operation == domain.OpRound {
		d := req.Args[1]
		if d != math.Trunc(d) || math.Abs(d) > 100 {
			return fmt.Errorf("%w: round decimals must be an integer between -100 and 100, got %v", ErrInvalidArguments, d)
		}
	}
	return nil
}

// EvaluateBatch runs every request through s in order. A failing request is
// recorded in its Result and does not stop the batch.
func EvaluateBatch(s Service, batch domain.Batch) domain.BatchResult {
	out := domain.BatchResult{Results: make([]domain.Result, 0, len(batch.Operations))}
	for _, req := range batch.Operations {
		res, err := s.Evaluate(req)
		if err != nil {
			out.Failures++
		}
		out.Results = append(out.Results, res)
	}
	return out
}

func allFinite(args []float64) bool {
	for _, f := range args {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
