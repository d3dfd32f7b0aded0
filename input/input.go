// Package input validates user-supplied algorithm inputs before a stepper is
// built. The engines never call it; they assume well-formed input.
//
// Every rejection wraps ErrInvalidInput with a message fit to show the user.
package input

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("input: invalid")

// Limits enforced by the validators.
const (
	MaxTextLength = 200 // raw number-list text

	MaxArrayLength = 20
	MaxArrayValue  = 99

	MaxKnapsackItems  = 6
	MaxKnapsackWeight = 10
	MaxKnapsackValue  = 20
	MaxCapacity       = 20

	MaxLCSLength = 10
	MaxFibonacci = 15

	MaxSeriesLength = 12
	MaxSeriesValue  = 99
	MaxPenalty      = 20
)

// Defaults for the DP problems.
var (
	DefaultFibonacci = 8
	DefaultWeights   = []int{2, 3, 4, 5}
	DefaultValues    = []int{3, 4, 5, 6}
	DefaultCapacity  = 5
	DefaultLCSA      = "AGCAT"
	DefaultLCSB      = "GAC"
	DefaultSeriesA   = []int{1, 2, 3}
	DefaultSeriesB   = []int{1, 2, 2, 3}
)

var (
	validate  = validator.New(validator.WithRequiredStructEnabled())
	separator = regexp.MustCompile(`[,\s]+`)
)

func invalid(msg string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(msg, args...))
}

// ParseInts splits s on commas and whitespace and parses each token.
func ParseInts(s string) ([]int, error) {
	if len(s) > MaxTextLength {
		return nil, invalid("input is too long")
	}

	var out []int
	for _, tok := range separator.Split(strings.TrimSpace(s), -1) {
		if tok == "" {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, invalid("please enter valid numbers separated by commas")
		}
		out = append(out, v)
	}

	return out, nil
}

// ParseTarget parses a search target. Any integer is accepted.
func ParseTarget(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, invalid("please enter a target number")
	}

	return v, nil
}

// Array checks a sorting or searching array: 1..20 elements in [1, 99].
func Array(values []int) error {
	if err := validate.Var(values, fmt.Sprintf("min=1,max=%d", MaxArrayLength)); err != nil {
		if tagOf(err) == "min" {
			return invalid("please enter at least one number")
		}
		return invalid("maximum %d numbers allowed", MaxArrayLength)
	}
	if err := validate.Var(values, fmt.Sprintf("dive,min=1,max=%d", MaxArrayValue)); err != nil {
		return invalid("numbers must be between 1 and %d", MaxArrayValue)
	}

	return nil
}

// knapsack is validated field by field in declaration order.
type knapsack struct {
	Items    int   `validate:"max=6"`
	Capacity int   `validate:"min=1,max=20"`
	Weights  []int `validate:"dive,min=1,max=10"`
	Values   []int `validate:"dive,min=1,max=20"`
}

// Knapsack checks knapsack parameters: equal non-empty weight and value lists
// of at most six items, weights in [1, 10], values in [1, 20] and a capacity
// in [1, 20].
func Knapsack(weights, values []int, capacity int) error {
	if len(weights) == 0 || len(values) == 0 {
		return invalid("please enter valid weights and values")
	}
	if len(weights) != len(values) {
		return invalid("weights and values must have the same count")
	}

	err := validate.Struct(knapsack{Items: len(weights), Capacity: capacity, Weights: weights, Values: values})
	if err == nil {
		return nil
	}
	switch fieldOf(err) {
	case "Items":
		return invalid("maximum %d items allowed", MaxKnapsackItems)
	case "Capacity":
		return invalid("capacity must be between 1 and %d", MaxCapacity)
	default:
		return invalid("weights: 1-%d, values: 1-%d", MaxKnapsackWeight, MaxKnapsackValue)
	}
}

// lcs holds both LCS strings for validation.
type lcs struct {
	A string `validate:"max=10,min=1,alpha"`
	B string `validate:"max=10,min=1,alpha"`
}

// LCS checks two LCS strings (1..10 ASCII letters each) and returns them
// upper-cased.
func LCS(a, b string) (string, string, error) {
	if err := validate.Struct(lcs{A: a, B: b}); err != nil {
		switch tagOf(err) {
		case "max":
			return "", "", invalid("strings must be 1-%d characters", MaxLCSLength)
		case "min":
			return "", "", invalid("both strings are required")
		default:
			return "", "", invalid("only letters allowed")
		}
	}

	return strings.ToUpper(a), strings.ToUpper(b), nil
}

// Fibonacci checks n is in [1, 15].
func Fibonacci(n int) error {
	if err := validate.Var(n, fmt.Sprintf("min=1,max=%d", MaxFibonacci)); err != nil {
		return invalid("please enter a number between 1 and %d", MaxFibonacci)
	}

	return nil
}

// dtw is validated field by field in declaration order.
type dtw struct {
	A       []int `validate:"min=1,max=12,dive,min=0,max=99"`
	B       []int `validate:"min=1,max=12,dive,min=0,max=99"`
	Window  int   `validate:"min=0"`
	Penalty int   `validate:"min=0,max=20"`
}

// DTW checks two time series of 1..12 values in [0, 99], a non-negative
// window and a slope penalty in [0, 20].
func DTW(a, b []int, window, penalty int) error {
	err := validate.Struct(dtw{A: a, B: b, Window: window, Penalty: penalty})
	if err == nil {
		return nil
	}
	switch field, tag := fieldOf(err), tagOf(err); {
	case field == "Window":
		return invalid("window must not be negative")
	case field == "Penalty":
		return invalid("slope penalty must be between 0 and %d", MaxPenalty)
	case tag == "min" && !strings.Contains(namespaceOf(err), "["):
		return invalid("both series need at least one value")
	case tag == "max" && !strings.Contains(namespaceOf(err), "["):
		return invalid("maximum %d values per series", MaxSeriesLength)
	default:
		return invalid("series values must be between 0 and %d", MaxSeriesValue)
	}
}

// tagOf returns the failing tag of the first validation error.
func tagOf(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return ve[0].Tag()
	}

	return ""
}

// fieldOf returns the struct field of the first validation error.
func fieldOf(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return ve[0].StructField()
	}

	return ""
}

// namespaceOf returns the namespace of the first validation error; dived
// elements carry an index suffix such as "dtw.A[2]".
func namespaceOf(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return ve[0].Namespace()
	}

	return ""
}
