package stats

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/zstat/internal/numerics"
	"github.com/GriffinCanCode/zstat/internal/types"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// evaluation converts a numerics result into result data.
func evaluation(res numerics.Result) map[string]interface{} {
	return map[string]interface{}{
		"result":     res.Value,
		"converged":  res.Converged,
		"iterations": res.Iterations,
		"method":     res.Method.String(),
	}
}

// GetNumber extracts float64 from params with validation
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetNumbers extracts array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	switch arr := params[key].(type) {
	case []float64:
		return arr, true
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for _, v := range arr {
			switch num := v.(type) {
			case float64:
				numbers = append(numbers, num)
			case int:
				numbers = append(numbers, float64(num))
			case int64:
				numbers = append(numbers, float64(num))
			case float32:
				numbers = append(numbers, float64(num))
			default:
				return nil, false
			}
		}
		return numbers, true
	default:
		return nil, false
	}
}

// ValidateNumber checks if a number is valid (not NaN or Inf)
func ValidateNumber(x float64, name string) error {
	if math.IsNaN(x) {
		return fmt.Errorf("%s is NaN", name)
	}
	if math.IsInf(x, 0) {
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}

// ValidateNumbers validates an array of numbers
func ValidateNumbers(nums []float64, name string) error {
	for i, x := range nums {
		if err := ValidateNumber(x, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}

// requireNumber fetches and validates a single numeric parameter.
func requireNumber(params map[string]interface{}, key string) (float64, error) {
	x, ok := GetNumber(params, key)
	if !ok {
		return 0, fmt.Errorf("%s parameter required", key)
	}
	if err := ValidateNumber(x, key); err != nil {
		return 0, err
	}
	return x, nil
}
