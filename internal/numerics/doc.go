// Package numerics evaluates the error function through the regularized
// incomplete gamma function.
//
// Evaluation layers:
//   - LogGamma: ln Γ(x) from a six-term Lanczos series
//   - GammaP / GammaQ: regularized lower and upper incomplete gamma
//   - Erf / Erfc: error function and its complement via P(1/2, x²)
//
// GammaP picks one of two iterative algorithms by input range:
//   - x < a+1: power series for P(a,x)
//   - x ≥ a+1: modified Lentz continued fraction for Q(a,x), returned as 1−Q
//
// Every call returns a Result carrying the value, the algorithm used, the
// iteration count and a convergence flag. Invalid arguments return a
// *DomainError wrapping ErrDomain instead of a sentinel value. Hitting
// the iteration cap is not an error: the best estimate is returned with
// Converged set to false.
//
// An Observer attached with WithObserver sees every result and every
// rejected argument pair; monitoring uses it to count evaluations.
//
// Example Usage:
//
//	eval := numerics.NewEvaluator(numerics.DefaultConfig(), logger.Logger)
//	res, err := eval.Erf(1.0)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Value, res.Converged)
package numerics
