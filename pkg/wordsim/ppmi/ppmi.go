package ppmi

import "math"

// Calculator handles PMI (Pointwise Mutual Information) calculations
type Calculator struct {
	epsilon float64 // additive smoothing constant
}

// NewCalculator creates a PMI calculator with the given epsilon.
// epsilon 0 gives the unsmoothed textbook formula; negative values are
// treated as 0.
func NewCalculator(epsilon float64) *Calculator {
	if epsilon < 0 {
		epsilon = 0
	}
	return &Calculator{epsilon: epsilon}
}

// PMI calculates the pointwise mutual information between two words.
//
// PMI(a,b) = ln((N_ab + ε) * T / ((N_a + ε)(N_b + ε)))
//
// Where:
//   - N_ab = co-occurrence observations for the pair
//   - N_a, N_b = marginal context observations for each word
//   - T = total context observations
//   - ε = smoothing constant (default 0)
//
// Natural log throughout. With ε = 0 and N_ab = 0 the result is -Inf;
// callers that need a clamped value use PPMI.
func (c *Calculator) PMI(nAB, nA, nB, total int64) float64 {
	if total == 0 {
		return 0
	}

	numerator := (float64(nAB) + c.epsilon) * float64(total)
	denominator := (float64(nA) + c.epsilon) * (float64(nB) + c.epsilon)

	if denominator == 0 {
		return 0
	}

	return math.Log(numerator / denominator)
}

// PPMI is PMI clamped at zero. A zero co-occurrence count short-circuits
// to 0 without evaluating the log.
func (c *Calculator) PPMI(nAB, nA, nB, total int64) float64 {
	if nAB == 0 && c.epsilon == 0 {
		return 0
	}
	if pmi := c.PMI(nAB, nA, nB, total); pmi > 0 {
		return pmi
	}
	return 0
}

// NPMI calculates normalized PMI (range: -1 to 1)
// NPMI(a,b) = PMI(a,b) / -ln(P(a,b))
func (c *Calculator) NPMI(nAB, nA, nB, total int64) float64 {
	if total == 0 || nAB == 0 {
		return 0
	}

	pmi := c.PMI(nAB, nA, nB, total)
	pAB := (float64(nAB) + c.epsilon) / float64(total)
	logPAB := math.Log(pAB)

	if logPAB == 0 {
		return 0
	}

	return pmi / -logPAB
}
