package dpuscale

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ScalingPoint is one DPU count seen as a strong-scaling measurement.
type ScalingPoint struct {
	DPUs       int     // Number of DPUs
	TotalTime  float64 // Run time + inter-DPU time (µs)
	Throughput float64 // Runs per second (1e6 / TotalTime)
	Speedup    float64 // TotalTime at the smallest count / TotalTime
	Efficiency float64 // Speedup / (DPUs / smallest count); 1.0 = linear
}

// USLCoefficients contains the Universal Scalability Law parameters
// fitted to the sweep:
//
//	C(N) = λN / (1 + α(N-1) + βN(N-1))
type USLCoefficients struct {
	Lambda   float64 // λ: Throughput at one DPU (runs/sec)
	Alpha    float64 // α: Contention coefficient
	Beta     float64 // β: Coordination coefficient (inter-DPU traffic)
	RSquared float64 // R²: Goodness of fit (1.0 = perfect)
}

// ScalingPoints converts a sample set into per-count speedup and efficiency.
// The smallest DPU count is the baseline, wherever it sits in the set.
func ScalingPoints(s SampleSet) ([]ScalingPoint, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	total, err := s.TotalTimes()
	if err != nil {
		return nil, err
	}

	return scalingPoints(s.Counts(), total), nil
}

// scalingPoints expects validated, equal-length inputs.
func scalingPoints(counts, total []float64) []ScalingPoint {
	base := floats.MinIdx(counts)
	baseN := counts[base]
	baseT := total[base]

	points := make([]ScalingPoint, len(total))
	for i, t := range total {
		n := counts[i]
		speedup := baseT / t
		points[i] = ScalingPoint{
			DPUs:       int(n),
			TotalTime:  t,
			Throughput: 1e6 / t,
			Speedup:    speedup,
			Efficiency: speedup / (n / baseN),
		}
	}
	return points
}

// FitUSL finds λ, α, β by linearising the USL and solving least squares.
//
// For C(N) = λN / (1 + α(N-1) + βN(N-1)), rearrange to:
//
//	N/C(N) = 1/λ + (α/λ)(N-1) + (β/λ)N(N-1)
//
// which is linear in 1/λ, α/λ, β/λ. A negative β with positive α is a
// linearisation artifact; the fit then falls back to the contention-only
// model with β = 0. A rank-deficient design (too few distinct DPU
// counts) returns ErrDomain.
func FitUSL(points []ScalingPoint) (USLCoefficients, error) {
	usable := make([]ScalingPoint, 0, len(points))
	for _, p := range points {
		if p.Throughput > 0 {
			usable = append(usable, p)
		}
	}
	if len(usable) < 3 {
		return USLCoefficients{}, fmt.Errorf("%w: USL needs at least 3 points, got %d", ErrTooFewSamples, len(usable))
	}

	b, err := solveUSL(usable, 3)
	if err != nil {
		return USLCoefficients{}, err
	}

	lambda := 1.0 / b[0]
	alpha := b[1] / b[0]
	beta := b[2] / b[0]

	if beta < 0 && alpha > 0 {
		b, err := solveUSL(usable, 2)
		if err != nil {
			return USLCoefficients{}, err
		}
		lambda = 1.0 / b[0]
		alpha = b[1] / b[0]
		beta = 0.0
	}

	var ssRes, ssTot, mean float64
	for _, p := range usable {
		mean += p.Throughput
	}
	mean /= float64(len(usable))

	for _, p := range usable {
		predicted := uslModel(float64(p.DPUs), lambda, alpha, beta)
		ssRes += (p.Throughput - predicted) * (p.Throughput - predicted)
		ssTot += (p.Throughput - mean) * (p.Throughput - mean)
	}

	rSquared := 1.0
	if ssTot > 0 {
		rSquared = 1 - ssRes/ssTot
	}

	return USLCoefficients{
		Lambda:   lambda,
		Alpha:    alpha,
		Beta:     beta,
		RSquared: rSquared,
	}, nil
}

// solveUSL fits Y = N/C(N) against the first cols columns of
// [1, N-1, N(N-1)] and returns the coefficients.
func solveUSL(points []ScalingPoint, cols int) ([]float64, error) {
	X := mat.NewDense(len(points), cols, nil)
	Y := mat.NewVecDense(len(points), nil)
	for i, p := range points {
		N := float64(p.DPUs)
		row := []float64{1, N - 1, N * (N - 1)}
		for j := 0; j < cols; j++ {
			X.Set(i, j, row[j])
		}
		Y.SetVec(i, N/p.Throughput)
	}

	var coef mat.VecDense
	if err := coef.SolveVec(X, Y); err != nil {
		return nil, fmt.Errorf("%w: singular USL system: %v", ErrDomain, err)
	}

	b := coef.RawVector().Data
	if b[0] == 0 || floats.HasNaN(b) || math.IsInf(floats.Max(b), 0) || math.IsInf(floats.Min(b), 0) {
		return nil, fmt.Errorf("%w: singular USL system", ErrDomain)
	}
	return b, nil
}

func uslModel(n, lambda, alpha, beta float64) float64 {
	return (lambda * n) / (1 + alpha*(n-1) + beta*n*(n-1))
}

// PredictThroughput estimates runs per second at n DPUs.
func (c USLCoefficients) PredictThroughput(n int) float64 {
	return uslModel(float64(n), c.Lambda, c.Alpha, c.Beta)
}

// Efficiency returns the ratio of predicted to ideal throughput.
// 1.0 = perfect linear scaling, <1.0 = contention/coordination overhead.
func (c USLCoefficients) Efficiency(n int) float64 {
	ideal := c.Lambda * float64(n)
	if ideal == 0 {
		return 0
	}
	return c.PredictThroughput(n) / ideal
}
