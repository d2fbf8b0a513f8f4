package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PairLens/internal/model"
)

func alignedReturns(r1, r2 []float64) *model.AlignedReturnSeries {
	return &model.AlignedReturnSeries{
		Symbol1:     "AAPL",
		Symbol2:     "MSFT",
		Returns1:    r1,
		Returns2:    r2,
		PricePoints: len(r1) + 1,
	}
}

func TestSummarize_ReferenceComputation(t *testing.T) {
	// Returns derived from AAPL [100,102,101,103] and MSFT [50,50.5,50,51].
	r1 := []float64{0.02, -0.00980392156862745, 0.019801980198019802}
	r2 := []float64{0.01, -0.009900990099009901, 0.02}

	corr, cov, err := Summarize(alignedReturns(r1, r2))
	require.NoError(t, err)

	assert.InDelta(t, 0.9426, corr, 1e-4)
	assert.InDelta(t, 0.000246, cov, 1e-6)
}

func TestSummarize_CorrelationRange(t *testing.T) {
	cases := [][2][]float64{
		{{0.01, -0.02, 0.03, 0.005}, {-0.01, 0.02, -0.03, 0.01}},
		{{0.1, 0.2, -0.1, 0.05}, {0.1, 0.2, -0.1, 0.05}},
		{{0.01, 0.02, 0.03}, {-0.01, -0.02, -0.03}},
		{{0.004, -0.003, 0.002, 0.001, -0.005}, {0.02, 0.01, -0.02, 0.03, 0.007}},
	}
	for _, c := range cases {
		corr, _, err := Summarize(alignedReturns(c[0], c[1]))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, corr, -1.0)
		assert.LessOrEqual(t, corr, 1.0)
	}
}

func TestSummarize_Symmetry(t *testing.T) {
	r1 := []float64{0.02, -0.01, 0.015, -0.005}
	r2 := []float64{0.01, 0.005, -0.02, 0.03}

	corrAB, covAB, err := Summarize(alignedReturns(r1, r2))
	require.NoError(t, err)
	corrBA, covBA, err := Summarize(alignedReturns(r2, r1))
	require.NoError(t, err)

	assert.InDelta(t, corrAB, corrBA, 1e-12)
	assert.InDelta(t, covAB, covBA, 1e-12)
}

func TestSummarize_SelfCorrelation(t *testing.T) {
	r := []float64{0.02, -0.01, 0.015, -0.005, 0.03}
	corr, _, err := Summarize(alignedReturns(r, r))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, corr, 1e-9)
}

func TestSummarize_DegenerateSeries(t *testing.T) {
	constant := []float64{0.0, 0.0, 0.0}
	varying := []float64{0.01, -0.02, 0.03}

	_, _, err := Summarize(alignedReturns(constant, varying))
	require.Error(t, err)
	assert.Equal(t, KindDegenerateSeries, KindOf(err))

	_, _, err = Summarize(alignedReturns(varying, constant))
	require.Error(t, err)
	assert.Equal(t, KindDegenerateSeries, KindOf(err))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 0.9426, roundTo(0.94259598, 4))
	assert.Equal(t, 0.000246, roundTo(0.00024606552, 6))
	assert.Equal(t, -1.0, roundTo(-0.99996, 4))
}
