package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLogMAR(t *testing.T) {
	logmar, err := CalculateLogMAR(10, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, logmar, 1e-9)

	logmar, err = CalculateLogMAR(5, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.3, logmar)

	// Zero correct answers pins at the chart ceiling.
	logmar, err = CalculateLogMAR(0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1.0, logmar)
}

func TestCalculateLogMARRejectsBadInput(t *testing.T) {
	_, err := CalculateLogMAR(5, 0)
	assert.Error(t, err)

	_, err = CalculateLogMAR(-1, 10)
	assert.Error(t, err)

	_, err = CalculateLogMAR(11, 10)
	assert.Error(t, err)
}

func TestLogMARToSnellen(t *testing.T) {
	tests := []struct {
		logmar float64
		want   string
	}{
		{0.0, "20/20"},
		{0.05, "20/20"},
		{0.3, "20/40"},
		{0.55, "20/63"},
		{1.0, "20/200"},
		{2.0, "20/200"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, LogMARToSnellen(tc.logmar), "logMAR %v", tc.logmar)
	}
}

func TestClassifyAcuity(t *testing.T) {
	assert.Equal(t, "Normal", ClassifyAcuity(0))
	assert.Equal(t, "Normal", ClassifyAcuity(0.1))
	assert.Equal(t, "Mild Vision Loss", ClassifyAcuity(0.3))
	assert.Equal(t, "Moderate Vision Loss", ClassifyAcuity(0.5))
	assert.Equal(t, "Severe Vision Loss", ClassifyAcuity(0.8))
}
