package indicators

import "wellness-backend/internal/domain"

const (
	trendPeriod       = 3
	trendSlopeTrigger = 0.5 // score points per entry
	minTrendPoints    = 2
)

// CalculateTrend smooths a score history (oldest to newest) and classifies
// its direction from the least-squares slope of the smoothed series.
func CalculateTrend(points []float64) domain.ScoreTrend {
	trend := domain.ScoreTrend{
		Points:    append([]float64{}, points...),
		Smoothed:  CalculateEMA(points, trendPeriod),
		Direction: domain.TrendInsufficient,
	}
	if len(points) < minTrendPoints {
		return trend
	}

	trend.Slope = CalculateSlope(trend.Smoothed)
	switch {
	case trend.Slope > trendSlopeTrigger:
		trend.Direction = domain.TrendImproving
	case trend.Slope < -trendSlopeTrigger:
		trend.Direction = domain.TrendDeclining
	default:
		trend.Direction = domain.TrendStable
	}
	return trend
}

// CalculateSlope returns the least-squares slope of data against its index.
func CalculateSlope(data []float64) float64 {
	n := len(data)
	if n < 2 {
		return 0
	}

	sumX := 0.0
	sumY := 0.0
	sumXY := 0.0
	sumX2 := 0.0

	for i := 0; i < n; i++ {
		x := float64(i)
		y := data[i]
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	denominator := float64(n)*sumX2 - sumX*sumX
	if denominator == 0 {
		return 0
	}

	return (float64(n)*sumXY - sumX*sumY) / denominator
}
