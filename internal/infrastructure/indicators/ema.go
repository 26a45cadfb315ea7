package indicators

// CalculateEMA computes the Exponential Moving Average of a score series.
// Series shorter than period are smoothed over their full length.
func CalculateEMA(data []float64, period int) []float64 {
	ema := make([]float64, len(data))
	if len(data) == 0 || period < 1 {
		return ema
	}
	if len(data) < period {
		period = len(data)
	}

	k := 2.0 / (float64(period) + 1.0)

	// Running mean until the first full window
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += data[i]
		ema[i] = sum / float64(i+1)
	}

	for i := period; i < len(data); i++ {
		prevEma := ema[i-1]
		ema[i] = (data[i] * k) + (prevEma * (1 - k))
	}

	return ema
}
