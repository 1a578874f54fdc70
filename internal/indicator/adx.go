package indicator

import (
	"math"

	"github.com/signalforge/analytics/models"
)

// ADX computes the average directional index along with +DI and -DI.
// Directional movement and true range are Wilder-smoothed over the period;
// DX = 100*|+DI - -DI|/(+DI + -DI) and ADX is the Wilder-smoothed average
// of DX, first defined at index 2*period-1. All three stay within [0,100].
func ADX(bars []models.Bar, period int) (adx, plusDI, minusDI models.Series, err error) {
	if period <= 0 {
		return nil, nil, nil, &models.ConfigurationError{Param: "adx", Reason: "period must be positive"}
	}

	n := len(bars)
	adx = models.NewSeries(n)
	plusDI = models.NewSeries(n)
	minusDI = models.NewSeries(n)
	if n <= period {
		return adx, plusDI, minusDI, nil
	}

	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	tr := make([]float64, n)
	for i := 1; i < n; i++ {
		upMove := bars[i].High - bars[i-1].High
		downMove := bars[i-1].Low - bars[i].Low
		if upMove > downMove && upMove > 0 {
			plusDM[i] = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM[i] = downMove
		}
		tr[i] = TrueRange(bars[i], bars[i-1])
	}

	// Initial smoothed sums over the first period of movement values.
	var sPlus, sMinus, sTR float64
	for i := 1; i <= period; i++ {
		sPlus += plusDM[i]
		sMinus += minusDM[i]
		sTR += tr[i]
	}

	dx := models.NewSeries(n)
	setDI := func(i int) {
		if sTR == 0 {
			plusDI[i] = 0
			minusDI[i] = 0
			dx[i] = 0
			return
		}
		plusDI[i] = clamp(sPlus/sTR*100, 0, 100)
		minusDI[i] = clamp(sMinus/sTR*100, 0, 100)
		if sum := plusDI[i] + minusDI[i]; sum > 0 {
			dx[i] = math.Abs(plusDI[i]-minusDI[i]) / sum * 100
		} else {
			dx[i] = 0
		}
	}
	setDI(period)

	for i := period + 1; i < n; i++ {
		sPlus = sPlus - sPlus/float64(period) + plusDM[i]
		sMinus = sMinus - sMinus/float64(period) + minusDM[i]
		sTR = sTR - sTR/float64(period) + tr[i]
		setDI(i)
	}

	// ADX seeds with the simple mean of the first period DX values.
	seedIdx := 2*period - 1
	if seedIdx >= n {
		return adx, plusDI, minusDI, nil
	}
	var dxSum float64
	for i := period; i <= seedIdx; i++ {
		dxSum += dx[i]
	}
	adx[seedIdx] = dxSum / float64(period)
	for i := seedIdx + 1; i < n; i++ {
		adx[i] = clamp((adx[i-1]*float64(period-1)+dx[i])/float64(period), 0, 100)
	}
	return adx, plusDI, minusDI, nil
}
