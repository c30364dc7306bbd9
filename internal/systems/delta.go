package systems

import (
	"math"

	"nightshift-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SanitizeDelta приводит шаг времени к допустимому виду.
// Отрицательные, NaN и бесконечные значения превращаются в 0 с предупреждением.
func SanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "night_clock",
			"dt":        dt,
		}).Warn("Invalid tick delta, treating as zero")
		return 0
	}
	return dt
}
