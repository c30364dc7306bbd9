package systems

import (
	"nightshift-server/internal/domain"
	"nightshift-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AttackParams - формула шанса атаки у открытой двери.
type AttackParams struct {
	Base          float64 `json:"base"`
	AILevelWeight float64 `json:"aiLevelWeight"`
	HourWeight    float64 `json:"hourWeight"`
}

func DefaultAttackParams() AttackParams {
	return AttackParams{
		Base:          domain.AttackBaseChance,
		AILevelWeight: domain.AttackAILevelWeight,
		HourWeight:    domain.AttackHourWeight,
	}
}

// ThreatResolver решает, чем закончился приход аниматроника к двери.
type ThreatResolver struct {
	params AttackParams
}

func NewThreatResolver(params AttackParams) *ThreatResolver {
	return &ThreatResolver{params: params}
}

// AttackChance может превышать 1, тогда атака гарантирована.
func (r *ThreatResolver) AttackChance(aiLevel, hour int) float64 {
	return r.params.Base + float64(aiLevel)*r.params.AILevelWeight + float64(hour)*r.params.HourWeight
}

// Resolve вызывается только для аниматроника, который только что
// пришел к двери. Закрытая дверь блокирует без броска кубика.
// Возвращает true, если игрок пойман.
func (r *ThreatResolver) Resolve(a *domain.Animatronic, hour int, d domain.DefenseConfig, rng domain.Random) bool {
	if !a.Location.IsDoor() {
		return false
	}

	threatLogger := logger.Log.WithFields(logrus.Fields{
		"component": "threat_resolver",
		"entity":    a.Name,
		"door":      a.Location.String(),
		"hour":      hour,
	})

	if d.DoorClosedAt(a.Location) {
		threatLogger.Debug("Door closed, attack blocked")
		return false
	}

	chance := r.AttackChance(a.AILevel, hour)
	if rng.Float64() < chance {
		threatLogger.WithField("chance", chance).Info("Player caught")
		return true
	}
	threatLogger.WithField("chance", chance).Debug("Attack roll failed")
	return false
}
