package label

import "github.com/cwbudde/algo-hrv/hrv"

// State is a coarse autonomic state class.
type State int

const (
	StateDeepSleep State = iota
	StateRest
	StateMildStress
	StateHighStress
)

// String returns the display name of the state.
func (s State) String() string {
	switch s {
	case StateDeepSleep:
		return "Deep Sleep/Recovery"
	case StateRest:
		return "Rest"
	case StateMildStress:
		return "Mild Stress"
	case StateHighStress:
		return "High Stress"
	default:
		return "Unknown"
	}
}

// Color returns the hex color conventionally used to render the state.
func (s State) Color() string {
	switch s {
	case StateDeepSleep:
		return "#1a56db"
	case StateRest:
		return "#16a34a"
	case StateMildStress:
		return "#d97706"
	case StateHighStress:
		return "#dc2626"
	default:
		return "#6b7280"
	}
}

// Score sums the guideline band scores for the four inputs. Lower
// totals indicate parasympathetic (recovery) dominance, higher totals
// sympathetic (stress) dominance.
func Score(si, rmssd, lfhf, heartRate float64) int {
	score := 0

	switch {
	case si < 10:
		score -= 2
	case si < 30:
	case si < 70:
		score++
	default:
		score += 2
	}

	switch {
	case rmssd > 35:
		score -= 2
	case rmssd > 20:
		score--
	case rmssd < 15:
		score += 2
	default:
		score++
	}

	switch {
	case lfhf < 0.8:
		score -= 2
	case lfhf < 1.5:
	case lfhf < 3.0:
		score++
	default:
		score += 2
	}

	switch {
	case heartRate < 60:
		score--
	case heartRate > 80:
		score++
	}

	return score
}

// StateForScore maps a summed score onto its state band.
func StateForScore(score int) State {
	switch {
	case score <= -3:
		return StateDeepSleep
	case score <= -1:
		return StateRest
	case score <= 1:
		return StateMildStress
	default:
		return StateHighStress
	}
}

// Classify scores one feature record and returns its state.
func Classify(f hrv.Features) State {
	return StateForScore(Score(f.SI, f.RMSSD, f.LFHF, f.HeartRate()))
}
