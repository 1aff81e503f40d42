package styles

// ResolveTemperature computes the sampling temperature for one request.
//
// It starts at the profile's base temperature, applies every length
// adjustment whose ratio rule matches targetLength/originalLength, and
// clamps the sum into [MinTemperature, MaxTemperature]. The function is
// pure: identical inputs always produce the identical output.
//
// When targetLength is zero (no length preference) or originalLength is
// zero, no adjustment applies and the clamped base is returned.
func ResolveTemperature(p *StyleProfile, originalLength, targetLength int) float64 {
	temp := p.BaseTemperature

	if targetLength > 0 && originalLength > 0 {
		ratio := float64(targetLength) / float64(originalLength)
		for _, adj := range p.LengthAdjustments {
			if adj.RatioBelow > 0 && ratio < adj.RatioBelow {
				temp += adj.Delta
			}
			if adj.RatioAbove > 0 && ratio > adj.RatioAbove {
				temp += adj.Delta
			}
		}
	}

	return clamp(temp, p.MinTemperature, p.MaxTemperature)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
