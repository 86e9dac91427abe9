package stats

import "github.com/vvka-141/metaqa/pkg/metaqa"

// RateOf returns num/den as a percentage, undefined when den is 0.
func RateOf(num, den int) metaqa.Rate {
	if den == 0 {
		return metaqa.UndefinedRate()
	}
	return metaqa.Percent(float64(num) / float64(den) * 100)
}
