package candidate

import (
	"fmt"
	"strings"
)

// Templates maps a lowercase subject name to its ordered topic titles.
// Subjects without a template fall back to a generic numbered title, so new
// subjects need no engine changes.
type Templates map[string][]string

func DefaultTemplates() Templates {
	return Templates{
		"anatomy": {
			"Cardiovascular System", "Respiratory System", "Nervous System",
			"Muscular System", "Skeletal System", "Digestive System",
		},
		"immunology": {
			"Innate Immunity", "Adaptive Immunity", "Antibodies",
			"T-Cell Functions", "Immune Responses", "Autoimmunity",
		},
		"physiology": {
			"Cellular Respiration", "Homeostasis", "Metabolism",
			"Endocrine System", "Neural Transmission", "Blood Circulation",
		},
	}
}

// TitleFor returns the template title for the 1-based topic number, or the
// generic fallback when the subject has no template or the number exceeds it.
func (t Templates) TitleFor(unitName string, topicNumber int) string {
	if titles, ok := t[strings.ToLower(unitName)]; ok {
		if topicNumber >= 1 && topicNumber <= len(titles) {
			return titles[topicNumber-1]
		}
	}
	return GenericTitle(unitName, topicNumber)
}

func GenericTitle(unitName string, topicNumber int) string {
	return fmt.Sprintf("%s - Topic %d", unitName, topicNumber)
}
