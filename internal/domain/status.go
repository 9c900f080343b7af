package domain

// Status of participants codes as stored on an answer set.
const (
	StatusElite                = 0
	StatusReligiousSpecialists = 1
	StatusNonElite             = 2
)

var statusLabels = map[int]string{
	StatusElite:                "Elite",
	StatusReligiousSpecialists: "Religious Specialists",
	StatusNonElite:             "Non-elite (common people, general populace)",
}

// StatusLabel returns the label for a single status_of_participants code.
func StatusLabel(code int) (string, bool) {
	label, ok := statusLabels[code]
	return label, ok
}

// DecodeStatusOfParticipants maps each code to its label, keeping order.
// The first unmapped code yields an *UnknownStatusError.
func DecodeStatusOfParticipants(codes []int) ([]string, error) {
	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		label, ok := statusLabels[code]
		if !ok {
			return nil, &UnknownStatusError{Code: code}
		}
		labels = append(labels, label)
	}
	return labels, nil
}
