/* validate.go
 * Contains the validation engine for the trial hierarchy. ValidateTrial walks the hierarchy in a
 * fixed order (trial scalars, then each day, class and round in order) so the violation list is
 * deterministic for a given input. An empty list means the trial is acceptable for persistence
 */

package logic

import (
	"fmt"
	"strings"

	"trial-manager/api/shared"
)

// ValidateTrial inspects a candidate trial hierarchy and returns an ordered
// list of human readable violations. It does not mutate its input and performs
// no I/O. Positions in messages are 1-based
func ValidateTrial(trial shared.Trial) []string {
	var violations []string

	if strings.TrimSpace(trial.ClubName) == "" {
		violations = append(violations, "Club name is required")
	}

	if strings.TrimSpace(trial.Secretary) == "" {
		violations = append(violations, "Trial secretary name is required")
	}

	if trial.Status != shared.StatusDraft && trial.Status != shared.StatusPublished {
		violations = append(violations, fmt.Sprintf("Status must be either '%s' or '%s'", shared.StatusDraft, shared.StatusPublished))
	}

	fees := trial.FeeConfiguration
	if fees.Regular < 0 || fees.FEO < 0 || fees.JuniorHandler < 0 || fees.JuniorHandlerFEO < 0 {
		violations = append(violations, "Fee configuration amounts cannot be negative")
	}

	if len(trial.Days) == 0 {
		violations = append(violations, "At least one trial day is required")
	}

	for dayIndex, day := range trial.Days {
		dayNumber := dayIndex + 1

		if strings.TrimSpace(day.Date) == "" {
			violations = append(violations, fmt.Sprintf("Date is required for Day %d", dayNumber))
		}

		if len(day.Classes) == 0 {
			violations = append(violations, fmt.Sprintf("At least one class is required for Day %d", dayNumber))
		}

		for classIndex, cls := range day.Classes {
			classNumber := classIndex + 1

			if strings.TrimSpace(cls.ClassName) == "" {
				violations = append(violations, fmt.Sprintf("Class name is required for Day %d, Class %d", dayNumber, classNumber))
			}

			// Games classes must carry one of the enumerated subclass codes,
			// all other classes must not carry one at all
			if cls.ClassName != "" && shared.IsGamesClass(cls.ClassName) {
				if cls.Subclass == "" {
					violations = append(violations, fmt.Sprintf("Games subclass is required for Day %d, Class %d (%s)", dayNumber, classNumber, cls.ClassName))
				} else if !shared.IsValidGamesSubclass(cls.Subclass) {
					violations = append(violations, fmt.Sprintf("Unknown Games subclass '%s' for Day %d, Class %d (%s)", cls.Subclass, dayNumber, classNumber, cls.ClassName))
				}
			} else if cls.Subclass != "" {
				violations = append(violations, fmt.Sprintf("Subclass is not allowed for Day %d, Class %d (%s)", dayNumber, classNumber, className(cls, classNumber)))
			}

			if len(cls.Rounds) == 0 {
				violations = append(violations, fmt.Sprintf("At least one round is required for Day %d, Class %d (%s)", dayNumber, classNumber, className(cls, classNumber)))
			}

			for roundIndex, round := range cls.Rounds {
				if strings.TrimSpace(round.JudgeName) == "" {
					violations = append(violations, fmt.Sprintf("Judge name is required for Day %d, Class %d (%s), Round %d", dayNumber, classNumber, className(cls, classNumber), roundIndex+1))
				}
			}
		}
	}

	return violations
}

// className returns the class name for use in a violation message, falling
// back to the class position when the name itself is missing
func className(cls shared.Class, classNumber int) string {
	if cls.ClassName == "" {
		return fmt.Sprintf("Class %d", classNumber)
	}
	return cls.ClassName
}
