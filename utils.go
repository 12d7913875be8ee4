/* utils.go
 * Utility functions used across the application
 */

package main

import (
	"fmt"
	"strings"

	"github.com/go-andiamo/splitter"

	"trial-manager/api/shared"
)

// convertStrToBool converts a string of true or false into a boolean for comparisons
// Preconditions: Receives string containing either true or false (case insensitive)
// Postconditions: Returns boolean value or an error if the string is not true or false
func convertStrToBool(str string) (bool, error) {
	str = strings.TrimSpace(str)
	str = strings.ToLower(str)

	if str == "true" {
		return true, nil
	} else if str == "false" {
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean string")
}

// parseScheduleSpec turns a compact schedule description into a day hierarchy
// for the demo flow. The format is
//
//	date=class/judge[/feo],class/judge;date=...
//
// Class names use their stored form ("Games 1 (GB)") and judge names may be
// double quoted. Repeating a class within a day adds another round to it
func parseScheduleSpec(spec string) ([]shared.Day, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("schedule spec is empty")
	}

	// splitter instead of strings.Split so parenthesised subclasses and quoted
	// judge names are kept whole, same reason quoted team names need it
	entrySplitter, err := splitter.NewSplitter(',', splitter.Parenthesis, splitter.DoubleQuotes)
	if err != nil {
		return nil, fmt.Errorf("failed to build entry splitter: %w", err)
	}
	fieldSplitter, err := splitter.NewSplitter('/', splitter.Parenthesis, splitter.DoubleQuotes)
	if err != nil {
		return nil, fmt.Errorf("failed to build field splitter: %w", err)
	}

	var days []shared.Day
	for dayIndex, segment := range strings.Split(spec, ";") {
		dayNumber := dayIndex + 1

		date, classPart, found := strings.Cut(strings.TrimSpace(segment), "=")
		if !found || strings.TrimSpace(date) == "" {
			return nil, fmt.Errorf("day %d is missing a date, expected date=classes", dayNumber)
		}

		day := shared.Day{DayNumber: dayNumber, Date: strings.TrimSpace(date)}

		entries, err := entrySplitter.Split(classPart)
		if err != nil {
			return nil, fmt.Errorf("failed to split classes for day %d: %w", dayNumber, err)
		}

		for _, entry := range entries {
			fields, err := fieldSplitter.Split(entry)
			if err != nil {
				return nil, fmt.Errorf("failed to split class entry %q: %w", entry, err)
			}
			if len(fields) < 2 || len(fields) > 3 {
				return nil, fmt.Errorf("class entry %q must be class/judge or class/judge/feo", strings.TrimSpace(entry))
			}

			className, subclass := shared.DecodeClassName(strings.TrimSpace(fields[0]))
			round := shared.Round{
				JudgeName: strings.Trim(strings.TrimSpace(fields[1]), `"`),
			}
			if len(fields) == 3 {
				if !strings.EqualFold(strings.TrimSpace(fields[2]), "feo") {
					return nil, fmt.Errorf("class entry %q has an unknown option, only feo is supported", strings.TrimSpace(entry))
				}
				round.FEOAvailable = true
			}

			// another entry for the same class adds a round instead of a new class
			if n := len(day.Classes); n > 0 && day.Classes[n-1].ClassName == className && day.Classes[n-1].Subclass == subclass {
				day.Classes[n-1].Rounds = append(day.Classes[n-1].Rounds, round)
				continue
			}
			day.Classes = append(day.Classes, shared.Class{
				ClassName: className,
				Subclass:  subclass,
				Rounds:    []shared.Round{round},
			})
		}

		days = append(days, day)
	}
	return days, nil
}
