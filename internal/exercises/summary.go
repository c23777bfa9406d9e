package exercises

import (
	"fmt"
	"strings"
)

const (
	summaryMaxLen    = 65
	summaryEllipsis  = ".."
	summarySeparator = ", "
)

// RoutineSummary joins the exercise names for a routine card.
// Texts over 65 characters are cut to 65 and get ".." appended.
func RoutineSummary(names []string) string {
	text := []rune(strings.Join(names, summarySeparator))
	if len(text) > summaryMaxLen {
		return string(text[:summaryMaxLen]) + summaryEllipsis
	}
	return string(text)
}

func NewDetails(e Exercise) Details {
	return Details{
		Exercise: e,
		Summary:  Summary(e),
		HowTo:    HowTo(e.Instructions),
	}
}

func Summary(e Exercise) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Body part: %s\n", e.BodyPart))
	sb.WriteString(fmt.Sprintf("Target: %s\n", e.Target))
	if len(e.SecondaryMuscles) > 0 {
		sb.WriteString(fmt.Sprintf("Secondary muscles: %s\n", strings.Join(e.SecondaryMuscles, summarySeparator)))
	}
	sb.WriteString(fmt.Sprintf("Equipment: %s", e.Equipment))
	return sb.String()
}

// HowTo numbers the instruction steps, starting from 1.
func HowTo(instructions []string) []string {
	steps := make([]string, 0, len(instructions))
	for i, instruction := range instructions {
		steps = append(steps, fmt.Sprintf("%d. %s", i+1, instruction))
	}
	return steps
}
