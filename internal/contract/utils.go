package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/vendorrank/schema"
)

// Scoring label constants.
const (
	ExcellentValue = "Excellent" // Excellent value
	StrongValue    = "Strong"    // Strong value
	FairValue      = "Fair"      // Fair value
	WeakValue      = "Weak"      // Weak value
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // ExcellentColor marks the clear leaders.
	StrongColor    = color.New(color.FgCyan, color.Bold)  // StrongColor marks solid contenders.
	FairColor      = color.New(color.FgYellow)            // FairColor marks middling vendors, not bold.
	WeakColor      = color.New(color.FgRed)               // WeakColor marks vendors far from the top.
	FrontierColor  = color.New(color.FgMagenta, color.Bold)
)

// GetPlainLabel returns a plain text label for a final score in [0,1].
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	return schema.GetPlainLabel(score)
}

// GetColorLabel returns a colored text label for console output (table).
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case StrongValue:
		return StrongColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ParseList splits a comma-separated list, trimming blanks and dropping empty items.
func ParseList(s string) []string {
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogInfo logs a progress line to stderr so stdout stays clean for data.
func LogInfo(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// TruncateName truncates an entity name to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and at least one character.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
