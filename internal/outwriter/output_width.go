package outwriter

import (
	"os"

	"github.com/huangsam/vendorrank/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for vendor names in table output
// based on terminal width and the number of category columns.
func GetMaxTableNameWidth(cfg *contract.Config, numCategories int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 40 // Rank + Final + Price + Label + Frontier with borders/padding

	// Each category score column takes precision digits plus padding
	baseWidth += numCategories * (cfg.Precision + 5)

	// Reserve space for table borders, separators, and padding
	baseWidth += 10

	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable name width
		return 12
	}
	if available > 40 {
		// Vendor names rarely need more
		return 40
	}
	return available
}
