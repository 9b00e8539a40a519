package config

// Layout constants.
const (
	// MinContentWidth is the narrowest width the log rows are laid out for.
	MinContentWidth = 30

	// ProgressWidth is the preferred width of the target progress bar.
	ProgressWidth = 40

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// ReservedRows is the number of lines used by everything except the log.
	ReservedRows = 14
)

// Display limits.
const (
	// MaxVisibleRows limits log rows shown before scrolling.
	MaxVisibleRows = 15

	// MinVisibleRows is the smallest log window on short terminals.
	MinVisibleRows = 3

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// TimestampInputWidth is the width of the edit dialog text fields.
	TimestampInputWidth = 20

	// MaxTimestampLength bounds the text typed into a timestamp field.
	MaxTimestampLength = 24
)
