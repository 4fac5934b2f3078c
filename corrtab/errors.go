package corrtab

import "errors"

// Sentinel error set for the corrtab package. All public operations return
// these sentinels (possibly wrapped with context); callers match them via
// errors.Is. Structural faults in the input matrix are reported by the
// constructors, not tolerated downstream.

var (
	// ErrNilMatrix indicates a nil *Matrix was passed where one is required.
	ErrNilMatrix = errors.New("corrtab: nil matrix")

	// ErrNoLabels indicates an empty label set; a correlation matrix needs
	// at least one variable.
	ErrNoLabels = errors.New("corrtab: at least one label required")

	// ErrNonSquare indicates the supplied values do not form an N×N matrix
	// over the N labels.
	ErrNonSquare = errors.New("corrtab: values do not form a square matrix")

	// ErrDuplicateLabel indicates the label set contains a repeated entry;
	// labels must uniquely identify rows and columns.
	ErrDuplicateLabel = errors.New("corrtab: duplicate label")

	// ErrOutOfRange indicates a row or column index outside [0, N).
	ErrOutOfRange = errors.New("corrtab: index out of range")

	// ErrUnknownLabel indicates a label not present in the matrix.
	ErrUnknownLabel = errors.New("corrtab: unknown label")

	// ErrDimensionMismatch indicates label and column counts disagree, or
	// observation columns of unequal length.
	ErrDimensionMismatch = errors.New("corrtab: dimension mismatch")

	// ErrShortColumn indicates an observation column with fewer than two
	// values; correlation is undefined below that.
	ErrShortColumn = errors.New("corrtab: columns need at least two observations")
)
