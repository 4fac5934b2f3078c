package corrtab

// Functional configuration for Unstack. Defaults mirror the conventional
// use: strongest correlations first, generic column names the caller is
// expected to override when the table is rendered.

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultAscending sorts strongest correlations first when false.
	DefaultAscending = false

	// DefaultColumnA names the first label column.
	DefaultColumnA = "col_1"

	// DefaultColumnB names the second label column.
	DefaultColumnB = "col_2"
)

const panicEmptyColumnName = "corrtab: WithColumns: column names must be non-empty"

// Option mutates the internal Unstack options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying setters.
type options struct {
	ascending bool   // sort direction for the correlation column
	colA      string // first output column name
	colB      string // second output column name
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		ascending: DefaultAscending,
		colA:      DefaultColumnA,
		colB:      DefaultColumnB,
	}
}

// WithAscending selects the sort direction for the correlation column:
// true for non-decreasing, false (the default) for non-increasing.
func WithAscending(asc bool) Option {
	return func(o *options) { o.ascending = asc }
}

// WithColumns sets the two label column names of the output table.
// Panics on empty names (programmer error, matching the constructor
// validation convention of this module).
func WithColumns(a, b string) Option {
	if a == "" || b == "" {
		panic(panicEmptyColumnName)
	}
	return func(o *options) {
		o.colA = a
		o.colB = b
	}
}

// gatherOptions resolves defaults plus caller setters.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
