package minmax

import "errors"

// ErrUnsupportedLayout indicates Prepare/Aggregate was called on a
// Timeline layout the aggregator does not implement MinMax for.
var ErrUnsupportedLayout = errors.New("minmax: unsupported layout for aggregation")
