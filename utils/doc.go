// Package utils provides internal utility functions for the utdf-to-attin pipeline.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Scenario-name sanitization for output filenames
//   - Logging initialization
//   - The shared Warning value passed between pipeline stages
package utils
