// Package validator provides the result types and text reporter shared by
// skillcheck's document checks.
//
// # Core Concepts
//
//   - [Severity]: Distinguishes between blocking errors and non-blocking warnings.
//   - [Issue]: A single finding with an optional field and a message.
//   - [Result]: Ordered, append-only collection of issues.
//   - [Reporter]: Writes a Result as a human-readable report.
//
// # Basic Usage
//
//	result := &validator.Result{}
//	if name == "" {
//		result.AddError("name", "Missing required field: name")
//	}
//
//	if !result.Passed() {
//		// handle validation failure
//	}
package validator
