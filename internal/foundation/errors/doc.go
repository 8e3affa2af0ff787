// Package errors provides the classified error type used across docnode.
//
// Every error raised by the node model and the inline extractor is a
// ClassifiedError carrying a category, a severity and optional context, so
// callers can tell structural validation failures from unsupported operations
// without matching on message text.
//
// Example usage:
//
//	err := errors.ValidationError("Leaf must have a value").
//		WithContext("tag", "p").
//		Build()
//
//	if errors.HasCategory(err, errors.CategoryValidation) {
//		...
//	}
package errors
