// Package errors provides the classified error type used across rn.
//
// Every failure an operation can produce is a *ClassifiedError carrying a
// category, a severity and structured context. The well-known failures
// (AlreadyInitialized, NotInitialized, BinaryMissing, ...) are exported as
// sentinel values so callers can match them with the standard library:
//
//	if errors.Is(err, rnerrors.ErrAlreadyInitialized) {
//		...
//	}
//
// Constructors such as AlreadyInitialized(path) return a copy of the sentinel
// with context attached; the copy still matches the sentinel.
package errors
