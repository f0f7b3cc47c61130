// Package verify guards values against being nil, false or empty.
//
// Verify returns its argument unchanged when the value is "present", and an
// error otherwise. Presence is decided by a fixed cascade, and only the first
// category that matches the value's type is checked:
//
//  1. the value must not be nil (nil interface, pointer, map, slice, chan or func)
//  2. a bool must be true
//  3. a string must be non-empty
//  4. a sequence (slice, array, or anything with Len() int) must be non-empty
//  5. a mapping (map, or anything with Size() int) must be non-empty
//  6. the predicate, if one was given, must return true
//
// Failures wrap errors.ErrMissingValue unless the caller supplied its own
// error with WithError.
//
// Example:
//
//	name, err := verify.Verify(req.Name, verify.WithMessage("name is required"))
//	if err != nil {
//	    return err
//	}
//
//	port, err := verify.VerifyFunc(cfg.Port, func(p int) bool { return p < 65536 })
package verify
