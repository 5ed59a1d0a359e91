// This file is part of FramePerfect.
//
// FramePerfect is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// FramePerfect is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with FramePerfect.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns that callers are expected to test for are stored
// as exported constants in the package that raises them. For example, the
// recorder package exports:
//
//	const InvalidFile = "recorder: invalid file: %v"
//
// and a caller can test for that condition with:
//
//	if curated.Is(err, recorder.InvalidFile) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. A chain is formed when a curated error is one of the
// placeholder values of another curated error.
//
//	e := curated.Errorf(recorder.InvalidFile, "wrong type")
//	f := curated.Errorf("playback: %v", e)
//
//	curated.Is(f, recorder.InvalidFile)  // false
//	curated.Has(f, recorder.InvalidFile) // true
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors depending on how we choose to handle the result.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not begin with
// duplicate adjacent parts. So that:
//
//	curated.Errorf("padproto: %v", curated.Errorf("padproto: server exited"))
//
// reads as "padproto: server exited" and not "padproto: padproto: server
// exited".
//
// Curated errors also implement Unwrap(), returning the placeholder values
// that are errors. This means the errors.Is() and errors.As() functions of the
// standard library see through curated errors, which is useful when an
// os.PathError or exec.ExitError has been wrapped.
package curated
