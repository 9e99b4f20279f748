/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package errctx

// Carrier is a value that may be missing or may have failed to be produced,
// and that can describe that situation as a chain.
//
// Both methods leave a successful value untouched and return a nil error
// without allocating. WithDynErrContext invokes message at most once, and only
// when there is something to describe.
type Carrier[T any] interface {
	WithErrContext(message any) (T, error)
	WithDynErrContext(message func() any) (T, error)
}

var (
	_ Carrier[struct{}] = Result[struct{}]{}
	_ Carrier[struct{}] = Option[struct{}]{}
)

// Result is a value paired with the error that may have prevented producing
// it, usually built straight from a call:
//
//	cfg, err := errctx.From(loadConfig(path)).WithErrContext("Failed to start")
type Result[T any] struct {
	value T
	err   error
}

// From captures the two results of a fallible call.
func From[T any](value T, err error) Result[T] {
	return Result[T]{value: value, err: err}
}

// WithErrContext returns the value and, if the call failed, a new link
// wrapping the failure.
//
// The value is returned as-is on both paths, so partial results (a byte count
// alongside an I/O error, for instance) are not lost.
func (r Result[T]) WithErrContext(message any) (T, error) {
	if r.err == nil {
		return r.value, nil
	}
	return r.value, wrap(text(message), r.err)
}

// WithDynErrContext is WithErrContext with a message that is only built when
// the call failed.
func (r Result[T]) WithDynErrContext(message func() any) (T, error) {
	if r.err == nil {
		return r.value, nil
	}
	return r.value, wrap(text(message()), r.err)
}

// Option is a value that may be absent, usually built from a comma-ok call:
//
//	home, err := errctx.Lookup(os.LookupEnv("HOME")).WithErrContext("HOME is not set")
type Option[T any] struct {
	value T
	ok    bool
}

// Lookup captures the two results of a comma-ok call.
func Lookup[T any](value T, ok bool) Option[T] {
	return Option[T]{value: value, ok: ok}
}

// FromPtr treats a nil pointer as absent and dereferences anything else.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Option[T]{}
	}
	return Option[T]{value: *p, ok: true}
}

// WithErrContext returns the value if present. Otherwise it returns a root
// node: there is no failure to wrap, only the fact of absence.
func (o Option[T]) WithErrContext(message any) (T, error) {
	if o.ok {
		return o.value, nil
	}
	return o.value, wrap(text(message), nil)
}

// WithDynErrContext is WithErrContext with a message that is only built when
// the value is absent.
func (o Option[T]) WithDynErrContext(message func() any) (T, error) {
	if o.ok {
		return o.value, nil
	}
	return o.value, wrap(text(message()), nil)
}

// WithErrContext wraps err under message. A nil err is returned as a nil
// error, never as a typed nil.
//
//	if err := cfg.Validate(); err != nil {
//	    return errctx.WithErrContext(err, "invalid configuration")
//	}
//	return errctx.WithErrContext(db.Ping(), "database unreachable")
func WithErrContext(err error, message any) error {
	if err == nil {
		return nil
	}
	return wrap(text(message), err)
}

// WithDynErrContext wraps err under the message produced by message, which is
// only called when err is non-nil.
func WithDynErrContext(err error, message func() any) error {
	if err == nil {
		return nil
	}
	return wrap(text(message()), err)
}
