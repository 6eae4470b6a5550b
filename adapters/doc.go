// Package adapters exposes the vec containers through conventional
// seams: an io.Writer byte sink, a mutex-guarded wrapper for shared
// use, and a JSON codec.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package adapters
