// Package api defines the public contracts of the stackvec library:
// the Sequence capability interface shared by the fixed-capacity and
// growable backends, and the two error conditions every backend may
// surface.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package api
