// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdeerr

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_pdeerr01(tst *testing.T) {

	chk.PrintTitle("pdeerr01")

	err := New(BoundaryIllConditioned, "kappa=%g at point %d", 0.0, 3)
	if err.Kind != BoundaryIllConditioned {
		tst.Fatalf("wrong kind")
	}
	if err.Error() != "BoundaryIllConditioned: kappa=0 at point 3" {
		tst.Fatalf("unexpected message: %s", err.Error())
	}
	if !Is(err, BoundaryIllConditioned) {
		tst.Fatalf("Is should match the same kind")
	}
	if Is(err, NoProgress) {
		tst.Fatalf("Is should not match a different kind")
	}
	if Is(nil, NoProgress) {
		tst.Fatalf("Is should not match a plain nil")
	}
}
