//go:build errctx_structural

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

import (
	"fmt"
	"strings"
	"testing"
)

func TestDefaultMode_Structural(t *testing.T) {
	if DefaultMode != Structural {
		t.Fatalf("DefaultMode = %v, want structural", DefaultMode)
	}
	got := fmt.Sprintf("%#v", New("Error description"))
	want := "errctx.Error{\n    message: \"Error description\",\n    cause: nil,\n}"
	if got != want {
		t.Fatalf("%%#v = %q, want %q", got, want)
	}
	if s := fmt.Sprintf("%+v", startupChain()); !strings.Contains(s, "cause: errctx.notFoundError{}") {
		t.Fatalf("%%+v lacks the terminal cause:\n%s", s)
	}
	// Error() stays pretty regardless of the build mode.
	if startupChain().Error() != startupPretty {
		t.Fatal("Error() must not depend on the build mode")
	}
}
