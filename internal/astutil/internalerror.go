// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package astutil

import (
	"fmt"

	"fillmore-labs.com/kalacheck/internal/report"
	"fillmore-labs.com/kalacheck/internal/syntax"
)

// InternalError reports a violated invariant at node as an error diagnostic.
func InternalError(r report.Reporter, inspection string, node syntax.Cursor, format string, args ...any) {
	r.Report(report.Diagnostic{
		Inspection: inspection,
		Severity:   report.Error,
		Node:       node,
		Span:       node.Span(),
		Message:    report.NewMessage(report.KeyInternalError, fmt.Sprintf(format, args...)),
	})
}
