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

package report

import (
	"fmt"
	"strings"
)

// Key identifies a message template.
type Key string

// Message keys.
const (
	KeyFuse             Key = "kala.fuse-immseq"
	KeyFuseFix          Key = "kala.fuse-immseq.fix"
	KeyFuseChain        Key = "kala.fuse-immseq.chain"
	KeyRedundant        Key = "kala.muda"
	KeyRedundantFix     Key = "kala.muda.fix"
	KeyPreferEmpty      Key = "kala.prefer-empty"
	KeyReplaceFix       Key = "kala.replace.fix"
	KeySizeCompare      Key = "kala.size-compare"
	KeyMapPut           Key = "kala.map-put"
	KeySimplifyFix      Key = "kala.simplify.fix"
	KeyViewSize         Key = "kala.view-size"
	KeyViewToMap        Key = "kala.view-to-map"
	KeyUseFix           Key = "kala.use.fix"
	KeySameness         Key = "kala.sameness"
	KeyNeedlessCollect  Key = "kala.needless-collect"
	KeyTupleOf          Key = "kala.tuple-of"
	KeyNotAssignable    Key = "kala.dblity.not-assignable"
	KeySmartCast        Key = "kala.dblity.smart-cast"
	KeyUnusedAnnotation Key = "kala.dblity.unused-annotation"
	KeyConflict         Key = "kala.dblity.conflict"
	KeyDeleteAnnotation Key = "kala.dblity.delete-annotation.fix"
	KeyInternalError    Key = "kala.internal-error"
)

// Message is a message key with its arguments.
type Message struct {
	Key  Key
	Args []any
}

// NewMessage creates a message.
func NewMessage(key Key, args ...any) Message {
	return Message{Key: key, Args: args}
}

// Bundle maps message keys to [fmt] templates.
type Bundle map[Key]string

// Format renders m. Unknown keys are rendered with their arguments.
func (b Bundle) Format(m Message) string {
	if tmpl, ok := b[m.Key]; ok {
		return fmt.Sprintf(tmpl, m.Args...)
	}

	var s strings.Builder
	s.WriteString(string(m.Key)) // ignore error

	for _, a := range m.Args {
		fmt.Fprintf(&s, " %v", a) // ignore error
	}

	return s.String()
}

// English is the default message bundle.
var English = Bundle{
	KeyFuse:             "%d consecutive transformations on an immutable sequence",
	KeyFuseFix:          "Fuse transformations through a view",
	KeyFuseChain:        "Fusible chain",
	KeyRedundant:        "Redundant call to '%s'",
	KeyRedundantFix:     "Remove redundant '%s'",
	KeyPreferEmpty:      "'%s()' can be replaced with '%s()'",
	KeyReplaceFix:       "Replace '%s' with '%s'",
	KeySizeCompare:      "Size comparison can be simplified",
	KeyMapPut:           "Entry is decomposed only to be put back",
	KeySimplifyFix:      "Simplify",
	KeyViewSize:         "'size()' of a view traverses all elements",
	KeyViewToMap:        "'%s()' can be replaced with a call to '%s'",
	KeyUseFix:           "Use '%s'",
	KeySameness:         "Collection is compared with itself",
	KeyNeedlessCollect:  "Needless 'collect', use '%s()'",
	KeyTupleOf:          "Tuple can be created with '%s'",
	KeyNotAssignable:    "%s is not assignable to %s",
	KeySmartCast:        "Implicitly narrowed to '%s'",
	KeyUnusedAnnotation: "Annotation is redundant",
	KeyConflict:         "Conflicting annotation",
	KeyDeleteAnnotation: "Delete annotation",
	KeyInternalError:    "Internal Error: %s",
}
