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

package syntax

// Kind is the syntactic category of a node.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	KindInvalid Kind = iota // invalid

	// Declarations.
	KindFile        // file
	KindClass       // class
	KindMethod      // method
	KindParameter   // parameter
	KindDeclaration // declaration
	KindVariable    // variable
	KindAnnotation  // annotation
	KindType        // type

	// Statements.
	KindBlock      // block
	KindExprStmt   // expression statement
	KindIf         // if
	KindSwitch     // switch
	KindSwitchRule // switch rule
	KindCaseLabel  // case label
	KindStatement  // statement

	// Expressions.
	KindCall        // call
	KindReference   // reference
	KindLiteral     // literal
	KindBinary      // binary
	KindParen       // parenthesized
	KindAssign      // assignment
	KindNew         // new
	KindInstanceOf  // instanceof
	KindConditional // conditional
	KindLambda      // lambda
	KindExpression  // expression

	// Patterns.
	KindTypePattern   // type pattern
	KindRecordPattern // record pattern

	// Fragments.
	KindArguments  // arguments
	KindIdentifier // identifier
	KindOther      // other
)

// IsExpression reports whether nodes of this kind denote expressions.
func (k Kind) IsExpression() bool {
	return KindCall <= k && k <= KindExpression || k == KindSwitch
}

// Role is the edge by which a node is attached to its parent.
type Role uint8

//go:generate go tool stringer -type Role -linecomment
const (
	RoleNone          Role = iota // none
	RoleReceiver                  // receiver
	RoleName                      // name
	RoleArguments                 // arguments
	RoleArgument                  // argument
	RoleTypeArguments             // type arguments
	RoleOperator                  // operator
	RoleLeft                      // left
	RoleRight                     // right
	RoleOperand                   // operand
	RoleCondition                 // condition
	RoleThen                      // then
	RoleElse                      // else
	RoleBody                      // body
	RoleType                      // type
	RoleValue                     // value
	RoleAnnotation                // annotation
	RoleParameter                 // parameter
	RoleMember                    // member
	RoleDeclarator                // declarator
	RolePattern                   // pattern
	RoleComponent                 // component
	RoleLabel                     // label
	RoleStatement                 // statement
)

// Attr is a set of boolean node attributes.
type Attr uint8

const (
	// AttrTypeName marks a reference that names a type instead of a value.
	AttrTypeName Attr = 1 << iota

	// AttrVarArgs marks a variable arity parameter.
	AttrVarArgs

	// AttrStatic marks static members.
	AttrStatic

	// AttrConstructor marks constructor declarations.
	AttrConstructor

	// AttrDiamond marks a type with an empty type argument list.
	AttrDiamond

	// AttrRecord marks record declarations.
	AttrRecord

	// AttrInferred marks a declaration whose type is inferred (var).
	AttrInferred
)
