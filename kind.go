// Copyright 2024-2026 The Treewrite Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rawsyntax

// Kind identifies the syntactic construct a layout node represents, such
// as an if statement or a parameter list. The values are defined by the
// grammar layer consuming this package, not here.
//
// [KindToken], the zero value, is reserved: it is the kind reported by
// token nodes, and [Arena.NewLayout] rejects it.
type Kind uint32

// KindToken is the kind of every token node.
const KindToken Kind = 0

// TokenKind distinguishes classes of tokens, such as identifiers or
// punctuation. Like [Kind], the values belong to the tokenizer that
// produces them; this package never inspects them.
type TokenKind uint32

// Token is the payload of a leaf node. It is opaque to this package: the
// tokenizer writes it and higher layers read it back, but no operation
// here depends on its contents.
type Token struct {
	Kind TokenKind
	Text string
}
