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

// Package treetest builds test fixture trees from a small YAML notation,
// so tests can state a tree's shape instead of spelling out constructor
// calls:
//
//	kind: call
//	children:
//	  - token: {text: f}
//	  - absent: true
//	  - kind: args
//	    children: []
package treetest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/treewrite/rawsyntax"
)

// Spec is one node of a fixture description. Exactly one of Token,
// Absent, or Kind must be set.
type Spec struct {
	Token    *TokenSpec `yaml:"token"`
	Absent   bool       `yaml:"absent"`
	Kind     string     `yaml:"kind"`
	Children []Spec     `yaml:"children"`
}

// TokenSpec is the leaf payload of a token node in a fixture.
type TokenSpec struct {
	Kind uint32 `yaml:"kind"`
	Text string `yaml:"text"`
}

// Build parses src and constructs the described tree in a, bottom-up.
// Layout kinds are named symbolically and resolved through kinds.
func Build(a *rawsyntax.Arena, kinds map[string]rawsyntax.Kind, src string) (rawsyntax.Node, error) {
	var spec Spec
	if err := yaml.Unmarshal([]byte(src), &spec); err != nil {
		return rawsyntax.Node{}, fmt.Errorf("treetest: %w", err)
	}
	return build(a, kinds, spec)
}

func build(a *rawsyntax.Arena, kinds map[string]rawsyntax.Kind, spec Spec) (rawsyntax.Node, error) {
	switch {
	case spec.Absent:
		if spec.Token != nil || spec.Kind != "" || spec.Children != nil {
			return rawsyntax.Node{}, fmt.Errorf("treetest: absent node must be bare")
		}
		return rawsyntax.Node{}, nil

	case spec.Token != nil:
		if spec.Kind != "" || spec.Children != nil {
			return rawsyntax.Node{}, fmt.Errorf("treetest: token node cannot have a kind or children")
		}
		return a.NewToken(rawsyntax.Token{
			Kind: rawsyntax.TokenKind(spec.Token.Kind),
			Text: spec.Token.Text,
		}), nil

	case spec.Kind != "":
		kind, ok := kinds[spec.Kind]
		if !ok {
			return rawsyntax.Node{}, fmt.Errorf("treetest: unknown kind %q", spec.Kind)
		}

		children := make([]rawsyntax.Node, len(spec.Children))
		for i, c := range spec.Children {
			var err error
			if children[i], err = build(a, kinds, c); err != nil {
				return rawsyntax.Node{}, err
			}
		}

		return a.NewLayout(kind, len(children), func(b *rawsyntax.Builder) {
			for _, c := range children {
				b.Push(c)
			}
		}), nil

	default:
		return rawsyntax.Node{}, fmt.Errorf("treetest: node must be a token, a layout, or absent")
	}
}
