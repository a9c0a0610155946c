// Package mermaid parses and emits the Mermaid diagram notation.
//
// Two dialects are covered: erDiagram text for database models
// ([ParseER], [EmitER]) and flowchart text for layered design graphs
// ([EmitFlowchart]). Parsing is line-oriented and total: malformed lines are
// skipped, never fatal, so a partial or hand-edited diagram still yields a
// renderable structure. The emitters are the inverse for well-formed input;
// ParseER(EmitER(m)) reconstructs m for any model without duplicate
// relationships.
//
// Free text embedded as a node label must not carry characters the notation
// treats as syntax; [Sanitize] strips them and bounds label length. Node
// identifiers are always generated bare tokens, never labels: bracketed text
// directly inside a subgraph block without a leading identifier is a parse
// error in the notation.
package mermaid
