// Package lauds extracts structured Morning Prayer content from breviary
// pages. It locates liturgical sections (psalmody, short reading,
// responsory, gospel canticle, intercessions, concluding prayer) in loosely
// structured markup, normalizes their text, and assembles a Record that a
// slide renderer can consume without further parsing.
//
// This package contains domain types, interfaces, and the text-level
// extractors following Ben Johnson's Standard Package Layout.
// Implementations that need a dependency live in subdirectories named after
// it (e.g., goquery/, sqlite/, rod/).
package lauds
