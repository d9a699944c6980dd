// Package yakumd translates web articles into Japanese Markdown.
// It fetches a page (or accepts raw Markdown), extracts the primary
// content, converts it to Markdown, and translates the prose to
// Japanese while preserving the Markdown structure.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// goquery/, gemini/).
package yakumd
