// Package pagesum provides an interactive CLI that summarizes webpages.
// It fetches a page, extracts its title, visible text, and interactive and
// media elements into a structured Summary, and asks a chat-completion
// model to describe the page in natural language.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, openai/, gemini/).
package pagesum
