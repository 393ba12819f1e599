// Package bodytext turns lists of URLs into clean, boilerplate-free page
// text. It fetches each page, strips scripts, layout chrome and
// cookie/consent overlays, and produces one normalized text row per URL,
// ready for spreadsheet export.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, sqlite/).
package bodytext
