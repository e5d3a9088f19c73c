// Package content resolves listings through ordered fallback tiers.
//
// A Resolver holds the tiers of one content kind, typically the remote
// procedure call followed by the static snapshot. Resolve tries them in order
// and settles on the first non-empty result; if none has data the envelope is
// empty, never nil. Project narrows open calls to the ones a page displays.
package content
