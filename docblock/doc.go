// Package docblock extracts documentation records
// from JSDoc-style block comments embedded in source code.
//
// A [Parser] scans source text for /** ... */ blocks
// and turns each one into a [Record]:
// a title, a description, a [Tags] dictionary,
// the block's position, and its raw text.
//
// The stages of the pipeline are also available on their own.
// [StripBlockLines] removes comment decoration,
// [ParseTags] splits a block into [Entry] values,
// [Source] maps byte offsets to line numbers,
// and [Inline] renders inline markdown emphasis in prose fields.
//
// Parsing never fails on block content.
// The only error is an unsupported language,
// reported as [ErrUnsupportedLanguage].
package docblock
