// Package pipeline implements the Markdown-to-HTML stage of page rendering.
//
// This package handles:
//   - Markdown preprocessing (line normalization)
//   - Markdown to HTML conversion via Goldmark, with raw HTML passthrough,
//     typographic substitutions, superscript syntax, wiki links and
//     slugified heading anchors
//   - Optional sanitizing of the converted fragment (placeholders preserved)
//   - Heading extraction from rendered fragments
//
// Partial splicing and page assembly happen after this stage, in the partial
// package and the root mdpage package respectively. This keeps the pipeline
// focused on markdown semantics and free of site-specific markup.
package pipeline
