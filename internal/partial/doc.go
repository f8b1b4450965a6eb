// Package partial holds the reusable HTML components that pages embed with
// self-closing placeholder tags such as <glossaryToc/>.
//
// Components are registered once at startup in a Registry under their
// hyphenated identifier ("glossary-toc") and looked up by the Splicer when a
// page is rendered. A placeholder whose identifier is not registered is left
// in the output as literal text unless the Splicer runs in strict mode.
package partial
