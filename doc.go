// Package mdpage renders markdown documents into HTML page fragments for a
// content website.
//
// # Quick Start
//
// Create a renderer over a content directory and render a route:
//
//	r, err := mdpage.New(
//	    mdpage.WithDocumentsDir("./documents"),
//	    mdpage.WithScriptsDir("./app/components/client"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := r.Render(ctx, mdpage.Request{Route: "*", Wildcard: "glossary"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(page.HTML)
//
// A missing document is not an error: the returned Page has Found set to
// false and carries the not-found fragment, identical for every path.
//
// # Rendering Pipeline
//
// Each request runs these stages:
//
//  1. Path resolution (the "resources/*" route maps under resources/)
//  2. Front-matter parsing (title and an ordered meta list)
//  3. Markdown to HTML via Goldmark (raw HTML, typographer, ^superscript^,
//     [[wiki links]], slugified heading ids)
//  4. Partial splicing: <someThing/> placeholders replaced by the component
//     registered as "some-thing"
//  5. Assembly: article template, page script, metadata update script
//
// Nothing is cached; every render reads the document from disk.
//
// # Components
//
// Components share one interface and are registered once, before serving:
//
//	reg := mdpage.NewRegistry()
//	reg.Register("newsletter", mdpage.ComponentFunc(func(ctx context.Context) (string, error) {
//	    return `<form class="newsletter">...</form>`, nil
//	}))
//	r, err := mdpage.New(mdpage.WithRegistry(reg), mdpage.WithComponentsDir("./app/components"))
//
// WithComponentsDir registers every <name>.html file in the directory. The
// "glossary-toc" component is built in and lists the glossary's h2 and h3
// headings.
//
// # Concurrency
//
// A Renderer is immutable after New and safe for concurrent use.
package mdpage
