package mdpage

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"path"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/alnah/go-mdpage/internal/assets"
	"github.com/alnah/go-mdpage/internal/fileutil"
	"github.com/alnah/go-mdpage/internal/frontmatter"
	"github.com/alnah/go-mdpage/internal/partial"
	"github.com/alnah/go-mdpage/internal/pipeline"
)

const tracerName = "github.com/alnah/go-mdpage"

// Renderer turns requests into rendered pages.
// Create with New; it is immutable afterwards.
type Renderer struct {
	cfg       rendererConfig
	docs      afero.Fs // rooted at the documents directory
	scripts   afero.Fs // rooted at the scripts directory
	converter pipeline.HTMLConverter
	registry  *partial.Registry
	splicer   *partial.Splicer
	assets    assets.AssetLoader
	pages     *assets.PageTemplates
	notFound  string
	byPath    map[string]string // document path -> script file
	logger    *slog.Logger
	tracer    trace.Tracer
}

// New creates a Renderer. Options are applied over the defaults: OS
// filesystem, ./documents, ./app/components/client, the default page
// scripts and embedded templates.
// Returns error if components, templates or page script bindings are invalid.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg: rendererConfig{
			fs:           afero.NewOsFs(),
			documentsDir: DefaultDocumentsDir,
			scriptsDir:   DefaultScriptsDir,
			glossaryPath: DefaultGlossaryPath,
			pageScripts:  DefaultPageScripts(),
		},
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.docs = afero.NewBasePathFs(r.cfg.fs, r.cfg.documentsDir)
	r.scripts = afero.NewBasePathFs(r.cfg.fs, r.cfg.scriptsDir)
	r.converter = pipeline.NewGoldmarkConverter(r.cfg.markdown)

	r.byPath = make(map[string]string, len(r.cfg.pageScripts))
	for _, s := range r.cfg.pageScripts {
		if err := fileutil.ValidateFileName(s.File); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPageScript, s.Path, err)
		}
		r.byPath[ResolvePath("", s.Path)] = s.File
	}

	if err := r.loadComponents(); err != nil {
		return nil, err
	}
	r.splicer = partial.NewSplicer(r.registry, r.cfg.strict)

	resolver, err := assets.NewAssetResolver(r.cfg.fs, r.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	r.assets = resolver

	r.pages, err = assets.LoadPageTemplates(resolver)
	if err != nil {
		return nil, fmt.Errorf("loading page templates: %w", err)
	}
	r.notFound, err = r.pages.NotFound()
	if err != nil {
		return nil, fmt.Errorf("%w: not found page: %v", ErrTemplateRender, err)
	}

	return r, nil
}

// loadComponents fills the registry with file-backed components and the
// built-in glossary index.
func (r *Renderer) loadComponents() error {
	if r.registry == nil {
		r.registry = partial.NewRegistry()
	}

	if r.cfg.componentsDir != "" {
		n, err := partial.LoadDir(r.cfg.fs, r.cfg.componentsDir, r.registry)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrComponentLoad, err)
		}
		r.logger.Debug("components loaded", "dir", r.cfg.componentsDir, "count", n)
	}

	if _, ok := r.registry.Lookup(partial.GlossaryTOCName); !ok {
		toc := partial.NewGlossaryTOC(r.glossarySource)
		if err := r.registry.Register(partial.GlossaryTOCName, toc); err != nil {
			return fmt.Errorf("%w: %v", ErrComponentLoad, err)
		}
	}
	return nil
}

// Components returns the registered component identifiers.
func (r *Renderer) Components() []string {
	return r.registry.Names()
}

// Render resolves req to a document and renders it.
// A missing document yields a Page with Found false and the not-found
// fragment; it is not an error.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, req Request) (page *Page, err error) {
	docPath := ResolvePath(req.Route, req.Wildcard)

	ctx, span := r.tracer.Start(ctx, "mdpage.Render",
		trace.WithAttributes(attribute.String("mdpage.path", docPath)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, found, err := r.readDocument(docPath)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Bool("mdpage.found", found))

	if !found {
		r.logger.DebugContext(ctx, "document not found", "path", docPath)
		return &Page{Path: docPath, Found: false, HTML: r.notFound}, nil
	}

	doc := r.parseDocument(ctx, docPath, source)

	rendered, err := r.converter.ToHTML(ctx, string(doc.Body))
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", docPath, err)
	}

	spliced, err := r.splicer.Splice(ctx, rendered)
	if err != nil {
		return nil, fmt.Errorf("splicing %s: %w", docPath, err)
	}
	if len(spliced.Unresolved) > 0 {
		r.logger.DebugContext(ctx, "unresolved partials left in place",
			"path", docPath, "partials", spliced.Unresolved)
	}

	script, err := r.pageScript(docPath)
	if err != nil {
		return nil, err
	}

	meta := make([]MetaTag, 0, len(doc.Meta))
	for _, m := range doc.Meta {
		meta = append(meta, MetaTag{Name: m.Key, Content: m.Value})
	}
	metaScript := MetadataScript(meta)

	out, err := r.pages.Article(assets.ArticleData{
		Title:      doc.Title,
		Body:       template.HTML(spliced.HTML), // #nosec G203 -- markdown output is trusted site content
		Script:     template.HTML(script),       // #nosec G203 -- read from the site's scripts directory
		MetaScript: template.HTML(metaScript),   // #nosec G203 -- values are JSON-escaped
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	r.logger.DebugContext(ctx, "page rendered",
		"path", docPath,
		"partials", len(spliced.Resolved),
		"script", script != "",
		"meta", len(meta))

	return &Page{
		Path:       docPath,
		Found:      true,
		Title:      doc.Title,
		Meta:       meta,
		Body:       spliced.HTML,
		Script:     script,
		MetaScript: metaScript,
		HTML:       out,
	}, nil
}

// readDocument reads <documents>/<docPath>.md. An empty path or a directory
// counts as not found.
func (r *Renderer) readDocument(docPath string) ([]byte, bool, error) {
	if docPath == "" {
		return nil, false, nil
	}
	source, found, err := fileutil.ReadFile(r.docs, "/"+docPath+".md")
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrDocumentRead, docPath, err)
	}
	return source, found, nil
}

// parseDocument splits front-matter from the body. Malformed front-matter
// is logged and the whole source is rendered as body.
func (r *Renderer) parseDocument(ctx context.Context, docPath string, source []byte) frontmatter.Document {
	doc, err := frontmatter.Parse([]byte(pipeline.NormalizeMarkdown(string(source))))
	if err != nil {
		r.logger.WarnContext(ctx, "rendering document without front-matter",
			"path", docPath, "error", err)
	}
	return doc
}

// pageScript returns the inline script element bound to docPath, or "".
func (r *Renderer) pageScript(docPath string) (string, error) {
	file, ok := r.byPath[docPath]
	if !ok {
		return "", nil
	}
	content, found, err := fileutil.ReadFile(r.scripts, path.Join("/", file))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPageScriptRead, file, err)
	}
	if !found {
		return "", fmt.Errorf("%w: %s: file not found", ErrPageScriptRead, file)
	}
	return "<script>" + string(content) + "</script>", nil
}

// glossarySource renders the glossary body for the glossary-toc component.
// Partials are not spliced, so the index never renders itself.
func (r *Renderer) glossarySource(ctx context.Context) (string, error) {
	source, found, err := r.readDocument(ResolvePath("", r.cfg.glossaryPath))
	if err != nil || !found {
		return "", err
	}
	doc := r.parseDocument(ctx, r.cfg.glossaryPath, source)
	return r.converter.ToHTML(ctx, string(doc.Body))
}

// Layout wraps a page fragment in the full HTML document.
func (r *Renderer) Layout(page *Page, links StyleLinks) (string, error) {
	title := page.Title
	if !page.Found {
		title = "404"
	}
	out, err := r.pages.Layout(assets.LayoutData{
		Title:         title,
		Description:   page.Description(),
		StylePath:     links.Page,
		HighlightPath: links.Highlight,
		Content:       template.HTML(page.HTML), // #nosec G203 -- produced by Render
	})
	if err != nil {
		return "", fmt.Errorf("%w: layout: %v", ErrTemplateRender, err)
	}
	return out, nil
}

// StyleLinks are the stylesheet URLs referenced by the layout.
type StyleLinks struct {
	Page      string
	Highlight string // Empty when highlighting is off
}

// Stylesheet returns the page stylesheet.
func (r *Renderer) Stylesheet() (string, error) {
	return r.assets.LoadStyle(assets.PageStyle)
}

// HighlightStylesheet returns the code highlighting stylesheet. ok is false
// when highlighting is disabled.
func (r *Renderer) HighlightStylesheet() (css string, ok bool, err error) {
	if !r.cfg.markdown.Highlight {
		return "", false, nil
	}
	css, err = pipeline.HighlightCSS(r.cfg.markdown.HighlightStyle)
	if err != nil {
		return "", false, err
	}
	return css, true, nil
}

// Highlighting reports whether code highlighting is enabled.
func (r *Renderer) Highlighting() bool {
	return r.cfg.markdown.Highlight
}
