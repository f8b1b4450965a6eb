// Package assets provides the HTML templates and stylesheet used to present
// rendered pages.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (defaults)
//	    ├── FilesystemLoader  - loads from a custom directory
//	    └── AssetResolver     - combines both with custom-first fallback
//
// A site overrides any single asset by placing a file with the same name in
// its assets directory; everything else falls back to the embedded copy.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── page.css           # Site stylesheet
//	└── templates/
//	    ├── article.html       # Page fragment: header, markup, scripts
//	    ├── notfound.html      # Fragment served for missing documents
//	    └── layout.html        # Full document wrapping a fragment
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// reads through an afero.BasePathFs rooted at basePath.
package assets
