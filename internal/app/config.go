package app

// Config holds runtime configuration for the analysis pipeline.
type Config struct {
	// BaseDir is scanned for collection subdirectories. A base directory
	// that itself contains a manifest is treated as a single collection.
	BaseDir string

	// ManifestName is the input manifest filename inside each collection.
	ManifestName string
	// OutputName is the output record filename written per collection.
	OutputName string
	// DocsDir is the subdirectory holding a collection's documents;
	// documents missing there are looked up in the collection root.
	DocsDir string

	// Workers bounds the per-document parse fan-out. Parallelism never
	// changes output: results merge back in manifest order before ranking.
	Workers int

	// PDFReport, when set, writes a rendered PDF of the record next to the
	// JSON output under this filename.
	PDFReport string

	// CheckOutput re-validates each record after building it.
	CheckOutput bool

	Verbose bool
}

// Defaults used when flags and config file leave a field unset.
const (
	DefaultManifestName = "input.json"
	DefaultOutputName   = "output.json"
	DefaultDocsDir      = "docs"
	DefaultWorkers      = 4
)

// withDefaults fills unset fields in place.
func (c *Config) withDefaults() {
	if c.BaseDir == "" {
		c.BaseDir = "."
	}
	if c.ManifestName == "" {
		c.ManifestName = DefaultManifestName
	}
	if c.OutputName == "" {
		c.OutputName = DefaultOutputName
	}
	if c.DocsDir == "" {
		c.DocsDir = DefaultDocsDir
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
}
