package importer

import "strings"

// Config holds configuration for the catalog import engine.
type Config struct {
	// ChunkSize is the number of product records committed per transaction.
	// Chunking bounds peak memory on large pages; it is not a batch
	// atomicity boundary.
	ChunkSize int `mapstructure:"chunk_size" default:"100"`
	// DefaultLocale is the locale used for an entity's own name/description
	// columns when a translation bundle carries no explicit default.
	DefaultLocale string `mapstructure:"default_locale" default:"ru"`
	// ProjectSlug addresses the project all imported entities belong to.
	ProjectSlug string `mapstructure:"project_slug" default:"b2b"`
	// MediaDir is the local staging directory for fetched media files.
	MediaDir string `mapstructure:"media_dir" default:"./media/products"`
	// MediaPublicURL is the public base URL recorded on File rows.
	MediaPublicURL string `mapstructure:"media_public_url" default:"/media/products"`
	// MediaObjectPrefix is the object key prefix for mirrored media.
	MediaObjectPrefix string `mapstructure:"media_object_prefix" default:"media/products"`
	// FetchTimeoutSeconds bounds a single remote media download.
	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds" default:"30"`
	// SystemCategories is a comma-separated list of category names flagged
	// as system categories (matched case-insensitively).
	SystemCategories string `mapstructure:"system_categories" default:"агентам"`
	// JpegoptimPath is the jpegoptim binary used to optimize fetched
	// images in place. Empty disables optimization.
	JpegoptimPath string `mapstructure:"jpegoptim_path" default:""`
}

// SystemCategoryNames returns the configured system category name set.
func (c Config) SystemCategoryNames() []string {
	var names []string
	for _, name := range strings.Split(c.SystemCategories, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// DefaultImageTypeSlugs maps a model image bucket to the system image-type
// slugs assigned by list position within that bucket. An image at a position
// with no configured slug is a record-level error.
var DefaultImageTypeSlugs = map[string][]string{
	"base_photo":     {"osnovnoe-foto"},
	"base_photo_b2b": {"osnovnoe-foto-b2b"},
	"package_photo":  {"foto-upakovki-speredi", "foto-upakovki-szadi"},
}
