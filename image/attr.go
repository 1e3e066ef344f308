package image

// Attr describes a decoded source image.
type Attr struct {
	Width   int
	Height  int
	Bytes   int64  // encoded size on disk
	Format  Format // sniffed from magic bytes, not the file name
	Quality int    // estimated source quality, JPEG only, 0 when unknown
}
