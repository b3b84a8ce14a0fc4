// Package container implements a self-describing envelope around raw
// vpack frames.
//
// The raw frame format deliberately omits the element count; callers must
// transport it out-of-band. The container restores it for callers that
// want a single storable artifact: a fixed 24-byte header carrying its
// own magic and version, the codec family, the outer compression type,
// the element count, and an xxHash64 checksum of the stored payload,
// followed by the frame itself, optionally passed through an outer
// compression codec.
//
// The container is a distinct format with its own magic. A container is
// never a valid raw frame and a raw frame is never a valid container, so
// the two cannot be confused.
//
//	data, _ := container.Encode64(values,
//	    container.WithCompression(format.CompressionZstd),
//	)
//	decoded, _ := container.Decode64(data)
package container
