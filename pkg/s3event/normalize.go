package s3event

import "strings"

// Normalize derives the Event for a validated s3 section.
//
// The leaf is split on every dot: the first part is the filename and the second one the
// extension, any further part is dropped ("archive.tar.gz" gives "archive" and "tar").
func Normalize(e Entity) Event {
	segments := strings.Split(e.Object.Key, "/")
	leaf := segments[len(segments)-1]

	parts := strings.Split(leaf, ".")
	var extension string
	if len(parts) > 1 {
		extension = parts[1]
	}

	return Event{
		BucketName:    e.Bucket.Name,
		FileKey:       e.Object.Key,
		FilePrefix:    strings.Join(segments[:len(segments)-1], "/"),
		Filename:      parts[0],
		FileExtension: extension,
		Filesize:      e.Object.Size,
		FileTag:       e.Object.ETag,
	}
}
