// Package s3event turns raw S3 "object created" notifications into a normalized Event.
package s3event

import "strings"

// ExtensionJSON is the file extension whose objects are decoded as JSON by accessors.
const ExtensionJSON = "json"

// Entity is the s3 section of the first notification record.
// http://docs.aws.amazon.com/AmazonS3/latest/dev/notification-content-structure.html
type Entity struct {
	Bucket Bucket `json:"bucket"`
	Object Object `json:"object"`
}

type Bucket struct {
	Name string `json:"name"`
	Arn  string `json:"arn,omitempty"`
}

type Object struct {
	Key       string `json:"key"`
	Size      int64  `json:"size"`
	ETag      string `json:"eTag"`
	VersionID string `json:"versionId,omitempty"`
	Sequencer string `json:"sequencer,omitempty"`
}

// Event is the normalized reference to a stored object.
// It is built once per dispatch and never mutated afterwards.
type Event struct {
	BucketName    string `json:"bucketName"`
	FileKey       string `json:"fileKey"`
	FilePrefix    string `json:"filePrefix"`
	Filename      string `json:"filename"`
	FileExtension string `json:"fileExtension"`
	Filesize      int64  `json:"filesize"`
	FileTag       string `json:"fileTag"`
}

// Leaf returns the last path segment of the key.
func (e Event) Leaf() string {
	if i := strings.LastIndex(e.FileKey, "/"); i >= 0 {
		return e.FileKey[i+1:]
	}
	return e.FileKey
}

// IsJSON reports whether the object carries the json extension.
func (e Event) IsJSON() bool {
	return e.FileExtension == ExtensionJSON
}
