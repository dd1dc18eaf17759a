package s3event

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const notification = `{
	"Records": [
		{
			"eventVersion": "2.1",
			"eventSource": "aws:s3",
			"eventName": "ObjectCreated:Put",
			"s3": {
				"s3SchemaVersion": "1.0",
				"configurationId": "testConfigId",
				"bucket": {
					"name": "janis-events-service-local",
					"ownerIdentity": {"principalId": "25DF414140DB20"},
					"arn": "arn:aws:s3:::janis-events-service-local"
				},
				"object": {
					"key": "subscribers/test.json",
					"sequencer": "16E051CDD44",
					"size": 84,
					"eTag": "f5edbddec6fc3d3a7fabe0e4c14d474b"
				}
			}
		}
	]
}`

func TestValidate_InvalidEvent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "nil input", raw: ""},
		{name: "whitespace", raw: "   \n\t"},
		{name: "null", raw: "null"},
		{name: "empty string literal", raw: `""`},
		{name: "number", raw: "42"},
		{name: "boolean", raw: "true"},
		{name: "array", raw: `[{"Records": []}]`},
		{name: "empty object", raw: "{}"},
		{name: "malformed object", raw: `{"Records": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: validating a non-object or empty input
			_, err := Validate([]byte(tt.raw))

			// Then: the first check fails
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidEvent)
			assert.NotErrorIs(t, err, ErrInvalidRecords)
		})
	}
}

func TestValidate_InvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "records missing", raw: `{"foo": "bar"}`},
		{name: "records empty string", raw: `{"Records": ""}`},
		{name: "records empty array", raw: `{"Records": []}`},
		{name: "records object", raw: `{"Records": {"s3": {}}}`},
		{name: "records null", raw: `{"Records": null}`},
		{name: "records lowercase key", raw: `{"records": [{"s3": {"bucket": {}, "object": {}}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate([]byte(tt.raw))

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRecords)
		})
	}
}

func TestValidate_InvalidS3Record(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty record", raw: `{"Records": [{}]}`},
		{name: "record is a string", raw: `{"Records": ["s3"]}`},
		{name: "record is null", raw: `{"Records": [null]}`},
		{name: "empty s3", raw: `{"Records": [{"s3": {}}]}`},
		{name: "s3 is an array", raw: `{"Records": [{"s3": [{"bucket": {}, "object": {}}]}]}`},
		{name: "only bucket", raw: `{"Records": [{"s3": {"bucket": {}}}]}`},
		{name: "only object", raw: `{"Records": [{"s3": {"object": {}}}]}`},
		{name: "bucket is an array", raw: `{"Records": [{"s3": {"bucket": [], "object": {}}}]}`},
		{name: "object is null", raw: `{"Records": [{"s3": {"bucket": {}, "object": null}}]}`},
		{name: "size is not a number", raw: `{"Records": [{"s3": {"bucket": {}, "object": {"size": "big"}}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate([]byte(tt.raw))

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidS3Record)
		})
	}
}

func TestValidate_ValidNotification(t *testing.T) {
	// When: validating a full S3 notification
	entity, err := Validate([]byte(notification))

	// Then: the s3 section of the first record is decoded
	require.NoError(t, err)
	assert.Equal(t, "janis-events-service-local", entity.Bucket.Name)
	assert.Equal(t, "arn:aws:s3:::janis-events-service-local", entity.Bucket.Arn)
	assert.Equal(t, "subscribers/test.json", entity.Object.Key)
	assert.Equal(t, int64(84), entity.Object.Size)
	assert.Equal(t, "f5edbddec6fc3d3a7fabe0e4c14d474b", entity.Object.ETag)
	assert.Equal(t, "16E051CDD44", entity.Object.Sequencer)
}

func TestValidate_EmptyBucketAndObjectAreAccepted(t *testing.T) {
	entity, err := Validate([]byte(`{"Records": [{"s3": {"bucket": {}, "object": {}}}]}`))

	require.NoError(t, err)
	assert.Equal(t, Entity{}, entity)
}

func TestValidate_OnlyFirstRecordIsUsed(t *testing.T) {
	// Given: two records, the second one malformed
	raw := `{"Records": [
		{"s3": {"bucket": {"name": "first"}, "object": {"key": "a.txt"}}},
		{"s3": "not an object"}
	]}`

	// When
	entity, err := Validate([]byte(raw))

	// Then: the second record is never inspected
	require.NoError(t, err)
	assert.Equal(t, "first", entity.Bucket.Name)
	assert.Equal(t, "a.txt", entity.Object.Key)
}

func TestValidate_LambdaS3Event(t *testing.T) {
	// Given: a notification produced by the aws-lambda-go event types
	raw, err := json.Marshal(events.S3Event{
		Records: []events.S3EventRecord{
			{
				EventName: "ObjectCreated:Put",
				S3: events.S3Entity{
					Bucket: events.S3Bucket{Name: "b"},
					Object: events.S3Object{Key: "a/b.json", Size: 10, ETag: "t"},
				},
			},
		},
	})
	require.NoError(t, err)

	// When
	event, err := Parse(raw)

	// Then
	require.NoError(t, err)
	assert.Equal(t, Event{
		BucketName:    "b",
		FileKey:       "a/b.json",
		FilePrefix:    "a",
		Filename:      "b",
		FileExtension: "json",
		Filesize:      10,
		FileTag:       "t",
	}, event)
}

func TestParse_PropagatesValidationError(t *testing.T) {
	event, err := Parse([]byte(`{"Records": []}`))

	assert.ErrorIs(t, err, ErrInvalidRecords)
	assert.Equal(t, Event{}, event)
}
