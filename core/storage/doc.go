// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// media mirroring path: after an image has been fetched and optimized
// locally, it is uploaded to the bucket so the public media path can be
// served from object storage. This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates a new bucket if needed.
//   - FPutObject: Uploads a local file (the optimized media file).
//   - StatObject: Checks object presence/metadata.
//   - GetObject: Retrieves content as a stream.
package storage
