// Package s3 implements blobstore.Store on Amazon S3.
//
// Reads use ranged GetObject calls so a partial fetch never downloads the
// whole archive; uploads stream through the S3 upload manager.
package s3
