package domain

import "time"

// Bucket is an S3 bucket visible to an AWS profile.
type Bucket struct {
	// Name is the bucket name.
	Name string

	// CreatedAt is when the bucket was created. Zero if unknown.
	CreatedAt time.Time
}
