// Package aws provides AWS-backed implementations of driven port interfaces.
//
// Adapters:
//   - ProfileSource: profiles from the shared config file (~/.aws/config)
//   - BucketLister: S3 bucket listing through aws-sdk-go-v2
package aws
