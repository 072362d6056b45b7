package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"

	"github.com/grimm26/awsdesc/pkg/resource"
)

func (i *Inspector) describeS3(ctx context.Context, d resource.Descriptor) (any, error) {
	switch d.Sub {
	case resource.SubBucket:
		return i.describeBucket(ctx, d.Name)
	case resource.SubObject:
		return i.describeObject(ctx, d.Bucket, d.Key)
	default:
		return nil, ErrUnsupportedResource
	}
}

// bucketRegion resolves a bucket's region. S3 reports buckets in the
// default region with an empty location constraint.
func (i *Inspector) bucketRegion(ctx context.Context, bucket string) (string, error) {
	out, err := i.s3.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return "", fmt.Errorf("get bucket location: %w", err)
	}
	if out.LocationConstraint == "" {
		return defaultRegion, nil
	}
	return string(out.LocationConstraint), nil
}

func (i *Inspector) describeBucket(ctx context.Context, bucket string) (any, error) {
	log.Debug().Str("bucket", bucket).Msg("querying s3 bucket")

	region, err := i.bucketRegion(ctx, bucket)
	if err != nil {
		return nil, err
	}

	versioning, err := i.s3.GetBucketVersioning(ctx, &s3.GetBucketVersioningInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return nil, fmt.Errorf("get bucket versioning: %w", err)
	}
	status := string(versioning.Status)
	if status == "" {
		status = "Disabled"
	}

	tags, err := i.bucketTags(ctx, bucket)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"name":       bucket,
		"region":     region,
		"versioning": map[string]any{"status": status},
		"tags":       tags,
	}, nil
}

// bucketTags fetches the bucket tag set. A bucket with no tag set at all
// answers with a not-found style error; that one case collapses to an
// empty map, anything else propagates.
func (i *Inspector) bucketTags(ctx context.Context, bucket string) (map[string]string, error) {
	tags := map[string]string{}
	out, err := i.s3.GetBucketTagging(ctx, &s3.GetBucketTaggingInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		if isTagSetNotFound(err) {
			return tags, nil
		}
		return nil, fmt.Errorf("get bucket tagging: %w", err)
	}
	for _, tag := range out.TagSet {
		tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}
	return tags, nil
}

func isTagSetNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "NoSuchTagSet", "NoSuchTagSetError":
		return true
	}
	return false
}

func (i *Inspector) describeObject(ctx context.Context, bucket, key string) (any, error) {
	log.Debug().Str("bucket", bucket).Str("key", key).Msg("querying s3 object")

	region, err := i.bucketRegion(ctx, bucket)
	if err != nil {
		return nil, err
	}

	head, err := i.s3.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("head object: %w", err)
	}

	data := map[string]any{
		"bucket": bucket,
		"key":    key,
		"region": region,
	}
	if head.ContentLength != nil {
		data["ContentLength"] = aws.ToInt64(head.ContentLength)
	}
	if head.ContentType != nil {
		data["ContentType"] = aws.ToString(head.ContentType)
	}
	if head.ETag != nil {
		data["ETag"] = aws.ToString(head.ETag)
	}
	if head.LastModified != nil {
		data["LastModified"] = *head.LastModified
	}
	if head.StorageClass != "" {
		data["StorageClass"] = string(head.StorageClass)
	}
	if head.VersionId != nil {
		data["VersionId"] = aws.ToString(head.VersionId)
	}
	if head.ServerSideEncryption != "" {
		data["ServerSideEncryption"] = string(head.ServerSideEncryption)
	}
	if len(head.Metadata) > 0 {
		data["Metadata"] = head.Metadata
	}
	return data, nil
}
