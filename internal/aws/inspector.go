// Package aws implements identifier classification and resource
// description against the AWS APIs for awsdesc.
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// defaultRegion is where S3 reports buckets with an empty location
// constraint.
const defaultRegion = "us-east-1"

// Config selects the credential profile and region for the inspector's
// clients. Both are optional; the usual AWS resolution chain applies when
// they are empty. A region set here wins over the ambient one.
type Config struct {
	Region  string
	Profile string
}

// Inspector classifies identifiers and describes the resources they name.
// All clients are narrow interfaces so tests can swap in mocks.
type Inspector struct {
	ec2     EC2API
	s3      S3API
	route53 Route53API
	rds     RDSAPI
	iam     IAMAPI
	sts     STSAPI
}

// New builds an Inspector with real AWS clients from the shared config
// chain, applying profile and region overrides explicitly rather than
// through ambient session state.
func New(ctx context.Context, cfg Config) (*Inspector, error) {
	opts := []func(*config.LoadOptions) error{}
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Inspector{
		ec2:     ec2.NewFromConfig(awsCfg),
		s3:      s3.NewFromConfig(awsCfg),
		route53: route53.NewFromConfig(awsCfg),
		rds:     rds.NewFromConfig(awsCfg),
		iam:     iam.NewFromConfig(awsCfg),
		sts:     sts.NewFromConfig(awsCfg),
	}, nil
}

// Identity is the caller identity resolved by the credential pre-flight.
type Identity struct {
	Account string
	ARN     string
	UserID  string
}

// Preflight verifies the credential chain actually works before any
// classification or describe call. Failures come back as a
// CredentialError so the CLI can exit with the credential status.
func (i *Inspector) Preflight(ctx context.Context) (Identity, error) {
	out, err := i.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Identity{}, &CredentialError{Err: err}
	}
	return Identity{
		Account: aws.ToString(out.Account),
		ARN:     aws.ToString(out.Arn),
		UserID:  aws.ToString(out.UserId),
	}, nil
}
