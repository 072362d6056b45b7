// Package resource defines the resource descriptor model and the pure
// identifier classification rules for awsdesc.
package resource

// Kind is the owning AWS service of a resource. ARNs for services without
// dedicated handling pass their service component through verbatim, so a
// Kind is not limited to the named constants.
type Kind string

const (
	KindEC2     Kind = "ec2"
	KindS3      Kind = "s3"
	KindRDS     Kind = "rds"
	KindRoute53 Kind = "route53"
	KindIAM     Kind = "iam"
)

// Sub discriminates resource flavors within a Kind. Empty for passthrough
// ARNs where the service has no dedicated parsing.
type Sub string

const (
	SubInstance   Sub = "instance"
	SubSubnet     Sub = "subnet"
	SubSnapshot   Sub = "snapshot"
	SubVolume     Sub = "volume"
	SubVPC        Sub = "vpc"
	SubBucket     Sub = "bucket"
	SubObject     Sub = "object"
	SubHostedZone Sub = "hosted_zone"
	SubRecord     Sub = "record"
)

// Descriptor is the output of one classification pass. It is immutable
// once produced and consumed exactly once by the describer.
//
// Kind and Sub are co-determined: an ec2 descriptor never carries
// SubBucket. Bucket and Key are populated only for S3 objects, and Data
// only for Route 53 records matched during classification (describing
// such a descriptor needs no further API call).
type Descriptor struct {
	Kind   Kind
	Sub    Sub
	Name   string
	Bucket string
	Key    string
	Data   any
}

// DisplayName renders the identifier part of the descriptor for
// diagnostics and dry-run output.
func (d Descriptor) DisplayName() string {
	if d.Sub == SubObject {
		return d.Bucket + "/" + d.Key
	}
	return d.Name
}
