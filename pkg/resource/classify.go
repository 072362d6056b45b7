package resource

import (
	"regexp"
	"strings"
)

// arnPattern matches arn:aws:<service>:<region>:<account>:<resource>.
// Region and account may be empty; the account is digits-only; the
// resource part is non-empty. Sample ARNs:
//
//	arn:aws:ec2:us-east-2:643927032162:subnet/subnet-b93f81d0
//	arn:aws:s3:::mk-flacs
var arnPattern = regexp.MustCompile(`^arn:aws:([^:]+):([^:]*):([0-9]*):(\S+)$`)

// dnsNamePattern recognizes dotted hostnames: word/hyphen characters with
// at least one dot.
var dnsNamePattern = regexp.MustCompile(`^[-\w]+\.[-\w]+`)

// idPrefixes maps bare AWS ID prefixes to EC2 sub-types, tested in order.
var idPrefixes = []struct {
	prefix string
	sub    Sub
}{
	{"i-", SubInstance},
	{"subnet-", SubSubnet},
	{"snap-", SubSnapshot},
	{"vol-", SubVolume},
	{"vpc-", SubVPC},
}

// IsARN reports whether the identifier commits to ARN parsing. It is
// deliberately looser than arnPattern: anything starting with "arn:" is
// handled as an ARN and never falls through to the other rules, even when
// parsing then fails.
func IsARN(identifier string) bool {
	return strings.HasPrefix(identifier, "arn:")
}

// IsS3URL reports whether the identifier is an s3:// URL.
func IsS3URL(identifier string) bool {
	return strings.HasPrefix(identifier, "s3://")
}

// IsDNSName reports whether the identifier is shaped like a dotted
// hostname and therefore worth a Route 53 lookup.
func IsDNSName(identifier string) bool {
	return dnsNamePattern.MatchString(identifier)
}

// ParseARN classifies an ARN identifier.
//
// Services with dedicated handling split their resource part: ec2 on the
// first "/", rds on the first ":". s3 ARNs always name a bucket. Any
// other service passes through verbatim with an empty Sub, which lets
// future services classify without code changes at the cost of an
// undiscriminated sub-type.
func ParseARN(arn string) (Descriptor, error) {
	m := arnPattern.FindStringSubmatch(arn)
	if m == nil {
		return Descriptor{}, classifyErr(arn, ErrMalformedARN)
	}
	service, rest := m[1], m[4]

	switch Kind(service) {
	case KindEC2:
		sub, name, ok := strings.Cut(rest, "/")
		if !ok {
			return Descriptor{}, classifyErr(arn, ErrMalformedARN)
		}
		return Descriptor{Kind: KindEC2, Sub: Sub(sub), Name: name}, nil
	case KindRDS:
		sub, name, ok := strings.Cut(rest, ":")
		if !ok {
			return Descriptor{}, classifyErr(arn, ErrMalformedARN)
		}
		return Descriptor{Kind: KindRDS, Sub: Sub(sub), Name: name}, nil
	case KindS3:
		// The resource part is the bucket name verbatim, even when it
		// looks like a key path.
		return Descriptor{Kind: KindS3, Sub: SubBucket, Name: rest}, nil
	default:
		return Descriptor{Kind: Kind(service), Name: rest}, nil
	}
}

// ParseS3URL classifies an s3://<bucket>/<key?> identifier. A URL without
// a key (or with nothing after the slash) names the bucket itself.
func ParseS3URL(url string) (Descriptor, error) {
	rest := strings.TrimPrefix(url, "s3://")
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return Descriptor{}, classifyErr(url, ErrMalformedS3URL)
	}
	if key == "" {
		return Descriptor{Kind: KindS3, Sub: SubBucket, Name: bucket}, nil
	}
	return Descriptor{Kind: KindS3, Sub: SubObject, Bucket: bucket, Key: key}, nil
}

// FromID classifies a bare AWS resource ID by its prefix. The second
// return is false when no prefix matches.
func FromID(identifier string) (Descriptor, bool) {
	for _, p := range idPrefixes {
		if strings.HasPrefix(identifier, p.prefix) {
			return Descriptor{Kind: KindEC2, Sub: p.sub, Name: identifier}, true
		}
	}
	return Descriptor{}, false
}

// Unrecognized builds the classification failure for an identifier no
// rule matched.
func Unrecognized(identifier string) error {
	return classifyErr(identifier, ErrUnrecognized)
}
