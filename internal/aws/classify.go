package aws

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/grimm26/awsdesc/pkg/resource"
)

// Classify determines what kind of resource an identifier names.
//
// The decision procedure is ordered and first-match-wins: ARN, s3:// URL,
// bare ID prefix, then DNS-shaped names resolved against Route 53. An
// identifier starting with "arn:" is committed to ARN handling even when
// parsing then fails; it never falls through to the later rules. Only the
// Route 53 branch performs network I/O, because deciding zone vs record
// requires listing the account's hosted zones.
func (i *Inspector) Classify(ctx context.Context, identifier string) (resource.Descriptor, error) {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return resource.Descriptor{}, resource.Unrecognized(identifier)
	}

	log.Debug().Str("identifier", id).Msg("classifying identifier")

	switch {
	case resource.IsARN(id):
		log.Debug().Msg("identifier is an ARN")
		return resource.ParseARN(id)
	case resource.IsS3URL(id):
		log.Debug().Msg("identifier is an s3 URL")
		return resource.ParseS3URL(id)
	}

	if d, ok := resource.FromID(id); ok {
		log.Debug().Str("sub_type", string(d.Sub)).Msg("identifier matched an AWS ID prefix")
		return d, nil
	}

	if resource.IsDNSName(id) {
		log.Debug().Msg("identifier looks like a DNS name, checking route53")
		d, err := i.resolveRoute53(ctx, id)
		if err != nil {
			return resource.Descriptor{}, err
		}
		if d != nil {
			return *d, nil
		}
	}

	return resource.Descriptor{}, resource.Unrecognized(id)
}
